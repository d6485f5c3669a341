package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRefs parses one or more task references from args.
// A reference is the 1-based number a task has in the full list.
// Repeated references are collapsed, keeping first-seen order.
func ParseTaskRefs(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, ErrTaskRefRequired
	}

	seen := make(map[int]bool, len(args))
	refs := make([]int, 0, len(args))
	for _, arg := range args {
		if !isAllDigits(arg) {
			return nil, fmt.Errorf("invalid task reference: %s", arg)
		}
		num, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid task reference: %s", arg)
		}
		if seen[num] {
			continue
		}
		seen[num] = true
		refs = append(refs, num)
	}
	return refs, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
