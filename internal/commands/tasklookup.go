package commands

import (
	"fmt"

	"todo/internal/service"
)

// refTask is a task together with the number the user referred to it by.
type refTask struct {
	num  int
	task service.Task
}

// resolveRefs maps task numbers to tasks using a single snapshot of the
// store, so earlier mutations in the same command do not shift later
// numbers.
func resolveRefs(svc service.Service, refs []int) ([]refTask, error) {
	all := svc.Tasks()

	result := make([]refTask, 0, len(refs))
	for _, num := range refs {
		if num < 1 || num > len(all) {
			return nil, fmt.Errorf("task number out of range: %d", num)
		}
		result = append(result, refTask{num: num, task: all[num-1]})
	}
	return result, nil
}
