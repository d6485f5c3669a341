package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/service"
)

// freedSlots returns the backing-array slots between len and cap that
// held tasks before a removal.
func freedSlots(s *Store, before int) []service.Task {
	return s.tasks[len(s.tasks):before]
}

func TestDelete_ZeroesFreedSlot(t *testing.T) {
	s := New()
	require.NoError(t, Seed(s))
	before := len(s.tasks)

	s.Delete(s.tasks[1].ID)

	require.Len(t, s.tasks, before-1)
	assert.Equal(t, []service.Task{{}}, freedSlots(s, before))
}

func TestClearCompleted_ZeroesFreedSlots(t *testing.T) {
	s := New()
	require.NoError(t, Seed(s))
	s.Toggle(s.tasks[0].ID)
	before := len(s.tasks)

	s.ClearCompleted()

	require.Len(t, s.tasks, before-2)
	assert.Equal(t, []service.Task{{}, {}}, freedSlots(s, before))
}
