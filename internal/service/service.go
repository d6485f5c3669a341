package service

// Service defines the interface for task store operations.
// Commands only talk to the store through this interface.
//
// Implementations are single-threaded: callers must not share one across
// goroutines.
type Service interface {
	// Add trims text and appends a new active task.
	// Returns a *ValidationError (possibly wrapped) if text is empty after
	// trimming; the store is unchanged in that case.
	// Priority is stored as given.
	Add(text string, priority Priority) (Task, error)

	// Toggle flips the completion flag of the task with the given ID.
	// Unknown IDs are ignored.
	Toggle(id string)

	// Delete removes the task with the given ID. Unknown IDs are ignored.
	// Callers must obtain user confirmation before calling.
	Delete(id string)

	// ClearCompleted removes every completed task.
	ClearCompleted()

	// MarkAllComplete marks every task completed.
	MarkAllComplete()

	// MarkAllIncomplete marks every task active.
	MarkAllIncomplete()

	// Filter returns a copy of the tasks matching f, in insertion order.
	Filter(f Filter) []Task

	// Tasks returns a copy of all tasks in insertion order.
	Tasks() []Task

	// Stats returns aggregate counts.
	Stats() Stats
}
