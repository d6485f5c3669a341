package memstore

import (
	"todo/internal/service"
)

// seedTask is one of the example tasks a new session starts with.
type seedTask struct {
	text      string
	priority  service.Priority
	completed bool
}

var seedTasks = []seedTask{
	{"Create project proposal", service.PriorityHigh, false},
	{"Buy groceries", service.PriorityMedium, true},
	{"Schedule team meeting", service.PriorityMedium, false},
	{"Read JavaScript documentation", service.PriorityLow, false},
}

// Seed appends the example tasks to svc through its public operations.
func Seed(svc service.Service) error {
	for _, st := range seedTasks {
		task, err := svc.Add(st.text, st.priority)
		if err != nil {
			return err
		}
		if st.completed {
			svc.Toggle(task.ID)
		}
	}
	return nil
}
