// Package memstore implements the service.Service interface with an in-memory task list.
package memstore

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"todo/internal/service"
)

// Store implements service.Service over an ordered slice of tasks.
// It is not safe for concurrent use.
type Store struct {
	tasks []service.Task

	log        zerolog.Logger
	now        func() time.Time
	newID      func() string
	dateLayout string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutation events.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock sets the clock used for creation dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithDateLayout sets the time layout used for CreatedDate.
func WithDateLayout(layout string) Option {
	return func(s *Store) {
		if layout != "" {
			s.dateLayout = layout
		}
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		log:        zerolog.Nop(),
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
		dateLayout: service.DefaultDateLayout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add implements service.Service.
func (s *Store) Add(text string, priority service.Priority) (service.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		err := errors.WithStack(&service.ValidationError{Field: "text", Reason: "task text required"})
		s.log.Debug().Str("op", "add").Err(err).Msg("add rejected")
		return service.Task{}, err
	}

	task := service.Task{
		ID:          s.newID(),
		Text:        text,
		Priority:    priority,
		Completed:   false,
		CreatedDate: s.now().Format(s.dateLayout),
	}
	s.tasks = append(s.tasks, task)

	s.log.Debug().Str("op", "add").Str("id", task.ID).Str("priority", string(priority)).Int("total", len(s.tasks)).Msg("task added")
	return task, nil
}

// Toggle implements service.Service.
func (s *Store) Toggle(id string) {
	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug().Str("op", "toggle").Str("id", id).Msg("no such task")
		return
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	s.log.Debug().Str("op", "toggle").Str("id", id).Bool("completed", s.tasks[i].Completed).Msg("task toggled")
}

// Delete implements service.Service.
func (s *Store) Delete(id string) {
	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug().Str("op", "delete").Str("id", id).Msg("no such task")
		return
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.log.Debug().Str("op", "delete").Str("id", id).Int("total", len(s.tasks)).Msg("task deleted")
}

// ClearCompleted implements service.Service.
func (s *Store) ClearCompleted() {
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.Completed {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	// Zero the tail so dropped tasks are not retained by the backing array.
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = service.Task{}
	}
	s.tasks = kept
	s.log.Debug().Str("op", "clear").Int("removed", removed).Int("total", len(s.tasks)).Msg("completed tasks cleared")
}

// MarkAllComplete implements service.Service.
func (s *Store) MarkAllComplete() {
	s.markAll(true)
}

// MarkAllIncomplete implements service.Service.
func (s *Store) MarkAllIncomplete() {
	s.markAll(false)
}

func (s *Store) markAll(completed bool) {
	for i := range s.tasks {
		s.tasks[i].Completed = completed
	}
	s.log.Debug().Str("op", "markall").Bool("completed", completed).Int("total", len(s.tasks)).Msg("all tasks marked")
}

// Filter implements service.Service.
func (s *Store) Filter(f service.Filter) []service.Task {
	var result []service.Task
	for _, t := range s.tasks {
		if f.Match(t) {
			result = append(result, t)
		}
	}
	return result
}

// Tasks implements service.Service.
func (s *Store) Tasks() []service.Task {
	return s.Filter(service.FilterAll)
}

// Stats implements service.Service.
func (s *Store) Stats() service.Stats {
	var st service.Stats
	st.Total = len(s.tasks)
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		}
		if t.Priority == service.PriorityHigh {
			st.HighPriority++
		}
	}
	st.Pending = st.Total - st.Completed
	return st
}

func (s *Store) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
