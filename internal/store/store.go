package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/castellanodev/asistente/internal/models"
)

// Collection names the four persisted record sequences.
type Collection string

const (
	CollectionTasks    Collection = "tasks"
	CollectionEvents   Collection = "events"
	CollectionExpenses Collection = "expenses"
	CollectionWellness Collection = "wellness"
)

// ErrNotFound is returned when a record lookup by id finds nothing.
var ErrNotFound = errors.New("record not found")

// Store is the document-store boundary: whole-collection reads, appends, and
// the single task toggle. All filtering and aggregation happens above this
// interface.
type Store interface {
	Tasks(ctx context.Context) ([]models.Task, error)
	AddTask(ctx context.Context, task models.Task) error
	SetTaskCompleted(ctx context.Context, id uuid.UUID, completed bool) (models.Task, error)

	Events(ctx context.Context) ([]models.Event, error)
	AddEvent(ctx context.Context, event models.Event) error

	Expenses(ctx context.Context) ([]models.Expense, error)
	AddExpense(ctx context.Context, expense models.Expense) error

	Wellness(ctx context.Context) ([]models.WellnessActivity, error)
	AddWellness(ctx context.Context, activity models.WellnessActivity) error

	Close() error
}

// Documents is the raw backend contract: one JSON document per collection.
// A nil document means the collection has never been written, which reads as
// an empty collection.
type Documents interface {
	Read(ctx context.Context, c Collection) ([]byte, error)
	Write(ctx context.Context, c Collection, data []byte) error
	Close() error
}

// DocumentStore implements Store over any Documents backend using
// read-modify-write at whole-collection granularity. A single mutex
// serializes writers so concurrent commands cannot lose updates.
type DocumentStore struct {
	docs Documents
	mu   sync.Mutex
}

// New wraps a Documents backend in a DocumentStore.
func New(docs Documents) *DocumentStore {
	return &DocumentStore{docs: docs}
}

// Close releases the underlying backend.
func (s *DocumentStore) Close() error {
	return s.docs.Close()
}

func readCollection[T any](ctx context.Context, s *DocumentStore, c Collection) ([]T, error) {
	data, err := s.docs.Read(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c, err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c, err)
	}
	return records, nil
}

func writeCollection[T any](ctx context.Context, s *DocumentStore, c Collection, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c, err)
	}
	if err := s.docs.Write(ctx, c, data); err != nil {
		return fmt.Errorf("write %s: %w", c, err)
	}
	return nil
}

func appendRecord[T any](ctx context.Context, s *DocumentStore, c Collection, record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := readCollection[T](ctx, s, c)
	if err != nil {
		return err
	}
	return writeCollection(ctx, s, c, append(records, record))
}

// Tasks returns all tasks in insertion order.
func (s *DocumentStore) Tasks(ctx context.Context) ([]models.Task, error) {
	return readCollection[models.Task](ctx, s, CollectionTasks)
}

// AddTask appends a task.
func (s *DocumentStore) AddTask(ctx context.Context, task models.Task) error {
	return appendRecord(ctx, s, CollectionTasks, task)
}

// SetTaskCompleted sets the completed flag of the task with the given id and
// returns the updated record. Returns ErrNotFound when no task matches.
func (s *DocumentStore) SetTaskCompleted(ctx context.Context, id uuid.UUID, completed bool) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := readCollection[models.Task](ctx, s, CollectionTasks)
	if err != nil {
		return models.Task{}, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Completed = completed
			if err := writeCollection(ctx, s, CollectionTasks, tasks); err != nil {
				return models.Task{}, err
			}
			return tasks[i], nil
		}
	}
	return models.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
}

// Events returns all events in insertion order.
func (s *DocumentStore) Events(ctx context.Context) ([]models.Event, error) {
	return readCollection[models.Event](ctx, s, CollectionEvents)
}

// AddEvent appends an event.
func (s *DocumentStore) AddEvent(ctx context.Context, event models.Event) error {
	return appendRecord(ctx, s, CollectionEvents, event)
}

// Expenses returns all expenses in insertion order.
func (s *DocumentStore) Expenses(ctx context.Context) ([]models.Expense, error) {
	return readCollection[models.Expense](ctx, s, CollectionExpenses)
}

// AddExpense appends an expense.
func (s *DocumentStore) AddExpense(ctx context.Context, expense models.Expense) error {
	return appendRecord(ctx, s, CollectionExpenses, expense)
}

// Wellness returns all wellness activities in insertion order.
func (s *DocumentStore) Wellness(ctx context.Context) ([]models.WellnessActivity, error) {
	return readCollection[models.WellnessActivity](ctx, s, CollectionWellness)
}

// AddWellness appends a wellness activity.
func (s *DocumentStore) AddWellness(ctx context.Context, activity models.WellnessActivity) error {
	return appendRecord(ctx, s, CollectionWellness, activity)
}

var _ Store = (*DocumentStore)(nil)
