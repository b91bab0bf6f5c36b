// Package task defines the Task entity and its completion status.
package task

import "github.com/google/uuid"

// Task is a single item within a story. StoryID is fixed at creation.
type Task struct {
	ID      uuid.UUID
	StoryID uuid.UUID
	Name    string
	Status  Status
}

// IsComplete reports whether the task has been marked complete.
func (t *Task) IsComplete() bool {
	return t.Status == StatusComplete
}
