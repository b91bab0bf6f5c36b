// Package story defines the Story entity: a named todo list owned by a caller.
package story

import "github.com/google/uuid"

// Story is an owned list of tasks. ID is assigned by the store at creation
// and never changes; Name and Owner are trimmed, non-empty strings.
type Story struct {
	ID    uuid.UUID
	Name  string
	Owner string
}
