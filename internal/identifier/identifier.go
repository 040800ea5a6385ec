// Package identifier validates caller-supplied document identifiers.
// taskId and teamMemberId are expected to be version-4 UUID strings; the check
// lives here so every handler rejects malformed identifiers the same way,
// before any persistence operation is attempted.
package identifier

import (
	"github.com/google/uuid"

	"taskmanager-be/internal/entities"
)

// Validate reports whether id is a well-formed version-4 UUID.
// Returns entities.ErrInvalidID otherwise.
func Validate(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return entities.ErrInvalidID
	}
	if parsed.Version() != 4 {
		return entities.ErrInvalidID
	}
	return nil
}
