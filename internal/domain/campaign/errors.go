package campaign

import (
	"fmt"

	"github.com/contentforge/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PartialPersistenceError reports a multi-row write that stopped part way.
// Written rows stay committed; FailedAt is the sequence number of the first
// row that was not written.
type PartialPersistenceError struct {
	SeriesID uuid.UUID
	Declared int
	Written  int
	FailedAt int
	Err      error
}

// Error implements the error interface
func (e *PartialPersistenceError) Error() string {
	return fmt.Sprintf("partial write to series %s: %d of %d items written, failed at sequence %d: %v",
		e.SeriesID, e.Written, e.Declared, e.FailedAt, e.Err)
}

// Unwrap returns the underlying store error
func (e *PartialPersistenceError) Unwrap() error {
	return e.Err
}

// Is matches shared.ErrPartialPersistence
func (e *PartialPersistenceError) Is(target error) bool {
	return target == shared.ErrPartialPersistence
}
