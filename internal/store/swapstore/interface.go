package swapstore

import (
	"github.com/pkg/errors"

	"github.com/synzk/hub-backend/internal/model"
)

// ErrNotFound is returned by GetByID regardless of the active backend.
var ErrNotFound = errors.New("swap not found")

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// IStore is the persistence contract for swap records. Both backends return
// structurally identical records; callers never know which one is active.
type IStore interface {
	// Upsert inserts the record, or overwrites status, updated_at and body
	// of an existing record with the same id. A status outside the
	// enumerated set is rejected before anything is written.
	Upsert(swap *model.Swap) error

	GetByID(id string) (*model.Swap, error)

	// List returns records ordered by created_at descending. The limit is
	// clamped to [1, MaxListLimit]; values < 1 fall back to DefaultListLimit.
	List(limit int) ([]model.Swap, error)

	// SetStatus updates status and refreshes updated_at. A missing id is
	// not an error.
	SetStatus(id string, status model.SwapStatus) error
}

func clampLimit(limit int) int {
	if limit < 1 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
