package ports

import (
	"context"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
)

// ActionRecorder appends immutable audit entries and reads them back.
// A failed append fails the surrounding operation.
type ActionRecorder interface {
	Record(ctx context.Context, tacheID, userID uint64, kind domain.ActionKind) error
	// ByTask returns entries newest-first, enriched with the acting user
	// identity and the task label.
	ByTask(ctx context.Context, tacheID uint64) ([]domain.ActionEntry, error)
}
