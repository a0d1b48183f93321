package history_port

import (
	"context"

	"github.com/google/uuid"

	"safeqr/domain"
)

//go:generate mockgen -source=history_port.go -destination=../../mocks/mock_history_port.go -package=mocks

// HistoryPort defines the interface for persisting and reading a user's
// QR generation history
type HistoryPort interface {
	// SaveGeneration records a generation for the owning user.
	SaveGeneration(ctx context.Context, generation *domain.QRGeneration) error

	// ListGenerations returns a page of the user's generations, newest first.
	ListGenerations(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.QRGeneration, error)

	// DeleteGeneration removes one generation owned by the user. Deleting an
	// absent or foreign row is not an error.
	DeleteGeneration(ctx context.Context, userID, generationID uuid.UUID) error
}
