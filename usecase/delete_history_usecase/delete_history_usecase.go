package delete_history_usecase

import (
	"context"

	"github.com/google/uuid"

	"safeqr/domain"
	"safeqr/port/history_port"
	"safeqr/utils/errors"
)

// DeleteHistoryUsecaseInterface defines the interface for history deletion
type DeleteHistoryUsecaseInterface interface {
	Execute(ctx context.Context, generationID uuid.UUID) error
}

// DeleteHistoryUsecase removes one entry from the authenticated user's
// history. Ownership is enforced by the store, so a user can never delete
// another user's rows, and deleting an already-gone row succeeds.
type DeleteHistoryUsecase struct {
	historyPort history_port.HistoryPort
}

// NewDeleteHistoryUsecase creates a new DeleteHistoryUsecase
func NewDeleteHistoryUsecase(historyPort history_port.HistoryPort) *DeleteHistoryUsecase {
	return &DeleteHistoryUsecase{
		historyPort: historyPort,
	}
}

// Execute deletes the generation owned by the current user
func (u *DeleteHistoryUsecase) Execute(ctx context.Context, generationID uuid.UUID) error {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return errors.NewAuthContextError(
			"authentication required",
			"usecase",
			"DeleteHistoryUsecase",
			"get_user",
			err,
			nil,
		)
	}

	if generationID == uuid.Nil {
		return errors.NewValidationContextError(
			"generation id is required",
			"usecase",
			"DeleteHistoryUsecase",
			"validate_id",
			nil,
		)
	}

	return u.historyPort.DeleteGeneration(ctx, user.UserID, generationID)
}
