package qr_db

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"safeqr/utils/logger"
)

// DeleteGeneration removes one history row owned by the user. The user_id
// predicate makes foreign rows unreachable; deleting an absent row succeeds,
// so repeated deletes behave the same as the first.
func (r *QRDBRepository) DeleteGeneration(ctx context.Context, userID, generationID uuid.UUID) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	query := `
		DELETE FROM qr_generations
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query, generationID, userID)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error deleting generation", "error", err, "generation_id", generationID)
		return errors.New("error deleting generation")
	}

	logger.Logger.InfoContext(ctx, "deleted generation",
		"generation_id", generationID,
		"user_id", userID,
		"rows_affected", tag.RowsAffected())
	return nil
}
