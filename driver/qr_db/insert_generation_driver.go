package qr_db

import (
	"context"
	"errors"

	"safeqr/domain"
	"safeqr/utils/logger"
)

// InsertGeneration stores one history row. Title and image URL stay nullable;
// metadata extraction is best effort and absence is meaningful.
func (r *QRDBRepository) InsertGeneration(ctx context.Context, generation *domain.QRGeneration) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}
	if generation == nil {
		return errors.New("generation is required")
	}

	query := `
		INSERT INTO qr_generations (id, url, title, image_url, generated_at, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		generation.ID,
		generation.URL,
		generation.Title,
		generation.ImageURL,
		generation.GeneratedAt,
		generation.UserID,
	)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error inserting generation", "error", err, "generation_id", generation.ID)
		return errors.New("error inserting generation")
	}

	logger.Logger.InfoContext(ctx, "inserted generation", "generation_id", generation.ID, "user_id", generation.UserID)
	return nil
}
