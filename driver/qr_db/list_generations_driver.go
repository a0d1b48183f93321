package qr_db

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"safeqr/domain"
	"safeqr/utils/logger"
)

// ListGenerations returns one page of the user's history, newest first. The
// id tiebreak keeps ordering stable when two rows share a timestamp.
func (r *QRDBRepository) ListGenerations(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.QRGeneration, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}
	if limit <= 0 {
		return []domain.QRGeneration{}, nil
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, url, title, image_url, generated_at, user_id
		FROM qr_generations
		WHERE user_id = $1
		ORDER BY generated_at DESC, id DESC
		OFFSET $2
		LIMIT $3
	`

	rows, err := r.pool.Query(ctx, query, userID, offset, limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching generations", "error", err, "user_id", userID)
		return nil, errors.New("error fetching generations")
	}
	defer rows.Close()

	generations := []domain.QRGeneration{}
	for rows.Next() {
		var generation domain.QRGeneration

		err := rows.Scan(
			&generation.ID,
			&generation.URL,
			&generation.Title,
			&generation.ImageURL,
			&generation.GeneratedAt,
			&generation.UserID,
		)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning generation", "error", err)
			return nil, errors.New("error scanning generations")
		}

		generations = append(generations, generation)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "error iterating generation rows", "error", err)
		return nil, errors.New("error processing generations")
	}

	logger.Logger.InfoContext(ctx, "fetched generations", "count", len(generations), "user_id", userID)
	return generations, nil
}
