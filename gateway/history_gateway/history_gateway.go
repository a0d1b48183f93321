package history_gateway

import (
	"context"

	"github.com/google/uuid"

	"safeqr/domain"
	"safeqr/driver/qr_db"
	"safeqr/utils/errors"
	"safeqr/utils/metrics"
)

// HistoryGateway implements the HistoryPort interface over the qr_db driver
type HistoryGateway struct {
	repo *qr_db.QRDBRepository
}

// NewHistoryGateway creates a new gateway instance
func NewHistoryGateway(pool qr_db.DB) *HistoryGateway {
	return &HistoryGateway{
		repo: qr_db.NewQRDBRepository(pool),
	}
}

// SaveGeneration records a generation for the owning user
func (g *HistoryGateway) SaveGeneration(ctx context.Context, generation *domain.QRGeneration) error {
	if generation == nil {
		return errors.NewValidationContextError(
			"generation is required",
			"gateway",
			"HistoryGateway",
			"save_generation",
			nil,
		)
	}

	if err := g.repo.InsertGeneration(ctx, generation); err != nil {
		metrics.RecordHistoryOperation("insert", "error")
		return errors.NewDatabaseContextError(
			"failed to save generation",
			"gateway",
			"HistoryGateway",
			"save_generation",
			err,
			map[string]interface{}{"generation_id": generation.ID.String()},
		)
	}

	metrics.RecordHistoryOperation("insert", "success")
	return nil
}

// ListGenerations returns a page of the user's generations, newest first
func (g *HistoryGateway) ListGenerations(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.QRGeneration, error) {
	generations, err := g.repo.ListGenerations(ctx, userID, offset, limit)
	if err != nil {
		metrics.RecordHistoryOperation("list", "error")
		return nil, errors.NewDatabaseContextError(
			"failed to list generations",
			"gateway",
			"HistoryGateway",
			"list_generations",
			err,
			map[string]interface{}{"user_id": userID.String()},
		)
	}

	metrics.RecordHistoryOperation("list", "success")
	return generations, nil
}

// DeleteGeneration removes one generation owned by the user
func (g *HistoryGateway) DeleteGeneration(ctx context.Context, userID, generationID uuid.UUID) error {
	if err := g.repo.DeleteGeneration(ctx, userID, generationID); err != nil {
		metrics.RecordHistoryOperation("delete", "error")
		return errors.NewDatabaseContextError(
			"failed to delete generation",
			"gateway",
			"HistoryGateway",
			"delete_generation",
			err,
			map[string]interface{}{"generation_id": generationID.String()},
		)
	}

	metrics.RecordHistoryOperation("delete", "success")
	return nil
}
