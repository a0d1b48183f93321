package fetch_history_usecase

import (
	"context"

	"safeqr/domain"
	"safeqr/port/history_port"
	"safeqr/utils/errors"
)

// HistoryPage is one page of a user's generation history. HasMore is
// inferred from a full page; the final exactly-full page costs one extra
// empty request, which beats a COUNT(*) on every list.
type HistoryPage struct {
	Items   []domain.QRGeneration `json:"items"`
	Offset  int                   `json:"offset"`
	Limit   int                   `json:"limit"`
	HasMore bool                  `json:"has_more"`
}

// FetchHistoryUsecaseInterface defines the interface for history listing
type FetchHistoryUsecaseInterface interface {
	Execute(ctx context.Context, offset, limit int) (*HistoryPage, error)
}

// FetchHistoryUsecase lists the authenticated user's generation history
type FetchHistoryUsecase struct {
	historyPort  history_port.HistoryPort
	itemsPerPage int
}

// NewFetchHistoryUsecase creates a new FetchHistoryUsecase
func NewFetchHistoryUsecase(historyPort history_port.HistoryPort, itemsPerPage int) *FetchHistoryUsecase {
	return &FetchHistoryUsecase{
		historyPort:  historyPort,
		itemsPerPage: itemsPerPage,
	}
}

// Execute returns a window of the current user's history, newest first.
// Negative offsets read from the start; limits outside (0, itemsPerPage]
// clamp to itemsPerPage.
func (u *FetchHistoryUsecase) Execute(ctx context.Context, offset, limit int) (*HistoryPage, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, errors.NewAuthContextError(
			"authentication required",
			"usecase",
			"FetchHistoryUsecase",
			"get_user",
			err,
			nil,
		)
	}

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > u.itemsPerPage {
		limit = u.itemsPerPage
	}

	items, err := u.historyPort.ListGenerations(ctx, user.UserID, offset, limit)
	if err != nil {
		return nil, err
	}

	return &HistoryPage{
		Items:   items,
		Offset:  offset,
		Limit:   limit,
		HasMore: len(items) == limit,
	}, nil
}
