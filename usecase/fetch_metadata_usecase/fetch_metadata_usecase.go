package fetch_metadata_usecase

import (
	"context"
	"net/url"

	"safeqr/domain"
	"safeqr/port/metadata_port"
	"safeqr/port/rate_limiter_port"
	"safeqr/utils"
	"safeqr/utils/errors"
)

// FetchMetadataUsecaseInterface defines the interface for metadata fetching
type FetchMetadataUsecaseInterface interface {
	Execute(ctx context.Context, rawURL, clientKey string) (*domain.PageMetadata, error)
}

// FetchMetadataUsecase orchestrates metadata fetching: per-client rate
// limiting, URL normalization, then the outbound fetch.
type FetchMetadataUsecase struct {
	metadataPort metadata_port.MetadataPort
	rateLimiter  rate_limiter_port.RateLimiterPort
}

// NewFetchMetadataUsecase creates a new FetchMetadataUsecase
func NewFetchMetadataUsecase(metadataPort metadata_port.MetadataPort, rateLimiter rate_limiter_port.RateLimiterPort) *FetchMetadataUsecase {
	return &FetchMetadataUsecase{
		metadataPort: metadataPort,
		rateLimiter:  rateLimiter,
	}
}

// Execute fetches page metadata for rawURL on behalf of the client
// identified by clientKey
func (u *FetchMetadataUsecase) Execute(ctx context.Context, rawURL, clientKey string) (*domain.PageMetadata, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	allowed, retryAfter, err := u.rateLimiter.Allow(ctx, clientKey)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.NewRateLimitContextError(
			"too many metadata requests",
			"usecase",
			"FetchMetadataUsecase",
			"rate_limit",
			nil,
			map[string]interface{}{
				"retry_after": retryAfter,
			},
		)
	}

	normalized, ok := utils.NormalizeURL(rawURL)
	if !ok {
		return nil, errors.NewValidationContextError(
			"invalid URL",
			"usecase",
			"FetchMetadataUsecase",
			"normalize_url",
			map[string]interface{}{
				"raw_url": rawURL,
			},
		)
	}

	pageURL, err := url.Parse(normalized)
	if err != nil {
		return nil, errors.NewValidationContextError(
			"invalid URL",
			"usecase",
			"FetchMetadataUsecase",
			"parse_url",
			map[string]interface{}{
				"raw_url": rawURL,
			},
		)
	}

	metadata, err := u.metadataPort.FetchMetadata(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	return metadata, nil
}
