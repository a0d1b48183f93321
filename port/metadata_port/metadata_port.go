package metadata_port

import (
	"context"
	"net/url"

	"safeqr/domain"
)

//go:generate mockgen -source=metadata_port.go -destination=../../mocks/mock_metadata_port.go -package=mocks

// MetadataPort defines the interface for fetching page metadata from
// external sites
type MetadataPort interface {
	// FetchMetadata retrieves the title and preview image for the given page.
	// Pages that turn out to be non-HTML yield empty metadata, not an error.
	FetchMetadata(ctx context.Context, pageURL *url.URL) (*domain.PageMetadata, error)
}
