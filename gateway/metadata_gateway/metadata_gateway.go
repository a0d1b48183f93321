package metadata_gateway

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"safeqr/domain"
	"safeqr/port/rate_limiter_port"
	"safeqr/utils/errors"
	"safeqr/utils/html_parser"
	"safeqr/utils/logger"
	"safeqr/utils/metrics"
)

// MetadataGateway implements the MetadataPort interface. It is the only
// component that talks to arbitrary external sites, so fetches are bounded on
// every axis: per-host pacing, a hard timeout, and a response size cap.
type MetadataGateway struct {
	httpClient     *http.Client
	throttle       rate_limiter_port.HostThrottlePort
	userAgent      string
	maxContentSize int64
	fetchTimeout   time.Duration

	// Concurrent requests for the same page share one outbound fetch.
	group singleflight.Group
}

// NewMetadataGateway creates a new MetadataGateway
func NewMetadataGateway(httpClient *http.Client, throttle rate_limiter_port.HostThrottlePort, userAgent string, maxContentSize int64, fetchTimeout time.Duration) *MetadataGateway {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &MetadataGateway{
		httpClient:     httpClient,
		throttle:       throttle,
		userAgent:      userAgent,
		maxContentSize: maxContentSize,
		fetchTimeout:   fetchTimeout,
	}
}

// FetchMetadata retrieves the title and preview image for the given page.
// Non-HTML resources yield empty metadata rather than an error, so a QR code
// pointing at a PDF still renders without history noise.
func (g *MetadataGateway) FetchMetadata(ctx context.Context, pageURL *url.URL) (*domain.PageMetadata, error) {
	if pageURL == nil {
		return nil, errors.NewValidationContextError(
			"page URL is required",
			"gateway",
			"MetadataGateway",
			"fetch_metadata",
			nil,
		)
	}

	start := time.Now()
	result, err, shared := g.group.Do(pageURL.String(), func() (interface{}, error) {
		return g.fetch(ctx, pageURL)
	})
	if err != nil {
		metrics.RecordMetadataFetch("error", time.Since(start).Seconds())
		return nil, err
	}

	if shared {
		logger.SafeInfoContext(ctx, "metadata fetch deduplicated", "url", pageURL.String())
	}
	metrics.RecordMetadataFetch("success", time.Since(start).Seconds())
	return result.(*domain.PageMetadata), nil
}

func (g *MetadataGateway) fetch(ctx context.Context, pageURL *url.URL) (*domain.PageMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, g.fetchTimeout)
	defer cancel()

	if err := g.throttle.WaitForURL(ctx, pageURL.String()); err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, g.timeoutError(pageURL, "host_throttle", err)
		}
		return nil, errors.NewExternalAPIContextError(
			"host throttle wait failed",
			"gateway",
			"MetadataGateway",
			"host_throttle",
			err,
			map[string]interface{}{"url": pageURL.String()},
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return nil, errors.NewValidationContextError(
			fmt.Sprintf("invalid page URL: %v", err),
			"gateway",
			"MetadataGateway",
			"create_request",
			map[string]interface{}{"url": pageURL.String()},
		)
	}

	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "context deadline exceeded") {
			return nil, g.timeoutError(pageURL, "http_request", err)
		}
		return nil, errors.NewExternalAPIContextError(
			"page fetch failed",
			"gateway",
			"MetadataGateway",
			"http_request",
			err,
			map[string]interface{}{"url": pageURL.String()},
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewExternalAPIContextError(
			fmt.Sprintf("page responded with status %d", resp.StatusCode),
			"gateway",
			"MetadataGateway",
			"http_response",
			fmt.Errorf("status code: %d", resp.StatusCode),
			map[string]interface{}{
				"url":         pageURL.String(),
				"status_code": resp.StatusCode,
			},
		)
	}

	if !isHTMLContentType(resp.Header.Get("Content-Type")) {
		logger.SafeInfoContext(ctx, "page is not HTML, skipping extraction",
			"url", pageURL.String(),
			"content_type", resp.Header.Get("Content-Type"))
		return domain.EmptyPageMetadata(), nil
	}

	if contentLengthHeader := resp.Header.Get("Content-Length"); contentLengthHeader != "" {
		if contentLength, parseErr := strconv.ParseInt(contentLengthHeader, 10, 64); parseErr == nil && contentLength > g.maxContentSize {
			return nil, errors.NewValidationContextError(
				"page content too large",
				"gateway",
				"MetadataGateway",
				"validate_size",
				map[string]interface{}{
					"url":            pageURL.String(),
					"content_length": contentLength,
					"max_size":       g.maxContentSize,
				},
			)
		}
	}

	// +1 to detect bodies that exceed the cap without a Content-Length header
	body, err := io.ReadAll(io.LimitReader(resp.Body, g.maxContentSize+1))
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, g.timeoutError(pageURL, "read_response", err)
		}
		return nil, errors.NewExternalAPIContextError(
			"failed to read page body",
			"gateway",
			"MetadataGateway",
			"read_response",
			err,
			map[string]interface{}{"url": pageURL.String()},
		)
	}

	if int64(len(body)) > g.maxContentSize {
		return nil, errors.NewValidationContextError(
			"page content too large",
			"gateway",
			"MetadataGateway",
			"validate_actual_size",
			map[string]interface{}{
				"url":      pageURL.String(),
				"max_size": g.maxContentSize,
			},
		)
	}

	// Redirects may have moved the page; relative images resolve against
	// where the body actually came from.
	base := pageURL
	if resp.Request != nil && resp.Request.URL != nil {
		base = resp.Request.URL
	}

	meta := html_parser.ExtractPageMeta(string(body), base)

	result := &domain.PageMetadata{}
	if meta.Title != "" {
		result.Title = &meta.Title
	}
	if meta.ImageURL != "" {
		result.ImageURL = &meta.ImageURL
	}
	return result, nil
}

func (g *MetadataGateway) timeoutError(pageURL *url.URL, operation string, cause error) *errors.AppContextError {
	return errors.NewTimeoutContextError(
		"page fetch timed out",
		"gateway",
		"MetadataGateway",
		operation,
		cause,
		map[string]interface{}{
			"url":     pageURL.String(),
			"timeout": g.fetchTimeout.String(),
		},
	)
}

// isHTMLContentType accepts the content types worth parsing for metadata.
// An absent header is treated as HTML, matching how browsers sniff pages.
func isHTMLContentType(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
