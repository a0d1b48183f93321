package domain

import (
	"time"

	"github.com/google/uuid"
)

// QRGeneration is one persisted history entry: a QR code generated by a
// signed-in user, together with best-effort page metadata.
type QRGeneration struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	Title       *string   `json:"title"`
	ImageURL    *string   `json:"image_url"`
	GeneratedAt time.Time `json:"generated_at"`
	UserID      uuid.UUID `json:"user_id"`
}

// PageMetadata is the best-effort title/preview-image pair extracted from a
// fetched page. Nil fields mean "not found"; extraction never fails hard.
type PageMetadata struct {
	Title    *string `json:"title"`
	ImageURL *string `json:"image_url"`
}

// EmptyPageMetadata returns metadata with both fields absent. Used when the
// fetched resource is not HTML and is therefore not inspected.
func EmptyPageMetadata() *PageMetadata {
	return &PageMetadata{}
}

// QRCode is the rendered result of one generation request.
type QRCode struct {
	URL      string
	PNG      []byte
	Filename string
}

// QRFilename builds the download filename for a generation performed at ts,
// e.g. "qr-code-2026-08-30T12-04-05Z.png". Colons and dots in the RFC 3339
// timestamp are replaced so the name is safe on every filesystem.
func QRFilename(ts time.Time) string {
	stamp := ts.UTC().Format(time.RFC3339)
	safe := make([]byte, 0, len(stamp))
	for i := 0; i < len(stamp); i++ {
		switch stamp[i] {
		case ':', '.':
			safe = append(safe, '-')
		default:
			safe = append(safe, stamp[i])
		}
	}
	return "qr-code-" + string(safe) + ".png"
}
