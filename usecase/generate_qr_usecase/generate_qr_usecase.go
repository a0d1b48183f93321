package generate_qr_usecase

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"safeqr/domain"
	"safeqr/port/history_port"
	"safeqr/port/metadata_port"
	"safeqr/utils"
	"safeqr/utils/errors"
	"safeqr/utils/logger"
	"safeqr/utils/metrics"
)

// saveTimeout bounds the background metadata+insert work kicked off after a
// signed-in generation.
const saveTimeout = 15 * time.Second

// GenerateQRUsecaseInterface defines the interface for QR generation
type GenerateQRUsecaseInterface interface {
	Execute(ctx context.Context, rawURL string) (*domain.QRCode, error)
}

// GenerateQRUsecase renders QR codes and, for signed-in users, records the
// generation in history. Rendering never waits on metadata or the database:
// the page fetch and insert run in the background after the PNG is returned.
type GenerateQRUsecase struct {
	metadataPort metadata_port.MetadataPort
	historyPort  history_port.HistoryPort
	imageSize    int
	now          func() time.Time
}

// NewGenerateQRUsecase creates a new GenerateQRUsecase
func NewGenerateQRUsecase(metadataPort metadata_port.MetadataPort, historyPort history_port.HistoryPort, imageSize int) *GenerateQRUsecase {
	return &GenerateQRUsecase{
		metadataPort: metadataPort,
		historyPort:  historyPort,
		imageSize:    imageSize,
		now:          time.Now,
	}
}

// Execute renders a QR code for rawURL. The PNG always encodes the
// normalized URL, so a code scanned later opens exactly what history shows.
func (u *GenerateQRUsecase) Execute(ctx context.Context, rawURL string) (*domain.QRCode, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	normalized, ok := utils.NormalizeURL(rawURL)
	if !ok {
		return nil, errors.NewValidationContextError(
			"invalid URL",
			"usecase",
			"GenerateQRUsecase",
			"normalize_url",
			map[string]interface{}{
				"raw_url": rawURL,
			},
		)
	}

	png, err := qrcode.Encode(normalized, qrcode.Medium, u.imageSize)
	if err != nil {
		return nil, errors.NewUnknownContextError(
			"failed to render QR code",
			"usecase",
			"GenerateQRUsecase",
			"encode_qr",
			err,
			map[string]interface{}{
				"url": normalized,
			},
		)
	}

	generatedAt := u.now()
	code := &domain.QRCode{
		URL:      normalized,
		PNG:      png,
		Filename: domain.QRFilename(generatedAt),
	}

	metrics.RecordQRGenerated()

	if user := domain.UserFromContextOrNil(ctx); user != nil {
		u.saveInBackground(normalized, generatedAt, user.UserID)
	}

	return code, nil
}

// saveInBackground records the generation without blocking the response. It
// runs on a detached context so finishing the HTTP request does not cancel
// the insert; failures are logged and swallowed.
func (u *GenerateQRUsecase) saveInBackground(normalizedURL string, generatedAt time.Time, userID uuid.UUID) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		generation := &domain.QRGeneration{
			ID:          uuid.New(),
			URL:         normalizedURL,
			GeneratedAt: generatedAt,
			UserID:      userID,
		}

		if pageURL, err := url.Parse(normalizedURL); err == nil {
			if metadata, err := u.metadataPort.FetchMetadata(ctx, pageURL); err == nil {
				generation.Title = metadata.Title
				generation.ImageURL = metadata.ImageURL
			} else {
				logger.SafeWarnContext(ctx, "metadata fetch for history failed",
					"url", normalizedURL, "error", err)
			}
		}

		if err := u.historyPort.SaveGeneration(ctx, generation); err != nil {
			logger.SafeErrorContext(ctx, "history insert failed",
				"url", normalizedURL, "user_id", userID.String(), "error", err)
		}
	}()
}
