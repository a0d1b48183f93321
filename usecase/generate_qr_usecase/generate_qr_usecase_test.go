package generate_qr_usecase

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"safeqr/domain"
	"safeqr/mocks"
	"safeqr/utils/errors"
)

func authedContext(userID uuid.UUID) context.Context {
	return domain.SetUserContext(context.Background(), &domain.UserContext{
		UserID:    userID,
		Email:     "user@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	})
}

func strPtr(s string) *string {
	return &s
}

func TestGenerateQRUsecase_Execute_AnonymousRendersWithoutHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No port expectations: anonymous generations never touch metadata or
	// history.
	metadataPort := mocks.NewMockMetadataPort(ctrl)
	historyPort := mocks.NewMockHistoryPort(ctrl)

	usecase := NewGenerateQRUsecase(metadataPort, historyPort, 240)
	code, err := usecase.Execute(context.Background(), "example.com")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/", code.URL)
	require.NotEmpty(t, code.PNG)

	img, err := png.Decode(bytes.NewReader(code.PNG))
	require.NoError(t, err, "payload should be a decodable PNG")
	assert.Equal(t, 240, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
}

func TestGenerateQRUsecase_Execute_FilenameFromGenerationTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := NewGenerateQRUsecase(mocks.NewMockMetadataPort(ctrl), mocks.NewMockHistoryPort(ctrl), 240)
	usecase.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 4, 5, 0, time.UTC)
	}

	code, err := usecase.Execute(context.Background(), "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, "qr-code-2026-08-30T12-04-05Z.png", code.Filename)
}

func TestGenerateQRUsecase_Execute_InvalidURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := NewGenerateQRUsecase(mocks.NewMockMetadataPort(ctrl), mocks.NewMockHistoryPort(ctrl), 240)
	code, err := usecase.Execute(context.Background(), "ftp://example.com/")

	assert.Nil(t, code)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppContextError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeValidation, appErr.Code)
}

func TestGenerateQRUsecase_Execute_SignedInSavesHistoryInBackground(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	metadataPort := mocks.NewMockMetadataPort(ctrl)
	historyPort := mocks.NewMockHistoryPort(ctrl)

	metadataPort.EXPECT().
		FetchMetadata(gomock.Any(), gomock.Any()).
		Return(&domain.PageMetadata{Title: strPtr("Example Domain")}, nil)

	saved := make(chan *domain.QRGeneration, 1)
	historyPort.EXPECT().
		SaveGeneration(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, generation *domain.QRGeneration) error {
			saved <- generation
			return nil
		})

	usecase := NewGenerateQRUsecase(metadataPort, historyPort, 240)
	code, err := usecase.Execute(authedContext(userID), "example.com")
	require.NoError(t, err)
	require.NotEmpty(t, code.PNG)

	select {
	case generation := <-saved:
		assert.Equal(t, "https://example.com/", generation.URL)
		assert.Equal(t, userID, generation.UserID)
		require.NotNil(t, generation.Title)
		assert.Equal(t, "Example Domain", *generation.Title)
		assert.NotEqual(t, uuid.Nil, generation.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("background history insert never ran")
	}
}

func TestGenerateQRUsecase_Execute_MetadataFailureStillSavesHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	metadataPort := mocks.NewMockMetadataPort(ctrl)
	historyPort := mocks.NewMockHistoryPort(ctrl)

	metadataPort.EXPECT().
		FetchMetadata(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("site unreachable"))

	saved := make(chan *domain.QRGeneration, 1)
	historyPort.EXPECT().
		SaveGeneration(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, generation *domain.QRGeneration) error {
			saved <- generation
			return nil
		})

	usecase := NewGenerateQRUsecase(metadataPort, historyPort, 240)
	_, err := usecase.Execute(authedContext(userID), "https://example.com/")
	require.NoError(t, err)

	select {
	case generation := <-saved:
		assert.Nil(t, generation.Title, "failed metadata fetch leaves fields empty")
		assert.Nil(t, generation.ImageURL)
	case <-time.After(2 * time.Second):
		t.Fatal("background history insert never ran")
	}
}

func TestGenerateQRUsecase_Execute_HistoryFailureDoesNotSurface(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metadataPort := mocks.NewMockMetadataPort(ctrl)
	historyPort := mocks.NewMockHistoryPort(ctrl)

	metadataPort.EXPECT().
		FetchMetadata(gomock.Any(), gomock.Any()).
		Return(domain.EmptyPageMetadata(), nil)

	done := make(chan struct{})
	historyPort.EXPECT().
		SaveGeneration(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.QRGeneration) error {
			close(done)
			return fmt.Errorf("database down")
		})

	usecase := NewGenerateQRUsecase(metadataPort, historyPort, 240)
	code, err := usecase.Execute(authedContext(uuid.New()), "https://example.com/")

	require.NoError(t, err, "history failures must not break generation")
	assert.NotEmpty(t, code.PNG)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("background history insert never ran")
	}
}
