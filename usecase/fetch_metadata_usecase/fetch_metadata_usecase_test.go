package fetch_metadata_usecase

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"safeqr/domain"
	"safeqr/mocks"
	"safeqr/utils/errors"
)

func strPtr(s string) *string {
	return &s
}

func TestFetchMetadataUsecase_Execute(t *testing.T) {
	tests := []struct {
		name      string
		rawURL    string
		mockSetup func(metadata *mocks.MockMetadataPort, limiter *mocks.MockRateLimiterPort)
		want      *domain.PageMetadata
		wantErr   bool
		errCode   string
	}{
		{
			name:   "successful fetch with normalized URL",
			rawURL: "example.com",
			mockSetup: func(metadata *mocks.MockMetadataPort, limiter *mocks.MockRateLimiterPort) {
				limiter.EXPECT().Allow(gomock.Any(), "203.0.113.7").Return(true, 0, nil)

				expectedURL, _ := url.Parse("https://example.com/")
				metadata.EXPECT().
					FetchMetadata(gomock.Any(), expectedURL).
					Return(&domain.PageMetadata{
						Title:    strPtr("Example Domain"),
						ImageURL: strPtr("https://example.com/img.png"),
					}, nil)
			},
			want: &domain.PageMetadata{
				Title:    strPtr("Example Domain"),
				ImageURL: strPtr("https://example.com/img.png"),
			},
		},
		{
			name:   "rate limited client",
			rawURL: "https://example.com/",
			mockSetup: func(metadata *mocks.MockMetadataPort, limiter *mocks.MockRateLimiterPort) {
				limiter.EXPECT().Allow(gomock.Any(), "203.0.113.7").Return(false, 42, nil)
			},
			wantErr: true,
			errCode: errors.CodeRateLimit,
		},
		{
			name:   "invalid URL rejected before any fetch",
			rawURL: "ftp://example.com/file",
			mockSetup: func(metadata *mocks.MockMetadataPort, limiter *mocks.MockRateLimiterPort) {
				limiter.EXPECT().Allow(gomock.Any(), "203.0.113.7").Return(true, 0, nil)
			},
			wantErr: true,
			errCode: errors.CodeValidation,
		},
		{
			name:   "dotless host rejected",
			rawURL: "not a url",
			mockSetup: func(metadata *mocks.MockMetadataPort, limiter *mocks.MockRateLimiterPort) {
				limiter.EXPECT().Allow(gomock.Any(), "203.0.113.7").Return(true, 0, nil)
			},
			wantErr: true,
			errCode: errors.CodeValidation,
		},
		{
			name:   "port error propagated",
			rawURL: "https://example.com/",
			mockSetup: func(metadata *mocks.MockMetadataPort, limiter *mocks.MockRateLimiterPort) {
				limiter.EXPECT().Allow(gomock.Any(), "203.0.113.7").Return(true, 0, nil)

				expectedURL, _ := url.Parse("https://example.com/")
				metadata.EXPECT().
					FetchMetadata(gomock.Any(), expectedURL).
					Return(nil, errors.NewTimeoutContextError(
						"page fetch timed out", "gateway", "MetadataGateway", "http_request", nil, nil))
			},
			wantErr: true,
			errCode: errors.CodeTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			metadataPort := mocks.NewMockMetadataPort(ctrl)
			limiterPort := mocks.NewMockRateLimiterPort(ctrl)
			tt.mockSetup(metadataPort, limiterPort)

			usecase := NewFetchMetadataUsecase(metadataPort, limiterPort)
			got, err := usecase.Execute(context.Background(), tt.rawURL, "203.0.113.7")

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				appErr, ok := err.(*errors.AppContextError)
				require.True(t, ok, "expected AppContextError, got %T", err)
				assert.Equal(t, tt.errCode, appErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetchMetadataUsecase_Execute_RetryAfterInContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metadataPort := mocks.NewMockMetadataPort(ctrl)
	limiterPort := mocks.NewMockRateLimiterPort(ctrl)
	limiterPort.EXPECT().Allow(gomock.Any(), "client-1").Return(false, 17, nil)

	usecase := NewFetchMetadataUsecase(metadataPort, limiterPort)
	_, err := usecase.Execute(context.Background(), "https://example.com/", "client-1")

	require.Error(t, err)
	appErr, ok := err.(*errors.AppContextError)
	require.True(t, ok)
	assert.Equal(t, 17, appErr.Context["retry_after"])
}

func TestFetchMetadataUsecase_Execute_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metadataPort := mocks.NewMockMetadataPort(ctrl)
	limiterPort := mocks.NewMockRateLimiterPort(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	usecase := NewFetchMetadataUsecase(metadataPort, limiterPort)
	_, err := usecase.Execute(ctx, "https://example.com/", "client-1")

	assert.ErrorIs(t, err, context.Canceled)
}
