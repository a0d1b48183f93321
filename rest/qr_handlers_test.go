package rest

import (
	"bytes"
	"context"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safeqr/domain"
	"safeqr/utils/errors"
)

type stubQRUsecase struct {
	code *domain.QRCode
	err  error

	gotURL string
}

func (s *stubQRUsecase) Execute(ctx context.Context, rawURL string) (*domain.QRCode, error) {
	s.gotURL = rawURL
	if s.err != nil {
		return nil, s.err
	}
	return s.code, nil
}

func qrRequest(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/qr", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandleGenerateQR_Success(t *testing.T) {
	pngBytes, err := qrcode.Encode("https://example.com/", qrcode.Medium, 240)
	require.NoError(t, err)

	stub := &stubQRUsecase{code: &domain.QRCode{
		URL:      "https://example.com/",
		PNG:      pngBytes,
		Filename: "qr-code-2026-08-30T12-04-05Z.png",
	}}

	c, rec := qrRequest(`{"url":"example.com"}`)
	require.NoError(t, handleGenerateQR(stub)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "example.com", stub.gotURL)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t,
		"attachment; filename=qr-code-2026-08-30T12-04-05Z.png",
		rec.Header().Get(echo.HeaderContentDisposition))

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 240, img.Bounds().Dx())
}

func TestHandleGenerateQR_MissingURL(t *testing.T) {
	stub := &stubQRUsecase{}

	c, rec := qrRequest(`{}`)
	require.NoError(t, handleGenerateQR(stub)(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), errors.CodeValidation)
	assert.Empty(t, stub.gotURL)
}

func TestHandleGenerateQR_MalformedBody(t *testing.T) {
	stub := &stubQRUsecase{}

	c, rec := qrRequest(`{"url":`)
	require.NoError(t, handleGenerateQR(stub)(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGenerateQR_RejectedURL(t *testing.T) {
	stub := &stubQRUsecase{
		err: errors.NewValidationContextError(
			"invalid URL", "usecase", "GenerateQRUsecase", "normalize_url",
			map[string]interface{}{"raw_url": "ftp://example.com"}),
	}

	c, rec := qrRequest(`{"url":"ftp://example.com"}`)
	require.NoError(t, handleGenerateQR(stub)(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), errors.CodeValidation)
}
