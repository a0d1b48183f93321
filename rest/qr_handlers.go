package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"safeqr/usecase/generate_qr_usecase"
)

type generateQRRequest struct {
	URL string `json:"url"`
}

func registerQRRoutes(v1 *echo.Group, usecase generate_qr_usecase.GenerateQRUsecaseInterface) {
	v1.POST("/qr", handleGenerateQR(usecase))
}

func handleGenerateQR(usecase generate_qr_usecase.GenerateQRUsecaseInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req generateQRRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body", nil)
		}
		if req.URL == "" {
			return handleValidationError(c, "url is required", "url", req.URL)
		}

		code, err := usecase.Execute(c.Request().Context(), req.URL)
		if err != nil {
			return handleError(c, err, "generate_qr")
		}

		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=`+code.Filename)
		return c.Blob(http.StatusOK, "image/png", code.PNG)
	}
}
