package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"safeqr/usecase/fetch_metadata_usecase"
)

func registerMetadataRoutes(v1 *echo.Group, usecase fetch_metadata_usecase.FetchMetadataUsecaseInterface) {
	v1.GET("/metadata", handleGetMetadata(usecase))
}

func handleGetMetadata(usecase fetch_metadata_usecase.FetchMetadataUsecaseInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawURL := strings.TrimSpace(c.QueryParam("url"))
		if rawURL == "" {
			return handleValidationError(c, "url parameter is required", "url", rawURL)
		}

		metadata, err := usecase.Execute(c.Request().Context(), rawURL, c.RealIP())
		if err != nil {
			return handleError(c, err, "get_metadata")
		}

		return c.JSON(http.StatusOK, metadata)
	}
}
