package rest

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"safeqr/usecase/delete_history_usecase"
	"safeqr/usecase/fetch_history_usecase"
)

func registerHistoryRoutes(v1 *echo.Group, listUsecase fetch_history_usecase.FetchHistoryUsecaseInterface, deleteUsecase delete_history_usecase.DeleteHistoryUsecaseInterface) {
	v1.GET("/history", handleListHistory(listUsecase))
	v1.DELETE("/history/:id", handleDeleteHistory(deleteUsecase))
}

func handleListHistory(usecase fetch_history_usecase.FetchHistoryUsecaseInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		offset := 0
		if raw := c.QueryParam("offset"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return handleValidationError(c, "offset must be an integer", "offset", raw)
			}
			offset = parsed
		}

		limit := 0
		if raw := c.QueryParam("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return handleValidationError(c, "limit must be an integer", "limit", raw)
			}
			limit = parsed
		}

		page, err := usecase.Execute(c.Request().Context(), offset, limit)
		if err != nil {
			return handleError(c, err, "list_history")
		}

		return c.JSON(http.StatusOK, page)
	}
}

func handleDeleteHistory(usecase delete_history_usecase.DeleteHistoryUsecaseInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		generationID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "id must be a uuid", "id", c.Param("id"))
		}

		if err := usecase.Execute(c.Request().Context(), generationID); err != nil {
			return handleError(c, err, "delete_history")
		}

		return c.NoContent(http.StatusNoContent)
	}
}
