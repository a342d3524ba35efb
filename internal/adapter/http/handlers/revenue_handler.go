package handlers

import (
	"errors"
	"io"
	"net/http"
	request "phone_repair/internal/adapter/http/dto/request"
	response "phone_repair/internal/adapter/http/dto/response"
	"phone_repair/internal/usecase"
	"phone_repair/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RevenueHandler handles HTTP requests for the daily revenue summary.
type RevenueHandler struct {
	usecase usecase.IRevenueUseCase
	logger  *zap.Logger
}

func NewRevenueHandler(uc usecase.IRevenueUseCase, logger *zap.Logger) *RevenueHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RevenueHandler{usecase: uc, logger: logger}
}

// RecordRevenue godoc
// @Summary      Record the revenue of a day
// @Description  Inserts or replaces the summary of the given date. Missing fields default to zero, total to profit minus expense and date to today.
// @Tags         revenue
// @Accept       json
// @Produce      json
// @Param        revenue  body      request.RevenueRequest  false  "Revenue"
// @Success      201      {object}  response.RevenueRecordedResponse
// @Failure      500      {object}  pkg.HTTPError
// @Router       /revenue [post]
func (h *RevenueHandler) RecordRevenue(c *gin.Context) {
	var payload request.RevenueRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		h.respondRecordError(c, err)
		return
	}

	revenue, err := h.usecase.Record(c.Request.Context(), payload.ToInput())
	if err != nil {
		h.respondRecordError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.RevenueRecorded("Revenue recorded successfully", revenue))
}

// QueryRevenue godoc
// @Summary      Query revenue by date
// @Tags         revenue
// @Produce      json
// @Param        date  query     string  true  "Date (YYYY-MM-DD)"
// @Success      200   {array}   response.RevenueResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /revenue [get]
func (h *RevenueHandler) QueryRevenue(c *gin.Context) {
	rows, err := h.usecase.Query(c.Request.Context(), c.Query("date"))
	if err != nil {
		appErr := mapRevenueError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("revenue query failed", zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRevenues(rows))
}

// respondRecordError reports every write failure as 500 with the raw cause.
func (h *RevenueHandler) respondRecordError(c *gin.Context, err error) {
	h.logger.Error("revenue write failed", zap.Error(err))
	appErr := pkg.NewDomainError("REVENUE_WRITE_FAILED", "Failed to record revenue", err, http.StatusInternalServerError)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithCause())
}

func mapRevenueError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRevenueDateRequired):
		return pkg.NewDomainErrorSimple("REVENUE_DATE_REQUIRED", "Query parameter date is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
