package handlers

import (
	"net/http"
	response "phone_repair/internal/adapter/http/dto/response"
	"phone_repair/internal/usecase"
	"phone_repair/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RecordNumberHandler struct {
	usecase usecase.IRecordNumberUseCase
	logger  *zap.Logger
}

func NewRecordNumberHandler(uc usecase.IRecordNumberUseCase, logger *zap.Logger) *RecordNumberHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordNumberHandler{usecase: uc, logger: logger}
}

// NextRecordNumber godoc
// @Summary      Reserve the next record number
// @Description  Every call consumes a number, even when no quote is created with it.
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  response.RecordNumberResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /next-record-number [get]
func (h *RecordNumberHandler) NextRecordNumber(c *gin.Context) {
	n, err := h.usecase.Next(c.Request.Context())
	if err != nil {
		h.logger.Error("record number reservation failed", zap.Error(err))
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.RecordNumberResponse{RecordNumber: n})
}
