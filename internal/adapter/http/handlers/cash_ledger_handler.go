package handlers

import (
	"errors"
	"net/http"
	request "phone_repair/internal/adapter/http/dto/request"
	response "phone_repair/internal/adapter/http/dto/response"
	"phone_repair/internal/usecase"
	"phone_repair/pkg"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errUnsupportedMediaType    = errors.New("unsupported media type")
	errInvalidCashEntryPayload = errors.New("invalid cash entry payload")
)

// CashLedgerHandler handles HTTP requests for the cash ledger. Every mutating
// call must carry a JSON content type.
type CashLedgerHandler struct {
	usecase usecase.ICashLedgerUseCase
	logger  *zap.Logger
}

func NewCashLedgerHandler(uc usecase.ICashLedgerUseCase, logger *zap.Logger) *CashLedgerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CashLedgerHandler{usecase: uc, logger: logger}
}

// CreateCashEntry godoc
// @Summary      Create a cash entry
// @Tags         cash-ledger
// @Accept       json
// @Produce      json
// @Param        entry  body      request.CashEntryRequest  true  "Cash entry"
// @Success      201    {object}  response.CashEntryResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Failure      415    {object}  pkg.HTTPError
// @Router       /cash-ledger [post]
func (h *CashLedgerHandler) CreateCashEntry(c *gin.Context) {
	payload, ok := h.bindJSON(c)
	if !ok {
		return
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		h.respondError(c, errInvalidCashEntryPayload)
		return
	}

	entry, err := h.usecase.Create(c.Request.Context(), payload.ResolveReceiptNumber(), amount, payload.ResolveDescription())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCashEntry(entry))
}

// UpdateCashEntry godoc
// @Summary      Update the amount of a cash entry
// @Description  Succeeds even when no entry has the receipt number.
// @Tags         cash-ledger
// @Accept       json
// @Produce      json
// @Param        entry  body      request.CashEntryRequest  true  "Receipt number and new amount"
// @Success      200    {object}  response.MessageResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      415    {object}  pkg.HTTPError
// @Router       /cash-ledger [put]
func (h *CashLedgerHandler) UpdateCashEntry(c *gin.Context) {
	payload, ok := h.bindJSON(c)
	if !ok {
		return
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		h.respondError(c, errInvalidCashEntryPayload)
		return
	}

	if err := h.usecase.Update(c.Request.Context(), payload.ResolveReceiptNumber(), amount); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Cash entry updated successfully"})
}

// DeleteCashEntry godoc
// @Summary      Delete a cash entry
// @Description  Succeeds even when no entry has the receipt number.
// @Tags         cash-ledger
// @Accept       json
// @Produce      json
// @Param        entry  body      request.CashEntryRequest  true  "Receipt number"
// @Success      200    {object}  response.MessageResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      415    {object}  pkg.HTTPError
// @Router       /cash-ledger [delete]
func (h *CashLedgerHandler) DeleteCashEntry(c *gin.Context) {
	payload, ok := h.bindJSON(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), payload.ResolveReceiptNumber()); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Cash entry deleted successfully"})
}

// ListCashEntries godoc
// @Summary      List cash entries
// @Tags         cash-ledger
// @Produce      json
// @Success      200  {array}   response.CashEntryResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /cash-ledger [get]
func (h *CashLedgerHandler) ListCashEntries(c *gin.Context) {
	entries, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCashEntries(entries))
}

func (h *CashLedgerHandler) bindJSON(c *gin.Context) (request.CashEntryRequest, bool) {
	var payload request.CashEntryRequest
	if !isJSONContentType(c.ContentType()) {
		h.respondError(c, errUnsupportedMediaType)
		return payload, false
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.respondError(c, errInvalidCashEntryPayload)
		return payload, false
	}
	return payload, true
}

func (h *CashLedgerHandler) respondError(c *gin.Context, err error) {
	appErr := mapCashLedgerError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("cash ledger request failed", zap.String("method", c.Request.Method), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// isJSONContentType accepts application/json and any application/*+json type.
func isJSONContentType(contentType string) bool {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if contentType == "application/json" {
		return true
	}
	return strings.HasPrefix(contentType, "application/") && strings.HasSuffix(contentType, "+json")
}

func mapCashLedgerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, errUnsupportedMediaType):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_MEDIA_TYPE", "Content-Type must be application/json", http.StatusUnsupportedMediaType)
	case errors.Is(err, errInvalidCashEntryPayload):
		return pkg.NewDomainErrorSimple("INVALID_CASH_ENTRY_INPUT", "Invalid cash entry payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidReceiptNumber):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Receipt number is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCashEntryAlreadyExists):
		return pkg.NewDomainErrorSimple("CASH_ENTRY_ALREADY_EXISTS", "A cash entry with this receipt number already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
