package handlers

import (
	"errors"
	"net/http"
	request "phone_repair/internal/adapter/http/dto/request"
	response "phone_repair/internal/adapter/http/dto/response"
	"phone_repair/internal/usecase"
	"phone_repair/pkg"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for the quote ledger.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	logger  *zap.Logger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, logger *zap.Logger) *QuoteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteHandler{usecase: uc, logger: logger}
}

// CreateQuote godoc
// @Summary      Create a quote
// @Description  Stores the quote and books its amount in the cash ledger under the record number.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quote  body      request.QuoteRequest  true  "Quote"
// @Success      201    {object}  response.QuoteCreatedResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	recordNumber, err := payload.ResolveRecordNumber()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(recordNumber))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.QuoteCreatedResponse{
		Message: "Quote created successfully",
		Quote:   response.FromQuote(quote),
	})
}

// ListQuotes godoc
// @Summary      List quotes
// @Description  Newest record number first.
// @Tags         quotes
// @Produce      json
// @Success      200  {array}   response.QuoteResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// GetQuote godoc
// @Summary      Get a quote by record number
// @Tags         quotes
// @Produce      json
// @Param        record_number  path      int  true  "Record number"
// @Success      200            {object}  response.QuoteResponse
// @Failure      404            {object}  pkg.HTTPError
// @Router       /quotes/{record_number} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	// A path that is not a number can never name a stored quote.
	recordNumber, err := strconv.ParseInt(c.Param("record_number"), 10, 64)
	if err != nil {
		h.respondError(c, usecase.ErrQuoteNotFound)
		return
	}

	quote, err := h.usecase.GetByRecordNumber(c.Request.Context(), recordNumber)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) respondError(c *gin.Context, err error) {
	appErr := mapQuoteError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("quote request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecordNumber):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid record number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteAlreadyExists):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_EXISTS", "A quote with this record number already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
