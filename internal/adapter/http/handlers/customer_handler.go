package handlers

import (
	"errors"
	"net/http"
	request "phone_repair/internal/adapter/http/dto/request"
	response "phone_repair/internal/adapter/http/dto/response"
	"phone_repair/internal/usecase"
	"phone_repair/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)
)

// CustomerHandler handles HTTP requests for the customer registry.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
	logger  *zap.Logger
}

func NewCustomerHandler(uc usecase.ICustomerUseCase, logger *zap.Logger) *CustomerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerHandler{usecase: uc, logger: logger}
}

// RegisterCustomer godoc
// @Summary      Register a customer
// @Description  Stores a customer. The name is trimmed and upper-cased; Portuguese keys are accepted as aliases.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customer  body      request.CustomerRequest  true  "Customer"
// @Success      201       {object}  response.CustomerCreatedResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      500       {object}  pkg.HTTPError
// @Router       /customers [post]
func (h *CustomerHandler) RegisterCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Register(c.Request.Context(), payload.ToEntity())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.CustomerCreatedResponse{
		Message:  "Customer registered successfully",
		Customer: response.FromCustomer(customer),
	})
}

// ListCustomers godoc
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Success      200  {array}   response.CustomerResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

// GetCustomer godoc
// @Summary      Find a customer by name
// @Description  Case and whitespace are ignored when comparing names.
// @Tags         customers
// @Produce      json
// @Param        name  path      string  true  "Customer name"
// @Success      200   {object}  response.CustomerResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /customers/{name} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.FindByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// DeleteCustomer godoc
// @Summary      Delete customers by name
// @Description  Removes every customer whose name matches, ignoring case and whitespace.
// @Tags         customers
// @Produce      json
// @Param        name  path      string  true  "Customer name"
// @Success      200   {object}  response.MessageResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /customers/{name} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.usecase.DeleteByName(c.Request.Context(), c.Param("name")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Customer deleted successfully"})
}

func (h *CustomerHandler) respondError(c *gin.Context, err error) {
	appErr := mapCustomerError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("customer request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerName):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER_NAME", "Customer name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
