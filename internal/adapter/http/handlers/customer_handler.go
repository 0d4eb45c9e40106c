package handlers

import (
	"net/http"
	"strconv"

	request "resto_pos/internal/adapter/http/dto/request"
	response "resto_pos/internal/adapter/http/dto/response"
	"resto_pos/internal/domain/entities"
	"resto_pos/internal/usecase"
	"resto_pos/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)

// CustomerHandler handles HTTP requests for the customer registry.
//
// The required name/doc check lives in the request binding: the store does
// not re-validate, so this handler is the integrity gate.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers := h.usecase.List(c.Request.Context())
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.Doc, payload.Phone, payload.Address, payload.Notes)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}

	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	customer := entities.Customer{
		ID:      id,
		Name:    payload.Name,
		Doc:     payload.Doc,
		Phone:   payload.Phone,
		Address: payload.Address,
		Notes:   payload.Notes,
	}
	updated, matched, err := h.usecase.Update(c.Request.Context(), customer)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !matched {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(updated))
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}

	if _, err := h.usecase.Remove(c.Request.Context(), id); err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}
