package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "resto_pos/internal/adapter/http/dto/request"
	response "resto_pos/internal/adapter/http/dto/response"
	"resto_pos/internal/domain/entities"
	"resto_pos/internal/usecase"
	"resto_pos/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReceiptPayload = pkg.NewDomainErrorSimple("INVALID_RECEIPT_INPUT", "Invalid receipt payload", http.StatusBadRequest)

// ReceiptHandler drives the transient receipt builder. There is one working
// receipt per service instance; printing does not reset it (reprints stay
// possible), the client resets explicitly.
type ReceiptHandler struct {
	usecase usecase.IReceiptUseCase
}

func NewReceiptHandler(uc usecase.IReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{usecase: uc}
}

func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	snap, err := h.usecase.Current(c.Request.Context())
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReceipt(snap.Receipt, snap.Totals, snap.Pending))
}

// PatchMetadata applies only the fields present in the payload; line items
// are never touched here. Both enum fields are validated before anything is
// applied, so a rejected payload leaves the receipt untouched.
func (h *ReceiptHandler) PatchMetadata(c *gin.Context) {
	var payload request.ReceiptMetadataRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReceiptPayload.HTTPStatus, errInvalidReceiptPayload.ToHTTPError())
		return
	}

	if payload.Type != nil && !entities.ReceiptType(*payload.Type).Valid() {
		appErr := mapReceiptError(usecase.ErrInvalidReceiptType)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if payload.PaymentMethod != nil && !entities.PaymentMethod(*payload.PaymentMethod).Valid() {
		appErr := mapReceiptError(usecase.ErrInvalidPaymentMethod)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	if payload.Type != nil {
		if err := h.usecase.SetReceiptType(ctx, entities.ReceiptType(*payload.Type)); err != nil {
			appErr := mapReceiptError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}
	if payload.PaymentMethod != nil {
		if err := h.usecase.SetPaymentMethod(ctx, entities.PaymentMethod(*payload.PaymentMethod)); err != nil {
			appErr := mapReceiptError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}
	if payload.Cashier != nil {
		h.usecase.SetCashier(ctx, *payload.Cashier)
	}
	if payload.DeliveryPerson != nil {
		h.usecase.SetDeliveryPerson(ctx, *payload.DeliveryPerson)
	}
	if payload.RemoveCustomer {
		h.usecase.DetachCustomer(ctx)
	} else if payload.CustomerID != nil {
		h.usecase.AttachCustomer(ctx, *payload.CustomerID)
	}

	h.respondCurrent(c)
}

func (h *ReceiptHandler) AddManualItem(c *gin.Context) {
	var payload request.ManualItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReceiptPayload.HTTPStatus, errInvalidReceiptPayload.ToHTTPError())
		return
	}

	line, err := h.usecase.AddManualItem(c.Request.Context(), payload.Description, payload.Quantity, payload.Price)
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSaleItem(line))
}

// SelectMenuItem adds a catalog line. An unknown menu item id is the store's
// silent no-op, answered as 204 without a body.
func (h *ReceiptHandler) SelectMenuItem(c *gin.Context) {
	var payload request.SelectMenuItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReceiptPayload.HTTPStatus, errInvalidReceiptPayload.ToHTTPError())
		return
	}

	line, found := h.usecase.SelectFromCatalog(c.Request.Context(), payload.MenuItemID)
	if !found {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusCreated, response.FromSaleItem(line))
}

func (h *ReceiptHandler) AdjustPendingQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}

	var payload request.PendingQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReceiptPayload.HTTPStatus, errInvalidReceiptPayload.ToHTTPError())
		return
	}

	qty := h.usecase.AdjustPendingQuantity(c.Request.Context(), id, payload.Delta)
	c.JSON(http.StatusOK, gin.H{"menu_item_id": id, "quantity": qty})
}

func (h *ReceiptHandler) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}

	h.usecase.RemoveItem(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

func (h *ReceiptHandler) PrintReceipt(c *gin.Context) {
	doc, err := h.usecase.Print(c.Request.Context())
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPrintableReceipt(doc))
}

func (h *ReceiptHandler) ResetReceipt(c *gin.Context) {
	h.usecase.Reset(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (h *ReceiptHandler) respondCurrent(c *gin.Context) {
	snap, err := h.usecase.Current(c.Request.Context())
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReceipt(snap.Receipt, snap.Totals, snap.Pending))
}

func mapReceiptError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSaleDescription),
		errors.Is(err, usecase.ErrInvalidSaleQuantity),
		errors.Is(err, usecase.ErrInvalidSalePrice),
		errors.Is(err, usecase.ErrInvalidReceiptType),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidReceiptSeries):
		return pkg.NewDomainErrorSimple("INVALID_RECEIPT_INPUT", "Invalid receipt payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyReceipt):
		return pkg.NewDomainErrorSimple("EMPTY_RECEIPT", "Receipt has no items to print", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
