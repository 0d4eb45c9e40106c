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

var (
	errInvalidMenuItemPayload = pkg.NewDomainErrorSimple("INVALID_MENU_ITEM_INPUT", "Invalid menu item payload", http.StatusBadRequest)
	errInvalidID              = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)
)

// MenuHandler handles HTTP requests for the menu catalog.
type MenuHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewMenuHandler(uc usecase.ICatalogUseCase) *MenuHandler {
	return &MenuHandler{usecase: uc}
}

// GetMenu returns the catalog grouped by category, categories in first-seen
// order. This is the listing that drives the sales screen.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	groups := h.usecase.ListByCategory(c.Request.Context())
	c.JSON(http.StatusOK, response.FromMenuCategories(groups))
}

func (h *MenuHandler) ListItems(c *gin.Context) {
	items := h.usecase.List(c.Request.Context())
	c.JSON(http.StatusOK, response.FromMenuItems(items))
}

func (h *MenuHandler) CreateItem(c *gin.Context) {
	var payload request.MenuItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMenuItemPayload.HTTPStatus, errInvalidMenuItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.Category, payload.Price, payload.Description)
	if err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMenuItem(item))
}

// UpdateItem replaces the item with the path id. An unknown id is not an
// error: the store treats it as a no-op and the handler answers 204.
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}

	var payload request.MenuItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMenuItemPayload.HTTPStatus, errInvalidMenuItemPayload.ToHTTPError())
		return
	}

	item := entities.MenuItem{
		ID:          id,
		Name:        payload.Name,
		Category:    payload.Category,
		Price:       payload.Price,
		Description: payload.Description,
	}
	updated, matched, err := h.usecase.Update(c.Request.Context(), item)
	if err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !matched {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, response.FromMenuItem(updated))
}

func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}

	if _, err := h.usecase.Remove(c.Request.Context(), id); err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapMenuError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMenuItemName),
		errors.Is(err, usecase.ErrInvalidMenuItemCategory),
		errors.Is(err, usecase.ErrInvalidMenuItemPrice):
		return pkg.NewDomainErrorSimple("INVALID_MENU_ITEM_INPUT", "Invalid menu item payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
