package handlers

import (
	"net/http"

	request "resto_pos/internal/adapter/http/dto/request"
	response "resto_pos/internal/adapter/http/dto/response"
	"resto_pos/internal/domain/entities"
	"resto_pos/internal/usecase"
	"resto_pos/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBusinessPayload = pkg.NewDomainErrorSimple("INVALID_BUSINESS_INPUT", "Invalid business payload", http.StatusBadRequest)

// BusinessHandler handles the singleton business configuration. PUT replaces
// the whole record; clients wanting a partial change must read-modify-write.
type BusinessHandler struct {
	usecase usecase.IBusinessConfigUseCase
}

func NewBusinessHandler(uc usecase.IBusinessConfigUseCase) *BusinessHandler {
	return &BusinessHandler{usecase: uc}
}

func (h *BusinessHandler) GetBusinessInfo(c *gin.Context) {
	info := h.usecase.Get(c.Request.Context())
	c.JSON(http.StatusOK, response.FromBusinessInfo(info))
}

func (h *BusinessHandler) SetBusinessInfo(c *gin.Context) {
	var payload request.BusinessInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBusinessPayload.HTTPStatus, errInvalidBusinessPayload.ToHTTPError())
		return
	}

	info := entities.BusinessInfo{
		Name:    payload.Name,
		RUC:     payload.RUC,
		Address: payload.Address,
		City:    payload.City,
	}
	if err := h.usecase.Set(c.Request.Context(), info); err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBusinessInfo(info))
}
