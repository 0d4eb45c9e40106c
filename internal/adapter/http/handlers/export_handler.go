package handlers

import (
	"fmt"
	"net/http"
	"time"

	response "resto_pos/internal/adapter/http/dto/response"
	"resto_pos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ExportHandler serves the downloadable JSON backups. There is no import
// counterpart: restoring a backup needs its own schema-validation and
// merge-policy design, which does not exist yet.
type ExportHandler struct {
	business  usecase.IBusinessConfigUseCase
	customers usecase.ICustomerUseCase
	now       func() time.Time
}

func NewExportHandler(business usecase.IBusinessConfigUseCase, customers usecase.ICustomerUseCase) *ExportHandler {
	return &ExportHandler{business: business, customers: customers, now: time.Now}
}

// ExportBackup downloads the business record as a dated backup file.
func (h *ExportHandler) ExportBackup(c *gin.Context) {
	now := h.now().UTC()
	filename := fmt.Sprintf("backup_restaurante_%s.json", now.Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename=`+filename)

	c.IndentedJSON(http.StatusOK, gin.H{
		"businessInfo": response.FromBusinessInfo(h.business.Get(c.Request.Context())),
		"exportDate":   now.Format(time.RFC3339),
	})
}

// ExportCustomers downloads the full customer registry.
func (h *ExportHandler) ExportCustomers(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename=clientes_restaurante.json`)
	c.IndentedJSON(http.StatusOK, response.FromCustomers(h.customers.List(c.Request.Context())))
}
