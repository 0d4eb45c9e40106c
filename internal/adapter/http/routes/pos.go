package routes

import (
	"resto_pos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMenu      = "/menu"
	PathCustomers = "/customers"
	PathBusiness  = "/business"
	PathReceipt   = "/receipt"
	PathExport    = "/export"
)

func addPosRoutes(
	rg *gin.RouterGroup,
	menuHandler *handlers.MenuHandler,
	customerHandler *handlers.CustomerHandler,
	businessHandler *handlers.BusinessHandler,
	receiptHandler *handlers.ReceiptHandler,
	exportHandler *handlers.ExportHandler,
) {
	menu := rg.Group(PathMenu)
	{
		menu.GET("", menuHandler.GetMenu)
		menu.GET("/items", menuHandler.ListItems)
		menu.POST("/items", menuHandler.CreateItem)
		menu.PUT("/items/:id", menuHandler.UpdateItem)
		menu.DELETE("/items/:id", menuHandler.DeleteItem)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.GET("", customerHandler.ListCustomers)
		customers.POST("", customerHandler.CreateCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
	}

	business := rg.Group(PathBusiness)
	{
		business.GET("", businessHandler.GetBusinessInfo)
		business.PUT("", businessHandler.SetBusinessInfo)
	}

	receipt := rg.Group(PathReceipt)
	{
		receipt.GET("", receiptHandler.GetReceipt)
		receipt.PATCH("", receiptHandler.PatchMetadata)
		receipt.DELETE("", receiptHandler.ResetReceipt)
		receipt.POST("/items", receiptHandler.AddManualItem)
		receipt.DELETE("/items/:id", receiptHandler.RemoveItem)
		receipt.POST("/menu-items", receiptHandler.SelectMenuItem)
		receipt.PATCH("/menu-items/:id/quantity", receiptHandler.AdjustPendingQuantity)
		receipt.POST("/print", receiptHandler.PrintReceipt)
	}

	export := rg.Group(PathExport)
	{
		export.GET("/backup", exportHandler.ExportBackup)
		export.GET("/customers", exportHandler.ExportCustomers)
	}
}
