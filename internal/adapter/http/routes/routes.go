package routes

import (
	"context"
	"os"

	_ "resto_pos/docs" // This will be auto-generated
	"resto_pos/internal/adapter/http/handlers"
	repository2 "resto_pos/internal/adapter/persistence/repository"
	"resto_pos/internal/infrastructure/database"
	"resto_pos/internal/infrastructure/printing"
	"resto_pos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	logrus.WithField("port", port).Info("starting POS api")
	if err := router.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("failed to startup the application")
	}
}

func getRoutes() {
	ctx := context.Background()

	ddb := database.ConnectDynamoDB()
	snapshots := repository2.NewSnapshotDynamoRepository(ddb)

	// Stores load their slot once here; afterwards every mutation rewrites
	// the full snapshot, so in-memory state is the source of truth.
	catalogUseCase, err := usecase.NewCatalogUseCase(ctx, snapshots)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load menu catalog")
	}
	customerUseCase, err := usecase.NewCustomerUseCase(ctx, snapshots)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load customer registry")
	}
	businessUseCase, err := usecase.NewBusinessConfigUseCase(ctx, snapshots)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load business config")
	}

	printer := printing.NewTextPrinter(nil)
	numbering := usecase.NewStaticDocumentNumbering()
	receiptUseCase := usecase.NewReceiptUseCase(catalogUseCase, customerUseCase, businessUseCase, printer, numbering)

	menuHandler := handlers.NewMenuHandler(catalogUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	businessHandler := handlers.NewBusinessHandler(businessUseCase)
	receiptHandler := handlers.NewReceiptHandler(receiptUseCase)
	exportHandler := handlers.NewExportHandler(businessUseCase, customerUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPosRoutes(v1, menuHandler, customerHandler, businessHandler, receiptHandler, exportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithField("panic", recovered).Error("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
