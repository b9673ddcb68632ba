package routes

import (
	"log"
	"os"

	_ "quotedesk/docs" // generated swagger spec
	"quotedesk/internal/adapter/http/handlers"
	"quotedesk/internal/adapter/http/middleware"
	"quotedesk/internal/adapter/persistence/repository"
	"quotedesk/internal/adapter/storage"
	"quotedesk/internal/infrastructure/database"
	"quotedesk/internal/infrastructure/erp"
	storageinfra "quotedesk/internal/infrastructure/storage"
	"quotedesk/internal/usecase"
	"quotedesk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultERPOrdersURL = "http://localhost:8080/v1/erp/orders"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", "8080")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	s3Client := storageinfra.ConnectS3()

	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	logRepo := repository.NewIntegrationLogDynamoRepository(ddb)
	documentStore := storage.NewS3DocumentStore(s3Client)

	var orderGateway interfaces.IOrderGateway
	gateway, err := erp.NewHTTPOrderGateway(getenvDefault("ERP_ORDERS_URL", defaultERPOrdersURL))
	if err != nil {
		log.Printf("ERP order gateway not configured: %v", err)
	} else {
		orderGateway = gateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, logRepo, documentStore, orderGateway)
	logUseCase := usecase.NewIntegrationLogUseCase(logRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	logHandler := handlers.NewIntegrationLogHandler(logUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addIntegrationMockRoutes(v1)

	// Workflow routes require an authenticated caller.
	secured := v1.Group("", middleware.RequireIdentity([]byte(os.Getenv("JWT_SECRET"))))
	addQuoteRoutes(secured, quoteHandler)
	addLogRoutes(secured, logHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
