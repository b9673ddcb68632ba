package routes

import (
	"net/http"

	"quotedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

// Mock collaborator endpoints; kept outside the identity middleware so the
// order gateway can reach them without credentials.
func addIntegrationMockRoutes(rg *gin.RouterGroup) {
	erp := rg.Group("/erp")
	{
		erp.POST("/orders", handlers.CreateERPOrderMock)
		erp.GET("/orders", handlers.ListERPOrdersMock)
	}

	crm := rg.Group("/crm")
	{
		crm.POST("/customers", handlers.CreateCRMCustomerMock)
		crm.GET("/customers", handlers.ListCRMCustomersMock)
	}
}
