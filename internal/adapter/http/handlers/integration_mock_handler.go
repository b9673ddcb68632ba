package handlers

import (
	"log"
	"net/http"

	"quotedesk/pkg"

	"github.com/gin-gonic/gin"
)

// Mock ERP/CRM collaborator endpoints. They hold no business logic: the ERP
// order endpoint is the default target of the order gateway so the whole
// approve-and-mirror flow can run against a single local process.

func CreateERPOrderMock(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[erp][mock] order received payload=%v", payload)

	c.JSON(http.StatusOK, gin.H{
		"message": "Order received by ERP mock!",
		"data":    payload,
	})
}

func ListERPOrdersMock(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"orders": []gin.H{
			{"id": 1, "customer": "Customer 1", "total": 1000, "status": "Approved"},
			{"id": 2, "customer": "Customer 2", "total": 500, "status": "Pending Review"},
		},
	})
}

func CreateCRMCustomerMock(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[crm][mock] customer received payload=%v", payload)

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer received by CRM mock!",
		"data":    payload,
	})
}

func ListCRMCustomersMock(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"customers": []gin.H{
			{"id": 1, "name": "Customer 1", "email": "customer1@gmail.com"},
			{"id": 2, "name": "Customer 2", "email": "customer2@gmail.com"},
		},
	})
}
