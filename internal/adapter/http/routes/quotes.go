package routes

import (
	"quotedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
	PathLogs   = "/logs"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.POST("/:id/attachment", quoteHandler.UploadAttachment)
		quotes.POST("/:id/status", quoteHandler.SetStatus)
	}
}

func addLogRoutes(rg *gin.RouterGroup, logHandler *handlers.IntegrationLogHandler) {
	logs := rg.Group(PathLogs)
	{
		logs.GET("", logHandler.ListLogs)
		logs.GET("/by-quote", logHandler.ListLogsByQuote)
		logs.GET("/by-action", logHandler.ListLogsByAction)
	}
}
