package routes

import (
	"phone_repair/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers        = "/customers"
	PathQuotes           = "/quotes"
	PathNextRecordNumber = "/next-record-number"
)

func addCustomerRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.RegisterCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:name", customerHandler.GetCustomer)
		customers.DELETE("/:name", customerHandler.DeleteCustomer)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, recordNumberHandler *handlers.RecordNumberHandler) {
	rg.GET(PathNextRecordNumber, recordNumberHandler.NextRecordNumber)

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:record_number", quoteHandler.GetQuote)
	}
}
