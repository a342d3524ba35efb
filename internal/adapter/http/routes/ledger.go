package routes

import (
	"phone_repair/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCashLedger = "/cash-ledger"
	PathRevenue    = "/revenue"
)

func addLedgerRoutes(rg *gin.RouterGroup, cashLedgerHandler *handlers.CashLedgerHandler, revenueHandler *handlers.RevenueHandler) {
	cash := rg.Group(PathCashLedger)
	{
		cash.POST("", cashLedgerHandler.CreateCashEntry)
		cash.PUT("", cashLedgerHandler.UpdateCashEntry)
		cash.DELETE("", cashLedgerHandler.DeleteCashEntry)
		cash.GET("", cashLedgerHandler.ListCashEntries)
	}

	revenue := rg.Group(PathRevenue)
	{
		revenue.POST("", revenueHandler.RecordRevenue)
		revenue.GET("", revenueHandler.QueryRevenue)
	}
}
