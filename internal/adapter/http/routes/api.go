package routes

import (
	"ocorrencias_logistica/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOccurrences = "/occurrences"
	PathExpedicao   = "/expedicao"
	PathStock       = "/stock"
)

func addOccurrenceRoutes(rg *gin.RouterGroup, h *handlers.OccurrenceHandler, deleteGate gin.HandlerFunc) {
	occurrences := rg.Group(PathOccurrences)
	{
		occurrences.GET("", h.List)
		occurrences.POST("", h.Create)
		occurrences.GET("/tipos", h.Types)
		occurrences.GET("/:id", h.Get)
		occurrences.PUT("/:id", h.Update)
		occurrences.DELETE("/:id", deleteGate, h.Delete)
		occurrences.PUT("/:id/retirada", h.RegisterRetirada)
	}
}

func addExpedicaoRoutes(rg *gin.RouterGroup, h *handlers.ExpedicaoHandler) {
	expedicao := rg.Group(PathExpedicao)
	{
		expedicao.GET("", h.List)
		expedicao.POST("", h.Create)
		expedicao.POST("/romaneio", h.Romaneio)
		// PATCH moves to AGUARDANDO; PUT carries the driver and moves to EXPEDIDO.
		expedicao.PATCH("/:id", h.MarkAguardando)
		expedicao.PUT("/:id", h.Dispatch)
	}
}

func addStockRoutes(rg *gin.RouterGroup, h *handlers.StockHandler) {
	stock := rg.Group(PathStock)
	{
		stock.GET("", h.Search)
		stock.GET("/summary", h.Summary)
	}
}
