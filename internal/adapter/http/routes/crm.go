package routes

import (
	"salesdesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathOrders    = "/orders"
	PathDashboard = "/dashboard"
	PathEvents    = "/events"
)

func addCRMRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	orderHandler *handlers.OrderHandler,
	boardHandler *handlers.BoardHandler,
	dashboardHandler *handlers.DashboardHandler,
	eventsHandler *handlers.EventsHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/pipeline", quoteHandler.GetPipeline)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PUT("/:id", quoteHandler.SaveQuote)
		quotes.PATCH("/:id", quoteHandler.PatchQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		quotes.PATCH("/:id/stage", quoteHandler.ChangeStage)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/board", boardHandler.GetBoard)
		orders.POST("/board/move", boardHandler.MoveCard)
		orders.GET("/chart", orderHandler.GetChart)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id", orderHandler.SaveOrder)
		orders.PATCH("/:id", orderHandler.PatchOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
		orders.POST("/:id/payments", orderHandler.PayOrder)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/widgets", dashboardHandler.ListWidgets)
		dashboard.POST("/widgets/move", dashboardHandler.MoveWidget)
	}

	rg.GET(PathEvents, eventsHandler.Stream)
}
