package routes

import (
	"ofair/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests      = "/requests"
	PathQuotes        = "/quotes"
	PathNotifications = "/notifications"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	requestHandler *handlers.RequestHandler,
	quoteHandler *handlers.QuoteHandler,
	notificationHandler *handlers.NotificationHandler,
) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", requestHandler.Create)
		requests.GET("", requestHandler.List)
		requests.GET("/:request_id", requestHandler.GetByID)
		requests.DELETE("/:request_id", requestHandler.Delete)
		requests.GET("/:request_id/quotes", quoteHandler.ListByRequest)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/:quote_id/accept", quoteHandler.Accept)
		quotes.POST("/:quote_id/reject", quoteHandler.Reject)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.List)
		notifications.PATCH("/:notification_id/read", notificationHandler.MarkRead)
		notifications.DELETE("/:notification_id", notificationHandler.Delete)
	}
}
