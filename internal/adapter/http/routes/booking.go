package routes

import (
	"skiphire/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBooking  = "/booking"
	PathSessions = "/sessions"
	PathQuotes   = "/quotes"
)

func addBookingRoutes(rg *gin.RouterGroup, sessionHandler *handlers.BookingSessionHandler, quoteHandler *handlers.QuoteHandler) {
	booking := rg.Group(PathBooking)
	{
		booking.GET("/steps", sessionHandler.GetSteps)
	}

	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.StartSession)
		sessions.GET("/:session_id", sessionHandler.GetSession)
		sessions.DELETE("/:session_id", sessionHandler.EndSession)
		sessions.POST("/:session_id/reload", sessionHandler.ReloadSession)
		sessions.PUT("/:session_id/selection", sessionHandler.SelectSkip)
		sessions.PUT("/:session_id/hover", sessionHandler.HoverSkip)

		sessions.POST("/:session_id/quote", quoteHandler.CreateQuote)
		sessions.GET("/:session_id/quotes", quoteHandler.ListSessionQuotes)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
	}
}
