package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vayuhu/handlers"
	"vayuhu/middleware"
)

// RegisterCatalogRoutes registers the public workspace catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/offerings", hb.GetOfferingsHandler)
		api.GET("/occupancy", hb.GetOccupancyHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.Use(middleware.SessionAuthMiddleware())
		booking.POST("/draft", hb.StartDraftHandler)
		booking.PUT("/draft/:draftID/unit", hb.SelectUnitHandler)
		booking.PUT("/draft/:draftID/datetime", hb.SubmitDateTimeHandler)
		booking.PUT("/draft/:draftID/recurrence", hb.ConfirmRecurrenceHandler)
		booking.GET("/draft/:draftID/review", hb.ReviewHandler)
		booking.POST("/draft/:draftID/coupon", hb.ApplyCouponHandler)
		booking.POST("/draft/:draftID/back", hb.BackHandler)
		booking.POST("/draft/:draftID/complete", hb.CompleteHandler)
		booking.DELETE("/draft/:draftID", hb.CancelHandler)
	}
}

// RegisterCheckoutRoutes sets up the cart checkout endpoints.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	checkout := r.Group("/api/checkout")
	{
		checkout.Use(middleware.SessionAuthMiddleware())
		checkout.POST("/order", hb.CreateOrderHandler)
		checkout.POST("/verify", hb.VerifyCheckoutHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Vayuhu"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
}
