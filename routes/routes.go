package routes

import (
	"time"

	"bookingschedule/handlers"
	"bookingschedule/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the credential endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/authenticate", hb.AuthenticateHandler)
		api.GET("/verify", hb.VerifyTokenHandler)
	}
}

// RegisterScheduleRoutes registers the availability endpoint.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.MerchantAuthMiddleware(hb.AuthService, hb.TokenHeader))
		api.GET("/delivery", hb.GetDeliveryScheduleHandler)
	}
}

// RegisterBookingRoutes registers booking CRUD and search.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.MerchantAuthMiddleware(hb.AuthService, hb.TokenHeader))
		bookingGroup.POST("", hb.CreateBookingHandler)
		bookingGroup.GET("", hb.SearchBookingsHandler)
		bookingGroup.GET("/:id", hb.GetBookingHandler)
		bookingGroup.PATCH("/:id", hb.UpdateBookingHandler)
		bookingGroup.PUT("/:id", hb.UpdateBookingHandler)
		bookingGroup.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthCheckHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", hb.TokenHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
