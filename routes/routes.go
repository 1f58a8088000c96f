package routes

import (
	"time"

	"localpro/handlers"
	"localpro/middleware"
	"localpro/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterProviderRoutes registers public provider endpoints and the
// provider's own profile endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.GET("/search", hb.SearchProvidersHandler)
		api.GET("/:id", hb.GetProviderHandler)
		api.GET("/:id/reviews", hb.ListProviderReviewsHandler)

		me := api.Group("/me")
		me.Use(middleware.JWTAuthMiddleware(hb.JWTSecret), middleware.RequireRole(models.RoleProvider))
		me.PUT("/avatar", hb.UpdateAvatarHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints of the booking ledger.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware(hb.JWTSecret))
		bookingGroup.POST("", middleware.RequireRole(models.RoleSeeker), hb.CreateBookingHandler)
		bookingGroup.GET("/mine", hb.ListMyBookingsHandler)
		bookingGroup.GET("/provider", middleware.RequireRole(models.RoleProvider), hb.ListProviderBookingsHandler)
		bookingGroup.GET("/:id", hb.GetBookingHandler)
		bookingGroup.PATCH("/:id/status", middleware.RequireRole(models.RoleProvider), hb.UpdateBookingStatusHandler)
	}
}

// RegisterReviewRoutes sets up review authoring endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	reviewGroup := r.Group("/api/reviews")
	{
		reviewGroup.Use(middleware.JWTAuthMiddleware(hb.JWTSecret))
		reviewGroup.POST("", hb.CreateReviewHandler)
		reviewGroup.PUT("/:id", hb.UpdateReviewHandler)
		reviewGroup.DELETE("/:id", hb.DeleteReviewHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.JWTSecret), middleware.RequireRole(models.RoleAdmin))
		adminGroup.PATCH("/reviews/:id/approve", hb.ApproveReviewHandler)
		adminGroup.PATCH("/reviews/:id/reject", hb.RejectReviewHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and CORS.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
