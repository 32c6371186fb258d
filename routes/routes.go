package routes

import (
	"net/http"
	"time"

	"carhive/handlers"
	"carhive/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the identity endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.SignUpHandler)
		api.POST("/signin", hb.SignInHandler)

		api.Use(middleware.AuthMiddleware())
		api.POST("/signout", hb.SignOutHandler)
	}
}

// RegisterListingRoutes registers listing reads, owner-only writes, and the
// renter city search.
func RegisterListingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/listings")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/:id", hb.GetListingHandler)

		owner := api.Group("")
		owner.Use(middleware.OwnerOnlyMiddleware())
		owner.POST("", hb.CreateListingHandler)
		owner.GET("/mine/all", hb.MyListingsHandler)
		owner.POST("/image", hb.UploadListingImageHandler)
	}

	search := r.Group("/api/search")
	search.Use(middleware.AuthMiddleware())
	search.GET("", hb.SearchHandler)
}

// RegisterBookingRoutes registers the reservation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.AuthMiddleware())
	{
		api.POST("", hb.CreateBookingHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
		api.GET("/mine", hb.MyBookingsHandler)

		owner := api.Group("")
		owner.Use(middleware.OwnerOnlyMiddleware())
		owner.GET("/managed", hb.ManagedBookingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm CarHive"})
	})
}

// CORSConfig is the router-wide CORS policy.
func CORSConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}
