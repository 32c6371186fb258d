package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carhive/config"
	"carhive/database"
	bookingRepoPkg "carhive/database/repository/booking"
	listingRepoPkg "carhive/database/repository/listing"
	userRepoPkg "carhive/database/repository/user"
	"carhive/handlers"
	"carhive/middleware"
	"carhive/routes"
	bookingSvc "carhive/services/booking"
	"carhive/services/geocode"
	listingSvc "carhive/services/listing"
	userSvc "carhive/services/user"
	"carhive/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	storageService, err := utils.Cloudinary()
	if err != nil {
		// Image upload is a convenience path; listings accept any imageUrl.
		logger.Sugar().Warnf("main: cloudinary unavailable, image upload disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.New(routes.CORSConfig()))
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	listingRepo := listingRepoPkg.NewMongoListingRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &userSvc.DefaultUserService{
		Repo: userRepo,
	}
	listingService := &listingSvc.DefaultListingService{
		Repo:     listingRepo,
		UserRepo: userRepo,
		Geocoder: geocode.NewGoogleGeocoder(),
	}
	bookingService := &bookingSvc.DefaultBookingService{
		Repo:        bookingRepo,
		ListingRepo: listingRepo,
	}

	hb := handlers.NewHandlerBundle(userService, listingService, bookingService, storageService)

	routes.RegisterHealthRoute(router)
	routes.RegisterAuthRoutes(router, hb)
	routes.RegisterListingRoutes(router, hb)
	routes.RegisterBookingRoutes(router, hb)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("main: mongo disconnect: %v", err)
	}
}
