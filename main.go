// File: vayuhu/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stripe/stripe-go/v76"

	"vayuhu/backend"
	"vayuhu/config"
	"vayuhu/cron"
	"vayuhu/handlers"
	"vayuhu/middleware"
	"vayuhu/models"
	"vayuhu/routes"
	bookingsvc "vayuhu/services/booking"
	"vayuhu/services/catalog"
	"vayuhu/tasks"
	"vayuhu/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitDraftCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("plancategory", models.PlanCategoryValidator); err != nil {
			logger.Sugar().Fatalf("main: failed to register plan validator: %v", err)
		}
	}

	// Remote collaborators.
	backendClient := backend.NewClient(logger)
	gateway := backend.NewStripeGateway(logger)
	mailer := tasks.NewQueueMailer()
	defer mailer.Close()

	// Services.
	catalogService := &catalog.DefaultCatalogService{
		Inventory: backendClient,
	}

	draftTTL := time.Duration(config.AppConfig.DraftTTLMinutes) * time.Minute
	draftStore := bookingsvc.NewRedisDraftStore(utils.GetDraftCacheClient(), draftTTL)

	wizardService := &bookingsvc.DefaultWizardService{
		Store:        draftStore,
		Catalog:      catalogService,
		Availability: backendClient,
		Bookings:     backendClient,
		Coupons:      backendClient,
		Mail:         mailer,
		Policy: bookingsvc.Policy{
			Window: bookingsvc.Window{
				OpenHour:  config.AppConfig.OpenHour,
				CloseHour: config.AppConfig.CloseHour,
			},
			AllowPastStart:       config.AppConfig.AllowPastStart,
			FallbackCouponCode:   config.AppConfig.FallbackCouponCode,
			FallbackCouponAmount: float64(config.AppConfig.FallbackCouponAmount),
		},
	}

	checkoutService := &bookingsvc.DefaultCheckoutService{
		Payments: gateway,
		Bookings: backendClient,
		Mail:     mailer,
	}

	// Background email dispatch.
	cron.InitEmailWorker(backendClient)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(catalogService, wizardService, checkoutService)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
