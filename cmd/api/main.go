package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"confportal/internal/config"
	"confportal/internal/database"
	"confportal/internal/middleware"
	"confportal/internal/modules/abstract"
	"confportal/internal/modules/announcement"
	"confportal/internal/modules/auth"
	"confportal/internal/modules/event"
	"confportal/internal/modules/payment"
	"confportal/internal/modules/profile"
	"confportal/internal/modules/registration"
	jwtsvc "confportal/internal/pkg/jwt"
	"confportal/internal/pkg/razorpay"
	"confportal/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	abstractRepo := repository.NewAbstractRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	gateway := razorpay.NewClient(cfg.RazorpayBaseURL, cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	gateway.HTTPClient.Timeout = cfg.GatewayTimeout

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	profileHandler := profile.NewHandler(userRepo)
	eventHandler := event.NewHandler(event.NewService(eventRepo))
	registrationHandler := registration.NewHandler(registration.NewService(registrationRepo, eventRepo))
	abstractHandler := abstract.NewHandler(abstract.NewService(abstractRepo))

	paymentService := payment.NewService(
		registrationRepo,
		paymentRepo,
		gateway,
		cfg.RazorpayKeyID,
		cfg.GatewayCurrency,
		cfg.GatewayTimeout,
		log.Printf,
	)
	paymentHandler := payment.NewHandler(paymentService)

	hub := announcement.NewHub()
	announcementHandler := announcement.NewHandler(announcement.NewService(announcementRepo, hub), hub)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		eventHandler.RegisterRoutes(v1)
		announcementHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			profileHandler.RegisterRoutes(protected)
			registrationHandler.RegisterRoutes(protected)
			abstractHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)

			admin := protected.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				announcementHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("listening on %s (env=%s)", cfg.ListenAddr, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	hub.Close()
	if err := database.Close(db); err != nil {
		log.Printf("database close: %v", err)
	}
}
