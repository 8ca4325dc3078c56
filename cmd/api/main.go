package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Fenrir-OwO/hmsproject/internal/config"
	"github.com/Fenrir-OwO/hmsproject/internal/database"
	"github.com/Fenrir-OwO/hmsproject/internal/middleware"
	"github.com/Fenrir-OwO/hmsproject/internal/modules/auth"
	"github.com/Fenrir-OwO/hmsproject/internal/modules/booking"
	"github.com/Fenrir-OwO/hmsproject/internal/modules/catalog"
	"github.com/Fenrir-OwO/hmsproject/internal/modules/dashboard"
	"github.com/Fenrir-OwO/hmsproject/internal/modules/inventory"
	"github.com/Fenrir-OwO/hmsproject/internal/modules/order"
	"github.com/Fenrir-OwO/hmsproject/internal/modules/payment"
	"github.com/Fenrir-OwO/hmsproject/internal/modules/staff"
	jwtsvc "github.com/Fenrir-OwO/hmsproject/internal/pkg/jwt"
	"github.com/Fenrir-OwO/hmsproject/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogger(cfg.AppEnv)

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	personRepo := repository.NewPersonRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(personRepo, jwtService))
	catalogHandler := catalog.NewHandler(catalog.NewService(roomRepo, foodRepo, serviceRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, roomRepo))
	orderHandler := order.NewHandler(order.NewService(orderRepo, foodRepo, serviceRepo))
	paymentHandler := payment.NewHandler(payment.NewService(orderRepo, paymentRepo))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(bookingRepo, orderRepo, inventoryRepo))
	inventoryHandler := inventory.NewHandler(inventory.NewService(inventoryRepo))
	staffHandler := staff.NewHandler(staff.NewService(personRepo, employeeRepo))

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(), middleware.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	authHandler.RegisterPublicRoutes(v1)
	catalogHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.Auth(jwtService))
	authHandler.RegisterProtectedRoutes(protected)
	bookingHandler.RegisterProtectedRoutes(protected)
	orderHandler.RegisterProtectedRoutes(protected)
	paymentHandler.RegisterProtectedRoutes(protected)
	dashboardHandler.RegisterProtectedRoutes(protected)

	staffOnly := protected.Group("")
	staffOnly.Use(middleware.RequireStaff())
	inventoryHandler.RegisterStaffRoutes(staffOnly)
	staffHandler.RegisterStaffRoutes(staffOnly)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}

func setupLogger(appEnv string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if appEnv == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
