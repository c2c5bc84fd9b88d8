package main

import (
	"log"
	"net/http"

	_ "lendcircle/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"lendcircle/internal/auth"
	"lendcircle/internal/cache"
	"lendcircle/internal/config"
	"lendcircle/internal/db"
	"lendcircle/internal/handler"
	"lendcircle/internal/model"
	"lendcircle/internal/repository"
	"lendcircle/internal/router"
	"lendcircle/internal/service"
)

// @title LendCircle API
// @version 1.0
// @description Peer-to-peer microloan marketplace: borrowers publish loan profiles, lenders fund them through an append-only transaction ledger.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.LoanProfile{},
		&model.Transaction{},
		&model.LoanUpdate{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewLoanProfileRepository(gormDB)
	txnRepo := repository.NewTransactionRepository(gormDB)
	updateRepo := repository.NewLoanUpdateRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	profileService := service.NewLoanProfileService(profileRepo, txnRepo, userRepo)
	ledgerService := service.NewLedgerService(txnRepo, userRepo, profileRepo)
	updateService := service.NewLoanUpdateService(updateRepo, profileRepo)
	seedService := service.NewSeedService(userRepo, profileRepo, ledgerService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	profileHandler := handler.NewLoanProfileHandler(profileService)
	txnHandler := handler.NewTransactionHandler(ledgerService)
	updateHandler := handler.NewLoanUpdateHandler(updateService)
	seedHandler := handler.NewSeedHandler(seedService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		profileHandler,
		txnHandler,
		updateHandler,
		seedHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
