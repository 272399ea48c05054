package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"boba-pos/config"
	"boba-pos/controllers"
	"boba-pos/middlewares"
	"boba-pos/routes"
	"boba-pos/seeders"
	"boba-pos/services"
	"boba-pos/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	logger, err := config.NewLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.ConnectDatabase(cfg.DB)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	if err := seeders.Seed(db, logger); err != nil {
		logger.Fatal("failed to seed database", zap.Error(err))
	}

	loc := utils.ShopLocation(cfg.BusinessDayOffsetHours)

	orderService := services.NewOrderService(db, logger)
	rewardService := services.NewRewardService(db)
	reportService := services.NewReportService(db, logger, loc)
	authService := services.NewAuthService(db, cfg.JWT)
	catalogService := services.NewCatalogService(db)

	h := routes.Handlers{
		Auth:    controllers.NewAuthController(authService, logger),
		Menu:    controllers.NewMenuController(catalogService, logger),
		Orders:  controllers.NewOrderController(orderService, logger),
		Rewards: controllers.NewRewardController(rewardService, logger),
		Reports: controllers.NewReportController(reportService, logger),
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(r, h, cfg.JWT.Secret)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker := services.NewAccrualWorker(db, logger, cfg.Accrual)
	go worker.Run(ctx)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
