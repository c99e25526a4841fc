package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "lendhub-backend/internal/adapter/http"
	"lendhub-backend/internal/adapter/middleware"
	"lendhub-backend/internal/adapter/repository/mysql"
	"lendhub-backend/internal/config"
	"lendhub-backend/internal/infrastructure/cache"
	"lendhub-backend/internal/infrastructure/db"
	applicationUC "lendhub-backend/internal/usecase/application"
	liquidationUC "lendhub-backend/internal/usecase/liquidation"
	repaymentUC "lendhub-backend/internal/usecase/repayment"
	"lendhub-backend/pkg/logger"
	"lendhub-backend/pkg/snowflake"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := db.RunMigrations(cfg.MySQLDSN(), cfg.MigrationsDir, zlog); err != nil {
		zlog.Fatal("migrations failed", zap.Error(err))
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), zlog)
	if err != nil {
		zlog.Fatal("mysql connect failed", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		zlog.Fatal("redis connect failed", zap.Error(err))
	}

	ids, err := snowflake.NewGenerator(cfg.WorkerID)
	if err != nil {
		zlog.Fatal("id generator init failed", zap.Error(err))
	}

	guow := mysql.NewGormUoW(gdb)
	appRepo := mysql.NewApplicationRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	curRepo := mysql.NewCurrencyRepository(gdb)

	appUC := applicationUC.NewUsecase(guow, appRepo, ids, zlog)
	repayUC := repaymentUC.NewUsecase(guow, loanRepo, ids)
	liqUC := liquidationUC.NewUsecase(guow, loanRepo, curRepo, ids)

	h := httpadp.NewHandler()
	appH := httpadp.NewApplicationHandler(appUC)
	loanH := httpadp.NewLoanHandler(repayUC, liqUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	idem := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, zlog)

	v1 := e.Group("/v1")
	v1.POST("/loan-applications", appH.Create, idem)
	v1.PATCH("/loan-applications/:application_id", appH.Modify, idem)
	v1.DELETE("/loan-applications/:application_id", appH.Cancel, idem)
	v1.GET("/loan-applications", appH.List)

	v1.POST("/loans/:loan_id/repayments", loanH.Repay, idem)
	v1.POST("/loans/:loan_id/early-repayments", loanH.RepayEarly, idem)
	v1.GET("/loans/:loan_id/amounts", loanH.Amounts)
	v1.GET("/loans/:loan_id/liquidation-estimate", loanH.EstimateLiquidation)
	v1.POST("/loans/:loan_id/liquidations", loanH.RequestLiquidation, idem)
	v1.PUT("/loans/:loan_id/liquidations/target-amount", loanH.UpdateLiquidationTarget)

	addr := ":" + cfg.AppPort
	zlog.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
