package main

import (
	"context"
	"errors"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	httpadp "tender-crm-backend/internal/adapter/http"
	mw "tender-crm-backend/internal/adapter/middleware"
	"tender-crm-backend/internal/adapter/repository/mysql"
	"tender-crm-backend/internal/config"
	"tender-crm-backend/internal/domain/catalog"
	"tender-crm-backend/internal/infrastructure/cache"
	"tender-crm-backend/internal/infrastructure/db"
	"tender-crm-backend/internal/infrastructure/db/migrations"
	"tender-crm-backend/internal/infrastructure/logger"
	ucCatalog "tender-crm-backend/internal/usecase/catalog"
	ucClient "tender-crm-backend/internal/usecase/client"
	ucFinancial "tender-crm-backend/internal/usecase/financial"
	ucTender "tender-crm-backend/internal/usecase/tender"
	ucUser "tender-crm-backend/internal/usecase/user"
)

func catalogHandler[T any, P catalog.Item[T]](gdb *gorm.DB, log *zap.Logger) *httpadp.CatalogHandler[T, P] {
	svc := ucCatalog.NewService[T, P](mysql.NewCatalogRepository[T](gdb), log)
	return httpadp.NewCatalogHandler(svc, log)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("load config", zap.Error(err))
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), log)
	if err != nil {
		log.Fatal("open mysql", zap.Error(err))
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatal("mysql handle", zap.Error(err))
	}
	defer sqlDB.Close()

	if cfg.AutoMigrate {
		if err := migrations.Up(sqlDB, log); err != nil {
			log.Fatal("migrate", zap.Error(err))
		}
	}

	rdb, err := cache.OpenRedis(cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB}, log)
	if err != nil {
		log.Fatal("open redis", zap.Error(err))
	}
	defer rdb.Close()

	tx := mysql.NewGormUoW(gdb)
	h := httpadp.Handlers{
		Health: httpadp.NewHandler(
			httpadp.Check{Name: "mysql", Ping: sqlDB.PingContext},
			httpadp.Check{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		),
		Financial:    httpadp.NewFinancialHandler(ucFinancial.NewUsecase(mysql.NewFinancialRepository(gdb), tx, log), log),
		Tender:       httpadp.NewTenderHandler(ucTender.NewUsecase(mysql.NewTenderRepository(gdb), tx, log), log),
		Client:       httpadp.NewClientHandler(ucClient.NewUsecase(mysql.NewClientRepository(gdb), tx, log), log),
		User:         httpadp.NewUserHandler(ucUser.NewUsecase(mysql.NewUserRepository(gdb), log), log),
		OEMs:         catalogHandler[catalog.OEM](gdb, log),
		Products:     catalogHandler[catalog.Product](gdb, log),
		Departments:  catalogHandler[catalog.Department](gdb, log),
		Designations: catalogHandler[catalog.Designation](gdb, log),
		BidTemplates: catalogHandler[catalog.BidTemplate](gdb, log),
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	httpadp.Register(e, h, mw.RequireActor(), mw.IdempotencyMiddleware(rdb, cfg.IdempotencyTTL(), log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.AppPort
	go func() {
		log.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
