package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rkeng/billing-api/internal/application/auth"
	"github.com/rkeng/billing-api/internal/application/billing"
	"github.com/rkeng/billing-api/internal/application/reports"
	"github.com/rkeng/billing-api/internal/application/usecase"
	"github.com/rkeng/billing-api/internal/infrastructure/mail"
	infrapdf "github.com/rkeng/billing-api/internal/infrastructure/pdf"
	"github.com/rkeng/billing-api/internal/infrastructure/postgres"
	httpRouter "github.com/rkeng/billing-api/internal/interfaces/http"
	"github.com/rkeng/billing-api/pkg/config"
	"github.com/rkeng/billing-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	factoryRepo := postgres.NewFactoryRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailer := mail.NewSMTPMailer(cfg.SMTP, cfg.Company.Name)
	authUC := auth.NewAuthUseCase(userRepo, mailer, auth.JWTConfig{
		Secret:          cfg.JWT.Secret,
		ExpMinutes:      cfg.JWT.Expiration,
		ResetExpMinutes: cfg.JWT.ResetExpMinutes,
		Issuer:          cfg.JWT.Issuer,
	})

	factoryUC := usecase.NewFactoryUseCase(factoryRepo)
	billUC := billing.NewBillUseCase(txRunner, billRepo, factoryRepo, cfg.Company.Name)

	company := billing.CompanyInfo{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		Phone:   cfg.Company.Phone,
	}
	pdfGenerator := infrapdf.NewMarotoBillGenerator()
	pdfUC := billing.NewPDFUseCase(billUC, pdfGenerator, company, cfg.PDF.OutputDir, cfg.PDF.BackupDir)

	reportUC := reports.NewMonthlyReportUseCase(reportRepo, factoryRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		FactoryUC: factoryUC,
		BillUC:    billUC,
		PDFUC:     pdfUC,
		ReportUC:  reportUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
