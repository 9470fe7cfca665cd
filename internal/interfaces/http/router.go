package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rkeng/billing-api/internal/application/auth"
	"github.com/rkeng/billing-api/internal/application/billing"
	"github.com/rkeng/billing-api/internal/application/reports"
	"github.com/rkeng/billing-api/internal/application/usecase"
)

// RouterDeps carries the use cases the router wires into handlers.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	FactoryUC *usecase.FactoryUseCase
	BillUC    *billing.BillUseCase
	PDFUC     *billing.PDFUseCase
	ReportUC  *reports.MonthlyReportUseCase
	JWTSecret string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Post("/forgot-password", authHandler.ForgotPassword)
	app.Post("/reset-password", authHandler.ResetPassword)

	// Protected routes (require Bearer token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	factoryHandler := NewFactoryHandler(deps.FactoryUC)
	protected.Post("/factories", factoryHandler.Create)
	protected.Get("/factories", factoryHandler.List)
	protected.Delete("/factories/:factory_id", factoryHandler.Delete)

	billHandler := NewBillHandler(deps.BillUC, deps.PDFUC)
	protected.Post("/bills", billHandler.Create)
	// The static segments below must be registered before the
	// /bills/:factory_id catch-all so fiber matches them first.
	protected.Get("/bills/:bill_id/pdf", billHandler.GeneratePDF)
	protected.Get("/bills/:bill_id/whatsapp", billHandler.WhatsAppLink)
	protected.Put("/bills/:bill_id", billHandler.Update)
	protected.Get("/bills/:factory_id", billHandler.ListByFactory)

	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/monthly/:factory_id", reportHandler.Monthly)
}
