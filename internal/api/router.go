package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/kvargasm/Budget-Tracker-Backend/internal/api/middleware"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/config"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/service"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/web"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	stateService *service.StateService,
	dashboardService *service.DashboardService,
	clearGuard *service.ClearGuard,
	cfg *config.Config,
) (http.Handler, error) {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/transactions", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(stateService)
			r.Get("/", transactionHandler.AllTransactions)
			r.Post("/", transactionHandler.CreateTransaction)
			r.With(custommiddleware.ValidateMonthQueryMiddleware).
				Get("/month", transactionHandler.MonthTransactions)
			r.Route("/{transactionId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateTransactionIDMiddleware)
				r.Delete("/", transactionHandler.DeleteTransaction)
			})
		})

		r.Route("/budgets", func(r chi.Router) {
			budgetHandler := handlers.NewBudgetHandler(stateService)
			r.Get("/", budgetHandler.AllBudgets)
			r.Put("/", budgetHandler.UpsertBudget)
			r.Delete("/{month}/{category}", budgetHandler.DeleteBudget)
		})

		r.Route("/goals", func(r chi.Router) {
			goalHandler := handlers.NewGoalHandler(stateService)
			r.Get("/", goalHandler.AllGoals)
			r.Put("/", goalHandler.UpsertGoal)
			r.Delete("/{month}", goalHandler.DeleteGoal)
		})

		r.Route("/dashboard", func(r chi.Router) {
			dashboardHandler := handlers.NewDashboardHandler(dashboardService)
			r.With(custommiddleware.ValidateMonthQueryMiddleware).
				Get("/", dashboardHandler.Snapshot)
		})

		r.Route("/data", func(r chi.Router) {
			dataHandler := handlers.NewDataHandler(stateService, clearGuard)
			r.With(custommiddleware.ValidateMonthQueryMiddleware).
				Post("/seed", dataHandler.SeedDemo)
			r.Post("/clear-request", dataHandler.RequestClear)
			r.Post("/clear-confirm", dataHandler.ConfirmClear)
		})
	})

	// Server-rendered pages
	webHandler, err := web.NewHandler(stateService, dashboardService, clearGuard)
	if err != nil {
		return nil, err
	}
	webHandler.Routes(r)

	return r, nil
}
