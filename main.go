package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"cakmak-pos/config"
	"cakmak-pos/controllers"
	"cakmak-pos/receipt"
	"cakmak-pos/routes"
	"cakmak-pos/services"
	"cakmak-pos/store"
	"cakmak-pos/upstream"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg.LogLevel)

	backend := upstream.NewClient(cfg.BackendBaseURL, cfg.RequestTimeout, logger)

	cart := store.NewCart()
	catalog := store.NewCatalog()
	openOrders := store.NewOpenOrders()

	reconciler := services.NewReconciler(backend, openOrders, catalog, logger)
	summary := services.NewSummaryService(backend, logger)
	orders := services.NewOrderService(backend, cart, openOrders, reconciler, summary, logger)
	ledger := services.NewLedger(backend, logger)
	reports := services.NewReportService(backend, logger)
	analytics := services.NewAnalyticsService(backend, logger)

	app := &controllers.App{
		Pos: &controllers.PosController{
			Backend:    backend,
			Cart:       cart,
			Catalog:    catalog,
			Orders:     openOrders,
			Reconciler: reconciler,
			Gateway:    orders,
			Log:        logger,
		},
		Dashboard: &controllers.DashboardController{Summary: summary, Log: logger},
		Reports:   &controllers.ReportsController{Reports: reports, Log: logger},
		Expenses:  &controllers.ExpensesController{Ledger: ledger, Log: logger},
		Analytics: &controllers.AnalyticsController{Analytics: analytics, Log: logger},
		Receipt: &controllers.ReceiptController{
			Cfg:        cfg,
			Orders:     openOrders,
			Catalog:    catalog,
			Reconciler: reconciler,
			Inliner:    receipt.NewInliner(),
			Printer:    receipt.NewPrinter(cfg.PrintCommand, logger),
			Log:        logger,
		},
	}

	// Warm the caches; the register still opens when the backend is down and
	// the operator can retry from the refresh button.
	ctx := context.Background()
	if err := services.LoadCatalog(ctx, backend, catalog); err != nil {
		logger.WithError(err).Warn("initial catalog load failed")
	}
	reconciler.RefreshAllSummaries(ctx)
	summary.Refresh(ctx)

	refresher := services.NewRefresher(reconciler, summary, logger)
	if err := refresher.Start(cfg.RefreshSpec); err != nil {
		logger.WithError(err).Warn("background refresh disabled")
	}
	defer refresher.Stop()

	r := routes.SetupRouter(app, logger)
	logger.WithField("port", cfg.Port).Info("register terminal listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
