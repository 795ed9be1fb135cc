// controllers/controllers.go
package controllers

// App bundles the controllers so route setup takes a single value.
type App struct {
	Pos       *PosController
	Dashboard *DashboardController
	Reports   *ReportsController
	Expenses  *ExpensesController
	Analytics *AnalyticsController
	Receipt   *ReceiptController
}
