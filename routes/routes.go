package routes

import (
	"cakmak-pos/config"
	"cakmak-pos/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func SetupRouter(app *controllers.App, log *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger(log))

	api := r.Group("/api")
	{
		// Catalog routes
		api.GET("/products", app.Pos.GetProducts)
		api.POST("/catalog/refresh", app.Pos.RefreshCatalog)

		// Table routes
		tables := api.Group("/tables")
		{
			tables.GET("", app.Pos.GetTables)
			tables.POST("/:id/select", app.Pos.SelectTable)
			tables.GET("/:id/order", app.Pos.GetOpenOrder)
			tables.POST("/:id/order", app.Pos.SubmitCart)
			tables.PATCH("/:id/order/items/:itemId", app.Pos.AdjustOpenLine)
			tables.DELETE("/:id/order/items/:itemId", app.Pos.RemoveOpenLine)
			tables.POST("/:id/close", app.Pos.CloseTable)
			tables.GET("/:id/receipt", app.Receipt.GetReceipt)
			tables.POST("/:id/receipt/print", app.Receipt.PrintReceipt)
		}

		// Cart routes
		cart := api.Group("/cart")
		{
			cart.GET("", app.Pos.GetCart)
			cart.POST("/items", app.Pos.AddToCart)
			cart.POST("/items/:productId/increment", app.Pos.IncrementCartLine)
			cart.POST("/items/:productId/decrement", app.Pos.DecrementCartLine)
			cart.DELETE("", app.Pos.ClearCart)
		}

		// Dashboard routes
		api.GET("/dashboard/summary", app.Dashboard.GetSummary)

		// Report routes
		reports := api.Group("/reports")
		{
			reports.GET("/orders", app.Reports.GetClosedOrders)
			reports.GET("/orders/:id", app.Reports.GetOrderDetail)
		}

		// Expense ledger routes
		expenses := api.Group("/expenses")
		{
			expenses.GET("/day/:date", app.Expenses.GetDay)
			expenses.POST("/rows", app.Expenses.AddRow)
			expenses.PUT("/rows", app.Expenses.UpdateRow)
			expenses.POST("/rows/save", app.Expenses.SaveRow)
			expenses.DELETE("/rows", app.Expenses.DeleteRow)
		}

		// Analytics routes
		analytics := api.Group("/analytics")
		{
			analytics.GET("/daily", app.Analytics.GetDaily)
			analytics.GET("/day/:date", app.Analytics.GetDay)
		}
	}

	return r
}
