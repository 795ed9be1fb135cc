// controllers/dashboard.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cakmak-pos/services"
)

// DashboardController serves the revenue/expense/net cards.
type DashboardController struct {
	Summary *services.SummaryService
	Log     *logrus.Logger
}

// GetSummary recomputes today's summary, the way opening the dashboard page
// does.
func (dc *DashboardController) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, dc.Summary.Refresh(c.Request.Context()))
}
