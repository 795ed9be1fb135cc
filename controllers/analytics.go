// controllers/analytics.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cakmak-pos/services"
	"cakmak-pos/utils"
)

// AnalyticsController serves the analysis page.
type AnalyticsController struct {
	Analytics *services.AnalyticsService
	Log       *logrus.Logger
}

// GetDaily returns the per-day rows for ?from=&to= with the best/worst day
// marked.
func (ac *AnalyticsController) GetDaily(c *gin.Context) {
	from := c.DefaultQuery("from", utils.Today())
	to := c.DefaultQuery("to", utils.Today())
	if !utils.ValidDay(from) || !utils.ValidDay(to) {
		utils.RespondWithError(c, http.StatusBadRequest, "dates must be YYYY-MM-DD")
		return
	}
	rng, err := ac.Analytics.Range(c.Request.Context(), from, to)
	if err != nil {
		ac.Log.WithError(err).Error("daily analytics load failed")
		utils.RespondWithError(c, http.StatusBadGateway, "Günlük analiz yüklenemedi.")
		return
	}
	c.JSON(http.StatusOK, rng)
}

// GetDay loads one day's top products and expenses.
func (ac *AnalyticsController) GetDay(c *gin.Context) {
	date := c.Param("date")
	if !utils.ValidDay(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	day, err := ac.Analytics.SelectDay(c.Request.Context(), date)
	if err != nil {
		ac.Log.WithError(err).Error("day breakdown load failed")
		utils.RespondWithError(c, http.StatusBadGateway, "Gün detayı yüklenemedi.")
		return
	}
	c.JSON(http.StatusOK, day)
}
