// controllers/reports.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cakmak-pos/services"
	"cakmak-pos/utils"
)

// ReportsController serves the closed-order reports page.
type ReportsController struct {
	Reports *services.ReportService
	Log     *logrus.Logger
}

// GetClosedOrders lists closed orders for ?from=&to= with optional
// ?payment= and ?tableId= filters, plus the computed totals.
func (rc *ReportsController) GetClosedOrders(c *gin.Context) {
	from := c.DefaultQuery("from", utils.Today())
	to := c.DefaultQuery("to", utils.Today())
	if !utils.ValidDay(from) || !utils.ValidDay(to) {
		utils.RespondWithError(c, http.StatusBadRequest, "dates must be YYYY-MM-DD")
		return
	}

	filter := services.ReportFilter{From: from, To: to, Payment: c.Query("payment")}
	if v := c.Query("tableId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "invalid tableId")
			return
		}
		filter.TableID = id
	}

	report, err := rc.Reports.ClosedOrders(c.Request.Context(), filter)
	if err != nil {
		rc.Log.WithError(err).Error("closed orders load failed")
		utils.RespondWithError(c, http.StatusBadGateway, "Kapatılan adisyonlar yüklenemedi.")
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetOrderDetail returns one closed order's line items for the detail
// modal.
func (rc *ReportsController) GetOrderDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid id")
		return
	}
	detail, err := rc.Reports.OrderDetail(c.Request.Context(), id)
	if err != nil {
		rc.Log.WithError(err).Error("order detail load failed")
		utils.RespondWithError(c, http.StatusBadGateway, "Adisyon detayları alınamadı.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order":      detail,
		"grandTotal": detail.GrandTotal(),
	})
}
