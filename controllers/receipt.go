// controllers/receipt.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cakmak-pos/config"
	"cakmak-pos/receipt"
	"cakmak-pos/services"
	"cakmak-pos/store"
	"cakmak-pos/utils"
)

// ReceiptController renders and prints the 60mm receipt for a table's open
// order.
type ReceiptController struct {
	Cfg        *config.Config
	Orders     *store.OpenOrders
	Catalog    *store.Catalog
	Reconciler *services.Reconciler
	Inliner    *receipt.Inliner
	Printer    *receipt.Printer
	Log        *logrus.Logger
}

type printReceiptInput struct {
	Payment string `json:"payment" binding:"omitempty,oneof=Nakit Kart"`
}

// GetReceipt renders the table's receipt as a printable HTML page.
func (rc *ReceiptController) GetReceipt(c *gin.Context) {
	doc, ok := rc.buildDocument(c, "")
	if !ok {
		return
	}
	html, err := doc.HTML()
	if err != nil {
		rc.Log.WithError(err).Error("receipt render failed")
		utils.RespondWithError(c, http.StatusInternalServerError, "Fiş oluşturulamadı.")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// PrintReceipt renders the receipt and hands it to the configured spooler.
func (rc *ReceiptController) PrintReceipt(c *gin.Context) {
	var input printReceiptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	doc, ok := rc.buildDocument(c, input.Payment)
	if !ok {
		return
	}
	html, err := doc.HTML()
	if err != nil {
		rc.Log.WithError(err).Error("receipt render failed")
		utils.RespondWithError(c, http.StatusInternalServerError, "Fiş oluşturulamadı.")
		return
	}
	if err := rc.Printer.Print(c.Request.Context(), html); err != nil {
		if errors.Is(err, receipt.ErrNoPrinter) {
			utils.RespondWithError(c, http.StatusConflict, "Yazıcı komutu tanımlı değil.")
			return
		}
		utils.RespondWithError(c, http.StatusBadGateway, "Fiş yazdırılamadı.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"printed": true})
}

// buildDocument reconciles the table and assembles the receipt document.
// Responds and returns false when the table is invalid or the tab is empty.
func (rc *ReceiptController) buildDocument(c *gin.Context, payment string) (receipt.Document, bool) {
	tableID, err := strconv.Atoi(c.Param("id"))
	if err != nil || tableID <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid id")
		return receipt.Document{}, false
	}

	rc.Reconciler.Reconcile(c.Request.Context(), tableID)
	detail := rc.Orders.Detail(tableID)
	if detail == nil || len(detail.Items) == 0 {
		utils.RespondWithError(c, http.StatusConflict, "Adisyon boş.")
		return receipt.Document{}, false
	}

	lines := make([]receipt.Line, 0, len(detail.Items))
	for _, it := range detail.Items {
		lines = append(lines, receipt.Line{
			Name:       it.Name,
			Qty:        it.Qty,
			Total:      float64(it.Qty) * it.UnitPrice,
			Garnitures: utils.PrettyGarnitures(it.Garnitures),
			Note:       it.Note,
		})
	}

	total := detail.Total
	if total == 0 {
		for _, l := range lines {
			total += l.Total
		}
	}

	orderNo := ""
	if info := rc.Orders.Info(tableID); info != nil {
		orderNo = info.OrderNo
	}

	return receipt.Document{
		StoreName:       rc.Cfg.StoreName,
		TableName:       rc.Catalog.TableName(tableID),
		OrderNo:         orderNo,
		Lines:           lines,
		Total:           total,
		Payment:         payment,
		ClosedAt:        time.Now(),
		LogoData:        rc.Inliner.DataURL(c.Request.Context(), rc.Cfg.LogoURL),
		QRData:          receipt.QRDataURL(rc.Cfg.InstagramURL),
		InstagramHandle: rc.Cfg.InstagramHandle,
	}, true
}
