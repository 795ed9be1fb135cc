// controllers/pos.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cakmak-pos/models"
	"cakmak-pos/services"
	"cakmak-pos/store"
	"cakmak-pos/upstream"
	"cakmak-pos/utils"
)

// PosController serves the register screen: tables, products, the cart and
// the open-tab mutations.
type PosController struct {
	Backend    *upstream.Client
	Cart       *store.Cart
	Catalog    *store.Catalog
	Orders     *store.OpenOrders
	Reconciler *services.Reconciler
	Gateway    *services.OrderService
	Log        *logrus.Logger
}

// AddToCartInput is a product tap, with whatever the garniture/note dialogs
// collected.
type AddToCartInput struct {
	ProductID  int    `json:"productId" binding:"required"`
	Garnitures string `json:"garnitures"`
	Note       string `json:"note"`
}

type adjustLineInput struct {
	Delta int `json:"delta" binding:"required"`
}

type closeTableInput struct {
	Payment string `json:"payment" binding:"required,oneof=Nakit Kart"`
}

// tableCard is one entry of the table grid: the table plus its open-order
// summary (null when the table is empty).
type tableCard struct {
	Table models.Table          `json:"table"`
	Open  *models.OpenOrderInfo `json:"open"`
}

// GetProducts lists the cached products, filtered by ?category=.
func (pc *PosController) GetProducts(c *gin.Context) {
	category := c.Query("category")
	c.JSON(http.StatusOK, pc.Catalog.Products(category))
}

// RefreshCatalog re-fetches products and tables from the backend.
func (pc *PosController) RefreshCatalog(c *gin.Context) {
	if err := services.LoadCatalog(c.Request.Context(), pc.Backend, pc.Catalog); err != nil {
		pc.Log.WithError(err).Error("catalog refresh failed")
		utils.RespondWithError(c, http.StatusBadGateway, "Veriler yüklenemedi. Backend çalışıyor mu?")
		return
	}
	pc.Reconciler.RefreshAllSummaries(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"products": pc.Catalog.Products(""),
		"tables":   pc.Catalog.Tables(),
	})
}

// GetTables returns the table grid with each table's open-order summary.
func (pc *PosController) GetTables(c *gin.Context) {
	tables := pc.Catalog.Tables()
	cards := make([]tableCard, 0, len(tables))
	for _, t := range tables {
		cards = append(cards, tableCard{Table: t, Open: pc.Orders.Info(t.ID)})
	}
	c.JSON(http.StatusOK, gin.H{
		"tables":        cards,
		"activeTableId": pc.Catalog.ActiveTableID(),
	})
}

// SelectTable makes a table active and reconciles its snapshots, like
// tapping a table card does.
func (pc *PosController) SelectTable(c *gin.Context) {
	tableID, ok := pc.tableParam(c)
	if !ok {
		return
	}
	if !pc.Catalog.SelectTable(tableID) {
		utils.RespondWithError(c, http.StatusNotFound, "table not found")
		return
	}
	pc.Reconciler.Reconcile(c.Request.Context(), tableID)
	c.JSON(http.StatusOK, gin.H{
		"activeTableId": tableID,
		"open":          pc.Orders.Detail(tableID),
	})
}

// GetCart returns the cart lines and the recomputed total.
func (pc *PosController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": pc.Cart.Lines(),
		"total": pc.Cart.Total(),
	})
}

// AddToCart puts a product into the cart, merging identical modifier
// combinations.
func (pc *PosController) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	product, found := pc.findProduct(input.ProductID)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "product not found")
		return
	}
	pc.Cart.Add(product, store.Extra{Garnitures: input.Garnitures, Note: input.Note})
	pc.GetCart(c)
}

// IncrementCartLine bumps the first cart line for a product.
func (pc *PosController) IncrementCartLine(c *gin.Context) {
	productID, ok := pc.intParam(c, "productId")
	if !ok {
		return
	}
	pc.Cart.Increment(productID)
	pc.GetCart(c)
}

// DecrementCartLine lowers the first cart line for a product, dropping it
// at zero.
func (pc *PosController) DecrementCartLine(c *gin.Context) {
	productID, ok := pc.intParam(c, "productId")
	if !ok {
		return
	}
	pc.Cart.Decrement(productID)
	pc.GetCart(c)
}

// ClearCart empties the cart.
func (pc *PosController) ClearCart(c *gin.Context) {
	pc.Cart.Clear()
	c.JSON(http.StatusOK, gin.H{"items": []store.CartLine{}, "total": 0})
}

// GetOpenOrder returns the table's reconciled open-order detail.
func (pc *PosController) GetOpenOrder(c *gin.Context) {
	tableID, ok := pc.tableParam(c)
	if !ok {
		return
	}
	pc.Reconciler.Reconcile(c.Request.Context(), tableID)
	c.JSON(http.StatusOK, gin.H{
		"summary": pc.Orders.Info(tableID),
		"detail":  pc.Orders.Detail(tableID),
	})
}

// SubmitCart posts the cart to the table's tab.
func (pc *PosController) SubmitCart(c *gin.Context) {
	tableID, ok := pc.tableParam(c)
	if !ok {
		return
	}
	if err := pc.Gateway.SubmitCart(c.Request.Context(), tableID); err != nil {
		pc.respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": pc.Orders.Detail(tableID)})
}

// AdjustOpenLine applies a quantity delta to an open-order line.
func (pc *PosController) AdjustOpenLine(c *gin.Context) {
	tableID, ok := pc.tableParam(c)
	if !ok {
		return
	}
	itemID, ok := pc.intParam(c, "itemId")
	if !ok {
		return
	}
	var input adjustLineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := pc.Gateway.AdjustLine(c.Request.Context(), tableID, itemID, input.Delta); err != nil {
		pc.respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": pc.Orders.Detail(tableID)})
}

// RemoveOpenLine deletes an open-order line.
func (pc *PosController) RemoveOpenLine(c *gin.Context) {
	tableID, ok := pc.tableParam(c)
	if !ok {
		return
	}
	itemID, ok := pc.intParam(c, "itemId")
	if !ok {
		return
	}
	if err := pc.Gateway.RemoveLine(c.Request.Context(), tableID, itemID); err != nil {
		pc.respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": pc.Orders.Detail(tableID)})
}

// CloseTable finalizes the table's open order with Nakit or Kart.
func (pc *PosController) CloseTable(c *gin.Context) {
	tableID, ok := pc.tableParam(c)
	if !ok {
		return
	}
	var input closeTableInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := pc.Gateway.CloseTable(c.Request.Context(), tableID, input.Payment); err != nil {
		pc.respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"closed": true, "payment": input.Payment})
}

func (pc *PosController) findProduct(id int) (models.Product, bool) {
	for _, candidate := range pc.Catalog.Products("") {
		if candidate.ID == id {
			return candidate, true
		}
	}
	return models.Product{}, false
}

func (pc *PosController) tableParam(c *gin.Context) (int, bool) {
	return pc.intParam(c, "id")
}

func (pc *PosController) intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return v, true
}

// respondGatewayError maps precondition failures to 409 and transport
// failures to 502, both with the operator-facing message.
func (pc *PosController) respondGatewayError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoTableSelected),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrLineNotEditable),
		errors.Is(err, services.ErrNoOpenOrder):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(c, http.StatusBadGateway, err.Error())
	}
}
