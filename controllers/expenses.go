// controllers/expenses.go
package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cakmak-pos/models"
	"cakmak-pos/services"
	"cakmak-pos/utils"
)

// ExpensesController drives the editable expense ledger.
type ExpensesController struct {
	Ledger *services.Ledger
	Log    *logrus.Logger
}

type expenseRowKey struct {
	ID    int    `json:"id"`
	TmpID string `json:"tmpId"`
}

type updateExpenseInput struct {
	expenseRowKey
	models.ExpenseInput
}

// GetDay loads the ledger for one day and returns the working copy with the
// 7/30-day sums.
func (ec *ExpensesController) GetDay(c *gin.Context) {
	date := c.Param("date")
	if !utils.ValidDay(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	if err := ec.Ledger.LoadDay(c.Request.Context(), date); err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Giderler yüklenemedi.")
		return
	}
	c.JSON(http.StatusOK, ec.Ledger.View())
}

// AddRow appends a new unsaved row, optionally prefilled by a quick-add
// button. An empty body adds a blank row.
func (ec *ExpensesController) AddRow(c *gin.Context) {
	var prefill services.ExpenseRow
	if err := c.ShouldBindJSON(&prefill); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, ec.Ledger.AddRow(prefill))
}

// UpdateRow edits a row locally and marks it dirty; nothing is persisted
// until SaveRow.
func (ec *ExpensesController) UpdateRow(c *gin.Context) {
	var input updateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	row, err := ec.Ledger.UpdateRow(input.ID, input.TmpID, input.ExpenseInput)
	if err != nil {
		ec.respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// SaveRow persists one row. Validation failures are reported without any
// backend call.
func (ec *ExpensesController) SaveRow(c *gin.Context) {
	var key expenseRowKey
	if err := c.ShouldBindJSON(&key); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := ec.Ledger.SaveRow(c.Request.Context(), key.ID, key.TmpID); err != nil {
		ec.respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, ec.Ledger.View())
}

// DeleteRow removes a row; unsaved rows vanish locally, saved rows are
// deleted on the backend.
func (ec *ExpensesController) DeleteRow(c *gin.Context) {
	key := expenseRowKey{TmpID: c.Query("tmpId")}
	if v := c.Query("id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "invalid id")
			return
		}
		key.ID = id
	}
	if err := ec.Ledger.DeleteRow(c.Request.Context(), key.ID, key.TmpID); err != nil {
		ec.respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, ec.Ledger.View())
}

func (ec *ExpensesController) respondLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired), errors.Is(err, services.ErrAmountNotPositive):
		utils.RespondWithError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrRowNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	default:
		ec.Log.WithError(err).Error("expense operation failed")
		utils.RespondWithError(c, http.StatusBadGateway, "Kayıt işlemi başarısız.")
	}
}
