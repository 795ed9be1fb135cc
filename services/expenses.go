// services/expenses.go
package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cakmak-pos/models"
	"cakmak-pos/upstream"
	"cakmak-pos/utils"
)

// Local validation errors; rows failing these never reach the backend.
var (
	ErrTitleRequired     = errors.New("title is required")
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
	ErrRowNotFound       = errors.New("expense row not found")
)

// ExpenseRow is one editable line of the day ledger. Unsaved rows are keyed
// by TmpID until the backend assigns them an id.
type ExpenseRow struct {
	ID       int     `json:"id,omitempty"`
	TmpID    string  `json:"tmpId,omitempty"`
	Date     string  `json:"date"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category,omitempty"`
	Payment  string  `json:"payment,omitempty"`
	Note     string  `json:"note,omitempty"`
	IsNew    bool    `json:"isNew"`
	Dirty    bool    `json:"dirty"`
	Saving   bool    `json:"saving"`
}

// LedgerView is the snapshot handed to the expenses page: the working copy
// for the selected day plus the rolling totals.
type LedgerView struct {
	Date     string       `json:"date"`
	Rows     []ExpenseRow `json:"rows"`
	DayTotal float64      `json:"dayTotal"`
	Sum7     float64      `json:"sum7"`
	Sum30    float64      `json:"sum30"`
}

// Ledger holds the optimistic working copy of one day's expenses. Rows are
// edited locally and persisted one at a time on explicit save; after every
// save or delete the day is reloaded so the copy reflects what the backend
// normalized.
type Ledger struct {
	backend *upstream.Client
	log     *logrus.Logger

	mu      sync.Mutex
	date    string
	rows    []ExpenseRow
	sum7    float64
	sum30   float64
	loadGen uint64
}

func NewLedger(backend *upstream.Client, log *logrus.Logger) *Ledger {
	return &Ledger{backend: backend, log: log, date: utils.Today()}
}

// LoadDay switches the ledger to the given day and reloads it from the
// backend. When the operator flips days faster than responses arrive, only
// the most recently requested day is applied; stale responses are dropped
// silently.
func (l *Ledger) LoadDay(ctx context.Context, date string) error {
	l.mu.Lock()
	l.loadGen++
	ticket := l.loadGen
	l.date = date
	l.rows = nil // clear immediately so the wrong day is never shown
	l.mu.Unlock()

	list, err := l.backend.Expenses(ctx, date, date)
	if err != nil {
		l.log.WithError(err).WithField("date", date).Warn("expense day load failed")
		return err
	}

	rows := make([]ExpenseRow, 0, len(list))
	for _, e := range list {
		rows = append(rows, ExpenseRow{
			ID:       e.ID,
			Date:     date,
			Title:    e.Title,
			Amount:   e.Amount,
			Category: e.Category,
			Payment:  e.Payment,
			Note:     e.Note,
		})
	}

	l.mu.Lock()
	if l.loadGen != ticket {
		l.mu.Unlock()
		return nil
	}
	l.rows = rows
	l.mu.Unlock()

	sum7 := l.rangeSum(ctx, utils.DaysBefore(date, 6), date)
	sum30 := l.rangeSum(ctx, utils.DaysBefore(date, 29), date)

	l.mu.Lock()
	if l.loadGen == ticket {
		l.sum7 = sum7
		l.sum30 = sum30
	}
	l.mu.Unlock()
	return nil
}

func (l *Ledger) rangeSum(ctx context.Context, from, to string) float64 {
	list, err := l.backend.Expenses(ctx, from, to)
	if err != nil {
		l.log.WithError(err).Debug("expense range sum failed")
		return 0
	}
	var sum float64
	for _, e := range list {
		sum += e.Amount
	}
	return sum
}

// View returns the current working copy.
func (l *Ledger) View() LedgerView {
	l.mu.Lock()
	defer l.mu.Unlock()
	rows := make([]ExpenseRow, len(l.rows))
	copy(rows, l.rows)
	var dayTotal float64
	for _, r := range rows {
		dayTotal += r.Amount
	}
	return LedgerView{Date: l.date, Rows: rows, DayTotal: dayTotal, Sum7: l.sum7, Sum30: l.sum30}
}

// AddRow appends a new unsaved row, optionally prefilled by one of the
// quick-add buttons.
func (l *Ledger) AddRow(prefill ExpenseRow) ExpenseRow {
	l.mu.Lock()
	defer l.mu.Unlock()
	row := ExpenseRow{
		TmpID:    uuid.NewString(),
		Date:     l.date,
		Title:    prefill.Title,
		Amount:   prefill.Amount,
		Category: prefill.Category,
		Payment:  prefill.Payment,
		Note:     prefill.Note,
		IsNew:    true,
		Dirty:    true,
	}
	l.rows = append(l.rows, row)
	return row
}

// UpdateRow replaces a row's editable fields locally and marks it dirty.
func (l *Ledger) UpdateRow(id int, tmpID string, input models.ExpenseInput) (ExpenseRow, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.indexOf(id, tmpID)
	if i < 0 {
		return ExpenseRow{}, ErrRowNotFound
	}
	l.rows[i].Title = input.Title
	l.rows[i].Amount = input.Amount
	l.rows[i].Category = input.Category
	l.rows[i].Payment = input.Payment
	l.rows[i].Note = input.Note
	l.rows[i].Dirty = true
	return l.rows[i], nil
}

// SaveRow validates and persists a single row: POST for new rows (capturing
// the assigned id), PUT otherwise. On success the whole day is reloaded so
// the copy picks up whatever the backend normalized.
func (l *Ledger) SaveRow(ctx context.Context, id int, tmpID string) error {
	l.mu.Lock()
	i := l.indexOf(id, tmpID)
	if i < 0 {
		l.mu.Unlock()
		return ErrRowNotFound
	}
	row := l.rows[i]
	if strings.TrimSpace(row.Title) == "" {
		l.mu.Unlock()
		return ErrTitleRequired
	}
	if row.Amount <= 0 {
		l.mu.Unlock()
		return ErrAmountNotPositive
	}
	l.rows[i].Saving = true
	date := l.date
	l.mu.Unlock()

	input := models.ExpenseInput{
		Date:     row.Date,
		Title:    strings.TrimSpace(row.Title),
		Amount:   row.Amount,
		Category: strings.TrimSpace(row.Category),
		Payment:  strings.TrimSpace(row.Payment),
		Note:     strings.TrimSpace(row.Note),
	}

	var err error
	if row.IsNew || row.ID == 0 {
		var newID int
		newID, err = l.backend.CreateExpense(ctx, input)
		if err == nil {
			l.mu.Lock()
			if j := l.indexOf(0, row.TmpID); j >= 0 {
				l.rows[j].ID = newID
				l.rows[j].TmpID = ""
				l.rows[j].IsNew = false
				l.rows[j].Dirty = false
				l.rows[j].Saving = false
			}
			l.mu.Unlock()
		}
	} else {
		err = l.backend.UpdateExpense(ctx, row.ID, input)
		if err == nil {
			l.mu.Lock()
			if j := l.indexOf(row.ID, ""); j >= 0 {
				l.rows[j].Dirty = false
				l.rows[j].Saving = false
			}
			l.mu.Unlock()
		}
	}
	if err != nil {
		l.log.WithError(err).Error("expense save failed")
		l.mu.Lock()
		if j := l.indexOf(row.ID, row.TmpID); j >= 0 {
			l.rows[j].Saving = false
		}
		l.mu.Unlock()
		return err
	}

	// Reload so the row reflects the stored values.
	return l.LoadDay(ctx, date)
}

// DeleteRow removes a row. Unsaved rows disappear locally without a call;
// persisted rows are deleted on the backend and the day reloaded.
func (l *Ledger) DeleteRow(ctx context.Context, id int, tmpID string) error {
	l.mu.Lock()
	i := l.indexOf(id, tmpID)
	if i < 0 {
		l.mu.Unlock()
		return ErrRowNotFound
	}
	row := l.rows[i]
	if row.IsNew || row.ID == 0 {
		l.rows = append(l.rows[:i], l.rows[i+1:]...)
		l.mu.Unlock()
		return nil
	}
	date := l.date
	l.mu.Unlock()

	if err := l.backend.DeleteExpense(ctx, row.ID); err != nil {
		l.log.WithError(err).Error("expense delete failed")
		return err
	}
	return l.LoadDay(ctx, date)
}

func (l *Ledger) indexOf(id int, tmpID string) int {
	for i, r := range l.rows {
		if id != 0 && r.ID == id {
			return i
		}
		if tmpID != "" && r.TmpID == tmpID {
			return i
		}
	}
	return -1
}
