// services/reports.go
package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"cakmak-pos/models"
	"cakmak-pos/upstream"
)

// ReportFilter narrows the closed-order list. Empty payment or zero table id
// means no filtering on that axis.
type ReportFilter struct {
	From    string
	To      string
	Payment string
	TableID int
}

// ReportTotals are the aggregates over the filtered rows. Net subtracts the
// range's expense total, which is summed from the expense rows, not taken
// from any server summary.
type ReportTotals struct {
	Revenue   float64            `json:"revenue"`
	ByPayment map[string]float64 `json:"byPayment"`
	Expense   float64            `json:"expense"`
	Net       float64            `json:"net"`
}

// Report is what the reports page renders.
type Report struct {
	Rows   []models.ClosedOrder `json:"rows"`
	Totals ReportTotals         `json:"totals"`
}

type ReportService struct {
	backend *upstream.Client
	log     *logrus.Logger
}

func NewReportService(backend *upstream.Client, log *logrus.Logger) *ReportService {
	return &ReportService{backend: backend, log: log}
}

// ClosedOrders fetches and filters the closed orders for a range and
// computes the revenue, by-payment and net aggregates.
func (s *ReportService) ClosedOrders(ctx context.Context, f ReportFilter) (*Report, error) {
	rows, err := s.backend.ClosedOrders(ctx, f.From, f.To)
	if err != nil {
		return nil, err
	}

	// Expense total degrades to zero when the ledger endpoint is down; the
	// revenue list is still worth showing.
	var expense float64
	if list, err := s.backend.Expenses(ctx, f.From, f.To); err == nil {
		for _, e := range list {
			expense += e.Amount
		}
	} else {
		s.log.WithError(err).Warn("expense total for report failed")
	}

	filtered := make([]models.ClosedOrder, 0, len(rows))
	for _, r := range rows {
		if f.Payment != "" && !strings.EqualFold(r.Payment, f.Payment) {
			continue
		}
		if f.TableID != 0 && (r.TableID == nil || *r.TableID != f.TableID) {
			continue
		}
		filtered = append(filtered, r)
	}

	totals := ReportTotals{ByPayment: make(map[string]float64), Expense: expense}
	for _, r := range filtered {
		totals.Revenue += r.Total
		key := strings.ToLower(r.Payment)
		if key == "" {
			key = "diğer"
		}
		totals.ByPayment[key] += r.Total
	}
	totals.Net = totals.Revenue - expense

	return &Report{Rows: filtered, Totals: totals}, nil
}

// OrderDetail fetches one closed order's line items.
func (s *ReportService) OrderDetail(ctx context.Context, id int) (*models.OrderDetail, error) {
	return s.backend.OrderDetail(ctx, id)
}
