// services/summary.go
package services

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"cakmak-pos/models"
	"cakmak-pos/upstream"
)

// SummaryService produces the revenue/expense/net cards for today. The
// expense figure is ALWAYS recomputed from the expense rows for the range,
// even when /Dashboard/summary answers: the editable expense ledger is the
// source of truth and a cached server figure may lag behind it.
type SummaryService struct {
	backend *upstream.Client
	log     *logrus.Logger

	mu      sync.Mutex
	current *models.Summary
}

func NewSummaryService(backend *upstream.Client, log *logrus.Logger) *SummaryService {
	return &SummaryService{backend: backend, log: log}
}

// Current returns the last computed summary, nil before the first refresh.
func (s *SummaryService) Current() *models.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	out := *s.current
	return &out
}

// Refresh recomputes today's summary and caches it.
func (s *SummaryService) Refresh(ctx context.Context) *models.Summary {
	today := todayFn()
	sum := models.Summary{From: today, To: today}
	haveNet := false

	dash, err := s.backend.DashboardSummary(ctx, today, today)
	if err == nil {
		sum.Revenue = dash.Revenue
		sum.Breakdown = dash.Breakdown
		if dash.From != "" {
			sum.From = dash.From
		}
		if dash.To != "" {
			sum.To = dash.To
		}
		if dash.Net != nil {
			sum.Net = *dash.Net
			haveNet = true
		}
	} else {
		s.log.WithError(err).Debug("dashboard summary unavailable, falling back to closed orders")
		rows, err := s.backend.ClosedOrders(ctx, sum.From, sum.To)
		if err != nil {
			s.log.WithError(err).Warn("closed-orders fallback failed")
		}
		for _, r := range rows {
			sum.Revenue += r.Total
		}
	}

	if expenses, err := s.backend.Expenses(ctx, sum.From, sum.To); err == nil {
		var total float64
		for _, e := range expenses {
			total += e.Amount
		}
		sum.Expense = total
	} else {
		s.log.WithError(err).Warn("expense total refresh failed")
	}

	if !haveNet {
		sum.Net = sum.Revenue - sum.Expense
	}

	s.mu.Lock()
	s.current = &sum
	s.mu.Unlock()
	return &sum
}
