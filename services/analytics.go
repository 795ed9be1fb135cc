// services/analytics.go
package services

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"cakmak-pos/models"
	"cakmak-pos/upstream"
)

const topProductLimit = 10

// RangeAnalytics is the daily table with the best and worst day by net.
type RangeAnalytics struct {
	Rows      []models.DailyRow `json:"rows"`
	BestDate  string            `json:"bestDate,omitempty"`
	WorstDate string            `json:"worstDate,omitempty"`
}

// DayBreakdown is what opens when the operator selects a day: that day's
// top products and expense rows.
type DayBreakdown struct {
	Date         string              `json:"date"`
	TopProducts  []models.TopProduct `json:"topProducts"`
	Expenses     []models.Expense    `json:"expenses"`
	ExpenseTotal float64             `json:"expenseTotal"`
}

// AnalyticsService serves the analysis page. Day selection follows the
// last-request-wins rule: flipping through days quickly must never leave an
// older day's data on screen.
type AnalyticsService struct {
	backend *upstream.Client
	log     *logrus.Logger

	mu     sync.Mutex
	dayGen uint64
	day    *DayBreakdown
}

func NewAnalyticsService(backend *upstream.Client, log *logrus.Logger) *AnalyticsService {
	return &AnalyticsService{backend: backend, log: log}
}

// Range fetches the per-day rows for a date range and marks the best and
// worst day by net. Ties keep the earlier day, matching how the rows scan.
func (s *AnalyticsService) Range(ctx context.Context, from, to string) (*RangeAnalytics, error) {
	rows, err := s.backend.Daily(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := &RangeAnalytics{Rows: rows}
	if len(rows) > 0 {
		best, worst := rows[0], rows[0]
		for _, r := range rows[1:] {
			if r.Net > best.Net {
				best = r
			}
			if r.Net < worst.Net {
				worst = r
			}
		}
		out.BestDate = best.Date
		out.WorstDate = worst.Date
	}
	return out, nil
}

// SelectDay loads the top products and expenses for one day concurrently.
// The result is cached only while it is still the most recent selection; a
// stale response is returned to its caller but never overwrites newer state.
func (s *AnalyticsService) SelectDay(ctx context.Context, date string) (*DayBreakdown, error) {
	s.mu.Lock()
	s.dayGen++
	ticket := s.dayGen
	s.mu.Unlock()

	breakdown := &DayBreakdown{Date: date, TopProducts: []models.TopProduct{}, Expenses: []models.Expense{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		top, err := s.backend.TopProductsByDate(gctx, date, topProductLimit)
		if err != nil {
			return err
		}
		breakdown.TopProducts = top
		return nil
	})
	g.Go(func() error {
		// Expense failure degrades to an empty list, it does not fail the day.
		list, err := s.backend.Expenses(gctx, date, date)
		if err != nil {
			s.log.WithError(err).WithField("date", date).Warn("day expenses failed")
			return nil
		}
		breakdown.Expenses = list
		for _, e := range list {
			breakdown.ExpenseTotal += e.Amount
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.dayGen == ticket {
		s.day = breakdown
	}
	s.mu.Unlock()
	return breakdown, nil
}

// Day returns the most recently selected day's breakdown, nil before any
// selection.
func (s *AnalyticsService) Day() *DayBreakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.day == nil {
		return nil
	}
	out := *s.day
	return &out
}
