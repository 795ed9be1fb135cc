// store/openorders.go
package store

import (
	"sync"

	"cakmak-pos/models"
)

// OpenOrders caches the per-table open-order snapshots. Every refresh takes
// a ticket from BeginSummaryRefresh/BeginDetailRefresh before calling the
// backend; a write whose ticket no longer matches the latest one for that
// table is dropped, so a slow response can never clobber the result of a
// request issued after it.
type OpenOrders struct {
	mu        sync.Mutex
	info      map[int]*models.OpenOrderInfo
	detail    map[int]*models.OpenOrderDetail
	infoGen   map[int]uint64
	detailGen map[int]uint64
}

func NewOpenOrders() *OpenOrders {
	return &OpenOrders{
		info:      make(map[int]*models.OpenOrderInfo),
		detail:    make(map[int]*models.OpenOrderDetail),
		infoGen:   make(map[int]uint64),
		detailGen: make(map[int]uint64),
	}
}

// BeginSummaryRefresh marks a new in-flight summary request for the table
// and returns its ticket.
func (s *OpenOrders) BeginSummaryRefresh(tableID int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.infoGen[tableID]++
	return s.infoGen[tableID]
}

// SetInfo stores the summary snapshot if the ticket is still current.
// It reports whether the write was applied.
func (s *OpenOrders) SetInfo(tableID int, ticket uint64, info *models.OpenOrderInfo) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.infoGen[tableID] != ticket {
		return false
	}
	s.info[tableID] = info
	return true
}

func (s *OpenOrders) BeginDetailRefresh(tableID int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detailGen[tableID]++
	return s.detailGen[tableID]
}

func (s *OpenOrders) SetDetail(tableID int, ticket uint64, detail *models.OpenOrderDetail) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detailGen[tableID] != ticket {
		return false
	}
	s.detail[tableID] = detail
	return true
}

// Info returns the cached summary for the table, nil when the table is
// empty or never fetched.
func (s *OpenOrders) Info(tableID int) *models.OpenOrderInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	info := s.info[tableID]
	if info == nil {
		return nil
	}
	out := *info
	return &out
}

func (s *OpenOrders) Detail(tableID int) *models.OpenOrderDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	detail := s.detail[tableID]
	if detail == nil {
		return nil
	}
	out := *detail
	out.Items = make([]models.OpenOrderItem, len(detail.Items))
	copy(out.Items, detail.Items)
	return &out
}

// FillInfoFromDetail derives a summary from a detail snapshot when no
// summary is cached yet, so the table card can show open/empty right away.
func (s *OpenOrders) FillInfoFromDetail(tableID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.info[tableID] != nil {
		return
	}
	d := s.detail[tableID]
	if d == nil || len(d.Items) == 0 {
		return
	}
	count := d.Count
	if count == 0 {
		count = len(d.Items)
	}
	s.info[tableID] = &models.OpenOrderInfo{
		ID:      d.OrderID,
		TableID: tableID,
		Total:   d.Total,
		Count:   count,
	}
}

// Invalidate clears both snapshots for the table after a close and bumps the
// tickets so any still in-flight refresh is discarded.
func (s *OpenOrders) Invalidate(tableID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.infoGen[tableID]++
	s.detailGen[tableID]++
	s.info[tableID] = nil
	s.detail[tableID] = nil
}
