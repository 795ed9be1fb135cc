package store

import (
	"sort"
	"strings"
	"sync"

	"cakmak-pos/models"
)

// Catalog caches the last-fetched products and tables and tracks which table
// the register is currently serving. The backend owns the data; this is just
// the terminal's working copy.
type Catalog struct {
	mu            sync.RWMutex
	products      []models.Product
	tables        []models.Table
	activeTableID int
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// SetProducts replaces the cached product list, sorted by display name.
func (s *Catalog) SetProducts(products []models.Product) {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = sorted
}

// Products returns the cached products, filtered by category name when one
// is given.
func (s *Catalog) Products(category string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if category == "" {
		out := make([]models.Product, len(s.products))
		copy(out, s.products)
		return out
	}
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.CategoryName() == category {
			out = append(out, p)
		}
	}
	return out
}

// SetTables replaces the cached tables and selects the first one when no
// table is active yet.
func (s *Catalog) SetTables(tables []models.Table) {
	copied := make([]models.Table, len(tables))
	copy(copied, tables)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables = copied
	if s.activeTableID == 0 && len(copied) > 0 {
		s.activeTableID = copied[0].ID
	}
}

func (s *Catalog) Tables() []models.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Table, len(s.tables))
	copy(out, s.tables)
	return out
}

// TableName resolves a table's display name, falling back to nothing when
// the id is unknown.
func (s *Catalog) TableName(id int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tables {
		if t.ID == id {
			return t.Name
		}
	}
	return ""
}

func (s *Catalog) ActiveTableID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTableID
}

// SelectTable makes the given table the active one. Unknown ids are refused
// so the register cannot point at a table that does not exist.
func (s *Catalog) SelectTable(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tables {
		if t.ID == id {
			s.activeTableID = id
			return true
		}
	}
	return false
}
