// services/reconciler.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"cakmak-pos/models"
	"cakmak-pos/store"
	"cakmak-pos/upstream"
)

// Reconciler keeps the per-table open-order cache in sync with the backend.
// Its refresh methods never return errors: a failed fetch is logged and the
// cache degrades (previous value kept on summary failure, nil stored on
// total detail failure), matching how the register is expected to behave
// when the backend hiccups.
type Reconciler struct {
	backend *upstream.Client
	state   *store.OpenOrders
	catalog *store.Catalog
	log     *logrus.Logger
}

func NewReconciler(backend *upstream.Client, state *store.OpenOrders, catalog *store.Catalog, log *logrus.Logger) *Reconciler {
	return &Reconciler{backend: backend, state: state, catalog: catalog, log: log}
}

// RefreshSummary fetches one table's open-order summary into the cache.
func (r *Reconciler) RefreshSummary(ctx context.Context, tableID int) {
	ticket := r.state.BeginSummaryRefresh(tableID)
	entry, err := r.backend.OpenOrderSummary(ctx, tableID)
	if err != nil {
		// Keep whatever we had; the ticket bump already fences out older
		// in-flight responses.
		r.log.WithError(err).WithField("table", tableID).Warn("open-order summary refresh failed")
		return
	}
	var info *models.OpenOrderInfo
	if entry != nil {
		copied := entry.OpenOrderInfo
		if copied.TableID == 0 {
			copied.TableID = tableID
		}
		info = &copied
	}
	r.state.SetInfo(tableID, ticket, info)
}

// RefreshAllSummaries fans the summary fetch out to every known table. Each
// table succeeds or fails on its own; one bad table never aborts the rest.
func (r *Reconciler) RefreshAllSummaries(ctx context.Context) {
	tables := r.catalog.Tables()
	g, ctx := errgroup.WithContext(ctx)
	for _, t := range tables {
		tableID := t.ID
		g.Go(func() error {
			r.RefreshSummary(ctx, tableID)
			return nil
		})
	}
	_ = g.Wait()
}

// RefreshDetail fetches the line-item view for a table. When the detail
// endpoint fails it falls back to the summary endpoint's item array if it
// has one, then to a bare totals-only snapshot; only when everything fails
// does it store nil.
func (r *Reconciler) RefreshDetail(ctx context.Context, tableID int) {
	ticket := r.state.BeginDetailRefresh(tableID)

	detail, err := r.backend.OpenOrderDetail(ctx, tableID)
	if err == nil && detail != nil {
		r.state.SetDetail(tableID, ticket, detail)
		r.state.FillInfoFromDetail(tableID)
		return
	}
	if err != nil {
		r.log.WithError(err).WithField("table", tableID).Debug("detail endpoint failed, trying summary")
	}

	entry, err := r.backend.OpenOrderSummary(ctx, tableID)
	if err != nil {
		r.log.WithError(err).WithField("table", tableID).Warn("open-order detail refresh failed")
		r.state.SetDetail(tableID, ticket, nil)
		return
	}
	fallback := &models.OpenOrderDetail{Items: []models.OpenOrderItem{}}
	if entry != nil {
		fallback.OrderID = entry.ID
		fallback.Total = entry.Total
		fallback.Count = entry.Count
		if len(entry.Items) > 0 {
			fallback.Items = entry.Items
			if fallback.Count == 0 {
				fallback.Count = len(entry.Items)
			}
		}
	}
	r.state.SetDetail(tableID, ticket, fallback)
	r.state.FillInfoFromDetail(tableID)
}

// Reconcile refreshes both views of a table. Callers run it after every
// mutation before treating the cache as consistent.
func (r *Reconciler) Reconcile(ctx context.Context, tableID int) {
	r.RefreshDetail(ctx, tableID)
	r.RefreshSummary(ctx, tableID)
}
