// services/orders.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"cakmak-pos/models"
	"cakmak-pos/store"
	"cakmak-pos/upstream"
)

// Precondition errors. These are reported to the operator without any
// network call being made.
var (
	ErrNoTableSelected = errors.New("no table selected")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrLineNotEditable = errors.New("cannot edit a line without a backend id")
	ErrNoOpenOrder     = errors.New("no open order for this table")
)

// OrderService is the write path to the backend: it submits carts, edits tab
// lines and closes tables, and re-reconciles the affected table after every
// successful mutation. Local state is never mutated optimistically.
type OrderService struct {
	backend    *upstream.Client
	cart       *store.Cart
	state      *store.OpenOrders
	reconciler *Reconciler
	summary    *SummaryService
	log        *logrus.Logger
}

func NewOrderService(backend *upstream.Client, cart *store.Cart, state *store.OpenOrders, reconciler *Reconciler, summary *SummaryService, log *logrus.Logger) *OrderService {
	return &OrderService{
		backend:    backend,
		cart:       cart,
		state:      state,
		reconciler: reconciler,
		summary:    summary,
		log:        log,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// SubmitCart posts the whole cart to the table's tab as one order-creation
// call, then clears the cart and reconciles the table.
func (s *OrderService) SubmitCart(ctx context.Context, tableID int) error {
	if tableID == 0 {
		return ErrNoTableSelected
	}
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return ErrEmptyCart
	}

	items := make([]models.OrderItemInput, 0, len(lines))
	for _, l := range lines {
		items = append(items, models.OrderItemInput{
			ProductID:  l.ProductID,
			Qty:        l.Qty,
			UnitPrice:  l.UnitPrice,
			Garnitures: optional(l.Garnitures),
			Note:       optional(l.Note),
		})
	}
	input := models.CreateOpenOrderInput{TableID: tableID, Items: items}
	if err := s.backend.CreateOpenOrder(ctx, input); err != nil {
		s.log.WithError(err).WithField("table", tableID).Error("add to tab failed")
		return fmt.Errorf("could not add to tab: %w", err)
	}

	s.cart.Clear()
	s.reconciler.Reconcile(ctx, tableID)
	return nil
}

// AdjustLine changes an open-order line's quantity by delta. The line must
// carry a server-assigned id and the table a known open order id.
func (s *OrderService) AdjustLine(ctx context.Context, tableID, itemID, delta int) error {
	orderID, err := s.editableOrderID(tableID, itemID)
	if err != nil {
		return err
	}
	if err := s.backend.AdjustItem(ctx, orderID, itemID, delta); err != nil {
		s.log.WithError(err).WithField("table", tableID).Error("quantity update failed")
		return fmt.Errorf("could not update quantity: %w", err)
	}
	s.reconciler.Reconcile(ctx, tableID)
	return nil
}

// RemoveLine deletes an open-order line, with the same preconditions as
// AdjustLine.
func (s *OrderService) RemoveLine(ctx context.Context, tableID, itemID int) error {
	orderID, err := s.editableOrderID(tableID, itemID)
	if err != nil {
		return err
	}
	if err := s.backend.DeleteItem(ctx, orderID, itemID); err != nil {
		s.log.WithError(err).WithField("table", tableID).Error("line delete failed")
		return fmt.Errorf("could not delete line: %w", err)
	}
	s.reconciler.Reconcile(ctx, tableID)
	return nil
}

func (s *OrderService) editableOrderID(tableID, itemID int) (int, error) {
	if itemID == 0 {
		return 0, ErrLineNotEditable
	}
	detail := s.state.Detail(tableID)
	if detail == nil || detail.OrderID == 0 {
		return 0, ErrNoOpenOrder
	}
	return detail.OrderID, nil
}

// CloseTable finalizes the table's open order with the given payment method,
// invalidates the table's snapshots and refreshes the dashboard summary.
func (s *OrderService) CloseTable(ctx context.Context, tableID int, payment string) error {
	if tableID == 0 {
		return ErrNoTableSelected
	}
	orderID := s.resolveOpenID(ctx, tableID)
	if orderID == 0 {
		return ErrNoOpenOrder
	}

	input := models.CloseOrderInput{Payment: payment}
	if err := s.backend.CloseOrder(ctx, orderID, input); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"table": tableID, "order": orderID}).Error("close failed")
		return fmt.Errorf("could not close order: %w", err)
	}

	s.state.Invalidate(tableID)
	s.summary.Refresh(ctx)
	s.reconciler.RefreshSummary(ctx, tableID)
	return nil
}

// resolveOpenID prefers the cached summary and falls back to a fresh fetch,
// so a close right after startup still finds the order.
func (s *OrderService) resolveOpenID(ctx context.Context, tableID int) int {
	if info := s.state.Info(tableID); info != nil && info.ID > 0 {
		return info.ID
	}
	entry, err := s.backend.OpenOrderSummary(ctx, tableID)
	if err != nil || entry == nil {
		return 0
	}
	return entry.ID
}
