// upstream/orders.go
package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"cakmak-pos/models"
)

// openOrderEnvelope absorbs the shapes GET /Orders/open has been seen to
// return: a bare entry, a one-element array, or an entry wrapped in "data".
// Field-name casing (id vs Id) is covered by the decoder's case-insensitive
// key matching.
type openOrderEnvelope struct {
	models.OpenOrderEntry
	Data *models.OpenOrderEntry `json:"data,omitempty"`
}

func (e openOrderEnvelope) entry() *models.OpenOrderEntry {
	if e.Data != nil {
		return e.Data
	}
	out := e.OpenOrderEntry
	return &out
}

// OpenOrderSummary fetches the open-order summary for a table. It returns
// nil when the table has no open order.
func (c *Client) OpenOrderSummary(ctx context.Context, tableID int) (*models.OpenOrderEntry, error) {
	query := url.Values{"tableId": {strconv.Itoa(tableID)}}
	data, err := c.getRaw(ctx, "/Orders/open", query)
	if err != nil {
		return nil, err
	}
	var env openOrderEnvelope
	ok, err := decodeFirst(data, &env)
	if err != nil {
		return nil, fmt.Errorf("decode /Orders/open: %w", err)
	}
	if !ok {
		return nil, nil
	}
	entry := env.entry()
	if entry.ID == 0 && entry.Total == 0 && entry.Count == 0 && len(entry.Items) == 0 {
		return nil, nil
	}
	return entry, nil
}

// OpenOrderDetail fetches the line-item view of a table's open order.
// Returns nil when the backend has nothing open for the table.
func (c *Client) OpenOrderDetail(ctx context.Context, tableID int) (*models.OpenOrderDetail, error) {
	query := url.Values{"tableId": {strconv.Itoa(tableID)}}
	data, err := c.getRaw(ctx, "/Orders/open/detail", query)
	if err != nil {
		return nil, err
	}
	var raw struct {
		ID    int                    `json:"id"`
		Items []models.OpenOrderItem `json:"items"`
		Total float64                `json:"total"`
		Count int                    `json:"count"`
	}
	ok, err := decodeFirst(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("decode /Orders/open/detail: %w", err)
	}
	if !ok {
		return nil, nil
	}
	detail := &models.OpenOrderDetail{
		OrderID: raw.ID,
		Items:   raw.Items,
		Total:   raw.Total,
		Count:   raw.Count,
	}
	if detail.Items == nil {
		detail.Items = []models.OpenOrderItem{}
	}
	if detail.Count == 0 {
		detail.Count = len(detail.Items)
	}
	return detail, nil
}

func (c *Client) CreateOpenOrder(ctx context.Context, input models.CreateOpenOrderInput) error {
	return c.send(ctx, http.MethodPost, "/Orders/open", input, nil)
}

func (c *Client) CloseOrder(ctx context.Context, orderID int, input models.CloseOrderInput) error {
	return c.send(ctx, http.MethodPost, fmt.Sprintf("/Orders/%d/close", orderID), input, nil)
}

func (c *Client) AdjustItem(ctx context.Context, orderID, itemID, delta int) error {
	body := map[string]int{"delta": delta}
	return c.send(ctx, http.MethodPatch, fmt.Sprintf("/Orders/%d/items/%d", orderID, itemID), body, nil)
}

func (c *Client) DeleteItem(ctx context.Context, orderID, itemID int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/Orders/%d/items/%d", orderID, itemID), nil, nil)
}

func (c *Client) ClosedOrders(ctx context.Context, from, to string) ([]models.ClosedOrder, error) {
	query := url.Values{"from": {from}, "to": {to}}
	var rows []models.ClosedOrder
	if err := c.get(ctx, "/Orders/closed", query, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) OrderDetail(ctx context.Context, id int) (*models.OrderDetail, error) {
	var detail models.OrderDetail
	if err := c.get(ctx, fmt.Sprintf("/Orders/%d/detail", id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}
