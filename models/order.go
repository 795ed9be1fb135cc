package models

// OrderItemInput is one line of an order creation request. Garnitures and
// Note serialize as null when absent, which is what the backend expects.
type OrderItemInput struct {
	ProductID  int     `json:"productId"`
	Qty        int     `json:"qty"`
	UnitPrice  float64 `json:"unitPrice"`
	Garnitures *string `json:"garnitures"`
	Note       *string `json:"note"`
}

// CreateOpenOrderInput is the body of POST /Orders/open. Posting to a table
// that already has an open order extends it.
type CreateOpenOrderInput struct {
	TableID int              `json:"tableId"`
	Note    *string          `json:"note"`
	Items   []OrderItemInput `json:"items"`
}

type CloseOrderInput struct {
	Payment string  `json:"payment"`
	Note    *string `json:"note"`
}

// OpenOrderInfo is the summary view of a table's open order: enough for the
// table card (open/empty, item count, running total).
type OpenOrderInfo struct {
	ID      int     `json:"id"`
	TableID int     `json:"tableId"`
	OrderNo string  `json:"orderNo"`
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
}

// OpenOrderItem is a line in an open order. ID is zero when the backend did
// not assign one; such lines cannot be edited or deleted remotely.
type OpenOrderItem struct {
	ID         int     `json:"id,omitempty"`
	ProductID  int     `json:"productId,omitempty"`
	Name       string  `json:"name"`
	Qty        int     `json:"qty"`
	UnitPrice  float64 `json:"unitPrice"`
	Garnitures string  `json:"garnitures,omitempty"`
	Note       string  `json:"note,omitempty"`
}

// OpenOrderDetail is the canonical snapshot the rest of the app works with.
// Total and Count come from the server; they are not recomputed here.
type OpenOrderDetail struct {
	OrderID int             `json:"orderId,omitempty"`
	Items   []OpenOrderItem `json:"items"`
	Total   float64         `json:"total"`
	Count   int             `json:"count"`
}

// OpenOrderEntry is what GET /Orders/open returns for a table: the summary
// fields plus, on some backend versions, the line items themselves.
type OpenOrderEntry struct {
	OpenOrderInfo
	Items []OpenOrderItem `json:"items,omitempty"`
}

// ClosedOrder is an immutable historical record. ClosedAt stays a string
// because the backend's timestamp carries no zone.
type ClosedOrder struct {
	ID      int     `json:"id"`
	OrderNo string  `json:"orderNo"`
	TableID *int    `json:"tableId"`
	Payment string  `json:"payment"`
	ClosedAt string `json:"closedAt"`
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
}

type OrderDetailItem struct {
	ProductName string  `json:"productName,omitempty"`
	Name        string  `json:"name,omitempty"`
	Qty         int     `json:"qty"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total,omitempty"`
	Garnitures  string  `json:"garnitures,omitempty"`
	Note        string  `json:"note,omitempty"`
}

// DisplayName prefers the backend's ProductName field over the bare name.
func (i OrderDetailItem) DisplayName() string {
	if i.ProductName != "" {
		return i.ProductName
	}
	if i.Name != "" {
		return i.Name
	}
	return "Ürün"
}

// LineTotal falls back to qty x unit price when the backend omits the total.
func (i OrderDetailItem) LineTotal() float64 {
	if i.Total != 0 {
		return i.Total
	}
	return float64(i.Qty) * i.UnitPrice
}

type OrderDetail struct {
	ID       int               `json:"id"`
	OrderNo  string            `json:"orderNo"`
	TableID  *int              `json:"tableId"`
	Payment  string            `json:"payment"`
	ClosedAt string            `json:"closedAt"`
	Items    []OrderDetailItem `json:"items"`
	Total    float64           `json:"total,omitempty"`
}

// GrandTotal sums the line totals; used as a display fallback only.
func (d OrderDetail) GrandTotal() float64 {
	var sum float64
	for _, it := range d.Items {
		sum += it.LineTotal()
	}
	return sum
}
