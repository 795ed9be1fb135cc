package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"cakmak-pos/models"
	"cakmak-pos/store"
)

// recordingBackend stubs the restaurant backend and records mutating calls.
type recordingBackend struct {
	mu     sync.Mutex
	posts  []string
	bodies map[string]string
}

func newRecordingBackend() (*recordingBackend, *httptest.Server) {
	rb := &recordingBackend{bodies: make(map[string]string)}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			body, _ := io.ReadAll(r.Body)
			rb.mu.Lock()
			rb.posts = append(rb.posts, r.Method+" "+r.URL.Path)
			rb.bodies[r.URL.Path] = string(body)
			rb.mu.Unlock()
			w.WriteHeader(http.StatusOK)
			return
		}
		switch r.URL.Path {
		case "/Orders/open", "/Orders/open/detail":
			w.Write([]byte(`null`))
		case "/Dashboard/summary":
			w.Write([]byte(`{"revenue":0}`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	return rb, srv
}

func (rb *recordingBackend) mutations() []string {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	out := make([]string, len(rb.posts))
	copy(out, rb.posts)
	return out
}

func (rb *recordingBackend) body(path string) string {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.bodies[path]
}

func newOrderService(srv *httptest.Server) (*OrderService, *store.Cart, *store.OpenOrders) {
	client := testClient(srv)
	cart := store.NewCart()
	state := store.NewOpenOrders()
	catalog := store.NewCatalog()
	log := quietLogger()
	rec := NewReconciler(client, state, catalog, log)
	summary := NewSummaryService(client, log)
	return NewOrderService(client, cart, state, rec, summary, log), cart, state
}

func TestSubmitCartEmptyCartMakesNoCall(t *testing.T) {
	rb, srv := newRecordingBackend()
	defer srv.Close()
	svc, _, _ := newOrderService(srv)

	if err := svc.SubmitCart(context.Background(), 1); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if len(rb.mutations()) != 0 {
		t.Errorf("no mutation expected, got %v", rb.mutations())
	}
}

func TestSubmitCartPostsAndClears(t *testing.T) {
	rb, srv := newRecordingBackend()
	defer srv.Close()
	svc, cart, _ := newOrderService(srv)

	cart.Add(models.Product{ID: 3, Name: "Ayran", Prices: []models.Price{{Value: 15}}}, store.Extra{})

	if err := svc.SubmitCart(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cart.Empty() {
		t.Error("cart must be cleared after a successful submit")
	}
	body := rb.body("/Orders/open")
	if !strings.Contains(body, `"tableId":2`) || !strings.Contains(body, `"productId":3`) {
		t.Errorf("unexpected create body: %s", body)
	}
	if !strings.Contains(body, `"garnitures":null`) {
		t.Errorf("absent garnitures must serialize as null: %s", body)
	}
}

func TestAdjustLinePreconditions(t *testing.T) {
	rb, srv := newRecordingBackend()
	defer srv.Close()
	svc, _, state := newOrderService(srv)

	if err := svc.AdjustLine(context.Background(), 1, 0, 1); !errors.Is(err, ErrLineNotEditable) {
		t.Errorf("zero item id: expected ErrLineNotEditable, got %v", err)
	}
	if err := svc.AdjustLine(context.Background(), 1, 5, 1); !errors.Is(err, ErrNoOpenOrder) {
		t.Errorf("no cached order: expected ErrNoOpenOrder, got %v", err)
	}
	if len(rb.mutations()) != 0 {
		t.Errorf("precondition failures must not reach the backend, got %v", rb.mutations())
	}

	ticket := state.BeginDetailRefresh(1)
	state.SetDetail(1, ticket, &models.OpenOrderDetail{OrderID: 7, Items: []models.OpenOrderItem{{ID: 5}}})
	if err := svc.AdjustLine(context.Background(), 1, 5, -1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rb.body("/Orders/7/items/5"); !strings.Contains(got, `"delta":-1`) {
		t.Errorf("unexpected adjust body: %s", got)
	}
}

func TestCloseTableWithoutOpenOrder(t *testing.T) {
	rb, srv := newRecordingBackend()
	defer srv.Close()
	svc, _, _ := newOrderService(srv)

	if err := svc.CloseTable(context.Background(), 4, "Nakit"); !errors.Is(err, ErrNoOpenOrder) {
		t.Fatalf("expected ErrNoOpenOrder, got %v", err)
	}
	if len(rb.mutations()) != 0 {
		t.Errorf("close must not be posted for an empty table, got %v", rb.mutations())
	}
}

func TestCloseTablePostsAndInvalidates(t *testing.T) {
	rb, srv := newRecordingBackend()
	defer srv.Close()
	svc, _, state := newOrderService(srv)

	ticket := state.BeginSummaryRefresh(4)
	state.SetInfo(4, ticket, &models.OpenOrderInfo{ID: 7, TableID: 4, Total: 120})

	if err := svc.CloseTable(context.Background(), 4, "Nakit"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := rb.body("/Orders/7/close")
	if !strings.Contains(body, `"payment":"Nakit"`) || !strings.Contains(body, `"note":null`) {
		t.Errorf("unexpected close body: %s", body)
	}
	if state.Detail(4) != nil {
		t.Error("detail snapshot must be invalidated after close")
	}
}
