package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestSaveRowValidationSkipsBackend(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ledger := NewLedger(testClient(srv), quietLogger())

	row := ledger.AddRow(ExpenseRow{Amount: 50})
	if err := ledger.SaveRow(context.Background(), 0, row.TmpID); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}

	row2 := ledger.AddRow(ExpenseRow{Title: "Ekmek"})
	if err := ledger.SaveRow(context.Background(), 0, row2.TmpID); !errors.Is(err, ErrAmountNotPositive) {
		t.Errorf("expected ErrAmountNotPositive, got %v", err)
	}

	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("invalid rows must never reach the backend, saw %d calls", n)
	}
}

func TestSaveNewRowCapturesAssignedID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Write([]byte(`{"id":42}`))
			return
		}
		w.Write([]byte(`[{"id":42,"title":"Ekmek","amount":50}]`))
	}))
	defer srv.Close()

	ledger := NewLedger(testClient(srv), quietLogger())
	if err := ledger.LoadDay(context.Background(), "2026-08-30"); err != nil {
		t.Fatalf("load day: %v", err)
	}

	row := ledger.AddRow(ExpenseRow{Title: "Ekmek", Amount: 50})
	if err := ledger.SaveRow(context.Background(), 0, row.TmpID); err != nil {
		t.Fatalf("save: %v", err)
	}

	view := ledger.View()
	if len(view.Rows) != 1 {
		t.Fatalf("expected 1 row after reload, got %d", len(view.Rows))
	}
	saved := view.Rows[0]
	if saved.ID != 42 || saved.IsNew || saved.Dirty {
		t.Errorf("expected persisted row with id 42, got %+v", saved)
	}
}

func TestDeleteUnsavedRowIsLocalOnly(t *testing.T) {
	var deletes int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			atomic.AddInt32(&deletes, 1)
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ledger := NewLedger(testClient(srv), quietLogger())
	row := ledger.AddRow(ExpenseRow{Title: "Su", Amount: 10})

	if err := ledger.DeleteRow(context.Background(), 0, row.TmpID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(ledger.View().Rows) != 0 {
		t.Error("unsaved row must disappear locally")
	}
	if atomic.LoadInt32(&deletes) != 0 {
		t.Error("unsaved row must not trigger a backend delete")
	}
}

func TestLoadDayLastRequestWins(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		from := r.URL.Query().Get("from")
		if from == "2026-08-01" && r.URL.Query().Get("to") == "2026-08-01" {
			// Hold the first day's response until the second load finished.
			close(started)
			<-release
			w.Write([]byte(`[{"id":1,"title":"Eski","amount":999}]`))
			return
		}
		w.Write([]byte(`[{"id":2,"title":"Yeni","amount":25}]`))
	}))
	defer srv.Close()

	ledger := NewLedger(testClient(srv), quietLogger())

	done := make(chan error, 1)
	go func() { done <- ledger.LoadDay(context.Background(), "2026-08-01") }()
	<-started

	if err := ledger.LoadDay(context.Background(), "2026-08-02"); err != nil {
		t.Fatalf("second load: %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first load: %v", err)
	}

	view := ledger.View()
	if view.Date != "2026-08-02" {
		t.Errorf("expected the later day to stay selected, got %s", view.Date)
	}
	if len(view.Rows) != 1 || view.Rows[0].Title != "Yeni" {
		t.Errorf("stale day's rows must be dropped, got %+v", view.Rows)
	}
}
