package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClosedOrdersFiltersAndTotals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Orders/closed":
			w.Write([]byte(`[
				{"id":1,"tableId":1,"payment":"Nakit","total":100},
				{"id":2,"tableId":2,"payment":"Kart","total":200},
				{"id":3,"tableId":1,"payment":"nakit","total":50},
				{"id":4,"payment":"","total":30}
			]`))
		case "/Expenses":
			w.Write([]byte(`[{"id":1,"amount":40}]`))
		}
	}))
	defer srv.Close()

	svc := NewReportService(testClient(srv), quietLogger())

	report, err := svc.ClosedOrders(context.Background(), ReportFilter{From: "2026-08-01", To: "2026-08-30"})
	if err != nil {
		t.Fatalf("closed orders: %v", err)
	}
	if len(report.Rows) != 4 {
		t.Fatalf("expected all 4 rows, got %d", len(report.Rows))
	}
	if report.Totals.Revenue != 380 || report.Totals.Expense != 40 || report.Totals.Net != 340 {
		t.Errorf("unexpected totals: %+v", report.Totals)
	}
	if report.Totals.ByPayment["nakit"] != 150 || report.Totals.ByPayment["diğer"] != 30 {
		t.Errorf("unexpected payment breakdown: %+v", report.Totals.ByPayment)
	}

	// Payment filtering is case-insensitive.
	report, err = svc.ClosedOrders(context.Background(), ReportFilter{From: "a", To: "b", Payment: "NAKIT"})
	if err != nil {
		t.Fatalf("filtered: %v", err)
	}
	if len(report.Rows) != 2 || report.Totals.Revenue != 150 {
		t.Errorf("payment filter failed: %+v", report)
	}

	report, err = svc.ClosedOrders(context.Background(), ReportFilter{From: "a", To: "b", TableID: 2})
	if err != nil {
		t.Fatalf("table filter: %v", err)
	}
	if len(report.Rows) != 1 || report.Rows[0].ID != 2 {
		t.Errorf("table filter failed: %+v", report.Rows)
	}
}

func TestClosedOrdersExpenseFailureDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Orders/closed":
			w.Write([]byte(`[{"id":1,"payment":"Kart","total":100}]`))
		case "/Expenses":
			http.Error(w, "down", http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	svc := NewReportService(testClient(srv), quietLogger())
	report, err := svc.ClosedOrders(context.Background(), ReportFilter{From: "a", To: "b"})
	if err != nil {
		t.Fatalf("expense failure must not fail the report: %v", err)
	}
	if report.Totals.Expense != 0 || report.Totals.Net != 100 {
		t.Errorf("expected zero expense fallback, got %+v", report.Totals)
	}
}
