package receipt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func sampleDocument() Document {
	return Document{
		StoreName: "Çakmak Fast&Food",
		TableName: "Masa 3",
		OrderNo:   "A-17",
		Lines: []Line{
			{Name: "Tavuk Dürüm", Qty: 2, Total: 180, Garnitures: "Çıkarılacaklar: soğan"},
			{Name: "Ayran", Qty: 2, Total: 30, Note: "soğuk olsun"},
		},
		Total:           210,
		Payment:         "Nakit",
		ClosedAt:        time.Date(2026, 8, 30, 21, 15, 0, 0, time.Local),
		InstagramHandle: "@cakmakfastfood",
	}
}

func TestReceiptHTMLContent(t *testing.T) {
	html, err := sampleDocument().HTML()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"Çakmak Fast&amp;Food",
		"Masa: Masa 3",
		"#A-17",
		"Tavuk Dürüm",
		"Çıkarılacaklar: soğan",
		"Not: soğuk olsun",
		"180.00 ₺",
		"210.00 ₺",
		"Ödeme: <strong>Nakit</strong>",
		"30.08.2026 21:15:00",
		"@cakmakfastfood",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered receipt missing %q", want)
		}
	}
}

func TestReceiptOmitsMissingImages(t *testing.T) {
	html, err := sampleDocument().HTML()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<img") {
		t.Error("no images expected when logo and QR are absent")
	}
}

func TestReceiptEmbedsDataURLs(t *testing.T) {
	doc := sampleDocument()
	doc.LogoData = "data:image/png;base64,aGVsbG8="
	doc.QRData = QRDataURL("https://instagram.com/cakmakfastfood")

	html, err := doc.HTML()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, `src="data:image/png;base64,aGVsbG8="`) {
		t.Error("logo data URL must survive template escaping")
	}
	if strings.Contains(html, "ZgotmplZ") {
		t.Error("data URLs were scrubbed by the template engine")
	}
	if !strings.Contains(html, `alt="QR"`) {
		t.Error("QR image missing")
	}
}

func TestInlinerReturnsDataURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("fakejpeg"))
	}))
	defer srv.Close()

	got := NewInliner().DataURL(context.Background(), srv.URL+"/logo.jpg")
	if !strings.HasPrefix(got, "data:image/jpeg;base64,") {
		t.Errorf("unexpected data URL: %q", got)
	}
}

func TestInlinerFailuresYieldEmptyString(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(ImageWait + 500*time.Millisecond)
	}))
	defer slow.Close()

	inliner := NewInliner()
	if got := inliner.DataURL(context.Background(), slow.URL); got != "" {
		t.Errorf("slow source must yield empty, got %q", got)
	}
	if got := inliner.DataURL(context.Background(), ""); got != "" {
		t.Errorf("empty source must yield empty, got %q", got)
	}

	broken := httptest.NewServer(http.NotFoundHandler())
	defer broken.Close()
	if got := inliner.DataURL(context.Background(), broken.URL); got != "" {
		t.Errorf("404 must yield empty, got %q", got)
	}
}

func TestQRDataURL(t *testing.T) {
	if got := QRDataURL(""); got != "" {
		t.Errorf("empty url must yield empty, got %q", got)
	}
	got := QRDataURL("https://instagram.com/cakmakfastfood")
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Errorf("unexpected QR data URL prefix: %q", got)
	}
}
