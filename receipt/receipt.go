// receipt/receipt.go
package receipt

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// Line is one printed row of the receipt.
type Line struct {
	Name       string
	Qty        int
	Total      float64
	Garnitures string
	Note       string
}

// Document is everything a 60mm receipt needs. LogoData and QRData are data
// URLs so the rendered HTML stays printable without network access.
type Document struct {
	StoreName       string
	TableName       string
	OrderNo         string
	Lines           []Line
	Total           float64
	Payment         string
	ClosedAt        time.Time
	LogoData        string
	QRData          string
	InstagramHandle string
}

var receiptTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"amount": func(v float64) string { return fmt.Sprintf("%.2f ₺", v) },
	// Inlined images are data URLs we built ourselves; without this the
	// template engine would scrub the data: scheme.
	"dataurl": func(s string) template.URL { return template.URL(s) },
}).Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8"/>
<title>Fiş</title>
<style>
  @page { size: 60mm auto; margin: 4mm 3mm; }
  html,body{margin:0;padding:0;background:#fff;color:#000;font:13px/1.35 system-ui,Segoe UI,Roboto,Arial}
  .w{width:60mm;max-width:60mm;padding:6px 4px 10px 4px}
  .hdr{display:flex;align-items:center;gap:10px;margin-bottom:6px}
  .store{font-weight:800;font-size:15px}
  .meta{font-size:11px;color:#444;line-height:1.4;margin-top:2px}
  table{width:100%;border-collapse:collapse;margin-top:6px}
  thead th{font-size:11px;color:#000;text-align:left;padding-bottom:4px;border-bottom:2px solid #000}
  .line td{border-bottom:1px dashed #ccc;vertical-align:top;padding:5px 0}
  .nm{font-weight:600}
  .sub{font-size:11px;color:#555;margin-top:2px}
  .col-qty{width:14%;text-align:center;white-space:nowrap}
  .col-amt{width:20%;text-align:right;font-weight:700;white-space:nowrap}
  .sum{display:flex;justify-content:space-between;margin-top:8px;padding-top:5px;border-top:1px solid #000;font-weight:800}
  .bottom{margin-top:10px;border-top:1px solid #e5e5e5;padding-top:6px;text-align:center}
  .insta{display:flex;flex-direction:column;align-items:center;gap:3px}
  .thanks{font-size:11px;margin-top:6px;color:#111;text-align:center}
</style>
</head>
<body>
  <div class="w">
    <div class="hdr">
      {{if .LogoData}}<img src="{{dataurl .LogoData}}" alt="Logo" style="width:80px;height:auto;object-fit:contain;display:block;" />{{end}}
      <div>
        <div class="store">{{.StoreName}}</div>
        <div class="meta">
          <div>Masa: {{.TableName}}{{if .OrderNo}} • #{{.OrderNo}}{{end}}</div>
          <div>{{.ClosedAt.Format "02.01.2006 15:04:05"}}</div>
          {{if .Payment}}<div>Ödeme: <strong>{{.Payment}}</strong></div>{{end}}
        </div>
      </div>
    </div>
    <table>
      <thead><tr><th>Ürün</th><th>Adet</th><th style="text-align:right">Tutar</th></tr></thead>
      <tbody>
      {{range .Lines}}
        <tr class="line">
          <td class="col-name">
            <div class="nm">{{.Name}}</div>
            {{if .Garnitures}}<div class="sub">• {{.Garnitures}}</div>{{end}}
            {{if .Note}}<div class="sub">• Not: {{.Note}}</div>{{end}}
          </td>
          <td class="col-qty">{{.Qty}}</td>
          <td class="col-amt">{{amount .Total}}</td>
        </tr>
      {{end}}
      </tbody>
    </table>
    <div class="sum">
      <div>GENEL TOPLAM</div>
      <div>{{amount .Total}}</div>
    </div>
    <div class="bottom">
      <div class="insta">
        {{if .QRData}}<img src="{{dataurl .QRData}}" alt="QR" style="width:65px;height:65px;object-fit:contain;margin-bottom:3px;" />{{end}}
        <div style="font-size:11px;">{{.InstagramHandle}}</div>
      </div>
      <div class="thanks">Afiyet olsun! Bizi tercih ettiğiniz için teşekkür ederiz 💛</div>
    </div>
  </div>
</body>
</html>`))

// HTML renders the receipt as a self-contained printable document.
func (d Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("render receipt: %w", err)
	}
	return buf.String(), nil
}
