package utils

import (
	"fmt"
	"strings"
)

// FormatAmount renders a currency value the way the receipts and reports
// show it: two decimals with a trailing lira glyph.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f ₺", v)
}

const garniturePrefix = "çıkarılacaklar:"

// PrettyGarnitures normalizes a garniture string to a single
// "Çıkarılacaklar: ..." prefix regardless of how it was stored.
func PrettyGarnitures(g string) string {
	raw := strings.TrimSpace(g)
	if strings.HasPrefix(strings.ToLower(raw), garniturePrefix) {
		raw = strings.TrimSpace(raw[len(garniturePrefix):])
	}
	if raw == "" {
		return ""
	}
	return "Çıkarılacaklar: " + raw
}
