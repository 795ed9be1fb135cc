// receipt/inline.go
package receipt

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

// ImageWait bounds the total time spent fetching images for a receipt so a
// slow or broken source can never hold up printing.
const ImageWait = 1500 * time.Millisecond

// Inliner fetches remote images and hands them back as data URLs, making
// the printable document independent of the network at print time.
type Inliner struct {
	http *http.Client
}

func NewInliner() *Inliner {
	// No client timeout here; each fetch runs under the ImageWait context.
	return &Inliner{http: &http.Client{}}
}

// DataURL fetches src and returns it as a data URL. Any failure, including
// the deadline, yields an empty string: the receipt prints without the
// image rather than waiting.
func (i *Inliner) DataURL(ctx context.Context, src string) string {
	if src == "" {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, ImageWait)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return ""
	}
	resp, err := i.http.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}
	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}

// QRDataURL renders the given URL as an embedded QR PNG. Generated locally,
// so it needs no network at all.
func QRDataURL(url string) string {
	if url == "" {
		return ""
	}
	png, err := qrcode.Encode(url, qrcode.Medium, 120)
	if err != nil {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
