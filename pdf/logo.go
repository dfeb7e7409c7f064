package pdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"io"
	"net/http"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/webp"
)

// LogoPayload is a raster image in a format the sink can embed directly.
type LogoPayload struct {
	Bytes  []byte
	Format string // "PNG", "JPG" or "GIF"
}

const (
	logoFetchTimeout = 5 * time.Second
	logoMaxBytes     = 8 << 20
)

var logoClient = &http.Client{Timeout: logoFetchTimeout}

// ResolveLogo fetches a logo reference and returns an embeddable payload,
// or nil on any failure: the document renders fine without a logo, and a
// broken image URL must never fail the whole quote. The reference is either
// an http(s) URL or a base64 data URI. WebP input is transcoded to PNG
// since the embedding backend only understands PNG/JPEG/GIF.
func ResolveLogo(ctx context.Context, ref string) *LogoPayload {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil
	}
	var raw []byte
	switch {
	case strings.HasPrefix(ref, "data:"):
		raw = decodeDataURI(ref)
	case strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://"):
		raw = fetchLogo(ctx, ref)
	default:
		return nil
	}
	if len(raw) == 0 {
		return nil
	}
	return toEmbeddable(raw)
}

func fetchLogo(ctx context.Context, url string) []byte {
	ctx, cancel := context.WithTimeout(ctx, logoFetchTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	resp, err := logoClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, logoMaxBytes))
	if err != nil {
		return nil
	}
	return raw
}

func decodeDataURI(uri string) []byte {
	_, data, ok := strings.Cut(uri, ",")
	if !ok {
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil
	}
	return raw
}

// toEmbeddable validates the raster stream and normalizes it for the sink.
// PNG/JPEG/GIF pass through unchanged; WebP is re-encoded as PNG; anything
// else is rejected.
func toEmbeddable(raw []byte) *LogoPayload {
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil
	}
	switch format {
	case "png":
		return &LogoPayload{Bytes: raw, Format: "PNG"}
	case "jpeg":
		return &LogoPayload{Bytes: raw, Format: "JPG"}
	case "gif":
		return &LogoPayload{Bytes: raw, Format: "GIF"}
	case "webp":
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil
		}
		return &LogoPayload{Bytes: buf.Bytes(), Format: "PNG"}
	}
	return nil
}
