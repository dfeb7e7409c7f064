package pdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

func pngFixture(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestResolveLogoFromServer(t *testing.T) {
	raw := pngFixture(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(raw)
	}))
	defer srv.Close()

	logo := ResolveLogo(context.Background(), srv.URL+"/logo.png")
	if logo == nil {
		t.Fatalf("expected payload")
	}
	if logo.Format != "PNG" || !bytes.Equal(logo.Bytes, raw) {
		t.Fatalf("png should pass through unchanged, got format %q", logo.Format)
	}
}

func TestResolveLogoDataURI(t *testing.T) {
	raw := pngFixture(t)
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)
	logo := ResolveLogo(context.Background(), uri)
	if logo == nil || logo.Format != "PNG" {
		t.Fatalf("data URI should decode, got %+v", logo)
	}
}

// Every failure mode returns nil rather than an error: the document must
// render without a logo.
func TestResolveLogoFailures(t *testing.T) {
	srv500 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv500.Close()
	srvGarbage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not an image"))
	}))
	defer srvGarbage.Close()

	cases := map[string]string{
		"empty":           "",
		"relative path":   "/uploads/logo.png",
		"unreachable":     "http://127.0.0.1:1/logo.png",
		"http error":      srv500.URL,
		"undecodable":     srvGarbage.URL,
		"broken data uri": "data:image/png;base64,!!!!",
	}
	for name, ref := range cases {
		if got := ResolveLogo(context.Background(), ref); got != nil {
			t.Fatalf("%s: expected nil, got %+v", name, got)
		}
	}
}

func TestResolveLogoCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(pngFixture(t))
	}))
	defer srv.Close()
	if got := ResolveLogo(ctx, srv.URL); got != nil {
		t.Fatalf("cancelled context should fail the fetch, got %+v", got)
	}
}
