package normalize

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"
)

func pngLogo(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestResolveLogoScalesIntoBoundingBox(t *testing.T) {
	n := New(Config{})
	view, warn := n.resolveLogo(context.Background(), pngLogo(t, 200, 50))
	if warn != "" {
		t.Fatalf("unexpected warning %q", warn)
	}
	if view == nil {
		t.Fatal("expected a logo view")
	}
	if view.Format != formatPNG {
		t.Fatalf("expected PNG format, got %q", view.Format)
	}
	// 200x50 px caps at width 90 px, height 22.5 px, then 0.4 mm/px.
	if view.Width != 36 || view.Height != 9 {
		t.Fatalf("unexpected scaled size %vx%v mm", view.Width, view.Height)
	}
}

func TestResolveLogoSmallImagePassesThrough(t *testing.T) {
	n := New(Config{})
	view, warn := n.resolveLogo(context.Background(), pngLogo(t, 50, 20))
	if warn != "" || view == nil {
		t.Fatalf("unexpected outcome view=%v warn=%q", view, warn)
	}
	if view.Width != 20 || view.Height != 8 {
		t.Fatalf("unexpected size %vx%v mm", view.Width, view.Height)
	}
}

func TestResolveLogoCorruptBlobDegrades(t *testing.T) {
	n := New(Config{})
	view, warn := n.resolveLogo(context.Background(), []byte("definitely not an image"))
	if view != nil {
		t.Fatalf("expected nil view for corrupt blob, got %+v", view)
	}
	if warn == "" {
		t.Fatal("expected a warning for corrupt blob")
	}
}

func TestNormalizeCorruptLogoWarnsAndContinues(t *testing.T) {
	doc := testDocument()
	doc.Logo = []byte{0x00, 0x01, 0x02}
	n := New(Config{})
	view, warnings := n.Normalize(context.Background(), doc)
	if view.Logo != nil {
		t.Fatal("expected logo omitted")
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
	// Everything else still normalized.
	if view.Total != "$220.00" {
		t.Fatalf("unexpected total %q", view.Total)
	}
}

func TestSniffFormat(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want string
	}{
		{"png", []byte("\x89PNG\r\n\x1a\nrest"), formatPNG},
		{"jpeg", []byte("\xff\xd8\xff\xe0rest"), formatJPEG},
		{"gif", []byte("GIF89arest"), formatGIF},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), formatWebP},
		{"unknown", []byte("garbage"), formatJPEG},
	}
	for _, tc := range cases {
		if got := sniffFormat(tc.data); got != tc.want {
			t.Fatalf("%s: sniffFormat = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestFitLogoTallImage(t *testing.T) {
	w, h := fitLogo(40, 200)
	if h != maxLogoHeightPx {
		t.Fatalf("expected height capped at %v, got %v", float64(maxLogoHeightPx), h)
	}
	if w != 9 {
		t.Fatalf("expected width 9, got %v", w)
	}
}
