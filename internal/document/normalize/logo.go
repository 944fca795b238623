package normalize

import (
	"bytes"
	"context"
	"image"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/webp"
)

// Logo bounding box in source pixels, and the pixel-to-millimetre factor the
// preview uses for prominent logo display.
const (
	maxLogoWidthPx  = 90
	maxLogoHeightPx = 45
	pxToMM          = 0.4
)

const (
	formatPNG  = "PNG"
	formatJPEG = "JPG"
	formatGIF  = "GIF"
	formatWebP = "WEBP"
)

type logoOutcome struct {
	view *LogoView
	warn string
}

// resolveLogo decodes and scales the logo blob. This is the render's only
// suspension point; the decode runs under a bounded timeout and any failure
// degrades to a nil view with a warning, never an error.
func (n *Normalizer) resolveLogo(ctx context.Context, data []byte) (*LogoView, string) {
	ctx, cancel := context.WithTimeout(ctx, n.cfg.LogoTimeout)
	defer cancel()

	done := make(chan logoOutcome, 1)
	go func() {
		done <- decodeLogo(data)
	}()

	select {
	case out := <-done:
		return out.view, out.warn
	case <-ctx.Done():
		return nil, "logo decode timed out"
	}
}

func decodeLogo(data []byte) logoOutcome {
	format := sniffFormat(data)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return logoOutcome{warn: "logo could not be decoded: " + err.Error()}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return logoOutcome{warn: "logo has no visible area"}
	}

	// The PDF backend embeds PNG/JPEG/GIF natively; WebP is transcoded.
	if format == formatWebP {
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return logoOutcome{warn: "logo could not be decoded: " + err.Error()}
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return logoOutcome{warn: "logo could not be transcoded: " + err.Error()}
		}
		data = buf.Bytes()
		format = formatPNG
	}

	width, height := fitLogo(float64(cfg.Width), float64(cfg.Height))
	return logoOutcome{view: &LogoView{
		Data:   data,
		Format: format,
		Width:  width * pxToMM,
		Height: height * pxToMM,
	}}
}

// fitLogo scales pixel dimensions into the bounding box preserving aspect
// ratio. Inputs already inside the box pass through unchanged.
func fitLogo(width, height float64) (float64, float64) {
	aspect := width / height
	if width > maxLogoWidthPx {
		width = maxLogoWidthPx
		height = width / aspect
	}
	if height > maxLogoHeightPx {
		height = maxLogoHeightPx
		width = height * aspect
	}
	return width, height
}

// sniffFormat reads the blob's embedded signature. Unknown signatures default
// to JPEG rather than rejecting the document.
func sniffFormat(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return formatPNG
	case bytes.HasPrefix(data, []byte("\xff\xd8\xff")):
		return formatJPEG
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return formatGIF
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return formatWebP
	default:
		return formatJPEG
	}
}
