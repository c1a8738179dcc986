package place

import (
	"bytes"
	"os"

	"github.com/disintegration/imaging"

	"github.com/deckforge/deckforge/pkg/spec"
	"github.com/deckforge/deckforge/pkg/themes"
)

// FramePadding is the margin the background frame extends past the image's
// scaled bounds, per side, in inches.
const FramePadding = 0.08

// maxImagePixels caps the longer edge of an embedded image. Larger sources
// are downscaled before embedding to keep output files reasonable.
const maxImagePixels = 1600

// Image fits the referenced image into the rectangle: aspect-preserving
// scale-to-fit, centered, with a background frame sized from the image's
// actual post-scale bounds plus FramePadding, never from the nominal
// rectangle. A missing or unreadable ref yields a placeholder instead.
//
// The frame precedes the image in the returned slice so it renders behind it.
func Image(ref string, rect spec.Rect, th themes.Theme) []spec.Element {
	data, w, h, ok := loadImage(ref)
	if !ok {
		return placeholder(rect, th)
	}

	scale := min(rect.W/float64(w), rect.H/float64(h))
	drawW := float64(w) * scale
	drawH := float64(h) * scale
	bounds := spec.Rect{
		X: rect.X + (rect.W-drawW)/2,
		Y: rect.Y + (rect.H-drawH)/2,
		W: drawW,
		H: drawH,
	}

	frame := spec.Rect{
		X: bounds.X - FramePadding,
		Y: bounds.Y - FramePadding,
		W: bounds.W + 2*FramePadding,
		H: bounds.H + 2*FramePadding,
	}

	return []spec.Element{
		{
			Type:      spec.ElementBox,
			Rect:      frame,
			FillColor: themes.Lighten(th.Colors.Primary, 0.85),
		},
		{
			Type:      spec.ElementImage,
			Rect:      bounds,
			ImageData: data,
			ImageMIME: "image/png",
		},
	}
}

// loadImage reads and decodes ref, downscaling oversized sources, and returns
// PNG bytes plus pixel dimensions. ok is false for any read or decode
// failure.
func loadImage(ref string) (data []byte, w, h int, ok bool) {
	if ref == "" {
		return nil, 0, 0, false
	}
	raw, err := os.ReadFile(ref)
	if err != nil {
		return nil, 0, 0, false
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, 0, 0, false
	}

	b := img.Bounds()
	if b.Dx() > maxImagePixels || b.Dy() > maxImagePixels {
		img = imaging.Fit(img, maxImagePixels, maxImagePixels, imaging.Lanczos)
		b = img.Bounds()
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, 0, 0, false
	}
	return buf.Bytes(), b.Dx(), b.Dy(), true
}

// placeholder is the degraded rendering for a missing image: a dashed block
// filling the nominal rectangle with an explanatory caption centered in it.
func placeholder(rect spec.Rect, th themes.Theme) []spec.Element {
	captionH := float64(th.Fonts.Caption.Size) * lineSpacing / pointsPerInch
	return []spec.Element{
		{
			Type:      spec.ElementPlaceholder,
			Rect:      rect,
			FillColor: themes.Lighten(th.Colors.Secondary, 0.9),
			Dashed:    true,
		},
		{
			Type:     spec.ElementText,
			Rect:     spec.Rect{X: rect.X, Y: rect.Y + (rect.H-captionH)/2, W: rect.W, H: captionH},
			Role:     spec.RoleCaption,
			Text:     "Illustration unavailable",
			FontSize: th.Fonts.Caption.Size,
			Italic:   true,
			Centered: true,
			Color:    th.Colors.Text,
		},
	}
}
