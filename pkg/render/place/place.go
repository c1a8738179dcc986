// Package place is the area placement engine: it turns one slide spec plus a
// chosen layout template into positioned elements, delegating text fitting to
// the fit package and image fitting to its own scale-to-fit routine.
//
// Placement never fails a slide. Missing or unreadable images degrade to a
// styled placeholder, and unfittable text degrades through the fitter's
// overflow path.
package place

import (
	"fmt"

	"github.com/deckforge/deckforge/pkg/render/fit"
	"github.com/deckforge/deckforge/pkg/render/layout"
	"github.com/deckforge/deckforge/pkg/spec"
	"github.com/deckforge/deckforge/pkg/themes"
)

const (
	lineSpacing   = 1.35
	pointsPerInch = 72.0
)

// Slide places one slide onto the template, returning the full element list:
// heading, bullets, optional overflow note, and the image (or its
// placeholder) when the template has an image area.
func Slide(s spec.Slide, tpl layout.Template, th themes.Theme) []spec.Element {
	s = s.Normalized()

	elements := []spec.Element{{
		Type:     spec.ElementText,
		Rect:     tpl.Title,
		Role:     spec.RoleTitle,
		Text:     s.Title,
		FontSize: th.Fonts.Subtitle.Size,
		Bold:     true,
		Color:    th.Colors.Primary,
	}}

	rects := tpl.ContentRects()
	for i, group := range splitItems(s.Items, len(rects)) {
		elements = append(elements, content(group, rects[i], th)...)
	}

	if tpl.HasImage {
		elements = append(elements, Image(s.ImageRef, tpl.Image, th)...)
	}
	return elements
}

// splitItems distributes items across n groups in order, front-loading the
// remainder so the left column is never the shorter one.
func splitItems(items []string, n int) [][]string {
	if n <= 1 {
		return [][]string{items}
	}
	groups := make([][]string, 0, n)
	per := (len(items) + n - 1) / n
	for start := 0; start < len(items); start += per {
		groups = append(groups, items[start:min(start+per, len(items))])
	}
	for len(groups) < n {
		groups = append(groups, nil)
	}
	return groups
}

// content fits the items into the rectangle and lays the placed bullets out
// top to bottom, one element per bullet, with the overflow note (if any) on
// the reserved line below them.
func content(items []string, rect spec.Rect, th themes.Theme) []spec.Element {
	res := fit.Fit(items, rect.W, rect.H)

	lineHeight := float64(res.FontSize) * lineSpacing / pointsPerInch

	var elements []spec.Element
	y := rect.Y
	for i, item := range res.PlacedItems {
		h := float64(fit.Lines([]string{item}, rect.W, res.FontSize)) * lineHeight
		elements = append(elements, spec.Element{
			Type:     spec.ElementText,
			Rect:     spec.Rect{X: rect.X, Y: y, W: rect.W, H: h},
			Role:     spec.RoleBullet,
			Text:     fmt.Sprintf("%s %s", themes.BulletIcon(item, i), item),
			FontSize: res.FontSize,
			Color:    th.Colors.Text,
		})
		y += h
	}

	if res.OverflowSummary != "" {
		size := res.FontSize - 2
		if size < 6 {
			size = 6
		}
		elements = append(elements, spec.Element{
			Type:     spec.ElementText,
			Rect:     spec.Rect{X: rect.X, Y: y, W: rect.W, H: lineHeight},
			Role:     spec.RoleOverflow,
			Text:     res.OverflowSummary,
			FontSize: size,
			Italic:   true,
			Color:    th.Colors.Secondary,
		})
	}
	return elements
}
