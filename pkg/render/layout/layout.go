// Package layout holds the named slide templates and the rules for picking
// one from slide content. Coordinates are inches on a 10 x 7.5 in canvas.
package layout

import (
	"sort"
	"unicode/utf8"

	"github.com/deckforge/deckforge/pkg/spec"
)

// Canvas dimensions in inches (standard 4:3 deck).
const (
	CanvasWidth  = 10.0
	CanvasHeight = 7.5
)

// Name identifies a slide template.
type Name string

const (
	ContentOnly           Name = "contentOnly"
	TwoColumn             Name = "twoColumn"
	ImageTopContentBottom Name = "imageTopContentBottom"
	ContentLeftImageRight Name = "contentLeftImageRight"
	ImageLeftContentRight Name = "imageLeftContentRight"
)

// Template is a named arrangement of content and image areas on the canvas.
// Image is the zero Rect for text-only templates; ContentRight is the zero
// Rect except on the two-column arrangement.
type Template struct {
	Name         Name
	Title        spec.Rect
	Content      spec.Rect
	ContentRight spec.Rect
	Image        spec.Rect
	HasImage     bool
}

// ContentRects returns the template's content areas in placement order,
// left to right.
func (t Template) ContentRects() []spec.Rect {
	if t.ContentRight.W > 0 {
		return []spec.Rect{t.Content, t.ContentRight}
	}
	return []spec.Rect{t.Content}
}

// titleRect is shared by every template.
var titleRect = spec.Rect{X: 0.5, Y: 0.3, W: 9, H: 0.8}

// templates is the closed candidate set. An imageBottom variant existed but
// overlapped the content area with tall images and was removed for good.
var templates = map[Name]Template{
	ContentOnly: {
		Name:    ContentOnly,
		Title:   titleRect,
		Content: spec.Rect{X: 0.5, Y: 1.4, W: 9, H: 5.5},
	},
	TwoColumn: {
		Name:         TwoColumn,
		Title:        titleRect,
		Content:      spec.Rect{X: 0.5, Y: 1.4, W: 4.3, H: 5.5},
		ContentRight: spec.Rect{X: 5.2, Y: 1.4, W: 4.3, H: 5.5},
	},
	ImageTopContentBottom: {
		Name:     ImageTopContentBottom,
		Title:    titleRect,
		Image:    spec.Rect{X: 2.0, Y: 1.3, W: 6, H: 2.8},
		Content:  spec.Rect{X: 0.5, Y: 4.3, W: 9, H: 2.8},
		HasImage: true,
	},
	ContentLeftImageRight: {
		Name:     ContentLeftImageRight,
		Title:    titleRect,
		Content:  spec.Rect{X: 0.5, Y: 1.4, W: 4.5, H: 5.5},
		Image:    spec.Rect{X: 5.3, Y: 1.6, W: 4.2, H: 4.5},
		HasImage: true,
	},
	ImageLeftContentRight: {
		Name:     ImageLeftContentRight,
		Title:    titleRect,
		Image:    spec.Rect{X: 0.5, Y: 1.6, W: 4.2, H: 4.5},
		Content:  spec.Rect{X: 5.3, Y: 1.4, W: 4.5, H: 5.5},
		HasImage: true,
	},
}

// Get returns the template for name. Unknown names fall back to ContentOnly
// so a malformed outline can never break a render.
func Get(name Name) Template {
	if tpl, ok := templates[name]; ok {
		return tpl
	}
	return templates[ContentOnly]
}

// Templates returns every selectable template, sorted by name.
func Templates() []Template {
	out := make([]Template, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, tpl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Thresholds for Select, in combined rune length of the slide items.
const (
	shortContentRunes  = 200
	mediumContentRunes = 500
	shortItemCount     = 3
	mediumItemCount    = 6
)

// ForSlide resolves the template name for a slide. A two-column slide picks
// its arrangement by kind; everything else routes through Select.
func ForSlide(s spec.Slide) Name {
	if s.Kind == spec.KindTwoColumn {
		return TwoColumn
	}
	return Select(s.Items, s.ImageRef != "")
}

// Select picks a template name from the slide's text volume. Light content
// leaves room for a wide image up top; heavier content pushes the image to a
// side column. Pure and total: every input maps to a valid name.
func Select(items []string, hasImage bool) Name {
	if !hasImage {
		return ContentOnly
	}

	combined := 0
	for _, item := range items {
		combined += utf8.RuneCountInString(item)
	}

	switch {
	case combined < shortContentRunes || len(items) <= shortItemCount:
		return ImageTopContentBottom
	case combined < mediumContentRunes || len(items) <= mediumItemCount:
		return ContentLeftImageRight
	default:
		return ImageLeftContentRight
	}
}
