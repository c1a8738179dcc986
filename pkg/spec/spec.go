// Package spec defines the slide data model shared across the pipeline.
//
// A Slide describes one slide's intended content independent of layout. The
// placement engine turns a Slide into positioned Elements; the assembler
// writes Elements into the output document. Slides are immutable once passed
// into layout.
package spec

import "strings"

// Kind classifies a slide's role in the deck.
type Kind string

const (
	KindTitle      Kind = "title"
	KindContent    Kind = "content"
	KindTwoColumn  Kind = "two_column"
	KindConclusion Kind = "conclusion"
)

// Slide is one slide's input: a title, ordered bullet content, and an
// optional illustration reference.
type Slide struct {
	Title    string   `json:"title"`
	Items    []string `json:"items,omitempty"`
	ImageRef string   `json:"image_ref,omitempty"` // path to a raster image, may be absent
	Kind     Kind     `json:"kind"`
}

// PlaceholderTitle substitutes for an empty slide title so a malformed slide
// degrades to a generic slide instead of failing the deck.
const PlaceholderTitle = "Untitled Slide"

// Normalized returns a copy with input-shape problems repaired: an empty
// title becomes the generic placeholder and the kind defaults to content.
func (s Slide) Normalized() Slide {
	if strings.TrimSpace(s.Title) == "" {
		s.Title = PlaceholderTitle
	}
	if s.Kind == "" {
		s.Kind = KindContent
	}
	return s
}

// CombinedItemLength returns the total character count across all items,
// the measure the layout selector thresholds on.
func (s Slide) CombinedItemLength() int {
	n := 0
	for _, item := range s.Items {
		n += len(item)
	}
	return n
}

// Outline is the structured result of content generation: deck metadata plus
// the ordered slide specs.
type Outline struct {
	Title    string  `json:"title"`
	Author   string  `json:"author,omitempty"`
	Theme    string  `json:"theme,omitempty"`
	Language string  `json:"language,omitempty"`
	Slides   []Slide `json:"slides"`
}

// Normalized repairs every slide in place and drops fully empty slides
// (no title and no items).
func (o Outline) Normalized() Outline {
	slides := make([]Slide, 0, len(o.Slides))
	for _, s := range o.Slides {
		if strings.TrimSpace(s.Title) == "" && len(s.Items) == 0 {
			continue
		}
		slides = append(slides, s.Normalized())
	}
	o.Slides = slides
	if strings.TrimSpace(o.Title) == "" {
		o.Title = "Untitled Presentation"
	}
	return o
}

// ElementType discriminates placed element variants.
type ElementType string

const (
	// ElementText is a positioned text block.
	ElementText ElementType = "text"
	// ElementImage is a positioned raster image.
	ElementImage ElementType = "image"
	// ElementBox is a filled rectangle (image frames, backgrounds).
	ElementBox ElementType = "box"
	// ElementPlaceholder is a dashed block standing in for a missing image.
	ElementPlaceholder ElementType = "placeholder"
)

// Role tags a text element's function so the assembler can apply the right
// theme font.
type Role string

const (
	RoleTitle    Role = "title"
	RoleSubtitle Role = "subtitle"
	RoleBullet   Role = "bullet"
	RoleOverflow Role = "overflow"
	RoleCaption  Role = "caption"
)

// Rect is an axis-aligned rectangle in canvas inches.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Contains reports whether other lies fully inside r (with a small epsilon
// for float error).
func (r Rect) Contains(other Rect) bool {
	const eps = 1e-9
	return other.X >= r.X-eps &&
		other.Y >= r.Y-eps &&
		other.X+other.W <= r.X+r.W+eps &&
		other.Y+other.H <= r.Y+r.H+eps
}

// Element is the atomic unit the assembler writes into the output document:
// a text block, image, or box with absolute position and style. Created once
// per slide by the placement engine, consumed exactly once by the assembler,
// never mutated afterward.
type Element struct {
	Type ElementType `json:"type"`
	Rect Rect        `json:"rect"`
	Role Role        `json:"role,omitempty"`

	// Text fields
	Text     string `json:"text,omitempty"`
	FontSize int    `json:"font_size,omitempty"` // points; 0 = use theme default for the role
	Bold     bool   `json:"bold,omitempty"`
	Italic   bool   `json:"italic,omitempty"`
	Color    string `json:"color,omitempty"` // "#RRGGBB"; empty = theme text color
	Centered bool   `json:"centered,omitempty"`

	// Image fields
	ImageData []byte `json:"image_data,omitempty"`
	ImageMIME string `json:"image_mime,omitempty"`

	// Box fields
	FillColor string `json:"fill_color,omitempty"` // "#RRGGBB"
	Dashed    bool   `json:"dashed,omitempty"`
}

// RenderedSlide is one slide's placed elements.
type RenderedSlide struct {
	Elements []Element `json:"elements"`
}

// Deck is the fully assembled, ordered sequence of rendered slides plus
// deck-level metadata. Owned by the assembler during construction; immutable
// once serialized.
type Deck struct {
	Title  string          `json:"title"`
	Author string          `json:"author,omitempty"`
	Theme  string          `json:"theme"`
	Slides []RenderedSlide `json:"slides"`
}
