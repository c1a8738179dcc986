// Package pptx assembles rendered slides into a deck and serializes it to a
// PowerPoint document.
//
// BuildDeck is the pure half: outline in, positioned elements out. Write is
// the mechanical half that maps elements onto the document format.
package pptx

import (
	"github.com/deckforge/deckforge/pkg/render/layout"
	"github.com/deckforge/deckforge/pkg/render/place"
	"github.com/deckforge/deckforge/pkg/spec"
	"github.com/deckforge/deckforge/pkg/themes"
)

// Options controls deck assembly.
type Options struct {
	// Conclusion appends a closing slide after the content slides.
	Conclusion bool
}

// accentBarHeight is the height of the decorative bars on the title and
// conclusion slides, in inches.
const accentBarHeight = 0.12

// BuildDeck assembles the outline into a deck: a title slide up front, one
// rendered slide per outline slide, and optionally a closing slide.
//
// A single slide can never fail the deck. If placement panics on pathological
// input the slide degrades to a generic placeholder slide and assembly
// continues.
func BuildDeck(o spec.Outline, opts Options) spec.Deck {
	o = o.Normalized()

	themeName := o.Theme
	if !themes.Exists(themeName) {
		themeName = themes.DefaultTheme
	}
	th := themes.Get(themeName)

	deck := spec.Deck{
		Title:  o.Title,
		Author: o.Author,
		Theme:  themeName,
	}

	deck.Slides = append(deck.Slides, titleSlide(o, th))
	for _, s := range o.Slides {
		deck.Slides = append(deck.Slides, renderSlide(s, th))
	}
	if opts.Conclusion {
		deck.Slides = append(deck.Slides, conclusionSlide(th))
	}
	return deck
}

// renderSlide resolves the slide's layout and places it, degrading to a
// placeholder slide if placement panics.
func renderSlide(s spec.Slide, th themes.Theme) (rendered spec.RenderedSlide) {
	defer func() {
		if r := recover(); r != nil {
			rendered = placeholderSlide(s, th)
		}
	}()

	rendered.Elements = place.Slide(s, layout.Get(layout.ForSlide(s)), th)
	return rendered
}

// titleSlide builds the fixed opening slide: accent bars, centered deck
// title, and the author line when present.
func titleSlide(o spec.Outline, th themes.Theme) spec.RenderedSlide {
	elements := []spec.Element{
		{
			Type:      spec.ElementBox,
			Rect:      spec.Rect{X: 0, Y: 0, W: layout.CanvasWidth, H: accentBarHeight},
			FillColor: th.Colors.Primary,
		},
		{
			Type:      spec.ElementBox,
			Rect:      spec.Rect{X: 0, Y: layout.CanvasHeight - accentBarHeight, W: layout.CanvasWidth, H: accentBarHeight},
			FillColor: th.Colors.Primary,
		},
		{
			Type:     spec.ElementText,
			Rect:     spec.Rect{X: 0.5, Y: 2.6, W: 9, H: 1.2},
			Role:     spec.RoleTitle,
			Text:     o.Title,
			FontSize: th.Fonts.Title.Size,
			Bold:     true,
			Centered: true,
			Color:    th.Colors.Primary,
		},
	}

	if o.Author != "" {
		elements = append(elements, spec.Element{
			Type:     spec.ElementText,
			Rect:     spec.Rect{X: 0.5, Y: 4.1, W: 9, H: 0.6},
			Role:     spec.RoleSubtitle,
			Text:     o.Author,
			FontSize: th.Fonts.Subtitle.Size,
			Centered: true,
			Color:    th.Colors.Text,
		})
	}
	return spec.RenderedSlide{Elements: elements}
}

// conclusionSlide builds the fixed closing slide.
func conclusionSlide(th themes.Theme) spec.RenderedSlide {
	return spec.RenderedSlide{Elements: []spec.Element{
		{
			Type:      spec.ElementBox,
			Rect:      spec.Rect{X: 0, Y: 0, W: layout.CanvasWidth, H: accentBarHeight},
			FillColor: th.Colors.Primary,
		},
		{
			Type:     spec.ElementText,
			Rect:     spec.Rect{X: 0.5, Y: 2.8, W: 9, H: 1.0},
			Role:     spec.RoleTitle,
			Text:     "Thank You",
			FontSize: th.Fonts.Title.Size,
			Bold:     true,
			Centered: true,
			Color:    th.Colors.Primary,
		},
		{
			Type:     spec.ElementText,
			Rect:     spec.Rect{X: 0.5, Y: 4.0, W: 9, H: 0.5},
			Role:     spec.RoleCaption,
			Text:     "Questions and discussion welcome",
			FontSize: th.Fonts.Caption.Size,
			Centered: true,
			Color:    th.Colors.Text,
		},
		{
			Type:      spec.ElementBox,
			Rect:      spec.Rect{X: 0, Y: layout.CanvasHeight - accentBarHeight, W: layout.CanvasWidth, H: accentBarHeight},
			FillColor: th.Colors.Primary,
		},
	}}
}

// placeholderSlide is the worst-case rendering for a slide whose placement
// failed: its title over an empty body, nothing else.
func placeholderSlide(s spec.Slide, th themes.Theme) spec.RenderedSlide {
	title := s.Title
	if title == "" {
		title = spec.PlaceholderTitle
	}
	return spec.RenderedSlide{Elements: []spec.Element{{
		Type:     spec.ElementText,
		Rect:     spec.Rect{X: 0.5, Y: 0.3, W: 9, H: 0.8},
		Role:     spec.RoleTitle,
		Text:     title,
		FontSize: th.Fonts.Subtitle.Size,
		Bold:     true,
		Color:    th.Colors.Primary,
	}}}
}
