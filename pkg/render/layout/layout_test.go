package layout

import (
	"strings"
	"testing"

	"github.com/deckforge/deckforge/pkg/spec"
)

func TestSelect(t *testing.T) {
	long := strings.Repeat("x", 120)

	tests := []struct {
		name     string
		items    []string
		hasImage bool
		want     Name
	}{
		{"no image", []string{long, long, long, long, long, long, long}, false, ContentOnly},
		{"no image no items", nil, false, ContentOnly},
		{"two short items", []string{"twenty characters ok", "twenty characters ok"}, true, ImageTopContentBottom},
		{"long text but few items", []string{long, long, long}, true, ImageTopContentBottom},
		{"medium text", []string{long, long, long, long}, true, ContentLeftImageRight},
		{"many short items", []string{"a", "b", "c", "d", "e", "f"}, true, ImageTopContentBottom},
		{"heavy content", []string{long, long, long, long, long, long, long}, true, ImageLeftContentRight},
		{
			"twelve items six hundred chars",
			func() []string {
				items := make([]string, 12)
				for i := range items {
					items[i] = strings.Repeat("y", 50)
				}
				return items
			}(),
			true,
			ImageLeftContentRight,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Select(tt.items, tt.hasImage); got != tt.want {
				t.Errorf("Select = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectDeterministic(t *testing.T) {
	items := []string{strings.Repeat("a", 250), strings.Repeat("b", 260), "c", "d", "e", "f", "g"}
	first := Select(items, true)
	for range 10 {
		if got := Select(items, true); got != first {
			t.Fatalf("Select not deterministic: %q vs %q", got, first)
		}
	}
}

func TestTemplateRectsWithinCanvas(t *testing.T) {
	canvas := spec.Rect{W: CanvasWidth, H: CanvasHeight}
	for _, tpl := range Templates() {
		rects := append([]spec.Rect{tpl.Title}, tpl.ContentRects()...)
		if tpl.HasImage {
			rects = append(rects, tpl.Image)
		}
		for i, r := range rects {
			if !canvas.Contains(r) {
				t.Errorf("%s: rect %d %+v escapes the canvas", tpl.Name, i, r)
			}
		}
	}
}

func TestTemplateRectsDoNotOverlap(t *testing.T) {
	for _, tpl := range Templates() {
		contents := tpl.ContentRects()
		for _, c := range contents {
			if overlaps(tpl.Title, c) {
				t.Errorf("%s: title rect overlaps content rect %+v", tpl.Name, c)
			}
		}
		if len(contents) == 2 && overlaps(contents[0], contents[1]) {
			t.Errorf("%s: columns %+v and %+v overlap", tpl.Name, contents[0], contents[1])
		}
		if !tpl.HasImage {
			continue
		}
		if overlaps(tpl.Content, tpl.Image) {
			t.Errorf("%s: content %+v overlaps image %+v", tpl.Name, tpl.Content, tpl.Image)
		}
		if overlaps(tpl.Title, tpl.Image) {
			t.Errorf("%s: title rect overlaps the image rect", tpl.Name)
		}
	}
}

func overlaps(a, b spec.Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func TestForSlide(t *testing.T) {
	tests := []struct {
		name string
		s    spec.Slide
		want Name
	}{
		{"two column kind", spec.Slide{Kind: spec.KindTwoColumn, Items: []string{"a", "b"}}, TwoColumn},
		{"two column ignores image ref", spec.Slide{Kind: spec.KindTwoColumn, ImageRef: "x.png"}, TwoColumn},
		{"content without image", spec.Slide{Kind: spec.KindContent, Items: []string{"a"}}, ContentOnly},
		{"content with image", spec.Slide{Kind: spec.KindContent, Items: []string{"a"}, ImageRef: "x.png"}, ImageTopContentBottom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForSlide(tt.s); got != tt.want {
				t.Errorf("ForSlide = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTwoColumnTemplateShape(t *testing.T) {
	tpl := Get(TwoColumn)
	rects := tpl.ContentRects()
	if len(rects) != 2 {
		t.Fatalf("content rects = %d, want 2", len(rects))
	}
	if tpl.HasImage {
		t.Error("two-column template must not carry an image area")
	}
	if rects[0].X+rects[0].W > rects[1].X {
		t.Errorf("left column %+v reaches into right column %+v", rects[0], rects[1])
	}
	if rects[0].W != rects[1].W || rects[0].H != rects[1].H {
		t.Errorf("columns should be symmetric: %+v vs %+v", rects[0], rects[1])
	}
}

func TestGetUnknownFallsBack(t *testing.T) {
	tpl := Get(Name("imageBottom"))
	if tpl.Name != ContentOnly {
		t.Errorf("unknown template name should fall back to contentOnly, got %q", tpl.Name)
	}
}

func TestTemplatesClosedSet(t *testing.T) {
	names := map[Name]bool{}
	for _, tpl := range Templates() {
		names[tpl.Name] = true
	}
	for _, want := range []Name{ContentOnly, TwoColumn, ImageTopContentBottom, ContentLeftImageRight, ImageLeftContentRight} {
		if !names[want] {
			t.Errorf("missing template %q", want)
		}
	}
	if len(names) != 5 {
		t.Errorf("template set has %d entries, want 5", len(names))
	}
	if names["imageBottom"] {
		t.Error("imageBottom must not be selectable")
	}
}
