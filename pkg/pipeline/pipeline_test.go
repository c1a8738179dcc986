package pipeline

import (
	"context"
	"testing"

	"github.com/deckforge/deckforge/pkg/cache"
	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/genai"
	"github.com/deckforge/deckforge/pkg/spec"
)

const outlineJSON = `{
  "title": "Solar Power",
  "slides": [
    {"title": "Basics", "items": ["Photovoltaic cells", "Panel efficiency"], "kind": "content"},
    {"title": "Economics", "items": ["Falling costs", "Subsidies"], "kind": "content"}
  ]
}`

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	return NewRunner(c, nil, nil)
}

func TestExecute(t *testing.T) {
	r := newTestRunner(t)
	llm := &genai.MockLLM{Responses: []string{outlineJSON}}

	result, err := r.Execute(context.Background(), Options{
		Topic: "solar power",
		Theme: "education_pro",
		LLM:   llm,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Outline.Title != "Solar Power" {
		t.Errorf("outline title = %q", result.Outline.Title)
	}
	if result.Stats.SlideCount != 2 {
		t.Errorf("SlideCount = %d, want 2", result.Stats.SlideCount)
	}
	if len(result.Deck.Slides) != 3 { // title + 2 content
		t.Errorf("deck slides = %d, want 3", len(result.Deck.Slides))
	}
	if len(result.PPTX) == 0 {
		t.Error("PPTX payload is empty")
	}
	if result.OutlineHash == "" {
		t.Error("OutlineHash not set")
	}
	if result.CacheInfo.OutlineHit || result.CacheInfo.RenderHit {
		t.Errorf("first run should miss all caches: %+v", result.CacheInfo)
	}
}

func TestExecuteSecondRunHitsCache(t *testing.T) {
	r := newTestRunner(t)
	llm := &genai.MockLLM{Responses: []string{outlineJSON}}
	opts := Options{Topic: "solar power", Theme: "education_pro", LLM: llm}

	if _, err := r.Execute(context.Background(), opts); err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !result.CacheInfo.OutlineHit {
		t.Error("second run should hit the outline cache")
	}
	if !result.CacheInfo.RenderHit {
		t.Error("second run should hit the render cache")
	}
	if len(llm.Prompts) != 1 {
		t.Errorf("model called %d times, want 1", len(llm.Prompts))
	}
}

func TestExecuteRefreshBypassesCache(t *testing.T) {
	r := newTestRunner(t)
	llm := &genai.MockLLM{Responses: []string{outlineJSON, outlineJSON}}
	opts := Options{Topic: "solar power", Theme: "education_pro", LLM: llm}

	if _, err := r.Execute(context.Background(), opts); err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	opts.Refresh = true
	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if result.CacheInfo.OutlineHit || result.CacheInfo.RenderHit {
		t.Errorf("refresh run should not report cache hits: %+v", result.CacheInfo)
	}
	if len(llm.Prompts) != 2 {
		t.Errorf("model called %d times, want 2", len(llm.Prompts))
	}
}

func TestExecuteWithSuppliedOutline(t *testing.T) {
	r := newTestRunner(t)
	o := spec.Outline{
		Title:  "Imported",
		Slides: []spec.Slide{{Title: "Only Slide", Items: []string{"a"}}},
	}

	result, err := r.Execute(context.Background(), Options{Outline: &o, Theme: "tech_gradient"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Outline.Title != "Imported" {
		t.Errorf("outline title = %q", result.Outline.Title)
	}
	if len(result.PPTX) == 0 {
		t.Error("PPTX payload is empty")
	}
}

func TestExecuteValidation(t *testing.T) {
	r := newTestRunner(t)

	tests := []struct {
		name string
		opts Options
	}{
		{"empty topic", Options{LLM: &genai.MockLLM{}}},
		{"missing llm", Options{Topic: "x"}},
		{"bad slide count", Options{Topic: "x", LLM: &genai.MockLLM{}, SlideCount: 99}},
		{"unknown theme", Options{Topic: "x", LLM: &genai.MockLLM{Responses: []string{outlineJSON}}, Theme: "nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Execute(context.Background(), tt.opts)
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.GetCode(err) == "" {
				t.Errorf("error should carry a code: %v", err)
			}
		})
	}
}

func TestResolveTheme(t *testing.T) {
	explicit := Options{Theme: "business_elegant"}
	if got := explicit.ResolveTheme(spec.Outline{Title: "python tutorial"}); got != "business_elegant" {
		t.Errorf("explicit theme ignored: %q", got)
	}

	auto := Options{}
	if got := auto.ResolveTheme(spec.Outline{Title: "python programming basics"}); got != "python_modern" {
		t.Errorf("detection = %q, want python_modern", got)
	}
}

func TestIllustrateSkippedWithoutService(t *testing.T) {
	r := newTestRunner(t)
	o := spec.Outline{
		Title:  "Deck",
		Slides: []spec.Slide{{Title: "Slide", Items: []string{"a"}, Kind: spec.KindContent}},
	}

	got, count, hits := r.Illustrate(context.Background(), o, Options{WithImages: true})
	if count != 0 || hits != 0 {
		t.Errorf("no image service: count=%d hits=%d", count, hits)
	}
	if got.Slides[0].ImageRef != "" {
		t.Errorf("image ref set without a service: %q", got.Slides[0].ImageRef)
	}
}

func TestValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Topic: "ok", LLM: &genai.MockLLM{}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first validate: %v", err)
	}
	if opts.SlideCount != DefaultSlideCount {
		t.Errorf("SlideCount default = %d", opts.SlideCount)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second validate: %v", err)
	}
}
