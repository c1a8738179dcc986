// Package pipeline provides the core deck generation pipeline for Deckforge.
//
// This package implements the complete outline → illustrate → render pipeline
// that can be used by CLI, API, and chat components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Outline: Draft the deck structure with the language-model collaborator
//  2. Illustrate: Generate and download per-slide images (optional)
//  3. Render: Assemble themed slides and serialize the PowerPoint document
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Topic:      "renewable energy",
//	    SlideCount: 6,
//	    Theme:      "education_pro",
//	    LLM:        llmClient,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("deck.pptx", result.PPTX, 0o644)
package pipeline

import (
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/deckforge/deckforge/pkg/cache"
	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/genai"
	"github.com/deckforge/deckforge/pkg/spec"
	"github.com/deckforge/deckforge/pkg/themes"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Chat
// =============================================================================

const (
	// DefaultSlideCount is the target number of content slides when the
	// caller does not choose one.
	DefaultSlideCount = 5

	// DefaultImageDir is where downloaded illustrations are stored.
	DefaultImageDir = "deckforge_images"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the deck generation pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Outline options
	Topic      string `json:"topic"`
	SlideCount int    `json:"slide_count,omitempty"`
	Language   string `json:"language,omitempty"`
	Model      string `json:"model,omitempty"` // informational, keyed into the outline cache

	// Illustration options
	WithImages bool   `json:"with_images,omitempty"`
	ImageDir   string `json:"image_dir,omitempty"`
	ImageModel string `json:"image_model,omitempty"`
	ImageSize  string `json:"image_size,omitempty"`

	// Render options
	Theme      string `json:"theme,omitempty"` // empty auto-detects from content
	Author     string `json:"author,omitempty"`
	Conclusion bool   `json:"conclusion,omitempty"`

	// Refresh bypasses cached stage results.
	Refresh bool `json:"refresh,omitempty"`

	// Outline, when set, skips the outline stage entirely (imported decks).
	Outline *spec.Outline `json:"-"`

	// Runtime options (not serialized)
	LLM        genai.LLM          `json:"-"`
	Images     genai.ImageService `json:"-"`
	HTTPClient *http.Client       `json:"-"`
	Logger     *log.Logger        `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Outline is the deck structure the document was built from.
	Outline spec.Outline

	// OutlineHash is the content hash of the outline.
	OutlineHash string

	// Deck holds the placed, themed slides.
	Deck spec.Deck

	// PPTX is the serialized document.
	PPTX []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SlideCount     int
	ImageCount     int
	OutlineTime    time.Duration
	IllustrateTime time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	OutlineHit bool // Whether the outline came from cache
	ImageHits  int  // How many illustrations came from cache
	RenderHit  bool // Whether the serialized document came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForOutline(); err != nil {
		return err
	}
	o.SetIllustrateDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForOutline checks required fields for the outline stage.
func (o *Options) ValidateForOutline() error {
	if o.Outline == nil {
		if err := errors.ValidateTopic(o.Topic); err != nil {
			return err
		}
		if o.LLM == nil {
			return errors.New(errors.ErrCodeInvalidInput, "a language model client is required")
		}
	}
	if o.SlideCount == 0 {
		o.SlideCount = DefaultSlideCount
	}
	if err := errors.ValidateSlideCount(o.SlideCount); err != nil {
		return err
	}
	if o.Model == "" {
		o.Model = genai.DefaultModel
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetIllustrateDefaults sets default values for the illustration stage.
func (o *Options) SetIllustrateDefaults() {
	if o.ImageDir == "" {
		o.ImageDir = DefaultImageDir
	}
	if o.ImageModel == "" {
		o.ImageModel = genai.DefaultImageModel
	}
	if o.ImageSize == "" {
		o.ImageSize = genai.DefaultImageSize
	}
	if o.HTTPClient == nil {
		o.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for the render stage.
func (o *Options) ValidateForRender() error {
	if o.Theme != "" && !themes.Exists(o.Theme) {
		return errors.New(errors.ErrCodeInvalidTheme, "unknown theme: %s", o.Theme)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ShouldIllustrate reports whether the illustration stage runs at all.
func (o *Options) ShouldIllustrate() bool {
	return o.WithImages && o.Images != nil
}

// ResolveTheme returns the effective theme name: the explicit choice when
// set, otherwise keyword detection over the outline's combined text.
func (o *Options) ResolveTheme(outline spec.Outline) string {
	if o.Theme != "" {
		return o.Theme
	}
	var combined string
	combined = outline.Title
	for _, s := range outline.Slides {
		combined += " " + s.Title
	}
	return themes.Detect(combined)
}

// OutlineKeyOpts returns cache key options for the outline stage.
func (o *Options) OutlineKeyOpts() cache.OutlineKeyOpts {
	return cache.OutlineKeyOpts{
		Model:      o.Model,
		SlideCount: o.SlideCount,
		Language:   o.Language,
	}
}

// ImageKeyOpts returns cache key options for the illustration stage.
func (o *Options) ImageKeyOpts() cache.ImageKeyOpts {
	return cache.ImageKeyOpts{
		Model: o.ImageModel,
		Size:  o.ImageSize,
	}
}

// DeckKeyOpts returns cache key options for the render stage.
func (o *Options) DeckKeyOpts(theme string) cache.DeckKeyOpts {
	return cache.DeckKeyOpts{
		Theme:      theme,
		WithImages: o.WithImages,
		Conclusion: o.Conclusion,
	}
}
