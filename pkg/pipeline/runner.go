package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/deckforge/deckforge/pkg/cache"
	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/genai"
	"github.com/deckforge/deckforge/pkg/observability"
	"github.com/deckforge/deckforge/pkg/render/pptx"
	"github.com/deckforge/deckforge/pkg/spec"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete outline → illustrate → render pipeline with
// caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Outline
	outlineStart := time.Now()
	outline, outlineHit, err := r.OutlineWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "outline stage")
	}
	result.Outline = outline
	result.Stats.OutlineTime = time.Since(outlineStart)
	result.Stats.SlideCount = len(outline.Slides)
	result.CacheInfo.OutlineHit = outlineHit

	r.Logger.Info("drafted outline",
		"title", outline.Title,
		"slides", len(outline.Slides),
		"duration", result.Stats.OutlineTime)

	// Stage 2: Illustrate
	illustrateStart := time.Now()
	outline, imageCount, imageHits := r.Illustrate(ctx, outline, opts)
	result.Outline = outline
	result.Stats.IllustrateTime = time.Since(illustrateStart)
	result.Stats.ImageCount = imageCount
	result.CacheInfo.ImageHits = imageHits

	if opts.ShouldIllustrate() {
		r.Logger.Info("illustrated slides",
			"images", imageCount,
			"duration", result.Stats.IllustrateTime)
	}

	// Compute outline hash for cache keys and API responses
	if data, err := spec.MarshalOutline(outline); err == nil {
		result.OutlineHash = cache.Hash(data)
	}

	// Stage 3: Render
	renderStart := time.Now()
	deck, data, renderHit, err := r.RenderWithCacheInfo(ctx, outline, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render stage")
	}
	result.Deck = deck
	result.PPTX = data
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered deck",
		"theme", deck.Theme,
		"slides", len(deck.Slides),
		"bytes", len(data),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// OutlineWithCacheInfo drafts the outline with caching and returns cache hit
// info. A pre-supplied outline in opts bypasses both the model and the cache.
func (r *Runner) OutlineWithCacheInfo(ctx context.Context, opts Options) (spec.Outline, bool, error) {
	if err := opts.ValidateForOutline(); err != nil {
		return spec.Outline{}, false, err
	}
	r.applyLogger(&opts)

	if opts.Outline != nil {
		return opts.Outline.Normalized(), false, nil
	}

	observability.Pipeline().OnOutlineStart(ctx, opts.Topic)
	start := time.Now()

	cacheKey := r.Keyer.OutlineKey(opts.Topic, opts.OutlineKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if o, err := spec.UnmarshalOutline(data); err == nil {
				observability.Pipeline().OnOutlineComplete(ctx, opts.Topic, len(o.Slides), time.Since(start), nil)
				return o, true, nil // Cache hit
			}
		}
	}

	o, err := genai.GenerateOutline(ctx, opts.LLM, opts.Topic, genai.OutlineOptions{
		SlideCount: opts.SlideCount,
		Language:   opts.Language,
	})
	observability.Pipeline().OnOutlineComplete(ctx, opts.Topic, len(o.Slides), time.Since(start), err)
	if err != nil {
		return spec.Outline{}, false, err
	}
	o = o.Normalized()

	// Cache the result
	if data, err := spec.MarshalOutline(o); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLOutline)
	}

	return o, false, nil // Cache miss
}

// Outline is a convenience wrapper that calls OutlineWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Outline(ctx context.Context, opts Options) (spec.Outline, error) {
	o, _, err := r.OutlineWithCacheInfo(ctx, opts)
	return o, err
}

// Illustrate generates an image for each slide that merits one and rewrites
// the slides' image refs to the downloaded files. Illustration failures are
// logged per slide and never fail the run; the slide simply stays text-only.
//
// Returns the updated outline, how many slides got an image, and how many of
// those came from the cache.
func (r *Runner) Illustrate(ctx context.Context, outline spec.Outline, opts Options) (spec.Outline, int, int) {
	if !opts.ShouldIllustrate() {
		return outline, 0, 0
	}
	opts.SetIllustrateDefaults()
	r.applyLogger(&opts)

	observability.Pipeline().OnIllustrateStart(ctx, len(outline.Slides))
	start := time.Now()

	var count, hits int
	for i := range outline.Slides {
		s := outline.Slides[i]
		if !genai.ShouldIllustrate(s) {
			continue
		}

		prompt := genai.BuildImagePrompt(s.Title, outline.Title)
		path, hit, err := r.illustrateSlide(ctx, prompt, s.Title, i, opts)
		if err != nil {
			r.Logger.Warn("illustration failed, slide stays text-only",
				"slide", s.Title, "error", err)
			continue
		}
		outline.Slides[i].ImageRef = path
		count++
		if hit {
			hits++
		}
	}

	observability.Pipeline().OnIllustrateComplete(ctx, count, time.Since(start), nil)
	return outline, count, hits
}

// illustrateSlide produces one slide's image file, via the image cache when
// possible.
func (r *Runner) illustrateSlide(ctx context.Context, prompt, title string, index int, opts Options) (string, bool, error) {
	cacheKey := r.Keyer.ImageKey(prompt, opts.ImageKeyOpts())
	filename := genai.ImageFilename(title, index)
	path := filepath.Join(opts.ImageDir, filename)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if err := os.MkdirAll(opts.ImageDir, 0o755); err != nil {
				return "", false, err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return "", false, err
			}
			return path, true, nil // Cache hit
		}
	}

	path, err := genai.FetchImage(ctx, opts.Images, opts.HTTPClient, prompt, opts.ImageDir, filename)
	if err != nil {
		return "", false, err
	}

	// Cache the downloaded bytes
	if data, err := os.ReadFile(path); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLImage)
	}

	return path, false, nil // Cache miss
}

// RenderWithCacheInfo assembles and serializes the deck with caching of the
// serialized document, and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, outline spec.Outline, opts Options) (spec.Deck, []byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return spec.Deck{}, nil, false, err
	}
	r.applyLogger(&opts)

	outline = outline.Normalized()
	if opts.Author != "" && outline.Author == "" {
		outline.Author = opts.Author
	}
	theme := opts.ResolveTheme(outline)
	outline.Theme = theme

	observability.Pipeline().OnRenderStart(ctx, theme, len(outline.Slides))
	start := time.Now()

	// Assembly is deterministic and cheap; only serialization is cached.
	deck := pptx.BuildDeck(outline, pptx.Options{Conclusion: opts.Conclusion})

	outlineData, err := spec.MarshalOutline(outline)
	if err != nil {
		return spec.Deck{}, nil, false, err
	}
	cacheKey := r.Keyer.DeckKey(cache.Hash(outlineData), opts.DeckKeyOpts(theme))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Pipeline().OnRenderComplete(ctx, theme, len(data), time.Since(start), nil)
			return deck, data, true, nil // Cache hit
		}
	}

	data, err := pptx.WriteBytes(deck)
	observability.Pipeline().OnRenderComplete(ctx, theme, len(data), time.Since(start), err)
	if err != nil {
		return spec.Deck{}, nil, false, err
	}

	_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLDeck)

	return deck, data, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Render(ctx context.Context, outline spec.Outline, opts Options) (spec.Deck, []byte, error) {
	deck, data, _, err := r.RenderWithCacheInfo(ctx, outline, opts)
	return deck, data, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
