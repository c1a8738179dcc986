package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/genai"
	"github.com/deckforge/deckforge/pkg/pipeline"
	"github.com/deckforge/deckforge/pkg/spec"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	topic      string // deck topic given to the language model
	slides     int    // target number of content slides
	theme      string // theme name (empty auto-detects)
	author     string // deck author shown on the title slide
	language   string // outline language hint (e.g. "vi")
	model      string // chat model override
	images     bool   // generate per-slide illustrations
	from       string // import outline from .md or .json instead of drafting
	outlineOut string // write the drafted outline JSON here
	output     string // output .pptx path
	conclusion bool   // append a closing slide
	noCache    bool   // disable stage caching
	refresh    bool   // bypass cached stage results
}

// newGenerateCmd creates the generate command, the main entry point for
// producing a deck.
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{conclusion: true}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a PowerPoint deck from a topic or an outline file",
		Example: `  deckforge generate --topic "solar power for beginners"
  deckforge generate --topic "chiến lược marketing" --slides 8 --theme business_elegant --images
  deckforge generate --from outline.md -o deck.pptx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.topic == "" && opts.from == "" {
				return errors.New(errors.ErrCodeInvalidInput, "either --topic or --from is required")
			}
			return runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.topic, "topic", "t", "", "topic to build the deck around")
	cmd.Flags().IntVarP(&opts.slides, "slides", "n", 0, "target number of content slides")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "theme name (default: detect from content)")
	cmd.Flags().StringVar(&opts.author, "author", "", "author shown on the title slide")
	cmd.Flags().StringVar(&opts.language, "language", "", "outline language hint (e.g. \"vi\")")
	cmd.Flags().StringVar(&opts.model, "model", "", "chat model override")
	cmd.Flags().BoolVar(&opts.images, "images", false, "illustrate content slides")
	cmd.Flags().StringVar(&opts.from, "from", "", "import outline from a .md or .json file")
	cmd.Flags().StringVar(&opts.outlineOut, "outline-out", "", "write the outline JSON to this file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <topic>.pptx)")
	cmd.Flags().BoolVar(&opts.conclusion, "conclusion", opts.conclusion, "append a closing slide")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable stage caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached stage results")

	return cmd
}

// runGenerate wires config, cache, and AI clients into pipeline options and
// executes the full pipeline.
func runGenerate(ctx context.Context, opts *generateOpts) error {
	cfg := configFromContext(ctx)

	popts, err := buildPipelineOptions(ctx, cfg, opts)
	if err != nil {
		return err
	}

	runner, err := newRunner(ctx, cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spin := newSpinnerWithContext(ctx, "Building deck...")
	spin.Start()
	result, err := runner.Execute(ctx, popts)
	spin.Stop()
	if err != nil {
		return err
	}

	if opts.outlineOut != "" {
		if err := spec.SaveOutline(opts.outlineOut, result.Outline); err != nil {
			return err
		}
		printFile(opts.outlineOut)
	}

	out := outputPath(opts.output, result.Outline.Title)
	if err := writeFile(out, result.PPTX); err != nil {
		return err
	}

	printSuccess("Generated %s", StyleHighlight.Render(result.Outline.Title))
	printFile(out)
	printDeckStats(result)
	return nil
}

// buildPipelineOptions translates CLI flags and config into pipeline options,
// importing the outline and constructing AI clients as needed.
func buildPipelineOptions(ctx context.Context, cfg Config, opts *generateOpts) (pipeline.Options, error) {
	popts := pipeline.Options{
		Topic:      opts.topic,
		SlideCount: opts.slides,
		Language:   opts.language,
		Model:      firstNonEmpty(opts.model, cfg.Model),
		WithImages: opts.images,
		ImageModel: cfg.ImageModel,
		ImageSize:  cfg.ImageSize,
		Theme:      firstNonEmpty(opts.theme, cfg.Theme),
		Author:     firstNonEmpty(opts.author, cfg.Author),
		Conclusion: opts.conclusion,
		Refresh:    opts.refresh,
		Logger:     loggerFromContext(ctx),
	}

	if opts.from != "" {
		outline, err := importOutline(opts.from)
		if err != nil {
			return pipeline.Options{}, err
		}
		popts.Outline = &outline
	}

	// Only talk to the AI backend when a stage actually needs it.
	if popts.Outline == nil || opts.images {
		client, err := genai.NewOpenAIClient(genai.Config{
			APIKey:     cfg.APIKey,
			BaseURL:    cfg.BaseURL,
			Model:      popts.Model,
			ImageModel: cfg.ImageModel,
			ImageSize:  cfg.ImageSize,
		})
		if err != nil {
			return pipeline.Options{}, err
		}
		popts.LLM = client
		if opts.images {
			popts.Images = client
		}
	}

	return popts, nil
}

// importOutline loads an outline from a markdown or JSON file, dispatching on
// the file extension.
func importOutline(path string) (spec.Outline, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		data, err := os.ReadFile(path)
		if err != nil {
			return spec.Outline{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "reading outline file")
		}
		return spec.ParseMarkdown(data)
	case ".json":
		return spec.LoadOutline(path)
	default:
		return spec.Outline{}, errors.New(errors.ErrCodeUnsupported, "unsupported outline format: %s (use .md or .json)", path)
	}
}

// outputPath derives the output file path from the flag or the deck title.
func outputPath(output, title string) string {
	if output != "" {
		if strings.ToLower(filepath.Ext(output)) != ".pptx" {
			return output + ".pptx"
		}
		return output
	}
	safe := strings.ToLower(strings.TrimSpace(title))
	safe = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '_'
		default:
			return -1
		}
	}, safe)
	safe = strings.Trim(safe, "_")
	if safe == "" {
		safe = "deck"
	}
	return safe + ".pptx"
}

// printDeckStats prints a one-line summary of the run.
func printDeckStats(result *pipeline.Result) {
	cached := result.CacheInfo.OutlineHit && result.CacheInfo.RenderHit
	printStats(result.Stats.SlideCount, result.Stats.ImageCount, len(result.PPTX), cached)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// writeFile writes data to path, creating parent directories as needed.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "creating output directory")
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "writing output file")
	}
	return nil
}

func fmtBytes(n int) string {
	const kb = 1024
	switch {
	case n >= kb*kb:
		return fmt.Sprintf("%.1f MB", float64(n)/(kb*kb))
	case n >= kb:
		return fmt.Sprintf("%.1f KB", float64(n)/kb)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
