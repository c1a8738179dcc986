package genai

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/httputil"
	"github.com/deckforge/deckforge/pkg/spec"
)

// subject groups the illustration prompt heuristics for one field of study.
// Probes are matched against topic + slide title; the variants refine the
// base prompt from the slide title alone.
type subject struct {
	name     string
	probes   []string
	base     string
	variants []struct {
		probes []string
		prompt string
	}
}

var subjects = []subject{
	{
		name:   "biology",
		probes: []string{"biology", "sinh học", "tế bào", "cell", "dna"},
		base:   "biology concept illustration for %s",
		variants: []struct {
			probes []string
			prompt string
		}{
			{[]string{"cell", "tế bào"}, "detailed biological cell structure, nucleus, organelles, scientific illustration"},
			{[]string{"dna", "gen"}, "DNA double helix structure, genetic material, molecular biology"},
			{[]string{"protein", "enzyme"}, "protein structure diagram, biochemistry illustration"},
		},
	},
	{
		name:   "physics",
		probes: []string{"physics", "vật lý", "quang", "điện", "năng lượng"},
		base:   "physics concept illustration for %s",
		variants: []struct {
			probes []string
			prompt string
		}{
			{[]string{"light", "quang", "ánh sáng"}, "light physics diagram, optical phenomenon, wave properties"},
			{[]string{"electric", "điện"}, "electrical circuit diagram, physics illustration"},
			{[]string{"energy", "năng lượng"}, "energy transformation diagram, physics concept"},
		},
	},
	{
		name:   "chemistry",
		probes: []string{"chemistry", "hóa học", "phản ứng", "nguyên tử"},
		base:   "chemistry concept illustration for %s",
		variants: []struct {
			probes []string
			prompt string
		}{
			{[]string{"reaction", "phản ứng"}, "chemical reaction diagram, molecular interaction"},
			{[]string{"atom", "nguyên tử"}, "atomic structure diagram, chemistry illustration"},
		},
	},
	{
		name:   "mathematics",
		probes: []string{"math", "toán", "hình học", "đại số"},
		base:   "mathematics concept illustration for %s",
		variants: []struct {
			probes []string
			prompt string
		}{
			{[]string{"geometry", "hình học"}, "geometric shapes and theorems, mathematical illustration"},
			{[]string{"graph", "đồ thị"}, "mathematical graph and functions, coordinate system"},
		},
	},
	{
		name:   "marketing",
		probes: []string{"marketing", "kinh doanh", "business"},
		base:   "marketing concept illustration for %s",
		variants: []struct {
			probes []string
			prompt string
		}{
			{[]string{"digital", "số"}, "digital marketing infographic, modern business illustration"},
			{[]string{"strategy", "chiến lược"}, "business strategy diagram, marketing concept"},
		},
	},
	{
		name:   "history",
		probes: []string{"history", "lịch sử"},
		base:   "historical timeline illustration for %s",
	},
}

// styleModifiers are appended to every illustration prompt so images come
// back clean and free of baked-in text.
var styleModifiers = []string{
	"professional illustration",
	"clean design",
	"educational style",
	"no text",
	"no words",
	"vector art style",
	"modern and clear",
}

// ShouldIllustrate reports whether the slide is worth an illustration: only
// content slides with a real title get one. Two-column slides render text in
// both columns and have no image area.
func ShouldIllustrate(s spec.Slide) bool {
	if strings.TrimSpace(s.Title) == "" || s.Title == spec.PlaceholderTitle {
		return false
	}
	return s.Kind == spec.KindContent
}

// BuildImagePrompt derives an illustration prompt from the slide title and
// overall deck topic: a subject-specific base refined by title keywords, plus
// the fixed style modifiers.
func BuildImagePrompt(slideTitle, topic string) string {
	combined := strings.ToLower(topic + " " + slideTitle)
	titleLower := strings.ToLower(slideTitle)

	base := fmt.Sprintf("educational concept illustration for %s", slideTitle)
	for _, subj := range subjects {
		if !containsAny(combined, subj.probes...) {
			continue
		}
		base = fmt.Sprintf(subj.base, slideTitle)
		for _, v := range subj.variants {
			if containsAny(titleLower, v.probes...) {
				base = v.prompt
				break
			}
		}
		break
	}

	return base + ", " + strings.Join(styleModifiers, ", ")
}

var unsafeFilename = regexp.MustCompile(`[^\w-]+`)

// ImageFilename builds a stable, filesystem-safe name for a slide's
// downloaded illustration.
func ImageFilename(slideTitle string, index int) string {
	safe := unsafeFilename.ReplaceAllString(slideTitle, "_")
	safe = strings.Trim(safe, "_")
	if len(safe) > 30 {
		safe = safe[:30]
	}
	if safe == "" {
		safe = "slide"
	}
	return fmt.Sprintf("%02d_%s.png", index, strings.ToLower(safe))
}

// FetchImage generates an illustration for the prompt and downloads it into
// dir, returning the local path.
func FetchImage(ctx context.Context, svc ImageService, client *http.Client, prompt, dir, filename string) (string, error) {
	url, err := svc.GenerateImage(ctx, prompt)
	if err != nil {
		return "", err
	}

	data, err := httputil.Download(ctx, client, url)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeImageUnavailable, err, "downloading generated image")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "creating image directory")
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "writing image file")
	}
	return path, nil
}
