package genai

import (
	"context"
	"fmt"
	"strings"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/spec"
)

// Persona selects the system prompt flavor for outline generation.
type Persona string

const (
	PersonaEducation Persona = "education"
	PersonaBusiness  Persona = "business"
	PersonaTraining  Persona = "training"
)

var systemPrompts = map[Persona]string{
	PersonaEducation: "You are an education specialist with twenty years of experience designing " +
		"lessons and lecture materials. You produce high-quality presentation outlines " +
		"matched to the audience's level.",
	PersonaBusiness: "You are a business consultant experienced in professional presentations. " +
		"You produce polished, focused outlines for a workplace audience.",
	PersonaTraining: "You are a corporate trainer skilled at designing effective courses. " +
		"You convey knowledge in a vivid, easy-to-follow way.",
}

// DetectPersona picks an outline persona from the request text.
func DetectPersona(topic string) Persona {
	lower := strings.ToLower(topic)
	switch {
	case containsAny(lower, "business", "quarterly", "revenue", "kinh doanh", "doanh nghiệp"):
		return PersonaBusiness
	case containsAny(lower, "training", "onboarding", "workshop", "đào tạo"):
		return PersonaTraining
	default:
		return PersonaEducation
	}
}

// OutlineOptions tunes outline generation.
type OutlineOptions struct {
	SlideCount int     // target number of content slides; 0 lets the model decide
	Language   string  // BCP 47-ish hint, e.g. "en", "vi"; empty follows the topic
	Persona    Persona // empty auto-detects from the topic
}

// BuildOutlinePrompt assembles the outline request for the language model.
func BuildOutlinePrompt(topic string, opts OutlineOptions) Prompt {
	persona := opts.Persona
	if persona == "" {
		persona = DetectPersona(topic)
	}
	system, ok := systemPrompts[persona]
	if !ok {
		system = systemPrompts[PersonaEducation]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed presentation outline about: %s\n\n", topic)
	if opts.SlideCount > 0 {
		fmt.Fprintf(&b, "Target %d content slides.\n", opts.SlideCount)
	}
	if opts.Language != "" {
		fmt.Fprintf(&b, "Write all titles and content in language %q.\n", opts.Language)
	}
	b.WriteString(`Respond with ONLY a JSON object in exactly this shape:
{
  "title": "deck title",
  "slides": [
    {"title": "slide title", "items": ["bullet 1", "bullet 2", "bullet 3"], "kind": "content"}
  ]
}
Each slide needs 2-5 concise bullet items. Valid kinds are "content", "two_column" and "conclusion". No prose outside the JSON.`)

	return Prompt{System: system, User: b.String()}
}

// GenerateOutline asks the language model for an outline and parses the
// response. Transport errors are returned; a malformed response degrades to
// the fixed fallback outline so generation as a whole never fails on a bad
// completion.
func GenerateOutline(ctx context.Context, llm LLM, topic string, opts OutlineOptions) (spec.Outline, error) {
	raw, err := llm.Complete(ctx, BuildOutlinePrompt(topic, opts))
	if err != nil {
		return spec.Outline{}, err
	}

	o, err := ParseOutlineResponse(raw)
	if err != nil {
		return FallbackOutline(topic), nil
	}
	return o, nil
}

// RefineOutline asks the model to rewrite an existing outline according to
// an instruction, keeping whatever the instruction doesn't touch. Unlike
// GenerateOutline there is no fallback: a response that doesn't parse is an
// error, because silently discarding the user's instruction would be worse
// than reporting it.
func RefineOutline(ctx context.Context, llm LLM, outline spec.Outline, history []Message, instruction string) (spec.Outline, error) {
	current, err := spec.MarshalOutline(outline)
	if err != nil {
		return spec.Outline{}, err
	}

	var b strings.Builder
	b.WriteString("Here is the current presentation outline as JSON:\n\n")
	b.Write(current)
	fmt.Fprintf(&b, "\n\nRevise it according to this instruction: %s\n\n", instruction)
	b.WriteString("Respond with ONLY the full revised JSON object in the same shape. " +
		"Keep every slide the instruction does not mention unchanged. No prose outside the JSON.")

	raw, err := llm.Complete(ctx, Prompt{
		System:  systemPrompts[DetectPersona(outline.Title)],
		History: history,
		User:    b.String(),
	})
	if err != nil {
		return spec.Outline{}, err
	}
	return ParseOutlineResponse(raw)
}

// ParseOutlineResponse extracts and decodes the JSON outline from a model
// completion, tolerating surrounding prose and code fences.
func ParseOutlineResponse(raw string) (spec.Outline, error) {
	jsonText := ExtractJSON(raw)
	if jsonText == "" {
		return spec.Outline{}, errors.New(errors.ErrCodeOutlineParse, "no JSON object in model response")
	}
	return spec.UnmarshalOutline([]byte(jsonText))
}

// ExtractJSON returns the outermost JSON object embedded in text, or "" when
// none is present. Models routinely wrap JSON in prose or code fences; the
// first "{" to the last "}" spans the object in all observed cases.
func ExtractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

// FallbackOutline is the fixed three-slide outline used when the model's
// response cannot be parsed: introduction, main content, conclusion.
func FallbackOutline(topic string) spec.Outline {
	title := strings.TrimSpace(topic)
	if title == "" {
		title = "Untitled Presentation"
	}
	return spec.Outline{
		Title: title,
		Slides: []spec.Slide{
			{
				Title: "Introduction",
				Items: []string{"Core concepts", "Why it matters", "Learning goals"},
				Kind:  spec.KindContent,
			},
			{
				Title: "Main Content",
				Items: []string{"First key point", "Second key point", "Third key point"},
				Kind:  spec.KindContent,
			},
			{
				Title: "Conclusion",
				Items: []string{"Summary", "Practical applications", "Discussion questions"},
				Kind:  spec.KindConclusion,
			},
		},
	}
}

func containsAny(s string, probes ...string) bool {
	for _, p := range probes {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
