// Package genai holds the generative collaborators: the language model that
// drafts outlines and the image service that illustrates slides.
//
// The rest of the pipeline depends only on the small interfaces here, so
// tests run against in-memory fakes and the OpenAI backend stays swappable.
package genai

import "context"

// Message is one turn of a conversation with the language model.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Prompt is a complete request to the language model.
type Prompt struct {
	System  string
	History []Message
	User    string
}

// LLM produces a text completion for a prompt.
type LLM interface {
	Complete(ctx context.Context, p Prompt) (string, error)
}

// ImageService generates an illustration and returns a URL the caller can
// download it from.
type ImageService interface {
	GenerateImage(ctx context.Context, prompt string) (url string, err error)
}
