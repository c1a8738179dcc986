package genai

import (
	"context"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/observability"
)

const backendName = "openai"

// Default models for the two backends.
const (
	DefaultModel      = "gpt-4o-mini"
	DefaultImageModel = "dall-e-3"
	DefaultImageSize  = "1024x1024"
)

// Config configures the OpenAI-backed client.
type Config struct {
	APIKey     string
	BaseURL    string // optional, for compatible endpoints
	Model      string
	ImageModel string
	ImageSize  string
}

// OpenAIClient implements LLM and ImageService against the OpenAI API.
type OpenAIClient struct {
	cfg  Config
	opts []option.RequestOption
}

// NewOpenAIClient validates the config and builds the client. Missing model
// fields fall back to the package defaults.
func NewOpenAIClient(cfg Config) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New(errors.ErrCodeUnauthorized, "API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultImageModel
	}
	if cfg.ImageSize == "" {
		cfg.ImageSize = DefaultImageSize
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIClient{cfg: cfg, opts: opts}, nil
}

// Complete sends the prompt to the chat completions endpoint.
func (c *OpenAIClient) Complete(ctx context.Context, p Prompt) (string, error) {
	client := openai.NewClient(c.opts...)

	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(p.History)+2)
	if p.System != "" {
		msgs = append(msgs, openai.SystemMessage(p.System))
	}
	for _, m := range p.History {
		switch m.Role {
		case "assistant":
			msgs = append(msgs, openai.ChatCompletionMessageParamOfAssistant(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}
	msgs = append(msgs, openai.UserMessage(p.User))

	observability.AI().OnRequest(ctx, backendName, c.cfg.Model)
	start := time.Now()

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.cfg.Model),
		Messages: msgs,
	})
	if err != nil {
		observability.AI().OnError(ctx, backendName, c.cfg.Model, err)
		return "", errors.Wrap(errors.ErrCodeNetwork, err, "chat completion failed")
	}
	observability.AI().OnResponse(ctx, backendName, c.cfg.Model, time.Since(start))

	if len(resp.Choices) == 0 {
		return "", errors.New(errors.ErrCodeOutlineParse, "model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateImage requests one illustration and returns its URL.
func (c *OpenAIClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	client := openai.NewClient(c.opts...)

	observability.AI().OnRequest(ctx, backendName, c.cfg.ImageModel)
	start := time.Now()

	resp, err := client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt: prompt,
		Model:  openai.ImageModel(c.cfg.ImageModel),
		Size:   openai.ImageGenerateParamsSize(c.cfg.ImageSize),
		N:      openai.Int(1),
	})
	if err != nil {
		observability.AI().OnError(ctx, backendName, c.cfg.ImageModel, err)
		return "", errors.Wrap(errors.ErrCodeImageUnavailable, err, "image generation failed")
	}
	observability.AI().OnResponse(ctx, backendName, c.cfg.ImageModel, time.Since(start))

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", errors.New(errors.ErrCodeImageUnavailable, "image service returned no result")
	}
	return resp.Data[0].URL, nil
}
