package genai

import (
	"context"
	"sync"
)

// MockLLM is an in-memory LLM for tests. Responses are returned in order,
// repeating the last one when exhausted.
type MockLLM struct {
	mu        sync.Mutex
	Responses []string
	Err       error
	Prompts   []Prompt
}

func (m *MockLLM) Complete(_ context.Context, p Prompt) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, p)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "", nil
	}
	i := len(m.Prompts) - 1
	if i >= len(m.Responses) {
		i = len(m.Responses) - 1
	}
	return m.Responses[i], nil
}

// MockImageService is an in-memory ImageService for tests.
type MockImageService struct {
	mu      sync.Mutex
	URL     string
	Err     error
	Prompts []string
}

func (m *MockImageService) GenerateImage(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.URL, nil
}
