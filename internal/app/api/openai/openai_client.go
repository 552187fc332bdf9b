package openai

import (
	"github.com/sashabaranov/go-openai"
)

// NewClient builds an OpenAI API client from an explicit credential. The key
// is injected by the caller instead of read from the environment here, so the
// adapters stay constructible in tests without any ambient state.
func NewClient(apiKey string) *openai.Client {
	return openai.NewClient(apiKey)
}
