package AIRepository

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

type Repository struct {
	client *openai.Client
}

func NewRepository(apiKey string) *Repository {
	client := openai.NewClient(apiKey)
	return &Repository{
		client: client,
	}
}

// CreateChatCompletion forwards a completion request to OpenAI. Every call in
// the app goes through the scheduler first; nothing hits this directly.
func (r *Repository) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return r.client.CreateChatCompletion(ctx, request)
}
