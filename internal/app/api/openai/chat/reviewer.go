package chat

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/sashabaranov/go-openai"

	"storycoach/internal/app/api"
	"storycoach/internal/app/model"
)

const maxTokens = 2048

// Reviewer implements api.Reviewer on top of the OpenAI chat completion API,
// asking for a JSON-object response and validating it against the expected
// review shape before returning it.
type Reviewer struct {
	client   *openai.Client
	model    string
	validate *validator.Validate
}

// NewReviewer creates a Reviewer. An empty model defaults to gpt-4o-mini.
func NewReviewer(client *openai.Client, chatModel string) *Reviewer {
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}
	return &Reviewer{
		client:   client,
		model:    chatModel,
		validate: validator.New(),
	}
}

// Review asks the chat model for a structured review of the transcript.
// Any failure, including a response that does not match the schema, surfaces
// as an AnalysisError; no partial review is ever returned.
func (r *Reviewer) Review(ctx context.Context, transcript string) (model.Review, error) {
	req := openai.ChatCompletionRequest{
		Model:     r.model,
		MaxTokens: maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(transcript)},
		},
	}

	resp, err := r.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return model.Review{}, &api.AnalysisError{Reason: "chat completion request failed", Cause: err}
	}
	if len(resp.Choices) == 0 {
		return model.Review{}, &api.AnalysisError{Reason: "chat completion returned no choices"}
	}

	return r.parseReview(resp.Choices[0].Message.Content)
}

// parseReview decodes and validates the raw model output. Unknown fields are
// tolerated; missing or mistyped required fields are not.
func (r *Reviewer) parseReview(content string) (model.Review, error) {
	var review model.Review
	if err := json.Unmarshal([]byte(content), &review); err != nil {
		return model.Review{}, &api.AnalysisError{Reason: "response is not valid JSON", Cause: err}
	}
	if err := r.validate.Struct(review); err != nil {
		return model.Review{}, &api.AnalysisError{Reason: "response does not match review schema", Cause: err}
	}
	return review, nil
}
