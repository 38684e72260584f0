// Package llm provides the chat-model client used to review hunks.
package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Sampling is fixed: near-deterministic output, response length bounded so
// a single hunk cannot run up unbounded cost.
const (
	temperature       = 0.2
	maxResponseTokens = 700
)

// Request is a single chat exchange: a system contract plus a user prompt.
type Request struct {
	System string
	User   string
}

// Completer produces a free-text completion for a request. Responses are
// untrusted and may be malformed; callers must decode defensively.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// OpenAI is a Completer backed by the OpenAI chat completions API.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI returns an OpenAI completer for the given model.
func NewOpenAI(apiKey, model string) *OpenAI {
	return &OpenAI{client: openai.NewClient(apiKey), model: model}
}

func (o *OpenAI) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:            o.model,
		Temperature:      temperature,
		TopP:             1,
		FrequencyPenalty: 0,
		PresencePenalty:  0,
		MaxTokens:        maxResponseTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
