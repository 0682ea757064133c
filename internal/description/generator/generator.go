// Package generator produces short name descriptions through an Azure OpenAI
// chat-completion deployment.
package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/hellodesc/hellodesc/internal/config"
	"github.com/hellodesc/hellodesc/internal/description"
)

const systemPrompt = "You are a helpful assistant."

const userPromptFormat = "Write a 10 words explanation about %s."

// ChatClient is the subset of *openai.Client the generator calls.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator asks the completion service for a description of a name.
type Generator struct {
	client ChatClient
	model  string
}

// NewAzureClient builds the shared go-openai client for an Azure deployment.
func NewAzureClient(cfg config.AzureOpenAIConfig) (*openai.Client, error) {
	if !cfg.Configured() {
		return nil, errors.New("azure openai api key and endpoint are required")
	}
	oc := openai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	oc.APIVersion = cfg.APIVersion
	deployment := cfg.Deployment
	oc.AzureModelMapperFunc = func(string) string { return deployment }
	return openai.NewClientWithConfig(oc), nil
}

// New returns a Generator using client for the given deployment/model name.
func New(client ChatClient, model string) *Generator {
	return &Generator{client: client, model: model}
}

// Messages returns the two-message prompt sent for name.
func Messages(name string) []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(userPromptFormat, name)},
	}
}

// Describe returns the first choice's content verbatim. Failures come back as
// *description.Error; choosing a fallback is up to the caller.
func (g *Generator) Describe(ctx context.Context, name string) (string, error) {
	if g.client == nil {
		return "", &description.Error{Kind: description.KindService, Op: "chat completion", Err: errors.New("client not configured")}
	}
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    g.model,
		Messages: Messages(name),
	})
	if err != nil {
		return "", &description.Error{Kind: classify(err), Op: "chat completion", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &description.Error{Kind: description.KindMalformed, Op: "chat completion", Err: errors.New("no choices in response")}
	}
	return resp.Choices[0].Message.Content, nil
}

func classify(err error) description.Kind {
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &apiErr):
		return kindForStatus(apiErr.HTTPStatusCode)
	case errors.As(err, &reqErr):
		return kindForStatus(reqErr.HTTPStatusCode)
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return description.KindMalformed
	default:
		return description.KindNetwork
	}
}

func kindForStatus(code int) description.Kind {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return description.KindAuth
	case http.StatusTooManyRequests:
		return description.KindQuota
	default:
		return description.KindService
	}
}
