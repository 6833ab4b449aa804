package openai

import (
	"context"
	"errors"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	goopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/pageforge/landing-backend/internal/config"
	"github.com/pageforge/landing-backend/internal/entity"
	pkghttp "github.com/pageforge/landing-backend/pkg/http"
)

// Connector wraps the OpenAI chat-completion API behind the narrow surface
// the generation use case needs: one system prompt, one user prompt, one
// text answer.
type Connector struct {
	client *goopenai.Client
	config config.OpenAIConfig
	logger *zap.Logger
}

func NewConnector(cfg config.OpenAIConfig, logger *zap.Logger) *Connector {
	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	clientCfg.HTTPClient = pkghttp.NewClient(
		pkghttp.WithRequestTimeout(cfg.RequestTimeout),
		pkghttp.WithRequestLogging(),
	)

	return &Connector{
		client: goopenai.NewClientWithConfig(clientCfg),
		config: cfg,
		logger: logger,
	}
}

// Complete sends one chat completion request and returns the raw text of the
// first choice. All transport and provider failures come back as
// *entity.ProviderError so the caller's retry policy can recognize them.
func (c *Connector) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctxzap.Info(ctx, "requesting chat completion",
		zap.String("model", c.config.Model),
		zap.Int("system_prompt_len", len(systemPrompt)),
	)

	resp, err := c.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: float32(c.config.Temperature),
		MaxTokens:   c.config.MaxTokens,
	})
	if err != nil {
		return "", &entity.ProviderError{Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		ctxzap.Warn(ctx, "provider returned empty completion", zap.Any("usage", resp.Usage))
		return "", &entity.ProviderError{Err: errors.New("empty completion")}
	}

	ctxzap.Info(ctx, "chat completion received",
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Int("content_len", len(resp.Choices[0].Message.Content)),
	)

	return resp.Choices[0].Message.Content, nil
}
