package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/pageforge/landing-backend/internal/config"
	"github.com/pageforge/landing-backend/internal/entity"
)

// UseCase is the stateless template-generation service. One call in, one
// validated and sanitized template out; nothing is persisted here.
type UseCase struct {
	connector TextConnector
	config    config.OpenAIConfig
	logger    *zap.Logger
}

func NewUseCase(connector TextConnector, cfg config.OpenAIConfig, logger *zap.Logger) *UseCase {
	return &UseCase{
		connector: connector,
		config:    cfg,
		logger:    logger,
	}
}

// Generate produces a landing-page template from the questionnaire answers.
// Inputs are validated before any provider call. Provider failures are
// retried per the retry config; parse and schema failures are not, since a
// malformed answer is not transient.
func (uc *UseCase) Generate(ctx context.Context, input entity.GenerationInput) (*entity.GeneratedTemplate, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return uc.complete(ctx, buildSystemPrompt(input), defaultUserPrompt)
}

// GenerateFromPrompt produces a template from a free-form brief. The output
// contract is identical to Generate.
func (uc *UseCase) GenerateFromPrompt(ctx context.Context, prompt string) (*entity.GeneratedTemplate, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, entity.ErrMissingField
	}

	return uc.complete(ctx, buildContentSystemPrompt(prompt), defaultUserPrompt)
}

func (uc *UseCase) complete(ctx context.Context, systemPrompt, userPrompt string) (*entity.GeneratedTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.config.RequestTimeout)
	defer cancel()

	raw, err := retry.DoWithData(
		func() (string, error) {
			return uc.connector.Complete(ctx, systemPrompt, userPrompt)
		},
		append(uc.config.Retry.ToRetryOptions(),
			retry.Context(ctx),
			retry.RetryIf(isProviderError),
			retry.LastErrorOnly(true),
			retry.OnRetry(func(attempt uint, err error) {
				ctxzap.Warn(ctx, "completion attempt failed, retrying",
					zap.Uint("attempt", attempt),
					zap.Error(err),
				)
			}),
		)...,
	)
	if err != nil {
		// The deadline covers the whole retry budget; report its expiry
		// distinctly from an ordinary provider failure.
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", entity.ErrGenerationTimeout, uc.config.RequestTimeout)
		}
		return nil, err
	}

	body := stripCodeFence(raw)

	var tpl entity.GeneratedTemplate
	if err := json.Unmarshal([]byte(body), &tpl); err != nil {
		ctxzap.Error(ctx, "completion is not valid JSON", zap.Error(err), zap.Int("raw_len", len(raw)))
		return nil, &entity.ParseError{Err: err, Raw: raw}
	}

	if err := tpl.Validate(); err != nil {
		ctxzap.Error(ctx, "completion does not match the template schema", zap.Error(err))
		return nil, err
	}

	tpl.Sanitize(uc.config.MaxFieldLength)

	return &tpl, nil
}

// Only provider failures are worth retrying. Everything else, including a
// cancelled context, fails the call immediately.
func isProviderError(err error) bool {
	var provErr *entity.ProviderError
	return errors.As(err, &provErr)
}

// stripCodeFence extracts the JSON document from a completion. Chat models
// wrap answers in markdown code fences, with or without a language tag, and
// sometimes put prose before or after the fence. Without a fence, anything
// around the outermost braces is cut away.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "```"); start >= 0 {
		body := s[start+3:]
		// Drop the language tag line (e.g. "json") unless the document
		// already starts on it.
		if nl := strings.Index(body, "\n"); nl >= 0 && !strings.Contains(body[:nl], "{") {
			body = body[nl+1:]
		}
		if end := strings.Index(body, "```"); end >= 0 {
			body = body[:end]
		}
		return strings.TrimSpace(body)
	}

	if start, end := strings.Index(s, "{"), strings.LastIndex(s, "}"); start >= 0 && end > start {
		return s[start : end+1]
	}

	return s
}
