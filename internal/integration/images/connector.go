package images

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/pageforge/landing-backend/internal/config"
	pkghttp "github.com/pageforge/landing-backend/pkg/http"
)

// Connector calls a Hugging Face style inference endpoint that answers a
// text prompt with raw image bytes.
type Connector struct {
	config    config.ImagesConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(cfg config.ImagesConfig, logger *zap.Logger) *Connector {
	connCfg := &pkghttp.ConnectorConfig{
		Logger:  logger,
		BaseURL: cfg.Url,
	}

	connector := pkghttp.NewConnector(
		connCfg,
		pkghttp.WithRequestTimeout(cfg.RequestTimeout),
		pkghttp.WithConnClientTimeout(cfg.ConnTimeout),
		pkghttp.WithClientKeepAlive(cfg.KeepAlive),
		pkghttp.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkghttp.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkghttp.WithRequestLogging(),
		pkghttp.WithAuthToken(cfg.Token),
	)

	return &Connector{
		config:    cfg,
		connector: connector,
		logger:    logger,
	}
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

// GenerateImage generates one image for the prompt. Model inference
// endpoints fail transiently while models warm up, so the call is retried
// on HTTP 5xx/429 and network errors.
func (c *Connector) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	ctxzap.Info(ctx, "generating image via inference service", zap.String("model", c.config.Model))

	endpoint := "/models/" + c.config.Model
	req := inferenceRequest{Inputs: prompt}

	var (
		imageData   []byte
		contentType string
	)

	opts := append(
		c.config.Retry.ToRetryOptions(),
		retry.Context(ctx),
		retry.RetryIf(isRetryable),
		retry.LastErrorOnly(true),
	)

	err := retry.Do(func() error {
		var reqErr error
		imageData, contentType, reqErr = c.connector.DoRawRequest(ctx, http.MethodPost, endpoint, req)
		return reqErr
	}, opts...)
	if err != nil {
		return nil, "", fmt.Errorf("image inference failed: %w", err)
	}

	if len(imageData) == 0 {
		return nil, "", fmt.Errorf("image inference returned empty payload")
	}

	ctxzap.Info(ctx, "image generated", zap.Int("size_bytes", len(imageData)), zap.String("content_type", contentType))

	if contentType == "" {
		contentType = "image/png"
	}

	return imageData, contentType, nil
}

func isRetryable(err error) bool {
	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500 || httpErr.StatusCode == http.StatusTooManyRequests
	}

	var netErr *pkghttp.NetworkError
	return errors.As(err, &netErr)
}
