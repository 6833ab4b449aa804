package images

import (
	"context"
	"encoding/base64"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector returns a fixed 1x1 PNG so the endpoint works offline.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

// 1x1 transparent PNG
const mockPNGBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func (m *MockConnector) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	ctxzap.Info(ctx, "[MOCK] generating image", zap.String("prompt", prompt))

	data, err := base64.StdEncoding.DecodeString(mockPNGBase64)
	if err != nil {
		return nil, "", err
	}

	return data, "image/png", nil
}
