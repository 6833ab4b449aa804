package generation

import (
	"context"

	"github.com/pageforge/landing-backend/internal/entity"
)

type GenerationUsecase interface {
	Generate(ctx context.Context, input entity.GenerationInput) (*entity.GeneratedTemplate, error)
	GenerateFromPrompt(ctx context.Context, prompt string) (*entity.GeneratedTemplate, error)
}

type ImageConnector interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, string, error)
}
