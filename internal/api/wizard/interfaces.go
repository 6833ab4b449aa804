package wizard

import (
	"context"

	"github.com/pageforge/landing-backend/internal/entity"
)

type WizardUsecase interface {
	StartSession(ctx context.Context, profileID string) (*entity.WizardSession, error)
	GetSession(ctx context.Context, id string) (*entity.WizardSession, error)
	SetField(ctx context.Context, sessionID, name string, value any) (*entity.WizardSession, error)
	Next(ctx context.Context, sessionID string) (*entity.WizardSession, error)
	Prev(ctx context.Context, sessionID string) (*entity.WizardSession, error)
	Generate(ctx context.Context, sessionID string) (*entity.WizardSession, error)
	Submit(ctx context.Context, sessionID string) (*entity.SubmitResponse, error)
	Abandon(ctx context.Context, sessionID string) error
}
