package wizard

import (
	"context"

	"github.com/pageforge/landing-backend/internal/entity"
)

// Generator produces a landing-page template from questionnaire answers.
// Implemented by the generation use case.
type Generator interface {
	Generate(ctx context.Context, input entity.GenerationInput) (*entity.GeneratedTemplate, error)
}

// SessionRepository persists wizard sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *entity.WizardSession) (*entity.WizardSession, error)
	GetSessionByID(ctx context.Context, id string) (*entity.WizardSession, error)
	UpdateSession(ctx context.Context, session *entity.WizardSession) (*entity.WizardSession, error)
	DeleteSession(ctx context.Context, id string) error
}

// ProfileRepository owns the profile rows sessions hang off.
type ProfileRepository interface {
	EnsureProfile(ctx context.Context, id string) (*entity.Profile, error)
}

// SubmissionRepository persists the final questionnaire submission.
type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, record *entity.SubmissionRecord) (*entity.SubmissionRecord, error)
}
