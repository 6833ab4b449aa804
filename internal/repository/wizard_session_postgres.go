package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pageforge/landing-backend/internal/entity"
)

// WizardSessionRepository defines the interface for wizard session persistence
type WizardSessionRepository interface {
	CreateSession(ctx context.Context, session *entity.WizardSession) (*entity.WizardSession, error)
	GetSessionByID(ctx context.Context, id string) (*entity.WizardSession, error)
	UpdateSession(ctx context.Context, session *entity.WizardSession) (*entity.WizardSession, error)
	DeleteSession(ctx context.Context, id string) error
}

var _ WizardSessionRepository = &WizardSessionPostgres{}

// WizardSessionPostgres implements WizardSessionRepository using PostgreSQL.
// Answers and the generated template are stored as JSONB documents; the
// session row is the single source of truth for one questionnaire flow.
type WizardSessionPostgres struct {
	db *pgxpool.Pool
}

func NewWizardSessionPostgres(db *pgxpool.Pool) *WizardSessionPostgres {
	return &WizardSessionPostgres{db: db}
}

func (r *WizardSessionPostgres) CreateSession(ctx context.Context, session *entity.WizardSession) (*entity.WizardSession, error) {
	sessionID, err := uuid.Parse(session.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID: %w", err)
	}

	profileID, err := uuid.Parse(session.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("invalid profile ID: %w", err)
	}

	answersJSON, err := json.Marshal(session.Answers)
	if err != nil {
		return nil, fmt.Errorf("marshal answers: %w", err)
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO wizard_sessions (id, profile_id, step, status, answers)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, profile_id, step, status, answers, template, template_fingerprint, created_at, updated_at`,
		sessionID, profileID, session.Step, string(session.Status), answersJSON,
	)

	created, err := scanWizardSession(row)
	if err != nil {
		return nil, fmt.Errorf("create wizard session: %w", err)
	}

	return created, nil
}

func (r *WizardSessionPostgres) GetSessionByID(ctx context.Context, id string) (*entity.WizardSession, error) {
	sessionID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID: %w", err)
	}

	row := r.db.QueryRow(ctx, `
		SELECT id, profile_id, step, status, answers, template, template_fingerprint, created_at, updated_at
		FROM wizard_sessions
		WHERE id = $1`,
		sessionID,
	)

	session, err := scanWizardSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get wizard session: %w", err)
	}

	return session, nil
}

// UpdateSession persists the full mutable state of the session: step,
// status, answers, template and fingerprint.
func (r *WizardSessionPostgres) UpdateSession(ctx context.Context, session *entity.WizardSession) (*entity.WizardSession, error) {
	sessionID, err := uuid.Parse(session.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID: %w", err)
	}

	answersJSON, err := json.Marshal(session.Answers)
	if err != nil {
		return nil, fmt.Errorf("marshal answers: %w", err)
	}

	var templateJSON []byte
	if session.Template != nil {
		templateJSON, err = json.Marshal(session.Template)
		if err != nil {
			return nil, fmt.Errorf("marshal template: %w", err)
		}
	}

	row := r.db.QueryRow(ctx, `
		UPDATE wizard_sessions
		SET step = $2,
		    status = $3,
		    answers = $4,
		    template = $5,
		    template_fingerprint = $6,
		    updated_at = now()
		WHERE id = $1
		RETURNING id, profile_id, step, status, answers, template, template_fingerprint, created_at, updated_at`,
		sessionID, session.Step, string(session.Status), answersJSON, templateJSON, session.TemplateFingerprint,
	)

	updated, err := scanWizardSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrSessionNotFound
		}
		return nil, fmt.Errorf("update wizard session: %w", err)
	}

	return updated, nil
}

func (r *WizardSessionPostgres) DeleteSession(ctx context.Context, id string) error {
	sessionID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid session ID: %w", err)
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM wizard_sessions WHERE id = $1`, sessionID); err != nil {
		return fmt.Errorf("delete wizard session: %w", err)
	}

	return nil
}

func scanWizardSession(row pgx.Row) (*entity.WizardSession, error) {
	var (
		s            entity.WizardSession
		id           uuid.UUID
		profileID    uuid.UUID
		status       string
		answersJSON  []byte
		templateJSON []byte
	)

	if err := row.Scan(&id, &profileID, &s.Step, &status, &answersJSON, &templateJSON,
		&s.TemplateFingerprint, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}

	s.ID = id.String()
	s.ProfileID = profileID.String()
	s.Status = entity.WizardStatus(status)

	if err := json.Unmarshal(answersJSON, &s.Answers); err != nil {
		return nil, fmt.Errorf("unmarshal answers: %w", err)
	}

	if len(templateJSON) > 0 {
		var tpl entity.GeneratedTemplate
		if err := json.Unmarshal(templateJSON, &tpl); err != nil {
			return nil, fmt.Errorf("unmarshal template: %w", err)
		}
		s.Template = &tpl
	}

	return &s, nil
}
