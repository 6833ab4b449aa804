package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pageforge/landing-backend/internal/entity"
)

// ProfileRepository defines the interface for profile persistence
type ProfileRepository interface {
	EnsureProfile(ctx context.Context, id string) (*entity.Profile, error)
	GetProfileByID(ctx context.Context, id string) (*entity.Profile, error)
}

var _ ProfileRepository = &ProfilePostgres{}

// ProfilePostgres implements ProfileRepository using PostgreSQL
type ProfilePostgres struct {
	db *pgxpool.Pool
}

func NewProfilePostgres(db *pgxpool.Pool) *ProfilePostgres {
	return &ProfilePostgres{db: db}
}

// EnsureProfile creates the profile row if it does not exist yet. The
// surrounding application owns authentication; this service only needs a row
// to hang plan data off.
func (r *ProfilePostgres) EnsureProfile(ctx context.Context, id string) (*entity.Profile, error) {
	profileID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid profile ID: %w", err)
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO profiles (id)
		VALUES ($1)
		ON CONFLICT (id) DO UPDATE SET updated_at = now()
		RETURNING id, selected_plan, trial_start_date, created_at, updated_at`,
		profileID,
	)

	profile, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}

	return profile, nil
}

func (r *ProfilePostgres) GetProfileByID(ctx context.Context, id string) (*entity.Profile, error) {
	profileID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid profile ID: %w", err)
	}

	row := r.db.QueryRow(ctx, `
		SELECT id, selected_plan, trial_start_date, created_at, updated_at
		FROM profiles
		WHERE id = $1`,
		profileID,
	)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return profile, nil
}

func scanProfile(row pgx.Row) (*entity.Profile, error) {
	var p entity.Profile
	var id uuid.UUID

	if err := row.Scan(&id, &p.SelectedPlan, &p.TrialStartDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}

	p.ID = id.String()
	return &p, nil
}
