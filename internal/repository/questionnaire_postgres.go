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

// QuestionnaireRepository defines the interface for submission record persistence
type QuestionnaireRepository interface {
	CreateSubmission(ctx context.Context, record *entity.SubmissionRecord) (*entity.SubmissionRecord, error)
	GetSubmissionByID(ctx context.Context, id, profileID string) (*entity.SubmissionRecord, error)
	ListSubmissionsByProfile(ctx context.Context, profileID string) ([]*entity.SubmissionRecord, error)
}

var _ QuestionnaireRepository = &QuestionnairePostgres{}

// QuestionnairePostgres implements QuestionnaireRepository using PostgreSQL
type QuestionnairePostgres struct {
	db *pgxpool.Pool
}

func NewQuestionnairePostgres(db *pgxpool.Pool) *QuestionnairePostgres {
	return &QuestionnairePostgres{db: db}
}

// CreateSubmission inserts the submission record AND applies the plan
// selection to the owning profile inside one transaction, so the user never
// ends up with a plan but no landing page or the other way around.
func (r *QuestionnairePostgres) CreateSubmission(ctx context.Context, record *entity.SubmissionRecord) (*entity.SubmissionRecord, error) {
	recordID, err := uuid.Parse(record.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid record ID: %w", err)
	}

	profileID, err := uuid.Parse(record.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("invalid profile ID: %w", err)
	}

	answersJSON, err := json.Marshal(record.Answers)
	if err != nil {
		return nil, fmt.Errorf("marshal answers: %w", err)
	}

	contentJSON, err := json.Marshal(record.GeneratedContent)
	if err != nil {
		return nil, fmt.Errorf("marshal generated content: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, &entity.PersistenceError{Op: "begin submit transaction", Err: err}
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE profiles
		SET selected_plan = $2,
		    trial_start_date = now(),
		    updated_at = now()
		WHERE id = $1`,
		profileID, record.Answers.SelectedPlan,
	)
	if err != nil {
		return nil, &entity.PersistenceError{Op: "update profile plan", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return nil, entity.ErrProfileNotFound
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO questionnaires (id, profile_id, answers, generated_content, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, profile_id, answers, generated_content, status, created_at`,
		recordID, profileID, answersJSON, contentJSON, string(record.Status),
	)

	created, err := scanSubmission(row)
	if err != nil {
		return nil, &entity.PersistenceError{Op: "insert submission record", Err: err}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, &entity.PersistenceError{Op: "commit submit transaction", Err: err}
	}

	return created, nil
}

func (r *QuestionnairePostgres) GetSubmissionByID(ctx context.Context, id, profileID string) (*entity.SubmissionRecord, error) {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid record ID: %w", err)
	}

	ownerID, err := uuid.Parse(profileID)
	if err != nil {
		return nil, fmt.Errorf("invalid profile ID: %w", err)
	}

	row := r.db.QueryRow(ctx, `
		SELECT id, profile_id, answers, generated_content, status, created_at
		FROM questionnaires
		WHERE id = $1 AND profile_id = $2`,
		recordID, ownerID,
	)

	record, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrRecordNotFound
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}

	return record, nil
}

func (r *QuestionnairePostgres) ListSubmissionsByProfile(ctx context.Context, profileID string) ([]*entity.SubmissionRecord, error) {
	ownerID, err := uuid.Parse(profileID)
	if err != nil {
		return nil, fmt.Errorf("invalid profile ID: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, profile_id, answers, generated_content, status, created_at
		FROM questionnaires
		WHERE profile_id = $1
		ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var records []*entity.SubmissionRecord
	for rows.Next() {
		record, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}

	return records, nil
}

func scanSubmission(row pgx.Row) (*entity.SubmissionRecord, error) {
	var (
		rec         entity.SubmissionRecord
		id          uuid.UUID
		profileID   uuid.UUID
		status      string
		answersJSON []byte
		contentJSON []byte
	)

	if err := row.Scan(&id, &profileID, &answersJSON, &contentJSON, &status, &rec.CreatedAt); err != nil {
		return nil, err
	}

	rec.ID = id.String()
	rec.ProfileID = profileID.String()
	rec.Status = entity.SubmissionStatus(status)

	if err := json.Unmarshal(answersJSON, &rec.Answers); err != nil {
		return nil, fmt.Errorf("unmarshal answers: %w", err)
	}

	if err := json.Unmarshal(contentJSON, &rec.GeneratedContent); err != nil {
		return nil, fmt.Errorf("unmarshal generated content: %w", err)
	}

	return &rec, nil
}
