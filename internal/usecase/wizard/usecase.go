package wizard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/pageforge/landing-backend/internal/config"
	"github.com/pageforge/landing-backend/internal/entity"
	"github.com/pageforge/landing-backend/internal/pkg/validator"
)

// UseCase drives the nine-step questionnaire wizard. Sessions live in
// Postgres; a read-through cache keeps the hot session of an active user out
// of the database on every keystroke.
type UseCase struct {
	sessions    SessionRepository
	profiles    ProfileRepository
	submissions SubmissionRepository
	generator   Generator
	validator   *validator.Validator
	cache       *gocache.Cache
	logger      *zap.Logger
}

func NewUseCase(
	cfg config.WizardCacheConfig,
	sessions SessionRepository,
	profiles ProfileRepository,
	submissions SubmissionRepository,
	generator Generator,
	v *validator.Validator,
	logger *zap.Logger,
) *UseCase {
	return &UseCase{
		sessions:    sessions,
		profiles:    profiles,
		submissions: submissions,
		generator:   generator,
		validator:   v,
		cache:       gocache.New(cfg.CacheTTL, cfg.CacheCleanupInterval),
		logger:      logger,
	}
}

// StartSession creates a fresh wizard session for the profile, creating the
// profile row on first contact.
func (uc *UseCase) StartSession(ctx context.Context, profileID string) (*entity.WizardSession, error) {
	if profileID == "" {
		profileID = uuid.NewString()
	}

	profile, err := uc.profiles.EnsureProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	session := &entity.WizardSession{
		ID:        uuid.NewString(),
		ProfileID: profile.ID,
		Step:      entity.StepInitialInfo,
		Status:    entity.WizardStatusActive,
		Answers:   entity.DefaultAnswers(),
	}

	created, err := uc.sessions.CreateSession(ctx, session)
	if err != nil {
		return nil, err
	}

	uc.cache.SetDefault(created.ID, created)

	ctxzap.Info(ctx, "wizard session started",
		zap.String("session_id", created.ID),
		zap.String("profile_id", created.ProfileID),
	)

	return created, nil
}

// GetSession returns the session, from cache when possible.
func (uc *UseCase) GetSession(ctx context.Context, id string) (*entity.WizardSession, error) {
	if cached, ok := uc.cache.Get(id); ok {
		return cached.(*entity.WizardSession), nil
	}

	session, err := uc.sessions.GetSessionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.cache.SetDefault(session.ID, session)
	return session, nil
}

// SetField applies one FIELD_CHANGE to the session answers. Changing a
// generation-relevant field implicitly invalidates the stored template via
// the fingerprint comparison; the template itself is kept so stepping back
// still shows the last preview.
func (uc *UseCase) SetField(ctx context.Context, sessionID, name string, value any) (*entity.WizardSession, error) {
	session, err := uc.activeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := uc.applyField(&session.Answers, name, value); err != nil {
		return nil, err
	}

	return uc.save(ctx, session)
}

// Next advances the session one step. Leaving the template preview step
// requires a template generated from the current answers.
func (uc *UseCase) Next(ctx context.Context, sessionID string) (*entity.WizardSession, error) {
	session, err := uc.activeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Step >= entity.StepCount {
		return nil, entity.ErrStepOutOfRange
	}

	if session.Step == entity.StepTemplatePreview && !session.HasFreshTemplate() {
		return nil, entity.ErrTemplateRequired
	}

	session.Step++
	return uc.save(ctx, session)
}

// Prev moves the session one step back. Answers and the stored template are
// untouched.
func (uc *UseCase) Prev(ctx context.Context, sessionID string) (*entity.WizardSession, error) {
	session, err := uc.activeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Step <= entity.StepInitialInfo {
		return nil, entity.ErrStepOutOfRange
	}

	session.Step--
	return uc.save(ctx, session)
}

// Generate runs the template generation for the current answers and stores
// the result with its fingerprint. On failure the session keeps whatever
// template it had before.
func (uc *UseCase) Generate(ctx context.Context, sessionID string) (*entity.WizardSession, error) {
	session, err := uc.activeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	input := entity.GenerationInputFrom(&session.Answers)

	template, err := uc.generator.Generate(ctx, input)
	if err != nil {
		return nil, err
	}

	session.Template = template
	session.TemplateFingerprint = input.Fingerprint()

	ctxzap.Info(ctx, "template generated for session", zap.String("session_id", session.ID))

	return uc.save(ctx, session)
}

// Submit finalizes the wizard: it requires the last step, a selected plan and
// a template generated from the current answers, then persists the plan
// choice and the submission record in one transaction.
func (uc *UseCase) Submit(ctx context.Context, sessionID string) (*entity.SubmitResponse, error) {
	session, err := uc.activeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Step != entity.StepPlanSelection {
		return nil, fmt.Errorf("%w: submit requires step %d", entity.ErrWrongStep, entity.StepPlanSelection)
	}

	if err := uc.validator.ValidateSelectedPlan(session.Answers.SelectedPlan); err != nil {
		return nil, err
	}

	if !session.HasFreshTemplate() {
		return nil, entity.ErrTemplateRequired
	}

	session.Status = entity.WizardStatusSubmitting
	if session, err = uc.save(ctx, session); err != nil {
		return nil, err
	}

	record := &entity.SubmissionRecord{
		ID:               uuid.NewString(),
		ProfileID:        session.ProfileID,
		Answers:          session.Answers,
		GeneratedContent: *session.Template,
		Status:           entity.SubmissionStatusDraft,
	}

	created, err := uc.submissions.CreateSubmission(ctx, record)
	if err != nil {
		// The transaction rolled back; reopen the session so the user can
		// retry the submit.
		session.Status = entity.WizardStatusActive
		if _, saveErr := uc.save(ctx, session); saveErr != nil {
			ctxzap.Error(ctx, "failed to reopen session after submit failure",
				zap.String("session_id", session.ID),
				zap.Error(saveErr),
			)
		}
		return nil, err
	}

	session.Status = entity.WizardStatusDone
	if _, err := uc.save(ctx, session); err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "wizard session submitted",
		zap.String("session_id", session.ID),
		zap.String("record_id", created.ID),
	)

	return &entity.SubmitResponse{
		RecordID: created.ID,
		Status:   string(created.Status),
	}, nil
}

// Abandon discards the session entirely. Allowed in any status, so stale or
// already-submitted sessions can be cleaned up too.
func (uc *UseCase) Abandon(ctx context.Context, sessionID string) error {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := uc.sessions.DeleteSession(ctx, session.ID); err != nil {
		return err
	}

	uc.cache.Delete(session.ID)

	ctxzap.Info(ctx, "wizard session abandoned", zap.String("session_id", session.ID))
	return nil
}

func (uc *UseCase) activeSession(ctx context.Context, id string) (*entity.WizardSession, error) {
	session, err := uc.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.Status == entity.WizardStatusDone {
		return nil, entity.ErrSessionDone
	}

	// Work on a copy so a failed update never leaves a dirty cached session.
	copied := *session
	return &copied, nil
}

func (uc *UseCase) save(ctx context.Context, session *entity.WizardSession) (*entity.WizardSession, error) {
	updated, err := uc.sessions.UpdateSession(ctx, session)
	if err != nil {
		return nil, err
	}

	uc.cache.SetDefault(updated.ID, updated)
	return updated, nil
}
