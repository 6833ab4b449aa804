package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageforge/landing-backend/internal/config"
	"github.com/pageforge/landing-backend/internal/entity"
	"github.com/pageforge/landing-backend/internal/pkg/validator"
)

type fakeSessionRepo struct {
	sessions map[string]entity.WizardSession
	updates  int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]entity.WizardSession{}}
}

func (r *fakeSessionRepo) CreateSession(_ context.Context, s *entity.WizardSession) (*entity.WizardSession, error) {
	stored := *s
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.sessions[s.ID] = stored
	out := stored
	return &out, nil
}

func (r *fakeSessionRepo) GetSessionByID(_ context.Context, id string) (*entity.WizardSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, entity.ErrSessionNotFound
	}
	out := s
	return &out, nil
}

func (r *fakeSessionRepo) UpdateSession(_ context.Context, s *entity.WizardSession) (*entity.WizardSession, error) {
	if _, ok := r.sessions[s.ID]; !ok {
		return nil, entity.ErrSessionNotFound
	}
	stored := *s
	stored.UpdatedAt = time.Now()
	r.sessions[s.ID] = stored
	r.updates++
	out := stored
	return &out, nil
}

func (r *fakeSessionRepo) DeleteSession(_ context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

type fakeProfileRepo struct{}

func (r *fakeProfileRepo) EnsureProfile(_ context.Context, id string) (*entity.Profile, error) {
	return &entity.Profile{ID: id}, nil
}

type fakeSubmissionRepo struct {
	records []entity.SubmissionRecord
	err     error
}

func (r *fakeSubmissionRepo) CreateSubmission(_ context.Context, rec *entity.SubmissionRecord) (*entity.SubmissionRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	stored := *rec
	stored.CreatedAt = time.Now()
	r.records = append(r.records, stored)
	out := stored
	return &out, nil
}

type fakeGenerator struct {
	template *entity.GeneratedTemplate
	err      error
	calls    int
}

func (g *fakeGenerator) Generate(_ context.Context, _ entity.GenerationInput) (*entity.GeneratedTemplate, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	tpl := *g.template
	return &tpl, nil
}

func testTemplate() *entity.GeneratedTemplate {
	return &entity.GeneratedTemplate{
		LandingPage: entity.LandingPage{
			Sections: entity.Sections{
				Hero: &entity.HeroSection{Headline: "H"},
				Services: &entity.ServicesSection{Items: []entity.ServiceItem{
					{Title: "A"}, {Title: "B"}, {Title: "C"},
				}},
				Benefits: &entity.BenefitsSection{Items: []entity.ServiceItem{
					{Title: "A"}, {Title: "B"}, {Title: "C"},
				}},
				Testimonials: &entity.TestimonialsSection{Items: []entity.TestimonialItem{
					{Quote: "q1"}, {Quote: "q2"},
				}},
				CTA: &entity.CTASection{Headline: "Go"},
			},
		},
	}
}

type harness struct {
	uc          *UseCase
	sessions    *fakeSessionRepo
	submissions *fakeSubmissionRepo
	generator   *fakeGenerator
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		sessions:    newFakeSessionRepo(),
		submissions: &fakeSubmissionRepo{},
		generator:   &fakeGenerator{template: testTemplate()},
	}

	v := validator.NewValidator([]entity.PricingPlan{
		{Name: "starter", Price: "R$49/mo"},
		{Name: "professional", Price: "R$99/mo"},
	})

	h.uc = NewUseCase(
		config.WizardCacheConfig{CacheTTL: time.Minute, CacheCleanupInterval: time.Minute},
		h.sessions,
		&fakeProfileRepo{},
		h.submissions,
		h.generator,
		v,
		zap.NewNop(),
	)

	return h
}

func (h *harness) startSession(t *testing.T) *entity.WizardSession {
	t.Helper()
	s, err := h.uc.StartSession(context.Background(), "")
	require.NoError(t, err)
	return s
}

// fillAnswers sets the fields generation needs.
func (h *harness) fillAnswers(t *testing.T, sessionID string) *entity.WizardSession {
	t.Helper()
	ctx := context.Background()

	var (
		s   *entity.WizardSession
		err error
	)
	for name, value := range map[string]any{
		"client_name":   "Ana",
		"company_name":  "Studio Ana",
		"business_type": "pilates studio",
		"objective":     "leads",
	} {
		s, err = h.uc.SetField(ctx, sessionID, name, value)
		require.NoError(t, err)
	}
	return s
}

func TestStartSession(t *testing.T) {
	h := newHarness(t)

	s := h.startSession(t)

	assert.NotEmpty(t, s.ID)
	assert.NotEmpty(t, s.ProfileID)
	assert.Equal(t, entity.StepInitialInfo, s.Step)
	assert.Equal(t, entity.WizardStatusActive, s.Status)
	assert.Equal(t, entity.ObjectiveLeads, s.Answers.Objective)
	assert.Nil(t, s.Template)
}

func TestSetField(t *testing.T) {
	t.Run("known fields are applied", func(t *testing.T) {
		h := newHarness(t)
		s := h.startSession(t)
		ctx := context.Background()

		updated, err := h.uc.SetField(ctx, s.ID, "client_name", "Ana")
		require.NoError(t, err)
		assert.Equal(t, "Ana", updated.Answers.ClientName)

		updated, err = h.uc.SetField(ctx, s.ID, "has_photos", true)
		require.NoError(t, err)
		assert.True(t, updated.Answers.HasPhotos)

		updated, err = h.uc.SetField(ctx, s.ID, "uploaded_images", []any{"a.png", "b.png"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.png", "b.png"}, updated.Answers.UploadedImages)
	})

	t.Run("unknown field rejected without mutating the session", func(t *testing.T) {
		h := newHarness(t)
		s := h.startSession(t)

		_, err := h.uc.SetField(context.Background(), s.ID, "favourite_color", "blue")
		require.Error(t, err)
		assert.ErrorIs(t, err, entity.ErrUnknownField)

		stored, err := h.uc.GetSession(context.Background(), s.ID)
		require.NoError(t, err)
		assert.Equal(t, s.Answers, stored.Answers)
	})

	t.Run("wrong value type rejected", func(t *testing.T) {
		h := newHarness(t)
		s := h.startSession(t)

		_, err := h.uc.SetField(context.Background(), s.ID, "client_name", 42)
		require.Error(t, err)
		assert.ErrorIs(t, err, entity.ErrInvalidParameter)
	})

	t.Run("unknown objective rejected", func(t *testing.T) {
		h := newHarness(t)
		s := h.startSession(t)

		_, err := h.uc.SetField(context.Background(), s.ID, "objective", "fame")
		require.Error(t, err)
		assert.ErrorIs(t, err, entity.ErrInvalidParameter)
	})

	t.Run("unknown plan rejected", func(t *testing.T) {
		h := newHarness(t)
		s := h.startSession(t)

		_, err := h.uc.SetField(context.Background(), s.ID, "selected_plan", "platinum")
		require.Error(t, err)
		assert.ErrorIs(t, err, entity.ErrUnknownPlan)
	})

	t.Run("missing session", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.uc.SetField(context.Background(), "ffffffff-0000-0000-0000-000000000000", "client_name", "Ana")
		assert.ErrorIs(t, err, entity.ErrSessionNotFound)
	})
}

func TestNextPrev(t *testing.T) {
	t.Run("next advances until the preview gate", func(t *testing.T) {
		h := newHarness(t)
		s := h.startSession(t)
		h.fillAnswers(t, s.ID)
		ctx := context.Background()

		for step := entity.StepInitialInfo; step < entity.StepTemplatePreview; step++ {
			updated, err := h.uc.Next(ctx, s.ID)
			require.NoError(t, err)
			assert.Equal(t, step+1, updated.Step)
		}

		// Leaving the preview step needs a template generated from the
		// current answers.
		_, err := h.uc.Next(ctx, s.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, entity.ErrTemplateRequired)

		_, err = h.uc.Generate(ctx, s.ID)
		require.NoError(t, err)

		updated, err := h.uc.Next(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StepPricingSection, updated.Step)
	})

	t.Run("editing a generation field closes the preview gate again", func(t *testing.T) {
		h := newHarness(t)
		s := h.startSession(t)
		h.fillAnswers(t, s.ID)
		ctx := context.Background()

		_, err := h.uc.Generate(ctx, s.ID)
		require.NoError(t, err)

		updated, err := h.uc.SetField(ctx, s.ID, "company_name", "Renamed Studio")
		require.NoError(t, err)
		assert.False(t, updated.HasFreshTemplate())
		assert.NotNil(t, updated.Template, "the stale template stays visible")

		for updated.Step < entity.StepTemplatePreview {
			updated, err = h.uc.Next(ctx, s.ID)
			require.NoError(t, err)
		}
		_, err = h.uc.Next(ctx, s.ID)
		assert.ErrorIs(t, err, entity.ErrTemplateRequired)
	})

	t.Run("editing a non-generation field keeps the template fresh", func(t *testing.T) {
		h := newHarness(t)
		s := h.startSession(t)
		h.fillAnswers(t, s.ID)
		ctx := context.Background()

		_, err := h.uc.Generate(ctx, s.ID)
		require.NoError(t, err)

		updated, err := h.uc.SetField(ctx, s.ID, "additional_comments", "prefer green tones")
		require.NoError(t, err)
		assert.True(t, updated.HasFreshTemplate())
	})

	t.Run("prev preserves answers", func(t *testing.T) {
		h := newHarness(t)
		s := h.startSession(t)
		h.fillAnswers(t, s.ID)
		ctx := context.Background()

		_, err := h.uc.Next(ctx, s.ID)
		require.NoError(t, err)

		updated, err := h.uc.Prev(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StepInitialInfo, updated.Step)
		assert.Equal(t, "Studio Ana", updated.Answers.CompanyName)
	})

	t.Run("bounds", func(t *testing.T) {
		h := newHarness(t)
		s := h.startSession(t)
		ctx := context.Background()

		_, err := h.uc.Prev(ctx, s.ID)
		assert.ErrorIs(t, err, entity.ErrStepOutOfRange)
	})
}

func TestGenerate(t *testing.T) {
	t.Run("stores the template with its fingerprint", func(t *testing.T) {
		h := newHarness(t)
		s := h.startSession(t)
		h.fillAnswers(t, s.ID)

		updated, err := h.uc.Generate(context.Background(), s.ID)

		require.NoError(t, err)
		require.NotNil(t, updated.Template)
		assert.True(t, updated.HasFreshTemplate())
		assert.Equal(t, 1, h.generator.calls)
	})

	t.Run("failure leaves the previous template in place", func(t *testing.T) {
		h := newHarness(t)
		s := h.startSession(t)
		h.fillAnswers(t, s.ID)
		ctx := context.Background()

		_, err := h.uc.Generate(ctx, s.ID)
		require.NoError(t, err)

		h.generator.err = &entity.ProviderError{Err: errors.New("down")}
		_, err = h.uc.Generate(ctx, s.ID)
		require.Error(t, err)

		stored, err := h.uc.GetSession(ctx, s.ID)
		require.NoError(t, err)
		assert.NotNil(t, stored.Template)
		assert.True(t, stored.HasFreshTemplate())
	})
}

// submitReady drives a session to the last step with a plan and a fresh
// template.
func submitReady(t *testing.T, h *harness) *entity.WizardSession {
	t.Helper()
	ctx := context.Background()

	s := h.startSession(t)
	h.fillAnswers(t, s.ID)

	_, err := h.uc.Generate(ctx, s.ID)
	require.NoError(t, err)

	var updated *entity.WizardSession
	for step := entity.StepInitialInfo; step < entity.StepPlanSelection; step++ {
		updated, err = h.uc.Next(ctx, s.ID)
		require.NoError(t, err)
	}
	require.Equal(t, entity.StepPlanSelection, updated.Step)

	updated, err = h.uc.SetField(ctx, s.ID, "selected_plan", "professional")
	require.NoError(t, err)

	return updated
}

func TestSubmit(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		h := newHarness(t)
		s := submitReady(t, h)
		ctx := context.Background()

		resp, err := h.uc.Submit(ctx, s.ID)

		require.NoError(t, err)
		assert.NotEmpty(t, resp.RecordID)
		assert.Equal(t, string(entity.SubmissionStatusDraft), resp.Status)

		require.Len(t, h.submissions.records, 1)
		record := h.submissions.records[0]
		assert.Equal(t, s.ProfileID, record.ProfileID)
		assert.Equal(t, "professional", *record.Answers.SelectedPlan)
		assert.Equal(t, "H", record.GeneratedContent.LandingPage.Sections.Hero.Headline)

		stored, err := h.uc.GetSession(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.WizardStatusDone, stored.Status)
	})

	t.Run("requires the last step", func(t *testing.T) {
		h := newHarness(t)
		s := h.startSession(t)

		_, err := h.uc.Submit(context.Background(), s.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, entity.ErrWrongStep)
	})

	t.Run("requires a selected plan", func(t *testing.T) {
		h := newHarness(t)
		s := submitReady(t, h)
		ctx := context.Background()

		_, err := h.uc.SetField(ctx, s.ID, "selected_plan", nil)
		require.NoError(t, err)

		_, err = h.uc.Submit(ctx, s.ID)
		assert.ErrorIs(t, err, entity.ErrPlanRequired)
	})

	t.Run("requires a fresh template", func(t *testing.T) {
		h := newHarness(t)
		s := submitReady(t, h)
		ctx := context.Background()

		_, err := h.uc.SetField(ctx, s.ID, "company_name", "Edited Right Before Submit")
		require.NoError(t, err)

		_, err = h.uc.Submit(ctx, s.ID)
		assert.ErrorIs(t, err, entity.ErrTemplateRequired)
	})

	t.Run("persistence failure reopens the session", func(t *testing.T) {
		h := newHarness(t)
		s := submitReady(t, h)
		ctx := context.Background()

		h.submissions.err = &entity.PersistenceError{Op: "insert submission record", Err: errors.New("boom")}

		_, err := h.uc.Submit(ctx, s.ID)
		require.Error(t, err)
		var persistErr *entity.PersistenceError
		assert.ErrorAs(t, err, &persistErr)

		stored, err := h.uc.GetSession(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.WizardStatusActive, stored.Status)

		// Retry succeeds once the store recovers.
		h.submissions.err = nil
		resp, err := h.uc.Submit(ctx, s.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.RecordID)
	})

	t.Run("done session rejects further actions", func(t *testing.T) {
		h := newHarness(t)
		s := submitReady(t, h)
		ctx := context.Background()

		_, err := h.uc.Submit(ctx, s.ID)
		require.NoError(t, err)

		_, err = h.uc.Submit(ctx, s.ID)
		assert.ErrorIs(t, err, entity.ErrSessionDone)

		_, err = h.uc.SetField(ctx, s.ID, "client_name", "someone else")
		assert.ErrorIs(t, err, entity.ErrSessionDone)

		_, err = h.uc.Next(ctx, s.ID)
		assert.ErrorIs(t, err, entity.ErrSessionDone)
	})
}

func TestAbandon(t *testing.T) {
	t.Run("abandoned session is gone", func(t *testing.T) {
		h := newHarness(t)
		s := h.startSession(t)
		h.fillAnswers(t, s.ID)
		ctx := context.Background()

		require.NoError(t, h.uc.Abandon(ctx, s.ID))

		_, err := h.uc.GetSession(ctx, s.ID)
		assert.ErrorIs(t, err, entity.ErrSessionNotFound)

		_, err = h.uc.Next(ctx, s.ID)
		assert.ErrorIs(t, err, entity.ErrSessionNotFound)
	})

	t.Run("cleans up a done session too", func(t *testing.T) {
		h := newHarness(t)
		s := submitReady(t, h)
		ctx := context.Background()

		_, err := h.uc.Submit(ctx, s.ID)
		require.NoError(t, err)

		require.NoError(t, h.uc.Abandon(ctx, s.ID))

		_, err = h.uc.GetSession(ctx, s.ID)
		assert.ErrorIs(t, err, entity.ErrSessionNotFound)
	})

	t.Run("unknown session", func(t *testing.T) {
		h := newHarness(t)

		err := h.uc.Abandon(context.Background(), "ffffffff-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, entity.ErrSessionNotFound)
	})
}
