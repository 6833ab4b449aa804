package generation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageforge/landing-backend/internal/config"
	"github.com/pageforge/landing-backend/internal/entity"
)

// fakeConnector returns the queued responses in order and counts calls.
type fakeConnector struct {
	responses []fakeResponse
	calls     int
}

type fakeResponse struct {
	content string
	err     error
}

func (f *fakeConnector) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	idx := f.calls
	f.calls++
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	r := f.responses[idx]
	return r.content, r.err
}

const validDocument = `{
  "landingPage": {
    "sections": {
      "hero": {"headline": "H", "subheadline": "S", "description": "D"},
      "services": {
        "title": "Services", "description": "What we do",
        "items": [
          {"title": "A", "description": "a"},
          {"title": "B", "description": "b"},
          {"title": "C", "description": "c"}
        ]
      },
      "benefits": {
        "title": "Benefits",
        "items": [
          {"title": "A", "description": "a"},
          {"title": "B", "description": "b"},
          {"title": "C", "description": "c"}
        ]
      },
      "testimonials": {
        "title": "Testimonials",
        "items": [
          {"quote": "q1", "author": "a1", "role": "r1"},
          {"quote": "q2", "author": "a2", "role": "r2"}
        ]
      },
      "cta": {
        "headline": "Go", "description": "Now", "buttonText": "Click",
        "contactInfo": {
          "address": "Street 1", "phone": "+55 11 0000", "email": "x@y.z",
          "socialMedia": {"instagram": "@x", "linkedin": "x"}
        }
      }
    }
  }
}`

func newTestUseCase(connector TextConnector) *UseCase {
	cfg := config.OpenAIConfig{
		Model:          "gpt-4o",
		RequestTimeout: 5 * time.Second,
		MaxFieldLength: 600,
	}
	cfg.Retry.Attempts = 3
	cfg.Retry.Delay = time.Millisecond
	cfg.Retry.MaxDelay = 5 * time.Millisecond

	return NewUseCase(connector, cfg, zap.NewNop())
}

func validInput() entity.GenerationInput {
	return entity.GenerationInput{
		ClientName:   "Ana",
		CompanyName:  "Studio Ana",
		BusinessType: "pilates studio",
		Objective:    entity.ObjectiveLeads,
	}
}

func TestGenerate_MissingFieldsRejectedBeforeProviderCall(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*entity.GenerationInput)
		missing string
	}{
		{
			name:    "no client name",
			mutate:  func(in *entity.GenerationInput) { in.ClientName = "" },
			missing: "client_name",
		},
		{
			name:    "no company name",
			mutate:  func(in *entity.GenerationInput) { in.CompanyName = "" },
			missing: "company_name",
		},
		{
			name:    "no business type",
			mutate:  func(in *entity.GenerationInput) { in.BusinessType = "" },
			missing: "business_type",
		},
		{
			name:    "no objective",
			mutate:  func(in *entity.GenerationInput) { in.Objective = "" },
			missing: "objective",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connector := &fakeConnector{}
			uc := newTestUseCase(connector)

			in := validInput()
			tt.mutate(&in)

			tpl, err := uc.Generate(context.Background(), in)

			require.Error(t, err)
			assert.Nil(t, tpl)
			assert.ErrorIs(t, err, entity.ErrMissingField)
			assert.Contains(t, err.Error(), tt.missing)
			assert.Zero(t, connector.calls, "provider must not be called for invalid input")
		})
	}
}

func TestGenerate_UnknownObjectiveRejected(t *testing.T) {
	connector := &fakeConnector{}
	uc := newTestUseCase(connector)

	in := validInput()
	in.Objective = "world-domination"

	_, err := uc.Generate(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidParameter)
	assert.Zero(t, connector.calls)
}

func TestGenerate_StripsCodeFence(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bare JSON", content: validDocument},
		{name: "plain fence", content: "```\n" + validDocument + "\n```"},
		{name: "json fence", content: "```json\n" + validDocument + "\n```"},
		{name: "fence with surrounding whitespace", content: "\n  ```json\n" + validDocument + "\n```  \n"},
		{name: "prose before the fence", content: "Sure! Here is the content:\n```json\n" + validDocument + "\n```"},
		{name: "prose around the fence", content: "Sure! ```json\n" + validDocument + "\n``` Let me know if you need changes."},
		{name: "prose around bare JSON", content: "Here it is:\n" + validDocument + "\nHope this helps!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connector := &fakeConnector{responses: []fakeResponse{{content: tt.content}}}
			uc := newTestUseCase(connector)

			tpl, err := uc.Generate(context.Background(), validInput())

			require.NoError(t, err)
			require.NotNil(t, tpl)
			assert.Equal(t, "H", tpl.LandingPage.Sections.Hero.Headline)
			assert.Len(t, tpl.LandingPage.Sections.Services.Items, entity.ServicesItemCount)
			assert.Equal(t, 1, connector.calls)
		})
	}
}

func TestGenerate_InvalidJSONIsParseError(t *testing.T) {
	connector := &fakeConnector{responses: []fakeResponse{{content: "Sure! Here is your landing page:"}}}
	uc := newTestUseCase(connector)

	tpl, err := uc.Generate(context.Background(), validInput())

	require.Error(t, err)
	assert.Nil(t, tpl)

	var parseErr *entity.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.NotEmpty(t, parseErr.Raw)
	assert.Equal(t, 1, connector.calls, "parse failures must not be retried")
}

func TestGenerate_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		section string
	}{
		{
			name:    "missing hero section",
			content: strings.Replace(validDocument, `"hero": {"headline": "H", "subheadline": "S", "description": "D"},`, "", 1),
			section: "hero",
		},
		{
			name:    "missing cta section",
			content: `{"landingPage": {"sections": {"hero": {"headline": "H"}, "services": {"items": [{},{},{}]}, "benefits": {"items": [{},{},{}]}, "testimonials": {"items": [{},{}]}}}}`,
			section: "cta",
		},
		{
			name: "prose before a fenced document missing cta",
			content: "Sure! ```json\n" +
				`{"landingPage": {"sections": {"hero": {"headline": "H"}, "services": {"items": [{},{},{}]}, "benefits": {"items": [{},{},{}]}, "testimonials": {"items": [{},{}]}}}}` +
				"\n```",
			section: "cta",
		},
		{
			name: "two services instead of three",
			content: strings.Replace(validDocument, `,
          {"title": "C", "description": "c"}
        ]
      },
      "benefits"`, `
        ]
      },
      "benefits"`, 1),
			section: "services",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connector := &fakeConnector{responses: []fakeResponse{{content: tt.content}}}
			uc := newTestUseCase(connector)

			tpl, err := uc.Generate(context.Background(), validInput())

			require.Error(t, err)
			assert.Nil(t, tpl)

			var schemaErr *entity.SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.section, schemaErr.Section)
			assert.Equal(t, 1, connector.calls, "schema failures must not be retried")
		})
	}
}

func TestGenerate_RetriesProviderErrorsOnly(t *testing.T) {
	t.Run("recovers within the attempt budget", func(t *testing.T) {
		connector := &fakeConnector{responses: []fakeResponse{
			{err: &entity.ProviderError{Err: errors.New("connection reset")}},
			{err: &entity.ProviderError{Err: errors.New("503")}},
			{content: validDocument},
		}}
		uc := newTestUseCase(connector)

		tpl, err := uc.Generate(context.Background(), validInput())

		require.NoError(t, err)
		require.NotNil(t, tpl)
		assert.Equal(t, 3, connector.calls)
	})

	t.Run("gives up after the attempt budget", func(t *testing.T) {
		connector := &fakeConnector{responses: []fakeResponse{
			{err: &entity.ProviderError{Err: errors.New("down")}},
		}}
		uc := newTestUseCase(connector)

		tpl, err := uc.Generate(context.Background(), validInput())

		require.Error(t, err)
		assert.Nil(t, tpl)

		var provErr *entity.ProviderError
		assert.ErrorAs(t, err, &provErr)
		assert.Equal(t, 3, connector.calls)
	})
}

// stallingConnector blocks until the call deadline expires.
type stallingConnector struct {
	calls int
}

func (c *stallingConnector) Complete(ctx context.Context, _, _ string) (string, error) {
	c.calls++
	<-ctx.Done()
	return "", &entity.ProviderError{Err: ctx.Err()}
}

func TestGenerate_DeadlineExpirySurfacedAsTimeout(t *testing.T) {
	connector := &stallingConnector{}
	uc := newTestUseCase(connector)
	uc.config.RequestTimeout = 10 * time.Millisecond

	tpl, err := uc.Generate(context.Background(), validInput())

	require.Error(t, err)
	assert.Nil(t, tpl)
	assert.ErrorIs(t, err, entity.ErrGenerationTimeout)

	var provErr *entity.ProviderError
	assert.False(t, errors.As(err, &provErr), "deadline expiry must not look like a provider outage")
}

func TestGenerate_SanitizesLeafFields(t *testing.T) {
	padded := strings.Replace(validDocument,
		`"headline": "H"`,
		`"headline": "   `+strings.Repeat("x", 700)+`   "`, 1)

	connector := &fakeConnector{responses: []fakeResponse{{content: padded}}}
	uc := newTestUseCase(connector)

	tpl, err := uc.Generate(context.Background(), validInput())

	require.NoError(t, err)
	headline := tpl.LandingPage.Sections.Hero.Headline
	assert.Len(t, []rune(headline), 600)
	assert.Equal(t, headline, strings.TrimSpace(headline))
}

func TestGenerateFromPrompt(t *testing.T) {
	t.Run("empty prompt rejected", func(t *testing.T) {
		connector := &fakeConnector{}
		uc := newTestUseCase(connector)

		_, err := uc.GenerateFromPrompt(context.Background(), "   ")

		require.Error(t, err)
		assert.ErrorIs(t, err, entity.ErrMissingField)
		assert.Zero(t, connector.calls)
	})

	t.Run("valid brief produces a template", func(t *testing.T) {
		connector := &fakeConnector{responses: []fakeResponse{{content: validDocument}}}
		uc := newTestUseCase(connector)

		tpl, err := uc.GenerateFromPrompt(context.Background(), "a landing page for a dental clinic")

		require.NoError(t, err)
		require.NotNil(t, tpl)
		assert.Equal(t, 1, connector.calls)
	})
}
