package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeTemplate() *GeneratedTemplate {
	return &GeneratedTemplate{
		LandingPage: LandingPage{
			Sections: Sections{
				Hero: &HeroSection{Headline: "H", Subheadline: "S", Description: "D"},
				Services: &ServicesSection{Title: "Services", Items: []ServiceItem{
					{Title: "A"}, {Title: "B"}, {Title: "C"},
				}},
				Benefits: &BenefitsSection{Title: "Benefits", Items: []ServiceItem{
					{Title: "A"}, {Title: "B"}, {Title: "C"},
				}},
				Testimonials: &TestimonialsSection{Title: "Testimonials", Items: []TestimonialItem{
					{Quote: "q1"}, {Quote: "q2"},
				}},
				CTA: &CTASection{Headline: "Go"},
			},
		},
	}
}

func TestGeneratedTemplateValidate(t *testing.T) {
	t.Run("complete document passes", func(t *testing.T) {
		assert.NoError(t, completeTemplate().Validate())
	})

	t.Run("missing sections are reported by name", func(t *testing.T) {
		tests := []struct {
			section string
			remove  func(*Sections)
		}{
			{"hero", func(s *Sections) { s.Hero = nil }},
			{"services", func(s *Sections) { s.Services = nil }},
			{"benefits", func(s *Sections) { s.Benefits = nil }},
			{"testimonials", func(s *Sections) { s.Testimonials = nil }},
			{"cta", func(s *Sections) { s.CTA = nil }},
		}

		for _, tt := range tests {
			t.Run(tt.section, func(t *testing.T) {
				tpl := completeTemplate()
				tt.remove(&tpl.LandingPage.Sections)

				err := tpl.Validate()

				var schemaErr *SchemaError
				require.ErrorAs(t, err, &schemaErr)
				assert.Equal(t, tt.section, schemaErr.Section)
				assert.Empty(t, schemaErr.Detail)
			})
		}
	})

	t.Run("wrong item counts are rejected", func(t *testing.T) {
		tpl := completeTemplate()
		tpl.LandingPage.Sections.Testimonials.Items = tpl.LandingPage.Sections.Testimonials.Items[:1]

		err := tpl.Validate()

		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "testimonials", schemaErr.Section)
		assert.Contains(t, schemaErr.Detail, "expected 2 items, got 1")
	})
}

func TestGeneratedTemplateSanitize(t *testing.T) {
	tpl := completeTemplate()
	tpl.LandingPage.Sections.Hero.Headline = "  padded  "
	tpl.LandingPage.Sections.CTA.ContactInfo.Email = strings.Repeat("a", 120)
	tpl.LandingPage.Sections.Testimonials.Items[0].Quote = "çãéü" + strings.Repeat("x", 200)

	tpl.Sanitize(100)

	assert.Equal(t, "padded", tpl.LandingPage.Sections.Hero.Headline)
	assert.Len(t, tpl.LandingPage.Sections.CTA.ContactInfo.Email, 100)
	// Multi-byte text is capped by runes, never split mid-character.
	quote := tpl.LandingPage.Sections.Testimonials.Items[0].Quote
	assert.Len(t, []rune(quote), 100)
	assert.True(t, strings.HasPrefix(quote, "çãéü"))
}

func TestGenerationInputFingerprint(t *testing.T) {
	base := GenerationInput{
		ClientName:   "Ana",
		CompanyName:  "Studio Ana",
		BusinessType: "pilates studio",
		Objective:    ObjectiveLeads,
	}

	t.Run("stable for equal inputs", func(t *testing.T) {
		assert.Equal(t, base.Fingerprint(), base.Fingerprint())
	})

	t.Run("changes when any field changes", func(t *testing.T) {
		changed := base
		changed.CompanyName = "Studio Anna"
		assert.NotEqual(t, base.Fingerprint(), changed.Fingerprint())

		changed = base
		changed.Objective = ObjectiveSales
		assert.NotEqual(t, base.Fingerprint(), changed.Fingerprint())
	})

	t.Run("field boundaries are unambiguous", func(t *testing.T) {
		a := GenerationInput{ClientName: "ab", CompanyName: "c", BusinessType: "x", Objective: ObjectiveLeads}
		b := GenerationInput{ClientName: "a", CompanyName: "bc", BusinessType: "x", Objective: ObjectiveLeads}
		assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})
}

func TestWizardSessionHasFreshTemplate(t *testing.T) {
	answers := QuestionnaireAnswers{
		ClientName:   "Ana",
		CompanyName:  "Studio Ana",
		BusinessType: "pilates studio",
		Objective:    ObjectiveLeads,
	}

	session := &WizardSession{Answers: answers}
	assert.False(t, session.HasFreshTemplate(), "no template yet")

	session.Template = completeTemplate()
	assert.False(t, session.HasFreshTemplate(), "template without fingerprint")

	session.TemplateFingerprint = GenerationInputFrom(&session.Answers).Fingerprint()
	assert.True(t, session.HasFreshTemplate())

	session.Answers.BusinessType = "yoga studio"
	assert.False(t, session.HasFreshTemplate(), "generation-relevant change invalidates")

	session.Answers.BusinessType = "pilates studio"
	session.Answers.AdditionalComments = "call me in the morning"
	assert.True(t, session.HasFreshTemplate(), "non-generation fields do not invalidate")
}
