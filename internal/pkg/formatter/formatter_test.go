package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageforge/landing-backend/internal/entity"
)

func samplePage() *entity.GeneratedTemplate {
	return &entity.GeneratedTemplate{
		LandingPage: entity.LandingPage{
			Sections: entity.Sections{
				Hero: &entity.HeroSection{
					Headline:    "Grow Your Practice",
					Subheadline: "Clients first",
					Description: "We build pages that convert.",
				},
				Services: &entity.ServicesSection{
					Title:       "What We Offer",
					Description: "Focused services.",
					Items: []entity.ServiceItem{
						{Title: "Consulting", Description: "One on one."},
						{Title: "Support", Description: "Always there."},
						{Title: "Plans", Description: "Made to fit."},
					},
				},
				Benefits: &entity.BenefitsSection{
					Title: "Why Us",
					Items: []entity.ServiceItem{
						{Title: "Experience", Description: "Years of it."},
						{Title: "Pricing", Description: "Transparent."},
						{Title: "Results", Description: "Measurable."},
					},
				},
				Testimonials: &entity.TestimonialsSection{
					Title: "Clients Say",
					Items: []entity.TestimonialItem{
						{Quote: "Changed my business.", Author: "Mariana", Role: "Owner"},
						{Quote: "Great team.", Author: "Rafael", Role: "Director"},
					},
				},
				CTA: &entity.CTASection{
					Headline:    "Ready?",
					Description: "Book today.",
					ButtonText:  "Schedule",
					ContactInfo: entity.ContactInfo{
						Address: "Av. Paulista 1000",
						Phone:   "+55 11 99999-0000",
						Email:   "contact@example.com",
						SocialMedia: entity.SocialMedia{
							Instagram: "@example",
							LinkedIn:  "company/example",
						},
					},
				},
			},
		},
	}
}

func TestFactoryCreate(t *testing.T) {
	factory := NewFactory()

	md, err := factory.Create(entity.FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, ".md", md.FileExtension())

	pdf, err := factory.Create(entity.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, ".pdf", pdf.FileExtension())

	_, err = factory.Create(entity.ResultFormat("docx"))
	assert.Error(t, err)
}

func TestMarkdownFormatter(t *testing.T) {
	out, err := NewMarkdownFormatter().Format("Studio Ana", samplePage())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "# Studio Ana")
	assert.Contains(t, text, "## Grow Your Practice")
	assert.Contains(t, text, "- **Consulting** — One on one.")
	assert.Contains(t, text, "> Changed my business.")
	assert.Contains(t, text, "**[Schedule]**")
	assert.Contains(t, text, "contact@example.com")
	assert.Contains(t, text, "Instagram: @example")
}

func TestPDFFormatter(t *testing.T) {
	out, err := NewPDFFormatter().Format("Studio Ana", samplePage())
	require.NoError(t, err)

	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
	assert.Equal(t, "application/pdf", NewPDFFormatter().ContentType())
}
