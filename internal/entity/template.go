package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// GeneratedTemplate is the landing-page content document produced by the
// generation service. The JSON field names and nesting are a fixed contract
// with the preview renderer and must not change.
type GeneratedTemplate struct {
	LandingPage LandingPage `json:"landingPage"`
}

type LandingPage struct {
	Sections Sections `json:"sections"`
}

type Sections struct {
	Hero         *HeroSection         `json:"hero"`
	Services     *ServicesSection     `json:"services"`
	Benefits     *BenefitsSection     `json:"benefits"`
	Testimonials *TestimonialsSection `json:"testimonials"`
	CTA          *CTASection          `json:"cta"`
}

type HeroSection struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	Description string `json:"description"`
}

type ServicesSection struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Items       []ServiceItem `json:"items"`
}

type ServiceItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type BenefitsSection struct {
	Title string        `json:"title"`
	Items []ServiceItem `json:"items"`
}

type TestimonialsSection struct {
	Title string            `json:"title"`
	Items []TestimonialItem `json:"items"`
}

type TestimonialItem struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

type CTASection struct {
	Headline    string      `json:"headline"`
	Description string      `json:"description"`
	ButtonText  string      `json:"buttonText"`
	ContactInfo ContactInfo `json:"contactInfo"`
}

type ContactInfo struct {
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email"`
	SocialMedia SocialMedia `json:"socialMedia"`
}

type SocialMedia struct {
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}

// Expected item counts per section. The prompt dictates these and validation
// enforces them, so the preview renderer never sees a ragged document.
const (
	ServicesItemCount     = 3
	BenefitsItemCount     = 3
	TestimonialsItemCount = 2
)

// Validate checks that every required section is present with the exact item
// counts. A missing section is reported by name so prompt drift is visible
// in logs.
func (t *GeneratedTemplate) Validate() error {
	s := t.LandingPage.Sections

	if s.Hero == nil {
		return &SchemaError{Section: "hero"}
	}
	if s.Services == nil {
		return &SchemaError{Section: "services"}
	}
	if s.Benefits == nil {
		return &SchemaError{Section: "benefits"}
	}
	if s.Testimonials == nil {
		return &SchemaError{Section: "testimonials"}
	}
	if s.CTA == nil {
		return &SchemaError{Section: "cta"}
	}

	if len(s.Services.Items) != ServicesItemCount {
		return &SchemaError{
			Section: "services",
			Detail:  fmt.Sprintf("expected %d items, got %d", ServicesItemCount, len(s.Services.Items)),
		}
	}
	if len(s.Benefits.Items) != BenefitsItemCount {
		return &SchemaError{
			Section: "benefits",
			Detail:  fmt.Sprintf("expected %d items, got %d", BenefitsItemCount, len(s.Benefits.Items)),
		}
	}
	if len(s.Testimonials.Items) != TestimonialsItemCount {
		return &SchemaError{
			Section: "testimonials",
			Detail:  fmt.Sprintf("expected %d items, got %d", TestimonialsItemCount, len(s.Testimonials.Items)),
		}
	}

	return nil
}

// Sanitize trims whitespace and caps every leaf string at maxLen runes. The
// model output is prose headed for a renderer, so oversized or padded values
// are clipped rather than rejected.
func (t *GeneratedTemplate) Sanitize(maxLen int) {
	s := &t.LandingPage.Sections

	clip := func(v *string) {
		*v = strings.TrimSpace(*v)
		if runes := []rune(*v); len(runes) > maxLen {
			*v = string(runes[:maxLen])
		}
	}

	if s.Hero != nil {
		clip(&s.Hero.Headline)
		clip(&s.Hero.Subheadline)
		clip(&s.Hero.Description)
	}
	if s.Services != nil {
		clip(&s.Services.Title)
		clip(&s.Services.Description)
		for i := range s.Services.Items {
			clip(&s.Services.Items[i].Title)
			clip(&s.Services.Items[i].Description)
		}
	}
	if s.Benefits != nil {
		clip(&s.Benefits.Title)
		for i := range s.Benefits.Items {
			clip(&s.Benefits.Items[i].Title)
			clip(&s.Benefits.Items[i].Description)
		}
	}
	if s.Testimonials != nil {
		clip(&s.Testimonials.Title)
		for i := range s.Testimonials.Items {
			clip(&s.Testimonials.Items[i].Quote)
			clip(&s.Testimonials.Items[i].Author)
			clip(&s.Testimonials.Items[i].Role)
		}
	}
	if s.CTA != nil {
		clip(&s.CTA.Headline)
		clip(&s.CTA.Description)
		clip(&s.CTA.ButtonText)
		clip(&s.CTA.ContactInfo.Address)
		clip(&s.CTA.ContactInfo.Phone)
		clip(&s.CTA.ContactInfo.Email)
		clip(&s.CTA.ContactInfo.SocialMedia.Instagram)
		clip(&s.CTA.ContactInfo.SocialMedia.LinkedIn)
	}
}

// Fingerprint hashes the generation-relevant inputs. The wizard compares it
// against the fingerprint stored at generation time to decide whether the
// current template is still valid for the current answers.
func (in GenerationInput) Fingerprint() string {
	h := sha256.New()
	for _, field := range []string{
		in.ClientName,
		in.CompanyName,
		in.BusinessType,
		string(in.Objective),
		in.OfferDetails,
		in.CompanyHistory,
	} {
		h.Write([]byte(field))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Validate checks the generation preconditions locally, before any provider
// call is made.
func (in *GenerationInput) Validate() error {
	missing := make([]string, 0, 4)
	if in.ClientName == "" {
		missing = append(missing, "client_name")
	}
	if in.CompanyName == "" {
		missing = append(missing, "company_name")
	}
	if in.BusinessType == "" {
		missing = append(missing, "business_type")
	}
	if in.Objective == "" {
		missing = append(missing, "objective")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	return in.Objective.Validate()
}
