package generation

import (
	"fmt"
	"strings"

	"github.com/pageforge/landing-backend/internal/entity"
)

// The JSON skeleton the model must fill in. The field names and item counts
// are a fixed contract with the preview renderer; validation rejects any
// deviation, so the prompt spells the structure out literally.
const templateSchema = `{
  "landingPage": {
    "sections": {
      "hero": {
        "headline": "short attention-grabbing headline",
        "subheadline": "supporting subheadline",
        "description": "one or two sentences describing the offer"
      },
      "services": {
        "title": "section title",
        "description": "short intro for the services section",
        "items": [
          {"title": "service name", "description": "what it delivers"},
          {"title": "service name", "description": "what it delivers"},
          {"title": "service name", "description": "what it delivers"}
        ]
      },
      "benefits": {
        "title": "section title",
        "items": [
          {"title": "benefit", "description": "why it matters to the client"},
          {"title": "benefit", "description": "why it matters to the client"},
          {"title": "benefit", "description": "why it matters to the client"}
        ]
      },
      "testimonials": {
        "title": "section title",
        "items": [
          {"quote": "realistic client quote", "author": "full name", "role": "role or company"},
          {"quote": "realistic client quote", "author": "full name", "role": "role or company"}
        ]
      },
      "cta": {
        "headline": "closing call to action",
        "description": "short urgency or value statement",
        "buttonText": "button label",
        "contactInfo": {
          "address": "plausible address",
          "phone": "plausible phone number",
          "email": "plausible email",
          "socialMedia": {
            "instagram": "@handle",
            "linkedin": "profile or page name"
          }
        }
      }
    }
  }
}`

// buildSystemPrompt renders the copywriting instructions for one business.
func buildSystemPrompt(in entity.GenerationInput) string {
	var b strings.Builder

	b.WriteString("You are a landing-page copywriter for professional service providers. ")
	b.WriteString("Write persuasive, concrete landing-page content for the business described below. ")
	b.WriteString("Answer in the same language the business details are written in.\n\n")

	b.WriteString("Business details:\n")
	fmt.Fprintf(&b, "- Client name: %s\n", in.ClientName)
	fmt.Fprintf(&b, "- Company name: %s\n", in.CompanyName)
	fmt.Fprintf(&b, "- Business type: %s\n", in.BusinessType)
	fmt.Fprintf(&b, "- Main objective of the page: %s\n", in.Objective)
	if in.OfferDetails != "" {
		fmt.Fprintf(&b, "- Offer details: %s\n", in.OfferDetails)
	}
	if in.CompanyHistory != "" {
		fmt.Fprintf(&b, "- Company history: %s\n", in.CompanyHistory)
	}

	b.WriteString("\nRespond with a single JSON document matching EXACTLY this structure, ")
	b.WriteString("with exactly 3 services, exactly 3 benefits and exactly 2 testimonials:\n")
	b.WriteString(templateSchema)
	b.WriteString("\n\nReturn only the JSON document, no commentary before or after it.")

	return b.String()
}

const defaultUserPrompt = "Generate the landing page content now, following the exact structure."

// buildContentSystemPrompt is the free-form variant: the caller supplies the
// creative brief, the structural contract stays the same.
func buildContentSystemPrompt(prompt string) string {
	var b strings.Builder

	b.WriteString("You are a landing-page copywriter for professional service providers.\n\n")
	b.WriteString("Brief:\n")
	b.WriteString(prompt)
	b.WriteString("\n\nRespond with a single JSON document matching EXACTLY this structure, ")
	b.WriteString("with exactly 3 services, exactly 3 benefits and exactly 2 testimonials:\n")
	b.WriteString(templateSchema)
	b.WriteString("\n\nReturn only the JSON document, no commentary before or after it.")

	return b.String()
}
