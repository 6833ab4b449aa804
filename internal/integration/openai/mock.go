package openai

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector returns a canned, schema-complete landing-page document so
// the whole flow can run without an API key.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

const mockCompletion = "```json\n" + `{
  "landingPage": {
    "sections": {
      "hero": {
        "headline": "Grow Your Practice With Confidence",
        "subheadline": "Professional service that puts your clients first",
        "description": "We help local businesses turn visitors into loyal clients with a clear message and a page built to convert."
      },
      "services": {
        "title": "What We Offer",
        "description": "A focused set of services designed around your goals.",
        "items": [
          {"title": "Personal Consultations", "description": "One-on-one sessions tailored to each client's situation."},
          {"title": "Ongoing Support", "description": "Continuous follow-up so results actually stick."},
          {"title": "Custom Plans", "description": "Every engagement starts from your specific needs."}
        ]
      },
      "benefits": {
        "title": "Why Choose Us",
        "items": [
          {"title": "Proven Experience", "description": "Years of hands-on work with clients like you."},
          {"title": "Transparent Pricing", "description": "No surprises, no hidden fees."},
          {"title": "Real Results", "description": "We measure success by the outcomes you see."}
        ]
      },
      "testimonials": {
        "title": "What Clients Say",
        "items": [
          {"quote": "Working with this team changed how I run my business.", "author": "Mariana Costa", "role": "Studio Owner"},
          {"quote": "Professional, responsive and genuinely invested in my success.", "author": "Rafael Lima", "role": "Clinic Director"}
        ]
      },
      "cta": {
        "headline": "Ready to Get Started?",
        "description": "Book your first consultation today and see the difference.",
        "buttonText": "Schedule Now",
        "contactInfo": {
          "address": "Av. Paulista 1000, São Paulo",
          "phone": "+55 11 99999-0000",
          "email": "contact@example.com",
          "socialMedia": {
            "instagram": "@example",
            "linkedin": "company/example"
          }
        }
      }
    }
  }
}` + "\n```"

// Complete returns the canned document wrapped in a code fence, matching the
// worst-case provider behavior the parser must handle.
func (m *MockConnector) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] returning canned completion", zap.Int("content_len", len(mockCompletion)))
	return mockCompletion, nil
}
