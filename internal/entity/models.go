package entity

import (
	"fmt"
	"time"
)

type Objective string

// Objective is the main goal the generated landing page is optimized for.
const (
	ObjectiveLeads       Objective = "leads"
	ObjectiveAppointment Objective = "appointment"
	ObjectiveSales       Objective = "sales"
	ObjectiveEvent       Objective = "event"
	ObjectiveBranding    Objective = "branding"
	ObjectiveOther       Objective = "other"
)

func (o Objective) Validate() error {
	switch o {
	case ObjectiveLeads, ObjectiveAppointment, ObjectiveSales, ObjectiveEvent, ObjectiveBranding, ObjectiveOther:
		return nil
	default:
		return fmt.Errorf("%w: unknown objective %q", ErrInvalidParameter, string(o))
	}
}

// QuestionnaireAnswers is the full answer set collected by the wizard.
// The *_other / pricing_details / uploaded_images fields are meaningful only
// when their gating field is set; they are kept but ignored otherwise.
type QuestionnaireAnswers struct {
	ClientName         string    `json:"client_name"`
	CompanyName        string    `json:"company_name"`
	BusinessType       string    `json:"business_type"`
	Objective          Objective `json:"objective"`
	ObjectiveOther     string    `json:"objective_other,omitempty"`
	OfferDetails       string    `json:"offer_details,omitempty"`
	HasPhotos          bool      `json:"has_photos"`
	UploadedImages     []string  `json:"uploaded_images,omitempty"`
	AdditionalComments string    `json:"additional_comments,omitempty"`
	CompanyHistory     string    `json:"company_history,omitempty"`
	ShowPricing        bool      `json:"show_pricing"`
	PricingDetails     string    `json:"pricing_details,omitempty"`
	SelectedPlan       *string   `json:"selected_plan,omitempty"`
}

// DefaultAnswers returns the initial answer set for a fresh wizard session.
func DefaultAnswers() QuestionnaireAnswers {
	return QuestionnaireAnswers{
		Objective:      ObjectiveLeads,
		UploadedImages: []string{},
	}
}

// GenerationInput is the subset of answers the generation service consumes.
type GenerationInput struct {
	ClientName     string    `json:"client_name"`
	CompanyName    string    `json:"company_name"`
	BusinessType   string    `json:"business_type"`
	Objective      Objective `json:"objective"`
	OfferDetails   string    `json:"offer_details,omitempty"`
	CompanyHistory string    `json:"company_history,omitempty"`
}

// GenerationInputFrom extracts the generation-relevant fields from answers.
func GenerationInputFrom(a *QuestionnaireAnswers) GenerationInput {
	return GenerationInput{
		ClientName:     a.ClientName,
		CompanyName:    a.CompanyName,
		BusinessType:   a.BusinessType,
		Objective:      a.Objective,
		OfferDetails:   a.OfferDetails,
		CompanyHistory: a.CompanyHistory,
	}
}

type WizardStatus string

// Wizard status tracks the lifecycle of one questionnaire session.
const (
	WizardStatusActive     WizardStatus = "ACTIVE"
	WizardStatusSubmitting WizardStatus = "SUBMITTING"
	WizardStatusDone       WizardStatus = "DONE"
)

// Wizard step layout. StepCount is fixed; StepTemplatePreview is the step
// whose forward transition is gated on a fresh generated template.
const (
	StepInitialInfo     = 1
	StepObjective       = 2
	StepOfferDetails    = 3
	StepVisuals         = 4
	StepAdditionalInfo  = 5
	StepCompanyHistory  = 6
	StepTemplatePreview = 7
	StepPricingSection  = 8
	StepPlanSelection   = 9

	StepCount = 9
)

// WizardSession is one user's questionnaire session. The session exclusively
// owns its answers and the last generated template; there is no cross-session
// sharing.
type WizardSession struct {
	ID        string               `json:"session_id"`
	ProfileID string               `json:"profile_id"`
	Step      int                  `json:"step"`
	Status    WizardStatus         `json:"status"`
	Answers   QuestionnaireAnswers `json:"answers"`
	Template  *GeneratedTemplate   `json:"template,omitempty"`
	// TemplateFingerprint is the hash of the generation inputs at the moment
	// the current template was generated. Empty means no usable template.
	TemplateFingerprint string    `json:"template_fingerprint,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// HasFreshTemplate reports whether a template exists and was generated from
// the current generation-relevant answers.
func (s *WizardSession) HasFreshTemplate() bool {
	if s.Template == nil || s.TemplateFingerprint == "" {
		return false
	}
	return s.TemplateFingerprint == GenerationInputFrom(&s.Answers).Fingerprint()
}

// Profile is the owning user profile. Auth itself is external; only the plan
// selection and trial start are touched here.
type Profile struct {
	ID             string     `json:"id"`
	SelectedPlan   *string    `json:"selected_plan,omitempty"`
	TrialStartDate *time.Time `json:"trial_start_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type SubmissionStatus string

const (
	SubmissionStatusDraft     SubmissionStatus = "draft"
	SubmissionStatusPublished SubmissionStatus = "published"
)

// SubmissionRecord is the persisted union of the answers and the generated
// content, created once at final submit.
type SubmissionRecord struct {
	ID               string               `json:"id"`
	ProfileID        string               `json:"profile_id"`
	Answers          QuestionnaireAnswers `json:"answers"`
	GeneratedContent GeneratedTemplate    `json:"generated_content"`
	Status           SubmissionStatus     `json:"status"`
	CreatedAt        time.Time            `json:"created_at"`
}

// PricingPlan is one subscription plan offered at the plan-selection step.
type PricingPlan struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}
