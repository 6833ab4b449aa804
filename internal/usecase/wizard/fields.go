package wizard

import (
	"fmt"

	"github.com/pageforge/landing-backend/internal/entity"
)

// Answer field names as they appear in FIELD_CHANGE requests. They match the
// JSON tags on entity.QuestionnaireAnswers.
const (
	fieldClientName         = "client_name"
	fieldCompanyName        = "company_name"
	fieldBusinessType       = "business_type"
	fieldObjective          = "objective"
	fieldObjectiveOther     = "objective_other"
	fieldOfferDetails       = "offer_details"
	fieldHasPhotos          = "has_photos"
	fieldUploadedImages     = "uploaded_images"
	fieldAdditionalComments = "additional_comments"
	fieldCompanyHistory     = "company_history"
	fieldShowPricing        = "show_pricing"
	fieldPricingDetails     = "pricing_details"
	fieldSelectedPlan       = "selected_plan"
)

// applyField sets exactly one named answer field from a JSON-decoded value.
// Unknown names and wrong value types are rejected without touching the
// answers.
func (uc *UseCase) applyField(answers *entity.QuestionnaireAnswers, name string, value any) error {
	switch name {
	case fieldClientName:
		return setString(&answers.ClientName, name, value)
	case fieldCompanyName:
		return setString(&answers.CompanyName, name, value)
	case fieldBusinessType:
		return setString(&answers.BusinessType, name, value)
	case fieldObjective:
		s, err := asString(name, value)
		if err != nil {
			return err
		}
		objective := entity.Objective(s)
		if err := objective.Validate(); err != nil {
			return err
		}
		answers.Objective = objective
		return nil
	case fieldObjectiveOther:
		return setString(&answers.ObjectiveOther, name, value)
	case fieldOfferDetails:
		return setString(&answers.OfferDetails, name, value)
	case fieldHasPhotos:
		return setBool(&answers.HasPhotos, name, value)
	case fieldUploadedImages:
		images, err := asStringSlice(name, value)
		if err != nil {
			return err
		}
		answers.UploadedImages = images
		return nil
	case fieldAdditionalComments:
		return setString(&answers.AdditionalComments, name, value)
	case fieldCompanyHistory:
		return setString(&answers.CompanyHistory, name, value)
	case fieldShowPricing:
		return setBool(&answers.ShowPricing, name, value)
	case fieldPricingDetails:
		return setString(&answers.PricingDetails, name, value)
	case fieldSelectedPlan:
		if value == nil {
			answers.SelectedPlan = nil
			return nil
		}
		s, err := asString(name, value)
		if err != nil {
			return err
		}
		if err := uc.validator.ValidateSelectedPlan(&s); err != nil {
			return err
		}
		answers.SelectedPlan = &s
		return nil
	default:
		return fmt.Errorf("%w: %s", entity.ErrUnknownField, name)
	}
}

func setString(dst *string, name string, value any) error {
	s, err := asString(name, value)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

func setBool(dst *bool, name string, value any) error {
	b, ok := value.(bool)
	if !ok {
		return fmt.Errorf("%w: %s must be a boolean", entity.ErrInvalidParameter, name)
	}
	*dst = b
	return nil
}

func asString(name string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", entity.ErrInvalidParameter, name)
	}
	return s, nil
}

func asStringSlice(name string, value any) ([]string, error) {
	raw, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an array of strings", entity.ErrInvalidParameter, name)
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be an array of strings", entity.ErrInvalidParameter, name)
		}
		out = append(out, s)
	}
	return out, nil
}
