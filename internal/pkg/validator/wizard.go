package validator

import (
	"fmt"

	"github.com/pageforge/landing-backend/internal/entity"
)

// ValidateSetField validates a FIELD_CHANGE request. The value itself is
// checked by the wizard use case when it is applied; here only the envelope
// is validated.
func (v *Validator) ValidateSetField(req *entity.SetFieldRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name", entity.ErrMissingField)
	}
	return nil
}

// ValidateSelectedPlan checks the plan against the configured plan list.
func (v *Validator) ValidateSelectedPlan(plan *string) error {
	if plan == nil || *plan == "" {
		return entity.ErrPlanRequired
	}
	if !v.KnownPlan(*plan) {
		return fmt.Errorf("%w: %s", entity.ErrUnknownPlan, *plan)
	}
	return nil
}
