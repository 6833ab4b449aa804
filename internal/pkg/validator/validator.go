package validator

import (
	"github.com/pageforge/landing-backend/internal/entity"
)

// Validator checks incoming requests against the domain rules and the
// configured pricing plans.
type Validator struct {
	plans map[string]entity.PricingPlan
}

func NewValidator(plans []entity.PricingPlan) *Validator {
	byName := make(map[string]entity.PricingPlan, len(plans))
	for _, p := range plans {
		byName[p.Name] = p
	}
	return &Validator{plans: byName}
}

// Plans returns the configured pricing plans keyed by name.
func (v *Validator) Plans() map[string]entity.PricingPlan {
	return v.plans
}

// KnownPlan reports whether name is a configured pricing plan.
func (v *Validator) KnownPlan(name string) bool {
	_, ok := v.plans[name]
	return ok
}
