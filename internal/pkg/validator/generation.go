package validator

import (
	"fmt"

	"github.com/pageforge/landing-backend/internal/entity"
)

// ValidateGenerateTemplate validates GenerateTemplateRequest
func (v *Validator) ValidateGenerateTemplate(req *entity.GenerateTemplateRequest) error {
	in := req.ToInput()
	return in.Validate()
}

// ValidateGenerateContent validates GenerateContentRequest
func (v *Validator) ValidateGenerateContent(req *entity.GenerateContentRequest) error {
	if req.Prompt == "" {
		return fmt.Errorf("%w: prompt", entity.ErrMissingField)
	}
	return nil
}

// ValidateGenerateImage validates GenerateImageRequest
func (v *Validator) ValidateGenerateImage(req *entity.GenerateImageRequest) error {
	if req.Prompt == "" {
		return fmt.Errorf("%w: prompt", entity.ErrMissingField)
	}
	return nil
}
