package wizard

import "github.com/pageforge/landing-backend/internal/entity"

// toSessionDTO converts WizardSession entity to WizardSessionDTO
func toSessionDTO(session *entity.WizardSession) *entity.WizardSessionDTO {
	return &entity.WizardSessionDTO{
		ID:            session.ID,
		Step:          session.Step,
		TotalSteps:    entity.StepCount,
		Status:        session.Status,
		Answers:       session.Answers,
		Template:      session.Template,
		TemplateFresh: session.HasFreshTemplate(),
		CreatedAt:     session.CreatedAt,
		UpdatedAt:     session.UpdatedAt,
	}
}
