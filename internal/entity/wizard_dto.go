package entity

import "time"

type StartWizardRequest struct {
	ProfileID string `json:"profile_id,omitempty"`
}

type SetFieldRequest struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WizardSessionDTO is the wire representation of a wizard session.
type WizardSessionDTO struct {
	ID            string               `json:"session_id"`
	Step          int                  `json:"step"`
	TotalSteps    int                  `json:"total_steps"`
	Status        WizardStatus         `json:"status"`
	Answers       QuestionnaireAnswers `json:"answers"`
	Template      *GeneratedTemplate   `json:"template,omitempty"`
	TemplateFresh bool                 `json:"template_fresh"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type SubmitResponse struct {
	RecordID string `json:"record_id"`
	Status   string `json:"status"`
}

// SubmissionRecordDTO is the wire representation of a persisted landing page.
type SubmissionRecordDTO struct {
	ID               string               `json:"id"`
	Answers          QuestionnaireAnswers `json:"answers"`
	GeneratedContent GeneratedTemplate    `json:"generated_content"`
	Status           SubmissionStatus     `json:"status"`
	CreatedAt        time.Time            `json:"created_at"`
}
