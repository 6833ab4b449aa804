package landingpage

import "github.com/pageforge/landing-backend/internal/entity"

// toRecordDTO converts SubmissionRecord entity to SubmissionRecordDTO
func toRecordDTO(record *entity.SubmissionRecord) *entity.SubmissionRecordDTO {
	return &entity.SubmissionRecordDTO{
		ID:               record.ID,
		Answers:          record.Answers,
		GeneratedContent: record.GeneratedContent,
		Status:           record.Status,
		CreatedAt:        record.CreatedAt,
	}
}

func toRecordDTOs(records []*entity.SubmissionRecord) []*entity.SubmissionRecordDTO {
	out := make([]*entity.SubmissionRecordDTO, 0, len(records))
	for _, record := range records {
		out = append(out, toRecordDTO(record))
	}
	return out
}
