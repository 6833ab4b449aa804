package landingpage

import (
	"context"

	"github.com/pageforge/landing-backend/internal/entity"
)

type LandingPageUsecase interface {
	List(ctx context.Context, profileID string) ([]*entity.SubmissionRecord, error)
	Get(ctx context.Context, id, profileID string) (*entity.SubmissionRecord, error)
	Export(ctx context.Context, id, profileID string, format entity.ResultFormat) (body []byte, contentType, filename string, err error)
	Profile(ctx context.Context, profileID string) (*entity.Profile, error)
}
