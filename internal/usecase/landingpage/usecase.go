package landingpage

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/pageforge/landing-backend/internal/entity"
	"github.com/pageforge/landing-backend/internal/pkg/formatter"
)

// RecordRepository reads persisted landing-page submissions.
type RecordRepository interface {
	GetSubmissionByID(ctx context.Context, id, profileID string) (*entity.SubmissionRecord, error)
	ListSubmissionsByProfile(ctx context.Context, profileID string) ([]*entity.SubmissionRecord, error)
}

// ProfileReader reads the owning profile with its plan state.
type ProfileReader interface {
	GetProfileByID(ctx context.Context, id string) (*entity.Profile, error)
}

// UseCase exposes the read side of submitted landing pages: listing, detail
// and file export, plus the owning profile.
type UseCase struct {
	records  RecordRepository
	profiles ProfileReader
	formats  *formatter.Factory
	logger   *zap.Logger
}

func NewUseCase(records RecordRepository, profiles ProfileReader, formats *formatter.Factory, logger *zap.Logger) *UseCase {
	return &UseCase{
		records:  records,
		profiles: profiles,
		formats:  formats,
		logger:   logger,
	}
}

// Profile returns the profile with its current plan and trial state.
func (uc *UseCase) Profile(ctx context.Context, profileID string) (*entity.Profile, error) {
	if profileID == "" {
		return nil, fmt.Errorf("%w: profile id", entity.ErrMissingField)
	}
	return uc.profiles.GetProfileByID(ctx, profileID)
}

func (uc *UseCase) List(ctx context.Context, profileID string) ([]*entity.SubmissionRecord, error) {
	if profileID == "" {
		return nil, fmt.Errorf("%w: profile id", entity.ErrMissingField)
	}
	return uc.records.ListSubmissionsByProfile(ctx, profileID)
}

func (uc *UseCase) Get(ctx context.Context, id, profileID string) (*entity.SubmissionRecord, error) {
	if profileID == "" {
		return nil, fmt.Errorf("%w: profile id", entity.ErrMissingField)
	}
	return uc.records.GetSubmissionByID(ctx, id, profileID)
}

// Export renders a submitted landing page as a downloadable file. Returns
// the file body, its content type and a suggested filename.
func (uc *UseCase) Export(ctx context.Context, id, profileID string, format entity.ResultFormat) ([]byte, string, string, error) {
	if err := format.Validate(); err != nil {
		return nil, "", "", err
	}

	record, err := uc.Get(ctx, id, profileID)
	if err != nil {
		return nil, "", "", err
	}

	fmtr, err := uc.formats.Create(format)
	if err != nil {
		return nil, "", "", err
	}

	title := record.Answers.CompanyName
	if title == "" {
		title = "Landing Page"
	}

	body, err := fmtr.Format(title, &record.GeneratedContent)
	if err != nil {
		return nil, "", "", fmt.Errorf("format landing page: %w", err)
	}

	ctxzap.Info(ctx, "landing page exported",
		zap.String("record_id", record.ID),
		zap.String("format", string(format)),
		zap.Int("size_bytes", len(body)),
	)

	filename := fmt.Sprintf("landing-page-%s%s", record.ID, fmtr.FileExtension())
	return body, fmtr.ContentType(), filename, nil
}
