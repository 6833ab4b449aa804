package landingpage

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/pageforge/landing-backend/internal/entity"
	"github.com/pageforge/landing-backend/internal/pkg/logger"
	"github.com/pageforge/landing-backend/internal/pkg/response"
)

type Handler struct {
	usecase LandingPageUsecase
}

func NewHandler(usecase LandingPageUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// List handles GET /landing-pages - List the profile's submitted pages
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListLandingPages")

	records, err := h.usecase.List(ctx, r.Header.Get("X-Profile-ID"))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toRecordDTOs(records))
}

// Get handles GET /landing-pages/{id} - Get one submitted page
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("record_id", recordID),
		zap.String("action", "GetLandingPage"),
	)

	record, err := h.usecase.Get(ctx, recordID, r.Header.Get("X-Profile-ID"))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toRecordDTO(record))
}

// Export handles GET /landing-pages/{id}/export?format=md|pdf - Download
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("record_id", recordID),
		zap.String("action", "ExportLandingPage"),
	)

	formatParam := r.URL.Query().Get("format")
	if formatParam == "" {
		formatParam = string(entity.FormatMarkdown)
	}

	body, contentType, filename, err := h.usecase.Export(
		ctx, recordID, r.Header.Get("X-Profile-ID"), entity.ResultFormat(formatParam),
	)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.File(w, contentType, filename, body)
}

// Profile handles GET /profile - Get the profile's plan and trial state
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetProfile")

	profile, err := h.usecase.Profile(ctx, r.Header.Get("X-Profile-ID"))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, profile)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	ctxzap.Error(ctx, message, zap.Error(err))
	response.JSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: err.Error(),
	})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrRecordNotFound), errors.Is(err, entity.ErrProfileNotFound):
		h.respondError(ctx, w, http.StatusNotFound, "resource not found", err)
	case errors.Is(err, entity.ErrMissingField), errors.Is(err, entity.ErrInvalidParameter),
		errors.Is(err, entity.ErrInvalidFormat):
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
