package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/pageforge/landing-backend/internal/entity"
	"github.com/pageforge/landing-backend/internal/pkg/logger"
	"github.com/pageforge/landing-backend/internal/pkg/response"
	"github.com/pageforge/landing-backend/internal/pkg/validator"
)

type Handler struct {
	usecase   WizardUsecase
	validator *validator.Validator
}

func NewHandler(usecase WizardUsecase, v *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: v,
	}
}

// StartSession handles POST /wizard-session - Start a new wizard session
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "StartSession")

	profileID := r.Header.Get("X-Profile-ID")

	// The body is optional; a bare POST starts an anonymous session.
	if r.Body != nil && r.ContentLength > 0 {
		var req entity.StartWizardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
			return
		}
		if req.ProfileID != "" {
			profileID = req.ProfileID
		}
	}

	session, err := h.usecase.StartSession(ctx, profileID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "wizard session created", zap.String("session_id", session.ID))
	response.Created(w, toSessionDTO(session))
}

// GetSession handles GET /wizard-session/{id} - Get session state
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", chi.URLParam(r, "id")),
		zap.String("action", "GetSession"),
	)

	session, err := h.usecase.GetSession(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toSessionDTO(session))
}

// SetField handles PATCH /wizard-session/{id}/field - Apply one answer change
func (h *Handler) SetField(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", "SetField"),
	)

	var req entity.SetFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateSetField(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	ctxzap.Debug(ctx, "applying field change", zap.String("field", req.Name))

	session, err := h.usecase.SetField(ctx, sessionID, req.Name, req.Value)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toSessionDTO(session))
}

// Next handles POST /wizard-session/{id}/next - Advance one step
func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", "Next"),
	)

	session, err := h.usecase.Next(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toSessionDTO(session))
}

// Prev handles POST /wizard-session/{id}/prev - Go back one step
func (h *Handler) Prev(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", "Prev"),
	)

	session, err := h.usecase.Prev(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toSessionDTO(session))
}

// Generate handles POST /wizard-session/{id}/generate - Generate the template
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", "Generate"),
	)

	ctxzap.Info(ctx, "generating template for session")

	session, err := h.usecase.Generate(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toSessionDTO(session))
}

// Submit handles POST /wizard-session/{id}/submit - Finalize the wizard
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", "Submit"),
	)

	ctxzap.Info(ctx, "submitting session")

	result, err := h.usecase.Submit(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Created(w, result)
}

// Abandon handles DELETE /wizard-session/{id} - Discard the session
func (h *Handler) Abandon(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", "Abandon"),
	)

	if err := h.usecase.Abandon(ctx, sessionID); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "wizard session deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	ctxzap.Error(ctx, message, zap.Error(err))
	response.JSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: err.Error(),
	})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	var provErr *entity.ProviderError
	var parseErr *entity.ParseError
	var schemaErr *entity.SchemaError

	switch {
	case errors.Is(err, entity.ErrSessionNotFound), errors.Is(err, entity.ErrProfileNotFound):
		h.respondError(ctx, w, http.StatusNotFound, "resource not found", err)
	case errors.Is(err, entity.ErrMissingField), errors.Is(err, entity.ErrInvalidParameter),
		errors.Is(err, entity.ErrUnknownField), errors.Is(err, entity.ErrUnknownPlan):
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	case errors.Is(err, entity.ErrSessionDone), errors.Is(err, entity.ErrStepOutOfRange),
		errors.Is(err, entity.ErrTemplateRequired), errors.Is(err, entity.ErrPlanRequired),
		errors.Is(err, entity.ErrWrongStep):
		h.respondError(ctx, w, http.StatusConflict, "invalid session state", err)
	case errors.Is(err, entity.ErrGenerationTimeout):
		h.respondError(ctx, w, http.StatusGatewayTimeout, "template generation timed out", err)
	case errors.As(err, &provErr), errors.As(err, &parseErr), errors.As(err, &schemaErr):
		h.respondError(ctx, w, http.StatusBadGateway, "template generation failed", err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
