package generation

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/pageforge/landing-backend/internal/entity"
	"github.com/pageforge/landing-backend/internal/pkg/logger"
	"github.com/pageforge/landing-backend/internal/pkg/response"
	"github.com/pageforge/landing-backend/internal/pkg/validator"
)

type Handler struct {
	usecase   GenerationUsecase
	imageConn ImageConnector
	validator *validator.Validator
}

func NewHandler(usecase GenerationUsecase, imageConn ImageConnector, v *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		imageConn: imageConn,
		validator: v,
	}
}

// GenerateTemplate handles POST /templates/generate - Generate from answers
func (h *Handler) GenerateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateTemplate")

	var req entity.GenerateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateGenerateTemplate(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	ctxzap.Info(ctx, "generating template",
		zap.String("company_name", req.CompanyName),
		zap.String("objective", string(req.Objective)),
	)

	template, err := h.usecase.Generate(ctx, req.ToInput())
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, entity.GenerateTemplateResponse{Template: template})
}

// GenerateContent handles POST /content/generate - Generate from a free-form brief
func (h *Handler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateContent")

	var req entity.GenerateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateGenerateContent(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	ctxzap.Info(ctx, "generating content from prompt", zap.Int("prompt_len", len(req.Prompt)))

	content, err := h.usecase.GenerateFromPrompt(ctx, req.Prompt)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, entity.GenerateContentResponse{Content: content})
}

// GenerateImage handles POST /images/generate - Generate an illustration
func (h *Handler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateImage")

	var req entity.GenerateImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateGenerateImage(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	ctxzap.Info(ctx, "generating image", zap.Int("prompt_len", len(req.Prompt)))

	imageBytes, contentType, err := h.imageConn.GenerateImage(ctx, req.Prompt)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, entity.GenerateImageResponse{
		ContentType: contentType,
		ImageBase64: base64.StdEncoding.EncodeToString(imageBytes),
	})
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
	case errors.Is(err, entity.ErrMissingField), errors.Is(err, entity.ErrInvalidParameter):
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	case errors.Is(err, entity.ErrGenerationTimeout):
		h.respondError(ctx, w, http.StatusGatewayTimeout, "generation timed out", err)
	case errors.As(err, &provErr):
		h.respondError(ctx, w, http.StatusBadGateway, "generation provider failed", err)
	case errors.As(err, &parseErr), errors.As(err, &schemaErr):
		h.respondError(ctx, w, http.StatusBadGateway, "provider returned an unusable document", err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
