package companies

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/biztime/biztime/internal/platform/httpx"
)

type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: httpx.NewValidator()}
}

// MountRoutes registers company routes relative to the /companies prefix.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{code}", h.Show)
	r.Put("/{code}", h.Update)
	r.Delete("/{code}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.List(r.Context())
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"companies": companies})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	detail, err := h.service.Detail(r.Context(), code)
	if err != nil {
		httpx.RespondError(w, h.logger.With("code", code), err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"company": detail})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyRequest
	if err := httpx.DecodeAndValidate(r, h.validator, &req); err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, h.logger.With("code", req.Code), err)
		return
	}
	h.logger.Info("company created", slog.String("code", created.Code))
	httpx.JSON(w, http.StatusCreated, map[string]any{"company": created})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	var req UpdateCompanyRequest
	if err := httpx.DecodeAndValidate(r, h.validator, &req); err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	updated, err := h.service.Update(r.Context(), code, req)
	if err != nil {
		httpx.RespondError(w, h.logger.With("code", code), err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"company": updated})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if err := h.service.Delete(r.Context(), code); err != nil {
		httpx.RespondError(w, h.logger.With("code", code), err)
		return
	}
	h.logger.Info("company deleted", slog.String("code", code))
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
