package industries

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/biztime/biztime/internal/masterdata"
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

// MountRoutes registers industry routes relative to the /companies prefix.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/industries", h.Create)
	r.Get("/industries/list", h.List)
	r.Post("/addIndustry", h.Associate)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateIndustryRequest
	if err := httpx.DecodeAndValidate(r, h.validator, &req); err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, h.logger.With("industry_code", req.Code), err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"industry": []masterdata.Industry{created}})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.ListWithCompanies(r.Context())
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"industries": groups})
}

func (h *Handler) Associate(w http.ResponseWriter, r *http.Request) {
	var req AssociateRequest
	if err := httpx.DecodeAndValidate(r, h.validator, &req); err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	assoc, err := h.service.Associate(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, h.logger.With("company_code", req.CompanyCode, "industry_code", req.IndustryCode), err)
		return
	}
	h.logger.Info("company associated with industry",
		slog.Int64("id", assoc.ID),
		slog.String("company_code", assoc.CompanyCode),
		slog.String("industry_code", assoc.IndustryCode),
	)
	httpx.JSON(w, http.StatusCreated, map[string]any{"industries_companies": []masterdata.Association{assoc}})
}
