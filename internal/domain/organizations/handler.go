package organizations

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"animal-rescue/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	r.Route("/api/organizations", func(or chi.Router) {
		or.Get("/", listOrganizationsHandler(svc, log))
		or.Post("/", createOrganizationHandler(svc, log))
		or.Patch("/{orgID}", updateOrganizationHandler(svc, log))
	})
}

type createOrganizationRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IsActive *bool  `json:"is_active"` // opcional, default true
}

type updateOrganizationRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"is_active"`
}

// organizationResponse representa una organización de rescate.
type organizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// listOrganizationsHandler godoc
// @Summary Listar organizaciones
// @Tags organizations
// @Produce json
// @Success 200 {array} organizationResponse
// @Router /api/organizations [get]
func listOrganizationsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list organizations failed", map[string]any{"error": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]organizationResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOrganizationResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createOrganizationHandler godoc
// @Summary Registrar organización
// @Description Las organizaciones activas con email reciben un aviso por cada reporte nuevo.
// @Tags organizations
// @Accept json
// @Produce json
// @Param payload body createOrganizationRequest true "Datos de la organización"
// @Success 201 {object} organizationResponse
// @Failure 400 {string} string "invalid json / name required"
// @Router /api/organizations [post]
func createOrganizationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrganizationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Create(r.Context(), CreateInput{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			IsActive: req.IsActive,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "name required", http.StatusBadRequest)
				return
			}
			log.Error("create organization failed", map[string]any{"error": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toOrganizationResponse(o))
	}
}

// updateOrganizationHandler godoc
// @Summary Actualizar organización
// @Description PATCH parcial: solo se modifican los campos enviados. `is_active: false` deja de notificarla.
// @Tags organizations
// @Accept json
// @Produce json
// @Param orgID path string true "ID de la organización"
// @Param payload body updateOrganizationRequest true "Campos a modificar"
// @Success 200 {object} organizationResponse
// @Failure 400 {string} string "invalid json / name required"
// @Failure 404 {string} string "organization not found"
// @Router /api/organizations/{orgID} [patch]
func updateOrganizationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateOrganizationRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		orgID := chi.URLParam(r, "orgID")
		o, err := svc.Update(r.Context(), orgID, UpdateInput{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			IsActive: req.IsActive,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "name required", http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "organization not found", http.StatusNotFound)
			default:
				log.Error("update organization failed", map[string]any{"org_id": orgID, "error": err.Error()})
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toOrganizationResponse(o))
	}
}

func toOrganizationResponse(o Organization) organizationResponse {
	return organizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		Email:     o.Email,
		Phone:     o.Phone,
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
