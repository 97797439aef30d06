package reports

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strings"
	"time"

	"animal-rescue/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	// Acepta cualquier método: los que no son POST responden "Invalid request".
	r.HandleFunc("/update_status/{reportID}", updateStatusHandler(svc, log))
	r.HandleFunc("/update_status/{reportID}/", updateStatusHandler(svc, log))

	r.Route("/api/reports", func(rr chi.Router) {
		rr.Get("/", listReportsHandler(svc, log))
		rr.Post("/", createReportHandler(svc, log))
		rr.Get("/{reportID}", getReportHandler(svc, log))
	})
}

// createReportRequest es el cuerpo JSON para enviar un reporte sin formulario.
type createReportRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	AnimalType  string `json:"animal_type" enums:"Dog,Cat,Bird,Snake,Other"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// reportResponse representa un reporte devuelto por la API.
type reportResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	AnimalType  AnimalType `json:"animal_type"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	ImageURL    string     `json:"image_url,omitempty"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

type updateStatusRequest struct {
	Status string `json:"status" enums:"Pending,Acknowledged,Resolved"`
}

// statusResult es la respuesta estructurada de update_status.
type statusResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// updateStatusHandler godoc
// @Summary Actualizar estado de un reporte
// @Description Cambia el estado (Pending, Acknowledged, Resolved) y dispara la notificación al reportante si el estado cambió. Acepta form field `status` o JSON `{"status": "..."}`.
// @Tags reports
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param reportID path string true "ID del reporte"
// @Param status formData string false "Nuevo estado"
// @Success 200 {object} statusResult
// @Failure 400 {object} statusResult "Invalid status"
// @Failure 404 {object} statusResult "Report not found"
// @Failure 405 {object} statusResult "Invalid request"
// @Router /update_status/{reportID}/ [post]
func updateStatusHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, statusResult{Success: false, Error: "Invalid request"})
			return
		}

		raw, err := readStatus(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, statusResult{Success: false, Error: "Invalid request"})
			return
		}

		reportID := chi.URLParam(r, "reportID")
		if _, err := svc.UpdateStatus(r.Context(), reportID, raw); err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				writeJSON(w, http.StatusNotFound, statusResult{Success: false, Error: "Report not found"})
			case errors.Is(err, ErrInvalidStatus):
				writeJSON(w, http.StatusBadRequest, statusResult{Success: false, Error: "Invalid status"})
			default:
				log.Error("update status failed", map[string]any{"report_id": reportID, "error": err.Error()})
				writeJSON(w, http.StatusInternalServerError, statusResult{Success: false, Error: "internal error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, statusResult{Success: true})
	}
}

// listReportsHandler godoc
// @Summary Listar reportes
// @Description Todos los reportes, más reciente primero.
// @Tags reports
// @Produce json
// @Success 200 {array} reportResponse
// @Router /api/reports [get]
func listReportsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list reports failed", map[string]any{"error": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]reportResponse, 0, len(items))
		for _, rep := range items {
			out = append(out, toReportResponse(rep))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getReportHandler godoc
// @Summary Detalle de reporte
// @Tags reports
// @Produce json
// @Param reportID path string true "ID del reporte"
// @Success 200 {object} reportResponse
// @Failure 404 {string} string "report not found"
// @Router /api/reports/{reportID} [get]
func getReportHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reportID := chi.URLParam(r, "reportID")
		rep, err := svc.GetByID(r.Context(), reportID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "report not found", http.StatusNotFound)
				return
			}
			log.Error("get report failed", map[string]any{"report_id": reportID, "error": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toReportResponse(rep))
	}
}

// createReportHandler godoc
// @Summary Enviar reporte (JSON)
// @Description Crea un reporte en estado Pending y notifica a las organizaciones activas con email. animal_type desconocido se guarda como Other.
// @Tags reports
// @Accept json
// @Produce json
// @Param payload body createReportRequest true "Datos del reporte"
// @Success 201 {object} reportResponse
// @Failure 400 {string} string "invalid json"
// @Router /api/reports [post]
func createReportHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rep, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Email:       req.Email,
			AnimalType:  req.AnimalType,
			Description: req.Description,
			Location:    req.Location,
		})
		if err != nil {
			log.Error("create report failed", map[string]any{"error": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toReportResponse(rep))
	}
}

// readStatus soporta JSON o formulario (urlencoded / multipart).
func readStatus(r *http.Request) (string, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", err
		}
		return req.Status, nil
	}
	return r.PostFormValue("status"), nil
}

// ImageURL es la ruta pública de una imagen guardada ("" si no hay).
func ImageURL(key string) string {
	if strings.TrimSpace(key) == "" {
		return ""
	}
	return "/media/" + key
}

func toReportResponse(r Report) reportResponse {
	return reportResponse{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		AnimalType:  r.AnimalType,
		Description: r.Description,
		Location:    r.Location,
		ImageURL:    ImageURL(r.ImageKey),
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
