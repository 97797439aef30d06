package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"mime"
	"net/http"
	"strconv"

	"animal-rescue/internal/domain/reports"
	"animal-rescue/internal/platform/logger"
	"animal-rescue/internal/ports/blob"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templateFS embed.FS

// MaxUploadBytes limita el tamaño del formulario con imagen.
const MaxUploadBytes = 10 << 20

var pageNames = []string{"home", "reports", "report_form"}

type Pages struct {
	svc   *reports.Service
	log   logger.Logger
	pages map[string]*template.Template
}

func NewPages(svc *reports.Service, log logger.Logger) (*Pages, error) {
	if log == nil {
		log = logger.Nop()
	}

	funcs := template.FuncMap{
		"imageURL": reports.ImageURL,
		"statuses": reports.Statuses,
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Pages{svc: svc, log: log, pages: pages}, nil
}

func (p *Pages) RegisterRoutes(r chi.Router) {
	r.Get("/", p.home)
	r.Get("/reports", p.listReports)
	r.Get("/reports/", p.listReports)
	r.Get("/report", p.reportForm)
	r.Get("/report/", p.reportForm)
	r.Post("/report", p.submitReport)
	r.Post("/report/", p.submitReport)
	r.Get("/media/*", p.media)
}

type listView struct {
	Title   string
	Reports []reports.Report
}

type formView struct {
	Title       string
	AnimalTypes []reports.AnimalType
}

func (p *Pages) home(w http.ResponseWriter, r *http.Request) {
	items, err := p.svc.List(r.Context())
	if err != nil {
		p.fail(w, "list reports failed", err)
		return
	}
	p.render(w, "home", listView{Title: "Animal Rescue", Reports: items})
}

func (p *Pages) listReports(w http.ResponseWriter, r *http.Request) {
	items, err := p.svc.List(r.Context())
	if err != nil {
		p.fail(w, "list reports failed", err)
		return
	}
	p.render(w, "reports", listView{Title: "All reports", Reports: items})
}

func (p *Pages) reportForm(w http.ResponseWriter, r *http.Request) {
	p.render(w, "report_form", formView{Title: "Report an animal", AnimalTypes: reports.AnimalTypes()})
}

// submitReport acepta multipart (con imagen opcional) o urlencoded.
func (p *Pages) submitReport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)

	// ParseMultipartForm sobre urlencoded devuelve ErrNotMultipart y se traga
	// el error de ParseForm (body demasiado grande), por eso se elige por Content-Type.
	var err error
	if ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); ct == "multipart/form-data" {
		err = r.ParseMultipartForm(MaxUploadBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "form too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	in := reports.CreateInput{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		AnimalType:  r.FormValue("animal_type"),
		Description: r.FormValue("description"),
		Location:    r.FormValue("location"),
	}

	if r.MultipartForm != nil {
		file, header, err := r.FormFile("image")
		switch {
		case err == nil:
			defer file.Close()
			in.Image = &reports.ImageUpload{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Body:        file,
			}
		case errors.Is(err, http.ErrMissingFile):
		default:
			http.Error(w, "invalid image", http.StatusBadRequest)
			return
		}
	}

	rep, err := p.svc.Create(r.Context(), in)
	if err != nil {
		p.fail(w, "create report failed", err)
		return
	}

	p.log.Debug("report submitted from form", map[string]any{"report_id": rep.ID})
	http.Redirect(w, r, "/reports/", http.StatusSeeOther)
}

func (p *Pages) media(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if !reports.IsImageKey(key) {
		http.NotFound(w, r)
		return
	}

	info, body, err := p.svc.OpenImage(r.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, blob.ErrNotFound), errors.Is(err, reports.ErrImagesDisabled):
			http.NotFound(w, r)
		default:
			p.fail(w, "open image failed", err)
		}
		return
	}
	defer body.Close()

	if info.ContentType != "" {
		w.Header().Set("Content-Type", info.ContentType)
	}
	if info.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, body); err != nil {
		p.log.Warn("image stream interrupted", map[string]any{"key": key, "error": err.Error()})
	}
}

// render ejecuta en buffer para no mandar una página a medias si falla.
func (p *Pages) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := p.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		p.fail(w, "render template failed", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (p *Pages) fail(w http.ResponseWriter, msg string, err error) {
	p.log.Error(msg, map[string]any{"error": err.Error()})
	http.Error(w, "internal error", http.StatusInternalServerError)
}
