package reports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"animal-rescue/internal/platform/logger"
	"animal-rescue/internal/platform/metrics"
	"animal-rescue/internal/ports/blob"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus  = errors.New("invalid status")
	ErrImagesDisabled = errors.New("image storage not configured")
)

// Hooks recibe los cambios ya persistidos. Lo implementa el motor de ciclo de vida;
// se define acá para que reports no importe lifecycle (rompe ciclos).
type Hooks interface {
	ReportCreated(ctx context.Context, r Report)
	StatusChanged(ctx context.Context, before, after Report)
}

type noopHooks struct{}

func (noopHooks) ReportCreated(context.Context, Report)         {}
func (noopHooks) StatusChanged(context.Context, Report, Report) {}

type Service struct {
	repo    Repository
	images  blob.Store
	hooks   Hooks
	metrics *metrics.Metrics
	log     logger.Logger
	now     func() time.Time
}

type Option func(*Service)

func WithHooks(h Hooks) Option {
	return func(s *Service) {
		if h != nil {
			s.hooks = h
		}
	}
}

func WithImageStore(store blob.Store) Option {
	return func(s *Service) { s.images = store }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock reemplaza time.Now (CreatedAt).
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		hooks: noopHooks{},
		log:   logger.Nop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ImageUpload es la imagen opcional que acompaña un reporte.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type CreateInput struct {
	Name        string
	Email       string
	AnimalType  string
	Description string
	Location    string
	Image       *ImageUpload
}

// Create no valida contenido: solo recorta espacios y normaliza la categoría.
// El estado siempre arranca en Pending.
func (s *Service) Create(ctx context.Context, in CreateInput) (Report, error) {
	r := Report{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		AnimalType:  ParseAnimalType(in.AnimalType),
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		Status:      StatusPending,
		CreatedAt:   s.now().UTC(),
	}

	if in.Image != nil && in.Image.Body != nil {
		key, err := s.storeImage(ctx, *in.Image)
		if err != nil {
			return Report{}, err
		}
		r.ImageKey = key
	}

	if err := s.repo.Create(ctx, r); err != nil {
		if r.ImageKey != "" {
			// el blob store no borra: queda huérfana hasta limpieza manual
			s.log.Warn("report insert failed, image left orphaned", map[string]any{
				"report_id": r.ID,
				"image_key": r.ImageKey,
				"error":     err.Error(),
			})
		}
		return Report{}, fmt.Errorf("create report: %w", err)
	}

	s.metrics.IncrementReportsCreated()
	s.log.Info("report created", map[string]any{
		"report_id":   r.ID,
		"animal_type": string(r.AnimalType),
	})

	s.hooks.ReportCreated(ctx, r)
	return r, nil
}

// UpdateStatus valida el estado, persiste y avisa al hook con el snapshot previo.
func (s *Service) UpdateStatus(ctx context.Context, id, rawStatus string) (Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Report{}, ErrNotFound
	}

	status, ok := ParseStatus(rawStatus)
	if !ok {
		return Report{}, ErrInvalidStatus
	}

	before, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Report{}, err
	}

	after := before
	after.Status = status

	if err := s.repo.Update(ctx, after); err != nil {
		return Report{}, fmt.Errorf("update report status: %w", err)
	}

	if before.Status != after.Status {
		s.metrics.IncrementStatusChange(string(after.Status))
		s.log.Info("report status changed", map[string]any{
			"report_id": id,
			"from":      string(before.Status),
			"to":        string(after.Status),
		})
	}

	s.hooks.StatusChanged(ctx, before, after)
	return after, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Report{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Report, error) {
	return s.repo.List(ctx)
}

// StatusCounts cuenta reportes por estado (incluye ceros).
func (s *Service) StatusCounts(ctx context.Context) (map[Status]int, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[Status]int, len(statuses))
	for _, st := range statuses {
		out[st] = 0
	}
	for _, r := range items {
		out[r.Status]++
	}
	return out, nil
}

// OpenImage abre la imagen asociada a un key del blob store.
func (s *Service) OpenImage(ctx context.Context, key string) (blob.Info, io.ReadCloser, error) {
	if s.images == nil {
		return blob.Info{}, nil, ErrImagesDisabled
	}
	return s.images.Get(ctx, key)
}

const imageKeyPrefix = "reports/"

// IsImageKey acepta solo keys generados por storeImage; /media no expone el resto del bucket.
func IsImageKey(key string) bool {
	rest, ok := strings.CutPrefix(key, imageKeyPrefix)
	return ok && rest != "" && !strings.Contains(rest, "/") && !strings.Contains(rest, "..")
}

func (s *Service) storeImage(ctx context.Context, img ImageUpload) (string, error) {
	if s.images == nil {
		return "", ErrImagesDisabled
	}

	ext := strings.ToLower(path.Ext(strings.TrimSpace(img.Filename)))
	key := imageKeyPrefix + uuid.NewString() + ext

	ct := strings.TrimSpace(img.ContentType)
	if ct == "" {
		ct = "application/octet-stream"
	}

	if _, err := s.images.Put(ctx, key, img.Body, ct); err != nil {
		return "", fmt.Errorf("store report image: %w", err)
	}
	return key, nil
}
