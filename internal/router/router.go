package router

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	_ "animal-rescue/docs"
	blobmem "animal-rescue/internal/adapters/blob/memory"
	notifymem "animal-rescue/internal/adapters/notify/memory"
	mem "animal-rescue/internal/adapters/storage/memory"
	"animal-rescue/internal/adapters/storage/sqlstore"
	"animal-rescue/internal/domain/lifecycle"
	"animal-rescue/internal/domain/organizations"
	"animal-rescue/internal/domain/reports"
	"animal-rescue/internal/middleware"
	"animal-rescue/internal/platform/logger"
	"animal-rescue/internal/platform/metrics"
	"animal-rescue/internal/ports/blob"
	"animal-rescue/internal/ports/notify"
	"animal-rescue/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa SQL con el dialecto indicado. Si no, in-memory.
	DB      *sql.DB
	Dialect sqlstore.Dialect

	Images  blob.Store  // nil => memoria
	Sink    notify.Sink // nil => memoria (solo loguea)
	Sender  string
	Metrics *metrics.Metrics // nil => registry nuevo
	Logger  logger.Logger

	Clock func() time.Time // nil => time.Now
}

// App expone lo que cmd/api necesita además del handler (scheduler, tests).
type App struct {
	Handler       http.Handler
	Reports       *reports.Service
	Organizations *organizations.Service
	Metrics       *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	app, err := New(opts)
	if err != nil {
		// solo falla si los templates embebidos no parsean
		panic(err)
	}
	return app.Handler
}

func New(opts Options) (*App, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	var (
		reportRepo reports.Repository
		orgRepo    organizations.Repository
	)
	if opts.DB != nil {
		reportRepo = sqlstore.NewReportsRepo(opts.DB, opts.Dialect)
		orgRepo = sqlstore.NewOrganizationsRepo(opts.DB, opts.Dialect)
	} else {
		reportRepo = mem.NewReportRepo()
		orgRepo = mem.NewOrganizationRepo()
	}

	images := opts.Images
	if images == nil {
		images = blobmem.NewStore()
	}
	sink := opts.Sink
	if sink == nil {
		sink = notifymem.NewSink(log.With(map[string]any{"component": "notify"}))
	}

	// Services por módulo
	orgsSvc := organizations.NewService(orgRepo)
	engine := lifecycle.New(orgsSvc, sink,
		lifecycle.WithSender(opts.Sender),
		lifecycle.WithLogger(log.With(map[string]any{"component": "lifecycle"})),
		lifecycle.WithMetrics(m),
	)
	reportsSvc := reports.NewService(reportRepo,
		reports.WithHooks(engine),
		reports.WithImageStore(images),
		reports.WithMetrics(m),
		reports.WithLogger(log.With(map[string]any{"component": "reports"})),
		reports.WithClock(opts.Clock),
	)

	pages, err := web.NewPages(reportsSvc, log.With(map[string]any{"component": "web"}))
	if err != nil {
		return nil, fmt.Errorf("web pages: %w", err)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log.With(map[string]any{"component": "http"})))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	pages.RegisterRoutes(r)
	reports.RegisterRoutes(r, reportsSvc, log)
	organizations.RegisterRoutes(r, orgsSvc, log)

	return &App{
		Handler:       r,
		Reports:       reportsSvc,
		Organizations: orgsSvc,
		Metrics:       m,
	}, nil
}
