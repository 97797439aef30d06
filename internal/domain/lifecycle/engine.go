package lifecycle

import (
	"context"
	"strings"

	"animal-rescue/internal/domain/organizations"
	"animal-rescue/internal/domain/reports"
	"animal-rescue/internal/platform/logger"
	"animal-rescue/internal/platform/metrics"
	"animal-rescue/internal/ports/notify"
)

const DefaultSender = "rescue@animal-rescue.local"

// OrganizationSource evita acoplar el motor al repositorio de organizaciones.
type OrganizationSource interface {
	ListActive(ctx context.Context) ([]organizations.Organization, error)
}

// Engine traduce altas y cambios de estado en notificaciones.
// Los envíos son fire-and-forget: un error del sink se loguea y se cuenta,
// nunca se devuelve al llamador.
type Engine struct {
	orgs    OrganizationSource
	sink    notify.Sink
	from    string
	log     logger.Logger
	metrics *metrics.Metrics
}

type Option func(*Engine)

func WithSender(addr string) Option {
	return func(e *Engine) {
		if a := strings.TrimSpace(addr); a != "" {
			e.from = a
		}
	}
}

func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

func New(orgs OrganizationSource, sink notify.Sink, opts ...Option) *Engine {
	e := &Engine{
		orgs: orgs,
		sink: sink,
		from: DefaultSender,
		log:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ reports.Hooks = (*Engine)(nil)

// ReportCreated envía un único mensaje a todas las organizaciones activas con email.
// Sin destinatarios no hace nada.
func (e *Engine) ReportCreated(ctx context.Context, r reports.Report) {
	orgs, err := e.orgs.ListActive(ctx)
	if err != nil {
		e.log.Error("list active organizations failed", map[string]any{
			"report_id": r.ID,
			"error":     err.Error(),
		})
		e.metrics.ObserveNotification(string(KindReportCreated), metrics.ResultFailed)
		return
	}

	to := make([]string, 0, len(orgs))
	for _, o := range orgs {
		if !o.Notifiable() {
			continue
		}
		to = append(to, strings.TrimSpace(o.Email))
	}

	if len(to) == 0 {
		e.log.Debug("no organizations to notify", map[string]any{"report_id": r.ID})
		e.metrics.ObserveNotification(string(KindReportCreated), metrics.ResultSkipped)
		return
	}

	e.dispatch(ctx, r.ID, CreatedDraft(r), to)
}

// StatusChanged recibe el snapshot previo a la escritura y el estado nuevo.
// Solo avisa si el estado cambió y el nuevo estado tiene plantilla.
func (e *Engine) StatusChanged(ctx context.Context, before, after reports.Report) {
	if before.ID != after.ID {
		e.log.Warn("status change with mismatched snapshots", map[string]any{
			"before_id": before.ID,
			"after_id":  after.ID,
		})
		return
	}
	if before.Status == after.Status {
		return
	}

	d, ok := StatusDraft(after)
	if !ok {
		return
	}

	email := strings.TrimSpace(after.Email)
	if email == "" {
		e.log.Warn("reporter has no email, skipping notification", map[string]any{"report_id": after.ID})
		e.metrics.ObserveNotification(string(d.Kind), metrics.ResultSkipped)
		return
	}

	e.dispatch(ctx, after.ID, d, []string{email})
}

func (e *Engine) dispatch(ctx context.Context, reportID string, d Draft, to []string) {
	msg := notify.Message{
		From:    e.from,
		To:      to,
		Subject: d.Subject,
		Body:    d.Body,
	}

	fields := map[string]any{
		"report_id":  reportID,
		"kind":       string(d.Kind),
		"recipients": len(to),
	}

	if err := e.sink.Send(ctx, msg); err != nil {
		fields["error"] = err.Error()
		e.log.Error("notification dispatch failed", fields)
		e.metrics.ObserveNotification(string(d.Kind), metrics.ResultFailed)
		return
	}

	e.log.Info("notification sent", fields)
	e.metrics.ObserveNotification(string(d.Kind), metrics.ResultSent)
}
