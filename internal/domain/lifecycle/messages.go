package lifecycle

import (
	"fmt"

	"animal-rescue/internal/domain/reports"
)

// Kind identifica qué notificación se compuso (se usa también como label de métricas).
type Kind string

const (
	KindReportCreated Kind = "report_created"
	KindAcknowledged  Kind = "report_acknowledged"
	KindResolved      Kind = "report_resolved"
)

// Draft es una notificación compuesta, sin remitente ni destinatarios.
type Draft struct {
	Kind    Kind
	Subject string
	Body    string
}

// statusTemplates es la única tabla estado => aviso al reportante.
// Un estado ausente (Pending) no genera aviso.
var statusTemplates = map[reports.Status]func(r reports.Report) Draft{
	reports.StatusAcknowledged: func(r reports.Report) Draft {
		return Draft{
			Kind:    KindAcknowledged,
			Subject: "Rescue Team Acknowledged Your Report",
			Body: fmt.Sprintf(
				"Dear %s,\n\n"+
					"The rescue team has acknowledged your report for the %s.\n"+
					"They are on their way to the location: %s\n\n"+
					"Thank you for helping save animals!\n\n"+
					"- Animal Rescue Team",
				r.Name, r.AnimalType, r.Location,
			),
		}
	},
	reports.StatusResolved: func(r reports.Report) Draft {
		return Draft{
			Kind:    KindResolved,
			Subject: fmt.Sprintf("Rescue Completed for %s", r.AnimalType),
			Body: fmt.Sprintf(
				"Dear %s,\n\n"+
					"The rescue operation for the %s you reported at %s has been successfully completed.\n"+
					"Thank you for your compassion and support.\n\n"+
					"- Animal Rescue Team",
				r.Name, r.AnimalType, r.Location,
			),
		}
	},
}

// StatusDraft devuelve el aviso al reportante para el estado actual del reporte.
func StatusDraft(r reports.Report) (Draft, bool) {
	tpl, ok := statusTemplates[r.Status]
	if !ok {
		return Draft{}, false
	}
	return tpl(r), true
}

// CreatedDraft es el aviso a organizaciones por un reporte nuevo.
func CreatedDraft(r reports.Report) Draft {
	return Draft{
		Kind:    KindReportCreated,
		Subject: fmt.Sprintf("New Rescue Report: %s", r.AnimalType),
		Body: fmt.Sprintf(
			"A %s needs help!\n\n"+
				"Location: %s\n"+
				"Description: %s\n\n"+
				"Please respond and update the status to '%s' once received.",
			r.AnimalType, r.Location, r.Description, reports.StatusAcknowledged,
		),
	}
}
