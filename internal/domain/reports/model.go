package reports

import (
	"strings"
	"time"
)

// AnimalType es la categoría del animal reportado.
// @Enum Dog, Cat, Bird, Snake, Other
type AnimalType string

const (
	AnimalDog   AnimalType = "Dog"
	AnimalCat   AnimalType = "Cat"
	AnimalBird  AnimalType = "Bird"
	AnimalSnake AnimalType = "Snake"
	AnimalOther AnimalType = "Other"
)

var animalTypes = []AnimalType{AnimalDog, AnimalCat, AnimalBird, AnimalSnake, AnimalOther}

// AnimalTypes devuelve las categorías en el orden en que se muestran en el formulario.
func AnimalTypes() []AnimalType {
	out := make([]AnimalType, len(animalTypes))
	copy(out, animalTypes)
	return out
}

// ParseAnimalType nunca falla: vacío o desconocido => Other.
func ParseAnimalType(s string) AnimalType {
	s = strings.TrimSpace(s)
	for _, a := range animalTypes {
		if strings.EqualFold(string(a), s) {
			return a
		}
	}
	return AnimalOther
}

// Status es el estado del reporte.
// @Enum Pending, Acknowledged, Resolved
type Status string

const (
	StatusPending      Status = "Pending"
	StatusAcknowledged Status = "Acknowledged"
	StatusResolved     Status = "Resolved"
)

var statuses = []Status{StatusPending, StatusAcknowledged, StatusResolved}

func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

// ParseStatus valida contra el conjunto cerrado (match exacto, sin espacios alrededor).
func ParseStatus(s string) (Status, bool) {
	s = strings.TrimSpace(s)
	for _, st := range statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Report es un incidente enviado por un ciudadano.
type Report struct {
	ID string

	Name  string
	Email string

	AnimalType  AnimalType
	Description string
	Location    string

	// ImageKey referencia opcional al blob store ("" = sin imagen).
	ImageKey string

	Status Status

	// CreatedAt se fija una sola vez al crear.
	CreatedAt time.Time
}

func (r Report) String() string {
	return string(r.AnimalType) + " at " + r.Location
}
