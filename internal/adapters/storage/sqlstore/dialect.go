// Package sqlstore implementa los repositorios sobre database/sql.
// Las queries se escriben con "?" y se reescriben según el dialecto.
package sqlstore

import (
	"strconv"
	"strings"
)

type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

func (d Dialect) String() string {
	switch d {
	case Postgres:
		return "postgres"
	case SQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// Rebind convierte "?" en "$1, $2, ..." para Postgres.
// No contempla "?" dentro de literales; las queries de este paquete no los usan.
func (d Dialect) Rebind(q string) string {
	if d != Postgres {
		return q
	}
	var sb strings.Builder
	sb.Grow(len(q) + 8)
	n := 1
	for _, c := range q {
		if c == '?' {
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			n++
			continue
		}
		sb.WriteRune(c)
	}
	return sb.String()
}
