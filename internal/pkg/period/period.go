package period

import (
	"time"
)

// Months is the fixed calendar-ordered month list. Payroll periods are
// persisted with the canonical month name, never a numeric index.
var Months = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthIndex returns the 1-based calendar position of a month name,
// or 0 when the name is not one of the twelve canonical names.
func MonthIndex(name string) int {
	for i, m := range Months {
		if m == name {
			return i + 1
		}
	}
	return 0
}

// IsValidMonth reports whether name is a canonical month name.
func IsValidMonth(name string) bool {
	return MonthIndex(name) > 0
}

// MonthName returns the canonical name for a time.Month.
func MonthName(m time.Month) string {
	return Months[int(m)-1]
}

// Current returns the canonical month name and year for t.
func Current(t time.Time) (string, int) {
	return MonthName(t.Month()), t.Year()
}
