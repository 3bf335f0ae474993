package export

import (
	"fmt"
	"time"
)

// The exports and the acta render dates the way the original printable
// documents did: long-form Mexican Spanish. The standard library carries
// no locale data, so the tables live here.

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var spanishWeekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

// FormatDate renders a timestamp as "lunes, 2 de marzo de 2026", using the
// timestamp's own wall clock.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		spanishWeekdays[t.Weekday()], t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// FormatShortDate renders "2 de marzo de 2026" (no weekday), as used in
// the acta's place-and-date block.
func FormatShortDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// FormatTime renders the wall-clock time as "09:05".
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatTimeSeconds renders "09:05:42", the precision the acta quotes.
func FormatTimeSeconds(t time.Time) string {
	return t.Format("15:04:05")
}
