package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout formato de fecha que usa el backend en query params y cuerpos.
const DateLayout = "2006-01-02"

// Date fecha de calendario. Acepta "YYYY-MM-DD" o un timestamp RFC 3339;
// en este último caso se convierte a hora local antes de quedarse con el día.
type Date struct {
	time.Time
}

// NewDate construye una fecha local a medianoche.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// ParseDate interpreta "YYYY-MM-DD" o RFC 3339.
func ParseDate(s string) (Date, error) {
	if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Date{}, fmt.Errorf("fecha inválida %q", s)
	}
	t = t.In(time.Local)
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// String devuelve "YYYY-MM-DD" o "" si es cero.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MonthKey clave "YYYY-MM" del mes calendario.
func (d Date) MonthKey() string {
	return d.Format("2006-01")
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
