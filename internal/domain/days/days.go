package days

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

const Layout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

// Date es un día de calendario, sin hora ni zona horaria.
// Internamente siempre es medianoche UTC.
type Date struct {
	t time.Time
}

func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Of devuelve el día de calendario del instante, en la zona del propio instante.
func Of(t time.Time) Date {
	y, m, d := t.Date()
	return New(y, m, d)
}

func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Of(t), nil
}

// MustParse es para tests y constantes.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) IsZero() bool     { return d.t.IsZero() }
func (d Date) Time() time.Time  { return d.t }
func (d Date) Year() int        { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int         { return d.t.Day() }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(Layout)
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// Compare devuelve -1, 0 o 1.
func (d Date) Compare(o Date) int {
	switch {
	case d.Before(o):
		return -1
	case d.After(o):
		return 1
	default:
		return 0
	}
}

// Between devuelve b - a en días (puede ser negativo).
// Ambos son medianoche UTC: la diferencia en segundos es múltiplo exacto de 86400.
func Between(a, b Date) int {
	return int((b.t.Unix() - a.t.Unix()) / 86400)
}

// Count es la cantidad de días del rango cerrado [from, to]; 0 si to < from.
func Count(from, to Date) int {
	if to.Before(from) {
		return 0
	}
	return Between(from, to) + 1
}

// InRange: from <= d <= to.
func InRange(d, from, to Date) bool {
	return !d.Before(from) && !d.After(to)
}

// Each lista todos los días de [from, to] en orden.
func Each(from, to Date) []Date {
	n := Count(from, to)
	out := make([]Date, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, from.AddDays(i))
	}
	return out
}

// MonthBounds devuelve el primer y último día del mes de anchor.
func MonthBounds(anchor Date) (Date, Date) {
	n := now.With(anchor.t)
	return Of(n.BeginningOfMonth()), Of(n.EndOfMonth())
}

// WeekBounds usa semanas que empiezan el lunes.
func WeekBounds(anchor Date) (Date, Date) {
	n := &now.Now{Time: anchor.t, Config: &now.Config{WeekStartDay: time.Monday}}
	return Of(n.BeginningOfWeek()), Of(n.EndOfWeek())
}

func YearBounds(anchor Date) (Date, Date) {
	n := now.With(anchor.t)
	return Of(n.BeginningOfYear()), Of(n.EndOfYear())
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidDate
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan permite leer columnas DATE directo a Date.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Of(v)
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("days: cannot scan %T into Date", src)
	}
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.t, nil
}
