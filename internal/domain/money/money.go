package money

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("amount must be a whole number")

// Money es una cantidad entera de unidades de la moneda del negocio.
// No hay decimales ni multi-moneda; todo cálculo es aritmética entera exacta.
type Money int64

func (m Money) Mul(n int) Money { return m * Money(n) }

func (m Money) IsNegative() bool { return m < 0 }

func Sum(items ...Money) Money {
	var total Money
	for _, v := range items {
		total += v
	}
	return total
}

// Parse acepta enteros con signo opcional y separadores de miles (espacio o "_").
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer(" ", "", "_", "", "\u00a0", "").Replace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return Money(n), nil
}

// String agrupa miles con espacio, igual que el recibo: "21 000", "-1 500".
func (m Money) String() string {
	raw := strconv.FormatInt(int64(m), 10)
	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign, raw = "-", raw[1:]
	}
	if len(raw) <= 3 {
		return sign + raw
	}

	var sb strings.Builder
	head := len(raw) % 3
	if head > 0 {
		sb.WriteString(raw[:head])
	}
	for i := head; i < len(raw); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(raw[i : i+3])
	}
	return sign + sb.String()
}
