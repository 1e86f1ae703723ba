package money

import (
	"math"
	"strconv"
	"strings"
)

// FormatUSD renderiza un monto como moneda estilo US: "$1,000.00".
// Redondea a centavos, agrupa miles con coma y siempre muestra dos decimales.
// Es una transformación de presentación; no toca el dato almacenado.
func FormatUSD(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	cents := int64(math.Round(amount * 100))
	units := cents / 100
	fraction := cents % 100

	digits := strconv.FormatInt(units, 10)

	var b strings.Builder
	// Pre-alocamos: dígitos + separadores + "$" + ".dd" (+ signo).
	b.Grow(len(digits) + len(digits)/3 + 5)
	if neg {
		b.WriteString("-$")
	} else {
		b.WriteString("$")
	}

	// Insertamos separadores desde la izquierda.
	rem := len(digits) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(digits[:rem])
	for i := rem; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}

	b.WriteByte('.')
	if fraction < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(fraction, 10))

	return b.String()
}
