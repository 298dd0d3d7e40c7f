package kardex

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseSaldo interpreta el texto de una celda numérica de la planilla.
// Acepta tanto convención de coma decimal ("1.234,56") como de punto
// decimal ("1,234.56" o "1234.56"): se eliminan los separadores de miles
// y la coma decimal final se convierte a punto antes de parsear.
//
// Devuelve ok=false cuando la celda está vacía o no es parseable; en ese
// caso el valor es cero. La política ante celda corrupta (seguir con 0 o
// abortar) la decide el caller; el motor de movimientos sigue con 0 y lo
// deja registrado en el log.
func ParseSaldo(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return decimal.Zero, false
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		// El separador más a la derecha es el decimal; el otro es de miles.
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") == 1 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastDot >= 0:
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// FormatDecimal re-codifica un decimal con la convención que espera la
// planilla: coma decimal y exactamente 2 decimales ("15,50").
func FormatDecimal(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}
