// Package kardex contiene la lógica de dominio del libro kardex:
// resolución del esquema de la planilla, parseo tolerante del saldo y
// materialización del estado de un ítem desde el log append-only.
package kardex

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Posiciones por defecto de las 11 columnas de la planilla
// (el orden físico con el que se lanzan las filas nuevas).
const (
	ColFecha = iota
	ColCodigo
	ColDescripcion
	ColCantidad
	ColTipo
	ColSaldo
	ColDocRef
	ColResponsable
	ColAlmacen
	ColUbicacion
	ColFoto

	NumColumns = 11
)

// Schema mapea cada columna lógica a su posición física (0-based).
// Se resuelve una sola vez al cargar la planilla: primero por nombre de
// encabezado (tolerando acentos, mayúsculas y sinónimos en portugués y
// español, porque la planilla se edita externamente), y si los nombres
// no resuelven, por posición fija. Si ninguna estrategia aplica, falla.
type Schema struct {
	Fecha       int
	Codigo      int
	Descripcion int
	Cantidad    int
	Tipo        int
	Saldo       int
	DocRef      int
	Responsable int
	Almacen     int
	Ubicacion   int
	Foto        int
}

// DefaultHeader devuelve la fila de encabezado con la que se siembra una
// planilla nueva (el de la planilla GREE original, en portugués).
func DefaultHeader() []string {
	return []string{
		"DATA", "CÓDIGO", "DESCRIÇÃO", "VALOR MOV.", "TIPO MOV.", "SALDO ATUAL",
		"DOC. REF.", "RESPONSÁVEL", "ARMAZÉM", "LOCALIZAÇÃO", "FOTO",
	}
}

// Encabezados reconocidos, ya normalizados con foldHeader.
var headerNames = map[string]int{
	"DATA":  ColFecha,
	"FECHA": ColFecha,

	"CODIGO": ColCodigo,

	"DESCRICAO":   ColDescripcion,
	"DESCRIPCION": ColDescripcion,

	"VALOR MOV": ColCantidad,
	"CANTIDAD":  ColCantidad,
	"QTD":       ColCantidad,

	"TIPO MOV": ColTipo,
	"TIPO":     ColTipo,

	"SALDO ATUAL":  ColSaldo,
	"SALDO ACTUAL": ColSaldo,
	"SALDO":        ColSaldo,

	"DOC REF":    ColDocRef,
	"REFERENCIA": ColDocRef,

	"RESPONSAVEL": ColResponsable,
	"RESPONSABLE": ColResponsable,

	"ARMAZEM": ColAlmacen,
	"BODEGA":  ColAlmacen,
	"ALMACEN": ColAlmacen,

	"LOCALIZACAO":  ColUbicacion,
	"UBICACION":    ColUbicacion,
	"LOCALIZACION": ColUbicacion,

	"FOTO": ColFoto,
}

// defaultSchema es el mapeo posicional fijo de 11 columnas.
func defaultSchema() Schema {
	return Schema{
		Fecha:       ColFecha,
		Codigo:      ColCodigo,
		Descripcion: ColDescripcion,
		Cantidad:    ColCantidad,
		Tipo:        ColTipo,
		Saldo:       ColSaldo,
		DocRef:      ColDocRef,
		Responsable: ColResponsable,
		Almacen:     ColAlmacen,
		Ubicacion:   ColUbicacion,
		Foto:        ColFoto,
	}
}

// ResolveSchema resuelve el esquema a partir de la fila de encabezado.
//
// Estrategia 1 (por nombre): si el encabezado contiene al menos CÓDIGO y
// SALDO reconocibles, se usan las posiciones encontradas y las columnas
// no reconocidas conservan su posición por defecto.
// Estrategia 2 (posicional): si los nombres no resuelven pero el
// encabezado tiene las 11 columnas, se asume el orden físico fijo.
// Si ninguna aplica, el esquema no es resoluble y se devuelve error.
func ResolveSchema(header []string) (Schema, error) {
	s := defaultSchema()

	found := map[int]bool{}
	for pos, raw := range header {
		col, ok := headerNames[foldHeader(raw)]
		if !ok || found[col] {
			continue
		}
		found[col] = true
		switch col {
		case ColFecha:
			s.Fecha = pos
		case ColCodigo:
			s.Codigo = pos
		case ColDescripcion:
			s.Descripcion = pos
		case ColCantidad:
			s.Cantidad = pos
		case ColTipo:
			s.Tipo = pos
		case ColSaldo:
			s.Saldo = pos
		case ColDocRef:
			s.DocRef = pos
		case ColResponsable:
			s.Responsable = pos
		case ColAlmacen:
			s.Almacen = pos
		case ColUbicacion:
			s.Ubicacion = pos
		case ColFoto:
			s.Foto = pos
		}
	}

	if found[ColCodigo] && found[ColSaldo] {
		return s, nil
	}
	if len(header) >= NumColumns {
		return defaultSchema(), nil
	}
	return Schema{}, fmt.Errorf("esquema no resoluble: encabezado con %d columnas y sin CÓDIGO/SALDO reconocibles", len(header))
}

// Cell devuelve la celda idx de la fila, o "" si la fila es más corta
// (las filas de una planilla editada a mano pueden venir recortadas).
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// NormalizeCode normaliza un código de ítem: sin espacios y en mayúsculas.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeType normaliza un tipo de movimiento leído de la planilla:
// quita acentos y mayusculiza. La planilla original trae las formas en
// portugués (SAÍDA, INVENTÁRIO); se unifican a los valores canónicos.
func NormalizeType(tipo string) string {
	t := stripAccents(strings.ToUpper(strings.TrimSpace(tipo)))
	if t == "SAIDA" {
		return "SALIDA"
	}
	return t
}

// foldHeader normaliza un encabezado para compararlo: sin acentos, en
// mayúsculas, sin puntos y con espacios colapsados.
func foldHeader(s string) string {
	s = stripAccents(strings.ToUpper(strings.TrimSpace(s)))
	s = strings.ReplaceAll(s, ".", "")
	return strings.Join(strings.Fields(s), " ")
}

// stripAccents elimina marcas diacríticas (Ç -> C, Á -> A).
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
