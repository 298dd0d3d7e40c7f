package kardex

import (
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/entity"
)

// Ledger materializa ítems desde las filas de la planilla.
//
// Invariante de orden: las filas son append-only y su orden físico es el
// orden cronológico de lanzamiento. "La última fila que coincide" es el
// estado vigente del ítem; no se re-ordena por timestamp. Una edición
// manual fuera de orden en la planilla produciría un "último" incorrecto
// en silencio; ese es el contrato asumido, no un bug de esta capa.
type Ledger struct {
	schema Schema
	rows   [][]string // filas de datos, sin encabezado
}

// NewLedger construye el ledger desde todas las filas de la planilla
// (la primera es el encabezado). El esquema se resuelve una sola vez
// aquí; una planilla completamente vacía opera con el esquema por
// defecto para permitir el primer lanzamiento.
func NewLedger(allRows [][]string) (*Ledger, error) {
	if len(allRows) == 0 {
		return &Ledger{schema: defaultSchema()}, nil
	}
	schema, err := ResolveSchema(allRows[0])
	if err != nil {
		return nil, err
	}
	return &Ledger{schema: schema, rows: allRows[1:]}, nil
}

// Schema devuelve el esquema resuelto.
func (l *Ledger) Schema() Schema {
	return l.schema
}

// Len devuelve la cantidad de filas de datos.
func (l *Ledger) Len() int {
	return len(l.rows)
}

// Lookup busca el estado vigente del ítem: la última fila cuyo código,
// normalizado, coincide exactamente. Devuelve ok=false si el código no
// tiene filas.
func (l *Ledger) Lookup(code string) (entity.LatestItemView, bool) {
	code = NormalizeCode(code)
	last := -1
	for i, row := range l.rows {
		if NormalizeCode(Cell(row, l.schema.Codigo)) == code {
			last = i
		}
	}
	if last < 0 {
		return entity.LatestItemView{}, false
	}
	row := l.rows[last]
	return entity.LatestItemView{
		Codigo:      code,
		Descripcion: Cell(row, l.schema.Descripcion),
		SaldoTexto:  Cell(row, l.schema.Saldo),
		Almacen:     Cell(row, l.schema.Almacen),
		Ubicacion:   Cell(row, l.schema.Ubicacion),
		FotoRef:     Cell(row, l.schema.Foto),
		RowIndex:    last + 2, // +1 por el encabezado, +1 por índice 1-based
	}, true
}

// History devuelve los últimos n movimientos del código, del más
// reciente al más antiguo (orden de lanzamiento inverso).
func (l *Ledger) History(code string, n int) []entity.Movimiento {
	code = NormalizeCode(code)
	var matches []entity.Movimiento
	for _, row := range l.rows {
		if NormalizeCode(Cell(row, l.schema.Codigo)) == code {
			matches = append(matches, l.toMovimiento(row))
		}
	}
	if n > 0 && len(matches) > n {
		matches = matches[len(matches)-n:]
	}
	// invertir: el más reciente primero
	for i, j := 0, len(matches)-1; i < j; i, j = i+1, j-1 {
		matches[i], matches[j] = matches[j], matches[i]
	}
	return matches
}

// toMovimiento convierte una fila en Movimiento. Las celdas numéricas
// ilegibles quedan en cero: el histórico es solo lectura.
func (l *Ledger) toMovimiento(row []string) entity.Movimiento {
	cantidad, _ := ParseSaldo(Cell(row, l.schema.Cantidad))
	saldo, _ := ParseSaldo(Cell(row, l.schema.Saldo))
	return entity.Movimiento{
		Timestamp:   Cell(row, l.schema.Fecha),
		Codigo:      NormalizeCode(Cell(row, l.schema.Codigo)),
		Descripcion: Cell(row, l.schema.Descripcion),
		Cantidad:    cantidad,
		Tipo:        NormalizeType(Cell(row, l.schema.Tipo)),
		Saldo:       saldo,
		DocRef:      Cell(row, l.schema.DocRef),
		Responsable: Cell(row, l.schema.Responsable),
		Almacen:     Cell(row, l.schema.Almacen),
		Ubicacion:   Cell(row, l.schema.Ubicacion),
		FotoRef:     Cell(row, l.schema.Foto),
	}
}
