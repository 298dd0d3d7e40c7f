package entity

import "github.com/shopspring/decimal"

// Tipos de movimiento del kardex. La planilla original usa las formas
// acentuadas en portugués (SAÍDA, INVENTÁRIO); se normalizan al leer.
const (
	MovementTypeEntrada    = "ENTRADA"    // suma al saldo
	MovementTypeSalida     = "SALIDA"     // resta del saldo
	MovementTypeInventario = "INVENTARIO" // reemplaza el saldo (conteo físico)
)

// Movimiento es una fila del libro kardex. Las filas son append-only:
// una vez lanzadas nunca se editan, salvo las celdas de foto y ubicación
// de la última fila de un código (ver KardexUseCase).
type Movimiento struct {
	Timestamp   string          // fecha-hora local "02/01/2006 15:04", fijada al lanzar
	Codigo      string          // código del ítem, normalizado (mayúsculas, sin espacios)
	Descripcion string          // copiada de la fila previa del código; vacía si es código nuevo
	Cantidad    decimal.Decimal // cantidad movida; su efecto depende del tipo
	Tipo        string          // ENTRADA, SALIDA o INVENTARIO
	Saldo       decimal.Decimal // saldo resultante tras el movimiento
	DocRef      string          // requisición / factura, texto libre
	Responsable string          // obligatorio, normalizado en mayúsculas
	Almacen     string          // arrastrado de la fila previa
	Ubicacion   string          // arrastrada de la fila previa; editable por celda
	FotoRef     string          // URL o data URI; se arrastra una vez fijada
}

// LatestItemView es la vista del estado actual de un ítem: la última fila
// de su código más el índice físico de esa fila (necesario para las
// actualizaciones por celda de foto y ubicación).
type LatestItemView struct {
	Codigo      string
	Descripcion string
	SaldoTexto  string // saldo tal como está en la celda (convención de coma)
	Almacen     string
	Ubicacion   string
	FotoRef     string
	RowIndex    int // 1-based incluyendo la fila de encabezado
}

// HasPhoto indica si el ítem ya tiene foto asociada (estado HasPhoto).
func (v LatestItemView) HasPhoto() bool {
	return v.FotoRef != ""
}
