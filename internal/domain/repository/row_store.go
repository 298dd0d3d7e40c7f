package repository

import "context"

// RowStore define el puerto hacia el almacén tabular de la planilla.
// Los índices de fila y columna son 1-based e incluyen el encabezado,
// como en la API de hojas de cálculo que este puerto abstrae.
type RowStore interface {
	// ReadAllRows devuelve todas las filas en orden; la primera es el encabezado.
	ReadAllRows(ctx context.Context) ([][]string, error)
	// AppendRow agrega una fila al final; los valores se escriben de izquierda a derecha.
	AppendRow(ctx context.Context, values []string) error
	// UpdateCell sobreescribe una sola celda.
	UpdateCell(ctx context.Context, rowIndex, colIndex int, value string) error
	// FindRow devuelve el índice de la primera fila que contiene el valor,
	// o 0 si no existe. Los callers deben tolerar el "no encontrado".
	FindRow(ctx context.Context, value string) (int, error)
}
