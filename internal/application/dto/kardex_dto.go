package dto

import "github.com/shopspring/decimal"

// ItemViewResponse respuesta de GET /api/kardex/:codigo.
type ItemViewResponse struct {
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
	Saldo       string `json:"saldo"` // tal como está en la celda (convención de coma)
	Almacen     string `json:"almacen,omitempty"`
	Ubicacion   string `json:"ubicacion,omitempty"`
	FotoRef     string `json:"foto_ref,omitempty"`
	TieneFoto   bool   `json:"tiene_foto"`
}

// HistoryEntryDTO una fila del histórico reciente.
type HistoryEntryDTO struct {
	Fecha       string `json:"fecha"` // solo la parte de fecha, DD/MM/AAAA
	Tipo        string `json:"tipo"`
	Cantidad    string `json:"cantidad"`
	Saldo       string `json:"saldo"`
	Responsable string `json:"responsable"`
	DocRef      string `json:"doc_ref,omitempty"`
}

// RegisterMovementRequest body para POST /api/kardex/:codigo/movimientos.
// FotoRef permite reemplazar la foto arrastrada dentro de la misma
// transacción de movimiento; vacío = conservar la existente.
type RegisterMovementRequest struct {
	Tipo        string          `json:"tipo"` // ENTRADA, SALIDA o INVENTARIO
	Cantidad    decimal.Decimal `json:"cantidad"`
	Responsable string          `json:"responsable"`
	DocRef      string          `json:"doc_ref,omitempty"`
	FotoRef     string          `json:"foto_ref,omitempty"`
}

// MovementResponse respuesta al registrar un movimiento.
type MovementResponse struct {
	Codigo     string `json:"codigo"`
	Tipo       string `json:"tipo"`
	Cantidad   string `json:"cantidad"`
	NuevoSaldo string `json:"nuevo_saldo"`
	Timestamp  string `json:"timestamp"`
}

// UpdateLocationRequest body para PUT /api/kardex/:codigo/ubicacion.
type UpdateLocationRequest struct {
	Ubicacion string `json:"ubicacion"`
}

// AttachPhotoResponse respuesta al asociar una foto.
type AttachPhotoResponse struct {
	Codigo  string `json:"codigo"`
	FotoRef string `json:"foto_ref"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
