package repository

import "context"

// BlobStore define el puerto hacia el almacén de binarios (fotos).
// Los fallos de permiso o cuota se propagan al caller, nunca se enmascaran.
type BlobStore interface {
	// CreateFile guarda los bytes bajo name dentro de parent y devuelve
	// una referencia recuperable (URL).
	CreateFile(ctx context.Context, data []byte, name, parent string) (string, error)
	// GetFile recupera los bytes y el content-type de una referencia creada antes.
	GetFile(ctx context.Context, id string) ([]byte, string, error)
}
