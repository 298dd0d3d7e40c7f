package kardex

import (
	"context"

	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/entity"
)

// PhotoStrategy resuelve los bytes de una imagen a una referencia
// almacenable en la celda de foto. Hay dos estrategias terminales:
// subir al blob store (URL) o re-codificar una miniatura inline (data
// URI); se elige una por despliegue. La inline existe para no depender
// de la disponibilidad ni de la cuota del blob store, a cambio de
// celdas más pesadas.
type PhotoStrategy interface {
	Resolve(ctx context.Context, data []byte, code string) (string, error)
}

// FichaPDFGenerator genera la ficha de kardex de un ítem en PDF.
type FichaPDFGenerator interface {
	GenerateFichaPDF(ctx context.Context, view entity.LatestItemView, historial []entity.Movimiento) ([]byte, error)
}
