package kardex

import (
	"context"
	"fmt"
	"strings"

	"github.com/zellicsilva-star/kardex-gree-web/internal/application/dto"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain"
	domkardex "github.com/zellicsilva-star/kardex-gree-web/internal/domain/kardex"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/repository"
)

// AttachPhoto asocia una foto a un ítem que aún no la tiene.
// La transición es de una sola vía (sin foto -> con foto): si el ítem ya
// tiene foto se devuelve ErrConflict; el reemplazo solo es posible dentro
// de una transacción de movimiento (RegisterMovementRequest.FotoRef).
//
// Si la estrategia de foto falla (cuota, permisos, adaptador caído) el
// ítem queda sin foto y no se escribe nada en la planilla.
func (uc *KardexUseCase) AttachPhoto(ctx context.Context, code string, data []byte) (*dto.AttachPhotoResponse, error) {
	if uc.photos == nil {
		return nil, fmt.Errorf("%w: captura de fotos no habilitada", domain.ErrInvalidInput)
	}
	code = domkardex.NormalizeCode(code)
	if code == "" {
		return nil, fmt.Errorf("%w: código requerido", domain.ErrInvalidInput)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: imagen vacía", domain.ErrInvalidInput)
	}

	ledger, err := uc.loadLedger(ctx)
	if err != nil {
		return nil, err
	}
	view, ok := ledger.Lookup(code)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if view.HasPhoto() {
		return nil, fmt.Errorf("%w: el ítem ya tiene foto", domain.ErrConflict)
	}

	ref, err := uc.photos.Resolve(ctx, data, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	// Única mutación permitida sobre una fila existente (junto con la
	// de ubicación): la celda de foto de la fila vigente del código.
	col := ledger.Schema().Foto + 1
	if err := uc.rowStore.UpdateCell(ctx, view.RowIndex, col, ref); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}

	uc.log.Info().Str("codigo", code).Int("fila", view.RowIndex).Msg("foto asociada")
	return &dto.AttachPhotoResponse{Codigo: code, FotoRef: ref}, nil
}

// UpdateLocation sobreescribe la celda de ubicación de la fila vigente
// del código, sin tocar el resto de la fila.
func (uc *KardexUseCase) UpdateLocation(ctx context.Context, code, ubicacion string) error {
	code = domkardex.NormalizeCode(code)
	if code == "" {
		return fmt.Errorf("%w: código requerido", domain.ErrInvalidInput)
	}
	ubicacion = strings.TrimSpace(ubicacion)
	if ubicacion == "" {
		return fmt.Errorf("%w: ubicación requerida", domain.ErrInvalidInput)
	}

	ledger, err := uc.loadLedger(ctx)
	if err != nil {
		return err
	}
	view, ok := ledger.Lookup(code)
	if !ok {
		return domain.ErrNotFound
	}

	col := ledger.Schema().Ubicacion + 1
	if err := uc.rowStore.UpdateCell(ctx, view.RowIndex, col, ubicacion); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}
	uc.log.Info().Str("codigo", code).Str("ubicacion", ubicacion).Msg("ubicación actualizada")
	return nil
}

// BlobPhotoStrategy implementa PhotoStrategy subiendo la imagen al blob
// store con el nombre foto_<código>.png dentro de la carpeta configurada.
type BlobPhotoStrategy struct {
	blob   repository.BlobStore
	folder string
}

// NewBlobPhotoStrategy construye la estrategia de subida al blob store.
func NewBlobPhotoStrategy(blob repository.BlobStore, folder string) *BlobPhotoStrategy {
	return &BlobPhotoStrategy{blob: blob, folder: folder}
}

// Resolve sube los bytes y devuelve la URL recuperable.
func (s *BlobPhotoStrategy) Resolve(ctx context.Context, data []byte, code string) (string, error) {
	name := fmt.Sprintf("foto_%s.png", code)
	return s.blob.CreateFile(ctx, data, name, s.folder)
}
