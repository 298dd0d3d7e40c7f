package kardex_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appkardex "github.com/zellicsilva-star/kardex-gree-web/internal/application/kardex"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain"
	"github.com/zellicsilva-star/kardex-gree-web/internal/infrastructure/memory"
)

// estrategia que siempre falla, para simular cuota/permisos/caída.
type estrategiaRota struct{}

func (estrategiaRota) Resolve(context.Context, []byte, string) (string, error) {
	return "", errors.New("cuota excedida")
}

func newPhotoUseCase(t *testing.T) (*appkardex.KardexUseCase, *memory.SheetRowStore) {
	t.Helper()
	store := memory.NewSheetRowStore(nil)
	blob := memory.NewPhotoBlobStore("/api/fotos")
	strategy := appkardex.NewBlobPhotoStrategy(blob, "KARDEX_FOTOS")
	uc := appkardex.New(store, strategy, nil, nil, appkardex.Options{Now: fixedNow})
	return uc, store
}

func TestAttachPhoto_AsociaYEscribeCelda(t *testing.T) {
	uc, store := newPhotoUseCase(t)
	ctx := context.Background()
	sembrar(t, store, "X1", "10,00", "ENTRADA", "10,00")

	resp, err := uc.AttachPhoto(ctx, "x1", []byte{0x89, 0x50, 0x4e, 0x47})
	require.NoError(t, err)
	assert.Equal(t, "X1", resp.Codigo)
	assert.True(t, strings.HasPrefix(resp.FotoRef, "/api/fotos/"))

	// la referencia quedó en la celda de foto de la fila vigente
	rows, err := store.ReadAllRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, resp.FotoRef, rows[1][10])

	item, err := uc.LookupItem(ctx, "X1")
	require.NoError(t, err)
	assert.True(t, item.TieneFoto)
}

func TestAttachPhoto_YaTieneFoto(t *testing.T) {
	uc, store := newPhotoUseCase(t)
	ctx := context.Background()
	sembrar(t, store, "X1", "10,00", "ENTRADA", "10,00")

	_, err := uc.AttachPhoto(ctx, "X1", []byte{1, 2, 3})
	require.NoError(t, err)

	// sin foto -> con foto es de una sola vía
	_, err = uc.AttachPhoto(ctx, "X1", []byte{4, 5, 6})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestAttachPhoto_CodigoInexistente(t *testing.T) {
	uc, _ := newPhotoUseCase(t)
	_, err := uc.AttachPhoto(context.Background(), "NADA", []byte{1})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// si la subida falla no se escribe nada: el ítem sigue sin foto.
func TestAttachPhoto_FalloDeSubidaSinEscritura(t *testing.T) {
	store := memory.NewSheetRowStore(nil)
	uc := appkardex.New(store, estrategiaRota{}, nil, nil, appkardex.Options{Now: fixedNow})
	ctx := context.Background()
	sembrar(t, store, "X1", "10,00", "ENTRADA", "10,00")

	_, err := uc.AttachPhoto(ctx, "X1", []byte{1, 2, 3})
	require.ErrorIs(t, err, domain.ErrUploadFailed)

	rows, err := store.ReadAllRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", rows[1][10])

	item, err := uc.LookupItem(ctx, "X1")
	require.NoError(t, err)
	assert.False(t, item.TieneFoto)
}

// con varias filas del mismo código la foto va a la última.
func TestAttachPhoto_EscribeEnLaFilaVigente(t *testing.T) {
	uc, store := newPhotoUseCase(t)
	ctx := context.Background()
	sembrar(t, store, "X1", "10,00", "ENTRADA", "10,00")
	sembrar(t, store, "X1", "2,00", "SALIDA", "8,00")

	resp, err := uc.AttachPhoto(ctx, "X1", []byte{1, 2, 3})
	require.NoError(t, err)

	rows, err := store.ReadAllRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", rows[1][10])
	assert.Equal(t, resp.FotoRef, rows[2][10])
}

func TestUpdateLocation(t *testing.T) {
	uc, store := newPhotoUseCase(t)
	ctx := context.Background()
	sembrar(t, store, "X1", "10,00", "ENTRADA", "10,00")

	require.NoError(t, uc.UpdateLocation(ctx, "X1", "C-07"))

	rows, err := store.ReadAllRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, "C-07", rows[1][9])
	// el resto de la fila queda intacta
	assert.Equal(t, "10,00", rows[1][5])
}

func TestUpdateLocation_Validaciones(t *testing.T) {
	uc, _ := newPhotoUseCase(t)
	ctx := context.Background()

	require.ErrorIs(t, uc.UpdateLocation(ctx, "", "C-07"), domain.ErrInvalidInput)
	require.ErrorIs(t, uc.UpdateLocation(ctx, "X1", "  "), domain.ErrInvalidInput)
	require.ErrorIs(t, uc.UpdateLocation(ctx, "X1", "C-07"), domain.ErrNotFound)
}
