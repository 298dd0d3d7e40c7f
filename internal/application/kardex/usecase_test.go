package kardex_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zellicsilva-star/kardex-gree-web/internal/application/dto"
	appkardex "github.com/zellicsilva-star/kardex-gree-web/internal/application/kardex"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain"
	"github.com/zellicsilva-star/kardex-gree-web/internal/infrastructure/memory"
)

// Ciclo de vida completo de un ítem sobre una planilla vacía.
func TestKardex_CicloDeVida(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	// antes del primer lanzamiento el código no existe
	_, err := uc.LookupItem(ctx, "X1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	resp, err := uc.RegisterMovement(ctx, "X1", dto.RegisterMovementRequest{
		Tipo: "ENTRADA", Cantidad: dec("3"), Responsable: "MARIA",
	})
	require.NoError(t, err)
	assert.Equal(t, "3,00", resp.NuevoSaldo)

	item, err := uc.LookupItem(ctx, "X1")
	require.NoError(t, err)
	assert.Equal(t, "3,00", item.Saldo)
	assert.False(t, item.TieneFoto)

	resp, err = uc.RegisterMovement(ctx, "X1", dto.RegisterMovementRequest{
		Tipo: "SALIDA", Cantidad: dec("1"), Responsable: "JOAO", DocRef: "OS-9",
	})
	require.NoError(t, err)
	assert.Equal(t, "2,00", resp.NuevoSaldo)

	item, err = uc.LookupItem(ctx, "X1")
	require.NoError(t, err)
	assert.Equal(t, "2,00", item.Saldo)

	// histórico: el más reciente primero
	hist, err := uc.History(ctx, "X1", 0)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, "SALIDA", hist[0].Tipo)
	assert.Equal(t, "2,00", hist[0].Saldo)
	assert.Equal(t, "OS-9", hist[0].DocRef)
	assert.Equal(t, "ENTRADA", hist[1].Tipo)
	assert.Equal(t, "01/02/2026", hist[0].Fecha)
}

func TestHistory_RespetaTamañoConfigurado(t *testing.T) {
	store := memory.NewSheetRowStore(nil)
	uc := appkardex.New(store, nil, nil, nil, appkardex.Options{Now: fixedNow, HistorySize: 5})
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		_, err := uc.RegisterMovement(ctx, "X1", dto.RegisterMovementRequest{
			Tipo: "ENTRADA", Cantidad: dec("1"), Responsable: "ANA",
		})
		require.NoError(t, err)
	}

	hist, err := uc.History(ctx, "X1", 0)
	require.NoError(t, err)
	require.Len(t, hist, 5)
	assert.Equal(t, "8,00", hist[0].Saldo)
	assert.Equal(t, "4,00", hist[4].Saldo)
}

// Una edición externa puede dejar la celda de código con espacios o en
// minúsculas; la consulta debe coincidir igual que el histórico
// (comparación normalizada), sin fiarse de la búsqueda cruda del almacén.
func TestLookupItem_CeldaDeCodigoConDeriva(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSheetRowStore(nil)
	require.NoError(t, store.AppendRow(ctx,
		[]string{"01/01/2026 08:00", "X1 ", "PIEZA", "1,00", "ENTRADA", "1,00", "", "ANA", "CENTRAL", "B-02", ""}))
	require.NoError(t, store.AppendRow(ctx,
		[]string{"02/01/2026 08:00", "x2", "OTRA", "2,00", "ENTRADA", "2,00", "", "ANA", "CENTRAL", "B-03", ""}))
	uc := appkardex.New(store, nil, nil, nil, appkardex.Options{Now: fixedNow})

	item, err := uc.LookupItem(ctx, "X1")
	require.NoError(t, err)
	assert.Equal(t, "1,00", item.Saldo)

	hist, err := uc.History(ctx, "X1", 0)
	require.NoError(t, err)
	assert.Len(t, hist, 1)

	item, err = uc.LookupItem(ctx, "X2")
	require.NoError(t, err)
	assert.Equal(t, "2,00", item.Saldo)
}

func TestLookupItem_CodigoVacio(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.LookupItem(context.Background(), "   ")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
