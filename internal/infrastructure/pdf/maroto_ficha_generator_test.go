package pdf

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/entity"
)

func TestGenerateFichaPDF(t *testing.T) {
	view := entity.LatestItemView{
		Codigo:      "X1",
		Descripcion: "FILTRO DE AIRE",
		SaldoTexto:  "2,00",
		Almacen:     "CENTRAL",
		Ubicacion:   "B-02",
	}
	historial := []entity.Movimiento{
		{
			Timestamp:   "02/02/2026 09:00",
			Codigo:      "X1",
			Tipo:        entity.MovementTypeSalida,
			Cantidad:    decimal.NewFromInt(1),
			Saldo:       decimal.NewFromInt(2),
			Responsable: "JOAO",
		},
		{
			Timestamp:   "01/02/2026 10:30",
			Codigo:      "X1",
			Tipo:        entity.MovementTypeEntrada,
			Cantidad:    decimal.NewFromInt(3),
			Saldo:       decimal.NewFromInt(3),
			Responsable: "MARIA",
		},
	}

	pdf, err := NewMarotoFichaGenerator().GenerateFichaPDF(context.Background(), view, historial)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerateFichaPDF_SinHistorico(t *testing.T) {
	view := entity.LatestItemView{Codigo: "X1", SaldoTexto: "0,00"}
	pdf, err := NewMarotoFichaGenerator().GenerateFichaPDF(context.Background(), view, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
