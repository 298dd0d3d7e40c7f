// Package pdf implementa la generación de la ficha de kardex de un ítem.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: GREE - Kardex Digital  │  Código + Fecha emisión    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ÍTEM: Descripción / Almacén / Ubicación / Foto sí-no        │
//	│  SALDO ACTUAL (destacado)                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Cantidad | Saldo | Responsable        │
//	│  (SALIDA en rojo, ENTRADA en verde, como el tablero web)     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appkardex "github.com/zellicsilva-star/kardex-gree-web/internal/application/kardex"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/entity"
	domkardex "github.com/zellicsilva-star/kardex-gree-web/internal/domain/kardex"
)

var _ appkardex.FichaPDFGenerator = (*MarotoFichaGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorSalida  = &props.Color{Red: 211, Green: 47, Blue: 47} // rojo GREE
	colorEntrada = &props.Color{Red: 46, Green: 125, Blue: 50} // verde
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoFichaGenerator implementa kardex.FichaPDFGenerator usando Maroto v2.
type MarotoFichaGenerator struct{}

// NewMarotoFichaGenerator construye el generador.
func NewMarotoFichaGenerator() *MarotoFichaGenerator { return &MarotoFichaGenerator{} }

// GenerateFichaPDF genera el PDF y devuelve sus bytes.
func (g *MarotoFichaGenerator) GenerateFichaPDF(
	_ context.Context,
	view entity.LatestItemView,
	historial []entity.Movimiento,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha de Kardex "+view.Codigo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(view))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(itemRow(view))
	m.AddRows(saldoRow(view))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableHistRows(historial) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y código + fecha de emisión (der).
func headerRow(view entity.LatestItemView) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("GREE - Kardex Digital", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Ficha de ítem", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(view.Codigo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Emitida: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// itemRow: descripción y datos de ubicación.
func itemRow(view entity.LatestItemView) core.Row {
	foto := "sin foto en el catálogo"
	if view.HasPhoto() {
		foto = "con foto en el catálogo"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New(nonEmpty(view.Descripcion, "(sin descripción)"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 1,
			}),
			text.New(fmt.Sprintf("Almacén: %s   |   Ubicación: %s   |   %s",
				nonEmpty(view.Almacen, "—"),
				nonEmpty(view.Ubicacion, "—"),
				foto,
			), props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
	)
}

// saldoRow: saldo actual destacado.
func saldoRow(view entity.LatestItemView) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("SALDO ACTUAL: "+nonEmpty(view.SaldoTexto, "0,00"), props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
		),
	)
}

// tableHeaderRow: cabecera del histórico reciente.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Tipo", 2, align.Center),
		h("Cantidad", 2, align.Right),
		h("Saldo", 2, align.Right),
		h("Responsable", 4, align.Left),
	)
}

// tableHistRows: una fila por movimiento, coloreada según el tipo
// (rojo salida, verde entrada), como en el tablero web.
func tableHistRows(historial []entity.Movimiento) []core.Row {
	result := make([]core.Row, 0, len(historial))
	for _, mov := range historial {
		color := colorGray
		style := fontstyle.Normal
		switch mov.Tipo {
		case entity.MovementTypeSalida:
			color, style = colorSalida, fontstyle.Bold
		case entity.MovementTypeEntrada:
			color, style = colorEntrada, fontstyle.Bold
		}
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{
				Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
				Color: color, Style: style,
			}))
		}
		result = append(result, row.New(7).Add(
			cell(mov.Timestamp, 2, align.Left),
			cell(mov.Tipo, 2, align.Center),
			cell(domkardex.FormatDecimal(mov.Cantidad), 2, align.Right),
			cell(domkardex.FormatDecimal(mov.Saldo), 2, align.Right),
			cell(mov.Responsable, 4, align.Left),
		))
	}
	return result
}

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
