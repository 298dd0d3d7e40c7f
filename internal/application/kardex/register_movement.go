package kardex

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/zellicsilva-star/kardex-gree-web/internal/application/dto"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain"
	domkardex "github.com/zellicsilva-star/kardex-gree-web/internal/domain/kardex"
)

// RegisterMovement registra un movimiento de kardex: valida la entrada,
// calcula el saldo nuevo a partir de la última fila del código y lanza
// exactamente una fila nueva. Nunca muta filas históricas y no reintenta:
// un append fallido se devuelve tal cual al caller.
//
// Un código sin filas previas es válido (primer lanzamiento): arranca con
// saldo 0 y descripción/almacén/ubicación vacíos.
func (uc *KardexUseCase) RegisterMovement(ctx context.Context, code string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	code = domkardex.NormalizeCode(code)
	if code == "" {
		return nil, fmt.Errorf("%w: código requerido", domain.ErrInvalidInput)
	}
	responsable := strings.ToUpper(strings.TrimSpace(in.Responsable))
	if responsable == "" {
		return nil, fmt.Errorf("%w: responsable requerido", domain.ErrInvalidInput)
	}
	tipo := domkardex.NormalizeType(in.Tipo)
	switch tipo {
	case "ENTRADA", "SALIDA", "INVENTARIO":
	default:
		return nil, fmt.Errorf("%w: tipo de movimiento desconocido %q", domain.ErrInvalidInput, in.Tipo)
	}
	if in.Cantidad.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}

	ledger, err := uc.loadLedger(ctx)
	if err != nil {
		return nil, err
	}

	// Estado vigente del ítem. El saldo se lee de la celda como texto;
	// una celda vacía o corrupta sigue con 0 y queda en el log (política
	// fail-open heredada: no bloquea la transacción).
	var (
		saldoActual decimal.Decimal
		view, ok    = ledger.Lookup(code)
	)
	if ok {
		var parsed bool
		saldoActual, parsed = domkardex.ParseSaldo(view.SaldoTexto)
		if !parsed {
			uc.log.Warn().
				Str("codigo", code).
				Str("celda", view.SaldoTexto).
				Msg("saldo ilegible en la planilla, se asume 0")
		}
	}

	var nuevoSaldo decimal.Decimal
	switch tipo {
	case "ENTRADA":
		nuevoSaldo = saldoActual.Add(in.Cantidad)
	case "SALIDA":
		// No se valida contra saldo negativo: el conteo físico
		// (INVENTARIO) es el mecanismo de corrección.
		nuevoSaldo = saldoActual.Sub(in.Cantidad)
	case "INVENTARIO":
		nuevoSaldo = in.Cantidad
	}

	foto := strings.TrimSpace(in.FotoRef)
	if foto == "" {
		foto = view.FotoRef // arrastrar la foto existente sin cambios
	}

	now := uc.opts.Now().In(uc.opts.Location)
	ts := now.Format("02/01/2006 15:04")

	schema := ledger.Schema()
	fila := make([]string, domkardex.NumColumns)
	put := func(idx int, v string) {
		if idx >= len(fila) {
			grown := make([]string, idx+1)
			copy(grown, fila)
			fila = grown
		}
		fila[idx] = v
	}
	put(schema.Fecha, ts)
	put(schema.Codigo, code)
	put(schema.Descripcion, view.Descripcion)
	put(schema.Cantidad, domkardex.FormatDecimal(in.Cantidad))
	put(schema.Tipo, tipo)
	put(schema.Saldo, domkardex.FormatDecimal(nuevoSaldo))
	put(schema.DocRef, strings.TrimSpace(in.DocRef))
	put(schema.Responsable, responsable)
	put(schema.Almacen, view.Almacen)
	put(schema.Ubicacion, view.Ubicacion)
	put(schema.Foto, foto)

	if err := uc.rowStore.AppendRow(ctx, fila); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}

	uc.log.Info().
		Str("codigo", code).
		Str("tipo", tipo).
		Str("cantidad", domkardex.FormatDecimal(in.Cantidad)).
		Str("saldo", domkardex.FormatDecimal(nuevoSaldo)).
		Msg("movimiento lanzado")

	return &dto.MovementResponse{
		Codigo:     code,
		Tipo:       tipo,
		Cantidad:   domkardex.FormatDecimal(in.Cantidad),
		NuevoSaldo: domkardex.FormatDecimal(nuevoSaldo),
		Timestamp:  ts,
	}, nil
}
