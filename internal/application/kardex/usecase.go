package kardex

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zellicsilva-star/kardex-gree-web/internal/application/dto"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain"
	domkardex "github.com/zellicsilva-star/kardex-gree-web/internal/domain/kardex"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/repository"
	"github.com/zellicsilva-star/kardex-gree-web/pkg/logger"
)

// Options parámetros del caso de uso.
type Options struct {
	HistorySize int              // filas del histórico reciente; 0 = 5
	Location    *time.Location   // zona horaria del timestamp; nil = UTC
	Now         func() time.Time // inyectable en tests; nil = time.Now
}

// KardexUseCase orquesta las interacciones del kardex: consulta de ítem,
// histórico, registro de movimientos, foto y ubicación. Cada interacción
// relee la planilla completa (cabe en memoria y no hay caché; la planilla
// es la única fuente de verdad y la editan también otros procesos).
type KardexUseCase struct {
	rowStore repository.RowStore
	photos   PhotoStrategy
	ficha    FichaPDFGenerator
	log      *logger.Logger
	opts     Options
}

// New construye el caso de uso. photos y ficha pueden ser nil si el
// despliegue no expone esas operaciones.
func New(rowStore repository.RowStore, photos PhotoStrategy, ficha FichaPDFGenerator, log *logger.Logger, opts Options) *KardexUseCase {
	if opts.HistorySize <= 0 {
		opts.HistorySize = 5
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &KardexUseCase{rowStore: rowStore, photos: photos, ficha: ficha, log: log, opts: opts}
}

// loadLedger lee todas las filas y resuelve el esquema.
func (uc *KardexUseCase) loadLedger(ctx context.Context) (*domkardex.Ledger, error) {
	rows, err := uc.rowStore.ReadAllRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}
	ledger, err := domkardex.NewLedger(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}
	return ledger, nil
}

// LookupItem devuelve el estado vigente de un ítem o ErrNotFound.
// La búsqueda propia del almacén solo sirve como pista oportunista: un
// hallazgo positivo se registra, pero un "no encontrado" no es
// concluyente (compara el texto crudo de la celda, sin normalizar) y
// siempre se sigue con la lectura completa.
func (uc *KardexUseCase) LookupItem(ctx context.Context, code string) (*dto.ItemViewResponse, error) {
	code = domkardex.NormalizeCode(code)
	if code == "" {
		return nil, fmt.Errorf("%w: código requerido", domain.ErrInvalidInput)
	}

	if idx, err := uc.rowStore.FindRow(ctx, code); err == nil && idx > 0 {
		uc.log.Debug().Str("codigo", code).Int("fila", idx).Msg("código visto en la planilla")
	}

	ledger, err := uc.loadLedger(ctx)
	if err != nil {
		return nil, err
	}
	view, ok := ledger.Lookup(code)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &dto.ItemViewResponse{
		Codigo:      view.Codigo,
		Descripcion: view.Descripcion,
		Saldo:       view.SaldoTexto,
		Almacen:     view.Almacen,
		Ubicacion:   view.Ubicacion,
		FotoRef:     view.FotoRef,
		TieneFoto:   view.HasPhoto(),
	}, nil
}

// History devuelve los últimos n movimientos del código, del más
// reciente al más antiguo. n<=0 usa el tamaño configurado.
func (uc *KardexUseCase) History(ctx context.Context, code string, n int) ([]dto.HistoryEntryDTO, error) {
	code = domkardex.NormalizeCode(code)
	if code == "" {
		return nil, fmt.Errorf("%w: código requerido", domain.ErrInvalidInput)
	}
	if n <= 0 {
		n = uc.opts.HistorySize
	}

	ledger, err := uc.loadLedger(ctx)
	if err != nil {
		return nil, err
	}

	movimientos := ledger.History(code, n)
	entries := make([]dto.HistoryEntryDTO, 0, len(movimientos))
	for _, m := range movimientos {
		entries = append(entries, dto.HistoryEntryDTO{
			Fecha:       soloFecha(m.Timestamp),
			Tipo:        m.Tipo,
			Cantidad:    domkardex.FormatDecimal(m.Cantidad),
			Saldo:       domkardex.FormatDecimal(m.Saldo),
			Responsable: m.Responsable,
			DocRef:      m.DocRef,
		})
	}
	return entries, nil
}

// soloFecha recorta "02/01/2006 15:04" a la parte de fecha.
func soloFecha(ts string) string {
	if i := strings.IndexByte(ts, ' '); i > 0 {
		return ts[:i]
	}
	return ts
}
