package kardex

import (
	"context"
	"fmt"

	"github.com/zellicsilva-star/kardex-gree-web/internal/domain"
	domkardex "github.com/zellicsilva-star/kardex-gree-web/internal/domain/kardex"
)

// GenerateFicha genera la ficha de kardex del ítem en PDF: estado
// vigente más el histórico reciente.
func (uc *KardexUseCase) GenerateFicha(ctx context.Context, code string) ([]byte, error) {
	if uc.ficha == nil {
		return nil, fmt.Errorf("%w: exportación a PDF no habilitada", domain.ErrInvalidInput)
	}
	code = domkardex.NormalizeCode(code)
	if code == "" {
		return nil, fmt.Errorf("%w: código requerido", domain.ErrInvalidInput)
	}

	ledger, err := uc.loadLedger(ctx)
	if err != nil {
		return nil, err
	}
	view, ok := ledger.Lookup(code)
	if !ok {
		return nil, domain.ErrNotFound
	}
	historial := ledger.History(code, uc.opts.HistorySize)

	pdf, err := uc.ficha.GenerateFichaPDF(ctx, view, historial)
	if err != nil {
		return nil, fmt.Errorf("generar ficha: %w", err)
	}
	return pdf, nil
}
