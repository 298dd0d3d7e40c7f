// Package memory provee adaptadores en memoria para el modo demo
// (sin DATABASE_URL) y para los tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/kardex"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/repository"
)

var _ repository.RowStore = (*SheetRowStore)(nil)

// SheetRowStore implementa RowStore sobre un slice de filas en memoria.
// Los índices son 1-based e incluyen la fila de encabezado, igual que en
// los adaptadores remotos.
type SheetRowStore struct {
	mu   sync.Mutex
	rows [][]string
}

// NewSheetRowStore construye la planilla en memoria con la fila de
// encabezado dada; nil usa el encabezado por defecto.
func NewSheetRowStore(header []string) *SheetRowStore {
	if header == nil {
		header = kardex.DefaultHeader()
	}
	s := &SheetRowStore{}
	s.rows = append(s.rows, append([]string(nil), header...))
	return s
}

// ReadAllRows devuelve una copia de todas las filas.
func (s *SheetRowStore) ReadAllRows(_ context.Context) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]string, len(s.rows))
	for i, r := range s.rows {
		out[i] = append([]string(nil), r...)
	}
	return out, nil
}

// AppendRow agrega una fila al final.
func (s *SheetRowStore) AppendRow(_ context.Context, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, append([]string(nil), values...))
	return nil
}

// UpdateCell sobreescribe una sola celda, extendiendo la fila si hace falta.
func (s *SheetRowStore) UpdateCell(_ context.Context, rowIndex, colIndex int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rowIndex < 1 || rowIndex > len(s.rows) {
		return fmt.Errorf("fila %d no existe", rowIndex)
	}
	row := s.rows[rowIndex-1]
	for len(row) < colIndex {
		row = append(row, "")
	}
	row[colIndex-1] = value
	s.rows[rowIndex-1] = row
	return nil
}

// FindRow devuelve la primera fila que contiene el valor, o 0.
func (s *SheetRowStore) FindRow(_ context.Context, value string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, row := range s.rows {
		for _, cell := range row {
			if cell == value {
				return i + 1, nil
			}
		}
	}
	return 0, nil
}
