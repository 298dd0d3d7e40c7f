package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/kardex"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/repository"
)

var _ repository.RowStore = (*SheetRowStore)(nil)

// SheetRowStore implementa el puerto RowStore sobre una tabla PostgreSQL
// que reproduce la semántica de una hoja de cálculo: filas numeradas
// 1-based (la fila 1 es el encabezado) con celdas de texto.
//
// Las escrituras aplican una pausa defensiva configurable antes y
// después, heredada del despliegue contra la API de hojas remota y su
// rate limit.
type SheetRowStore struct {
	q        Querier
	throttle time.Duration
}

// Querier abstrae pool o tx de pgx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewSheetRowStore construye el adaptador.
func NewSheetRowStore(q Querier, throttle time.Duration) *SheetRowStore {
	return &SheetRowStore{q: q, throttle: throttle}
}

// EnsureSchema crea la tabla si no existe y siembra la fila de
// encabezado en una planilla vacía.
func (s *SheetRowStore) EnsureSchema(ctx context.Context) error {
	_, err := s.q.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kardex_hoja (
			fila   integer PRIMARY KEY,
			celdas text[]  NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("crear tabla kardex_hoja: %w", err)
	}
	var count int
	if err := s.q.QueryRow(ctx, `SELECT count(*) FROM kardex_hoja`).Scan(&count); err != nil {
		return fmt.Errorf("contar filas: %w", err)
	}
	if count == 0 {
		// Una planilla ya poblada puede traer otro encabezado; el
		// esquema se resuelve al leer, no aquí.
		if _, err := s.q.Exec(ctx, `INSERT INTO kardex_hoja (fila, celdas) VALUES (1, $1)`, kardex.DefaultHeader()); err != nil {
			return fmt.Errorf("sembrar encabezado: %w", err)
		}
	}
	return nil
}

// ReadAllRows devuelve todas las filas en orden físico, encabezado incluido.
func (s *SheetRowStore) ReadAllRows(ctx context.Context) ([][]string, error) {
	rows, err := s.q.Query(ctx, `SELECT celdas FROM kardex_hoja ORDER BY fila`)
	if err != nil {
		return nil, fmt.Errorf("leer planilla: %w", err)
	}
	defer rows.Close()

	var all [][]string
	for rows.Next() {
		var celdas []*string
		if err := rows.Scan(&celdas); err != nil {
			return nil, fmt.Errorf("scan fila: %w", err)
		}
		fila := make([]string, len(celdas))
		for i, c := range celdas {
			if c != nil {
				fila[i] = *c
			}
		}
		all = append(all, fila)
	}
	return all, rows.Err()
}

// AppendRow agrega una fila al final de la planilla.
func (s *SheetRowStore) AppendRow(ctx context.Context, values []string) error {
	s.pause()
	defer s.pause()
	_, err := s.q.Exec(ctx, `
		INSERT INTO kardex_hoja (fila, celdas)
		SELECT COALESCE(MAX(fila), 0) + 1, $1 FROM kardex_hoja`, values)
	if err != nil {
		return fmt.Errorf("append fila: %w", err)
	}
	return nil
}

// UpdateCell sobreescribe una sola celda (índices 1-based, encabezado incluido).
func (s *SheetRowStore) UpdateCell(ctx context.Context, rowIndex, colIndex int, value string) error {
	if rowIndex < 1 || colIndex < 1 {
		return fmt.Errorf("índice inválido fila=%d col=%d", rowIndex, colIndex)
	}
	s.pause()
	defer s.pause()
	// Los arrays de PostgreSQL son 1-based igual que las columnas de la
	// planilla; asignar más allá del largo extiende el array.
	ct, err := s.q.Exec(ctx, `UPDATE kardex_hoja SET celdas[$1] = $2 WHERE fila = $3`, colIndex, value, rowIndex)
	if err != nil {
		return fmt.Errorf("update celda: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("fila %d no existe", rowIndex)
	}
	return nil
}

// FindRow devuelve la primera fila que contiene el valor, o 0 si no hay.
func (s *SheetRowStore) FindRow(ctx context.Context, value string) (int, error) {
	var fila int
	err := s.q.QueryRow(ctx, `SELECT fila FROM kardex_hoja WHERE $1 = ANY(celdas) ORDER BY fila LIMIT 1`, value).Scan(&fila)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("buscar fila: %w", err)
	}
	return fila, nil
}

func (s *SheetRowStore) pause() {
	if s.throttle > 0 {
		time.Sleep(s.throttle)
	}
}
