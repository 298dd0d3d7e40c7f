package postgres

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/repository"
)

var _ repository.BlobStore = (*PhotoBlobStore)(nil)

// PhotoBlobStore implementa el puerto BlobStore guardando los bytes en
// PostgreSQL. La referencia devuelta es la URL pública con la que la
// propia app sirve la foto (GET /api/fotos/:id), análoga al link de
// visualización que daba el drive.
type PhotoBlobStore struct {
	q       Querier
	baseURL string // prefijo público, ej. "/api/fotos"
}

// NewPhotoBlobStore construye el adaptador.
func NewPhotoBlobStore(q Querier, baseURL string) *PhotoBlobStore {
	return &PhotoBlobStore{q: q, baseURL: baseURL}
}

// EnsureSchema crea la tabla de fotos si no existe.
func (s *PhotoBlobStore) EnsureSchema(ctx context.Context) error {
	_, err := s.q.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kardex_fotos (
			id        uuid PRIMARY KEY,
			nombre    text NOT NULL,
			carpeta   text NOT NULL,
			contenido bytea NOT NULL,
			mime      text NOT NULL,
			creado    timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("crear tabla kardex_fotos: %w", err)
	}
	return nil
}

// CreateFile guarda los bytes y devuelve la URL recuperable.
func (s *PhotoBlobStore) CreateFile(ctx context.Context, data []byte, name, parent string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("archivo vacío")
	}
	id := uuid.New().String()
	mime := http.DetectContentType(data)
	_, err := s.q.Exec(ctx, `
		INSERT INTO kardex_fotos (id, nombre, carpeta, contenido, mime)
		VALUES ($1, $2, $3, $4, $5)`, id, name, parent, data, mime)
	if err != nil {
		return "", fmt.Errorf("guardar foto: %w", err)
	}
	return fmt.Sprintf("%s/%s", s.baseURL, id), nil
}

// GetFile recupera bytes y content-type de una foto guardada.
func (s *PhotoBlobStore) GetFile(ctx context.Context, id string) ([]byte, string, error) {
	var (
		contenido []byte
		mime      string
	)
	err := s.q.QueryRow(ctx, `SELECT contenido, mime FROM kardex_fotos WHERE id = $1`, id).Scan(&contenido, &mime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", domain.ErrNotFound
		}
		return nil, "", fmt.Errorf("leer foto: %w", err)
	}
	return contenido, mime, nil
}
