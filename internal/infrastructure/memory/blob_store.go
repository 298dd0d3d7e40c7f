package memory

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/repository"
)

var _ repository.BlobStore = (*PhotoBlobStore)(nil)

type blob struct {
	data []byte
	mime string
}

// PhotoBlobStore implementa BlobStore en memoria.
type PhotoBlobStore struct {
	mu      sync.Mutex
	blobs   map[string]blob
	baseURL string
}

// NewPhotoBlobStore construye el adaptador.
func NewPhotoBlobStore(baseURL string) *PhotoBlobStore {
	return &PhotoBlobStore{blobs: map[string]blob{}, baseURL: baseURL}
}

// CreateFile guarda los bytes y devuelve la URL recuperable.
func (s *PhotoBlobStore) CreateFile(_ context.Context, data []byte, _, _ string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("archivo vacío")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	s.blobs[id] = blob{data: append([]byte(nil), data...), mime: http.DetectContentType(data)}
	return fmt.Sprintf("%s/%s", s.baseURL, id), nil
}

// GetFile recupera bytes y content-type.
func (s *PhotoBlobStore) GetFile(_ context.Context, id string) ([]byte, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[id]
	if !ok {
		return nil, "", domain.ErrNotFound
	}
	return b.data, b.mime, nil
}
