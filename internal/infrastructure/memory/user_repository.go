package memory

import (
	"sync"

	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/entity"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementa el repositorio de operarios en memoria.
type UserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User // por id
}

// NewUserRepository construye el repositorio.
func NewUserRepository() *UserRepo {
	return &UserRepo{users: map[string]*entity.User{}}
}

// Create persiste un operario.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

// FindByEmail busca por email; nil si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByID busca por id; nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
