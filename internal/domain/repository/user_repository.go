package repository

import "github.com/zellicsilva-star/kardex-gree-web/internal/domain/entity"

// UserRepository define el puerto de persistencia para operarios.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
