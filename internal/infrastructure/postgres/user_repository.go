package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/entity"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del repositorio de operarios sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// EnsureSchema crea la tabla de operarios si no existe.
func (r *UserRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.q.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kardex_usuarios (
			id            uuid PRIMARY KEY,
			email         text NOT NULL UNIQUE,
			password_hash text NOT NULL,
			nombre        text NOT NULL,
			rol           text NOT NULL,
			estado        text NOT NULL,
			creado        timestamptz NOT NULL,
			actualizado   timestamptz NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("crear tabla kardex_usuarios: %w", err)
	}
	return nil
}

// Create persiste un operario.
func (r *UserRepo) Create(user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO kardex_usuarios (id, email, password_hash, nombre, rol, estado, creado, actualizado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role, user.Status, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindByEmail busca un operario por email; nil si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.scanOne(`SELECT id, email, password_hash, nombre, rol, estado, creado, actualizado
		FROM kardex_usuarios WHERE email = $1`, email)
}

// GetByID busca un operario por id; nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.scanOne(`SELECT id, email, password_hash, nombre, rol, estado, creado, actualizado
		FROM kardex_usuarios WHERE id = $1`, id)
}

func (r *UserRepo) scanOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
