package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrUserDuplicateEmail = errors.New("usuário com mesmo email já existe")
)

// UserRepository implementa a interface user.Repository
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *pgxpool.Pool) user.Repository {
	return &UserRepository{
		db: db,
	}
}

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, name, password, role, commission_percent,
			last_login_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.Email, u.Name, u.Password, u.Role, u.CommissionPercent,
		u.LastLoginAt, u.CreatedAt, u.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrUserDuplicateEmail
		}
		return fmt.Errorf("erro ao criar usuário: %w", err)
	}

	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User

	err := r.db.QueryRow(ctx,
		`SELECT id, email, name, password, role, commission_percent,
			last_login_at, created_at, updated_at
		FROM users WHERE id = $1`,
		id).Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.Role, &u.CommissionPercent,
		&u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return &u, nil
}

// FindByEmail implementa user.Repository.FindByEmail
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User

	err := r.db.QueryRow(ctx,
		`SELECT id, email, name, password, role, commission_percent,
			last_login_at, created_at, updated_at
		FROM users WHERE email = $1`,
		email).Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.Role, &u.CommissionPercent,
		&u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return &u, nil
}

// List implementa user.Repository.List
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, email, name, password, role, commission_percent,
			last_login_at, created_at, updated_at
		FROM users
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar usuários: %w", err)
	}
	defer rows.Close()

	users := make([]*user.User, 0)
	for rows.Next() {
		var u user.User

		err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.Role, &u.CommissionPercent,
			&u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler usuário: %w", err)
		}

		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return users, nil
}

// Update implementa user.Repository.Update
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users SET email = $1, name = $2, password = $3, role = $4,
			commission_percent = $5, updated_at = $6
		WHERE id = $7`,
		u.Email, u.Name, u.Password, u.Role, u.CommissionPercent, u.UpdatedAt, u.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrUserDuplicateEmail
		}
		return fmt.Errorf("erro ao atualizar usuário: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Delete implementa user.Repository.Delete
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir usuário: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Count implementa user.Repository.Count
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar usuários: %w", err)
	}

	return count, nil
}

// CountAdmins implementa user.Repository.CountAdmins
func (r *UserRepository) CountAdmins(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM users WHERE role = $1",
		user.RoleAdmin).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar administradores: %w", err)
	}

	return count, nil
}

// UpdateLastLogin implementa user.Repository.UpdateLastLogin
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx,
		"UPDATE users SET last_login_at = $1 WHERE id = $2",
		time.Now(), id)

	if err != nil {
		return fmt.Errorf("erro ao registrar último login: %w", err)
	}

	return nil
}
