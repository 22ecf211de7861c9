package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/domain/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrServiceNotFound = errors.New("serviço não encontrado")
)

// ServiceRepository implementa a interface service.Repository
type ServiceRepository struct {
	db *pgxpool.Pool
}

// NewServiceRepository cria uma nova instância de ServiceRepository
func NewServiceRepository(db *pgxpool.Pool) service.Repository {
	return &ServiceRepository{
		db: db,
	}
}

// Create implementa service.Repository.Create
func (r *ServiceRepository) Create(ctx context.Context, s *service.Service) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO services (id, name, session_count, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.Name, s.SessionCount, s.Status, s.CreatedAt, s.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar serviço: %w", err)
	}

	return nil
}

// FindByID implementa service.Repository.FindByID
func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*service.Service, error) {
	var s service.Service

	err := r.db.QueryRow(ctx,
		`SELECT id, name, session_count, status, created_at, updated_at
		FROM services WHERE id = $1`,
		id).Scan(&s.ID, &s.Name, &s.SessionCount, &s.Status, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("erro ao buscar serviço: %w", err)
	}

	return &s, nil
}

// List implementa service.Repository.List
func (r *ServiceRepository) List(ctx context.Context, limit, offset int) ([]*service.Service, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, session_count, status, created_at, updated_at
		FROM services
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar serviços: %w", err)
	}
	defer rows.Close()

	return r.scanServiceRows(rows)
}

// FindByStatus implementa service.Repository.FindByStatus
func (r *ServiceRepository) FindByStatus(ctx context.Context, status service.Status, limit, offset int) ([]*service.Service, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, session_count, status, created_at, updated_at
		FROM services
		WHERE status = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar serviços: %w", err)
	}
	defer rows.Close()

	return r.scanServiceRows(rows)
}

// Update implementa service.Repository.Update
func (r *ServiceRepository) Update(ctx context.Context, s *service.Service) error {
	result, err := r.db.Exec(ctx,
		`UPDATE services SET name = $1, session_count = $2, status = $3, updated_at = $4
		WHERE id = $5`,
		s.Name, s.SessionCount, s.Status, s.UpdatedAt, s.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar serviço: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// UpdateStatus implementa service.Repository.UpdateStatus
func (r *ServiceRepository) UpdateStatus(ctx context.Context, id string, status service.Status) error {
	result, err := r.db.Exec(ctx,
		"UPDATE services SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now(), id)

	if err != nil {
		return fmt.Errorf("erro ao atualizar status do serviço: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// Delete implementa service.Repository.Delete
func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM services WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir serviço: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// Count implementa service.Repository.Count
func (r *ServiceRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM services").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar serviços: %w", err)
	}

	return count, nil
}

// Exists implementa service.Repository.Exists
func (r *ServiceRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM services WHERE id = $1)",
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência do serviço: %w", err)
	}

	return exists, nil
}

// scanServiceRows processa resultados de consultas que retornam múltiplos serviços
func (r *ServiceRepository) scanServiceRows(rows pgx.Rows) ([]*service.Service, error) {
	services := make([]*service.Service, 0)

	for rows.Next() {
		var s service.Service

		err := rows.Scan(&s.ID, &s.Name, &s.SessionCount, &s.Status, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler serviço: %w", err)
		}

		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return services, nil
}
