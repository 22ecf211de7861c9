package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/domain/client"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrClientNotFound            = errors.New("cliente não encontrado")
	ErrClientDuplicateNationalID = errors.New("cliente com mesmo documento já existe")
)

// ClientRepository implementa a interface client.Repository
type ClientRepository struct {
	db *pgxpool.Pool
}

// NewClientRepository cria uma nova instância de ClientRepository
func NewClientRepository(db *pgxpool.Pool) client.Repository {
	return &ClientRepository{
		db: db,
	}
}

// Create implementa client.Repository.Create
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	// Documento de identidade é único entre clientes
	exists, err := r.ExistsByNationalID(ctx, c.NationalID)
	if err != nil {
		return fmt.Errorf("erro ao verificar existência do cliente: %w", err)
	}
	if exists {
		return ErrClientDuplicateNationalID
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO clients (id, name, phone, national_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Phone, c.NationalID, c.CreatedAt, c.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrClientDuplicateNationalID
		}
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// FindByID implementa client.Repository.FindByID
func (r *ClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	var c client.Client

	err := r.db.QueryRow(ctx,
		`SELECT id, name, phone, national_id, created_at, updated_at
		FROM clients WHERE id = $1`,
		id).Scan(&c.ID, &c.Name, &c.Phone, &c.NationalID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return &c, nil
}

// FindByNationalID implementa client.Repository.FindByNationalID
func (r *ClientRepository) FindByNationalID(ctx context.Context, nationalID string) (*client.Client, error) {
	var c client.Client

	err := r.db.QueryRow(ctx,
		`SELECT id, name, phone, national_id, created_at, updated_at
		FROM clients WHERE national_id = $1`,
		nationalID).Scan(&c.ID, &c.Name, &c.Phone, &c.NationalID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return &c, nil
}

// List implementa client.Repository.List
func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]*client.Client, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, phone, national_id, created_at, updated_at
		FROM clients
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	return r.scanClientRows(rows)
}

// Update implementa client.Repository.Update
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	result, err := r.db.Exec(ctx,
		`UPDATE clients SET name = $1, phone = $2, national_id = $3, updated_at = $4
		WHERE id = $5`,
		c.Name, c.Phone, c.NationalID, c.UpdatedAt, c.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrClientDuplicateNationalID
		}
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Delete implementa client.Repository.Delete
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM clients WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Count implementa client.Repository.Count
func (r *ClientRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM clients").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	return count, nil
}

// Exists implementa client.Repository.Exists
func (r *ClientRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM clients WHERE id = $1)",
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência do cliente: %w", err)
	}

	return exists, nil
}

// ExistsByNationalID implementa client.Repository.ExistsByNationalID
func (r *ClientRepository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM clients WHERE national_id = $1)",
		nationalID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência do cliente: %w", err)
	}

	return exists, nil
}

// scanClientRows processa resultados de consultas que retornam múltiplos clientes
func (r *ClientRepository) scanClientRows(rows pgx.Rows) ([]*client.Client, error) {
	clients := make([]*client.Client, 0)

	for rows.Next() {
		var c client.Client

		err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.NationalID, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}

		clients = append(clients, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return clients, nil
}
