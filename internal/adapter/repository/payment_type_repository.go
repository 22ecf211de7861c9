package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/domain/paymenttype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrPaymentTypeNotFound = errors.New("forma de pagamento não encontrada")
)

// PaymentTypeRepository implementa a interface paymenttype.Repository
type PaymentTypeRepository struct {
	db *pgxpool.Pool
}

// NewPaymentTypeRepository cria uma nova instância de PaymentTypeRepository
func NewPaymentTypeRepository(db *pgxpool.Pool) paymenttype.Repository {
	return &PaymentTypeRepository{
		db: db,
	}
}

// Create implementa paymenttype.Repository.Create
func (r *PaymentTypeRepository) Create(ctx context.Context, p *paymenttype.PaymentType) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO payment_types (id, name, percentage, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Name, p.Percentage, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar forma de pagamento: %w", err)
	}

	return nil
}

// FindByID implementa paymenttype.Repository.FindByID
func (r *PaymentTypeRepository) FindByID(ctx context.Context, id string) (*paymenttype.PaymentType, error) {
	var p paymenttype.PaymentType

	err := r.db.QueryRow(ctx,
		`SELECT id, name, percentage, created_at, updated_at
		FROM payment_types WHERE id = $1`,
		id).Scan(&p.ID, &p.Name, &p.Percentage, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPaymentTypeNotFound
		}
		return nil, fmt.Errorf("erro ao buscar forma de pagamento: %w", err)
	}

	return &p, nil
}

// List implementa paymenttype.Repository.List
func (r *PaymentTypeRepository) List(ctx context.Context, limit, offset int) ([]*paymenttype.PaymentType, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, percentage, created_at, updated_at
		FROM payment_types
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar formas de pagamento: %w", err)
	}
	defer rows.Close()

	paymentTypes := make([]*paymenttype.PaymentType, 0)
	for rows.Next() {
		var p paymenttype.PaymentType

		err := rows.Scan(&p.ID, &p.Name, &p.Percentage, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler forma de pagamento: %w", err)
		}

		paymentTypes = append(paymentTypes, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return paymentTypes, nil
}

// Update implementa paymenttype.Repository.Update
func (r *PaymentTypeRepository) Update(ctx context.Context, p *paymenttype.PaymentType) error {
	result, err := r.db.Exec(ctx,
		`UPDATE payment_types SET name = $1, percentage = $2, updated_at = $3
		WHERE id = $4`,
		p.Name, p.Percentage, p.UpdatedAt, p.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar forma de pagamento: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPaymentTypeNotFound
	}

	return nil
}

// Delete implementa paymenttype.Repository.Delete
func (r *PaymentTypeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM payment_types WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir forma de pagamento: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPaymentTypeNotFound
	}

	return nil
}

// Count implementa paymenttype.Repository.Count
func (r *PaymentTypeRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM payment_types").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar formas de pagamento: %w", err)
	}

	return count, nil
}
