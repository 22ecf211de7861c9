package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/domain/sale"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrSaleNotFound = errors.New("venda não encontrada")
)

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{
		db: db,
	}
}

// CreateGroup implementa sale.Repository.CreateGroup. A venda, seus itens,
// o abono opcional e a comissão são gravados em uma única transação para que
// nunca exista venda sem comissão.
func (r *SaleRepository) CreateGroup(ctx context.Context, s *sale.Sale, details []sale.SaleDetail, deposit *sale.Deposit, commission *sale.Commission) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO sales (id, client_id, worker_id, total_price, description,
			payment_type_id, transaction_date, primary_service_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.ClientID, s.WorkerID, s.TotalPrice, s.Description,
		s.PaymentTypeID, s.TransactionDate, s.PrimaryServiceID, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar venda: %w", err)
	}

	for _, d := range details {
		_, err = tx.Exec(ctx,
			`INSERT INTO sale_details (sale_id, service_id, session_count, line_price)
			VALUES ($1, $2, $3, $4)`,
			d.SaleID, d.ServiceID, d.SessionCount, d.LinePrice)
		if err != nil {
			return fmt.Errorf("erro ao criar item da venda: %w", err)
		}
	}

	if deposit != nil {
		_, err = tx.Exec(ctx,
			`INSERT INTO deposits (id, sale_id, amount, date, payment_type_id)
			VALUES ($1, $2, $3, $4, $5)`,
			deposit.ID, deposit.SaleID, deposit.Amount, deposit.Date, deposit.PaymentTypeID)
		if err != nil {
			return fmt.Errorf("erro ao criar abono: %w", err)
		}
	}

	if commission != nil {
		_, err = tx.Exec(ctx,
			`INSERT INTO commissions (id, sale_id, employee_id, amount, date)
			VALUES ($1, $2, $3, $4, $5)`,
			commission.ID, commission.SaleID, commission.EmployeeID, commission.Amount, commission.Date)
		if err != nil {
			return fmt.Errorf("erro ao criar comissão: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	var s sale.Sale

	err := r.db.QueryRow(ctx,
		`SELECT id, client_id, worker_id, total_price, description,
			payment_type_id, transaction_date, primary_service_id, created_at
		FROM sales WHERE id = $1`,
		id).Scan(&s.ID, &s.ClientID, &s.WorkerID, &s.TotalPrice, &s.Description,
		&s.PaymentTypeID, &s.TransactionDate, &s.PrimaryServiceID, &s.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	return &s, nil
}

// FindDetails implementa sale.Repository.FindDetails
func (r *SaleRepository) FindDetails(ctx context.Context, saleID string) ([]sale.SaleDetail, error) {
	rows, err := r.db.Query(ctx,
		`SELECT sale_id, service_id, session_count, line_price
		FROM sale_details WHERE sale_id = $1`,
		saleID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens da venda: %w", err)
	}
	defer rows.Close()

	details := make([]sale.SaleDetail, 0)
	for rows.Next() {
		var d sale.SaleDetail

		err := rows.Scan(&d.SaleID, &d.ServiceID, &d.SessionCount, &d.LinePrice)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler item da venda: %w", err)
		}

		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return details, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, client_id, worker_id, total_price, description,
			payment_type_id, transaction_date, primary_service_id, created_at
		FROM sales
		ORDER BY transaction_date DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	return r.scanSaleRows(rows)
}

// ListByWorker implementa sale.Repository.ListByWorker
func (r *SaleRepository) ListByWorker(ctx context.Context, workerID string, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, client_id, worker_id, total_price, description,
			payment_type_id, transaction_date, primary_service_id, created_at
		FROM sales
		WHERE worker_id = $1
		ORDER BY transaction_date DESC
		LIMIT $2 OFFSET $3`,
		workerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	return r.scanSaleRows(rows)
}

// ListAll implementa sale.Repository.ListAll
func (r *SaleRepository) ListAll(ctx context.Context) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, client_id, worker_id, total_price, description,
			payment_type_id, transaction_date, primary_service_id, created_at
		FROM sales`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	return r.scanSaleRows(rows)
}

// Delete implementa sale.Repository.Delete. Os agendamentos que apontam
// para a venda saem junto, na mesma transação.
func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM appointments WHERE sale_id = $1", id); err != nil {
		return fmt.Errorf("erro ao excluir agendamentos da venda: %w", err)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM commissions WHERE sale_id = $1", id); err != nil {
		return fmt.Errorf("erro ao excluir comissões da venda: %w", err)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM deposits WHERE sale_id = $1", id); err != nil {
		return fmt.Errorf("erro ao excluir abonos da venda: %w", err)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM sale_details WHERE sale_id = $1", id); err != nil {
		return fmt.Errorf("erro ao excluir itens da venda: %w", err)
	}

	result, err := tx.Exec(ctx, "DELETE FROM sales WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir venda: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSaleNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return nil
}

// Count implementa sale.Repository.Count
func (r *SaleRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM sales").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}

	return count, nil
}

// AddDeposit implementa sale.Repository.AddDeposit. O abono e a comissão
// derivada dele são gravados juntos.
func (r *SaleRepository) AddDeposit(ctx context.Context, deposit *sale.Deposit, commission *sale.Commission) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO deposits (id, sale_id, amount, date, payment_type_id)
		VALUES ($1, $2, $3, $4, $5)`,
		deposit.ID, deposit.SaleID, deposit.Amount, deposit.Date, deposit.PaymentTypeID)
	if err != nil {
		return fmt.Errorf("erro ao criar abono: %w", err)
	}

	if commission != nil {
		_, err = tx.Exec(ctx,
			`INSERT INTO commissions (id, sale_id, employee_id, amount, date)
			VALUES ($1, $2, $3, $4, $5)`,
			commission.ID, commission.SaleID, commission.EmployeeID, commission.Amount, commission.Date)
		if err != nil {
			return fmt.Errorf("erro ao criar comissão: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return nil
}

// FindDeposits implementa sale.Repository.FindDeposits
func (r *SaleRepository) FindDeposits(ctx context.Context, saleID string) ([]sale.Deposit, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, sale_id, amount, date, payment_type_id
		FROM deposits WHERE sale_id = $1
		ORDER BY date ASC`,
		saleID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar abonos: %w", err)
	}
	defer rows.Close()

	deposits := make([]sale.Deposit, 0)
	for rows.Next() {
		var d sale.Deposit

		err := rows.Scan(&d.ID, &d.SaleID, &d.Amount, &d.Date, &d.PaymentTypeID)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler abono: %w", err)
		}

		deposits = append(deposits, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return deposits, nil
}

// ListCommissions implementa sale.Repository.ListCommissions
func (r *SaleRepository) ListCommissions(ctx context.Context) ([]sale.Commission, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, sale_id, employee_id, amount, date FROM commissions`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar comissões: %w", err)
	}
	defer rows.Close()

	commissions := make([]sale.Commission, 0)
	for rows.Next() {
		var c sale.Commission

		err := rows.Scan(&c.ID, &c.SaleID, &c.EmployeeID, &c.Amount, &c.Date)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler comissão: %w", err)
		}

		commissions = append(commissions, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return commissions, nil
}

// scanSaleRows processa resultados de consultas que retornam múltiplas vendas
func (r *SaleRepository) scanSaleRows(rows pgx.Rows) ([]*sale.Sale, error) {
	sales := make([]*sale.Sale, 0)

	for rows.Next() {
		var s sale.Sale

		err := rows.Scan(&s.ID, &s.ClientID, &s.WorkerID, &s.TotalPrice, &s.Description,
			&s.PaymentTypeID, &s.TransactionDate, &s.PrimaryServiceID, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}

		sales = append(sales, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return sales, nil
}
