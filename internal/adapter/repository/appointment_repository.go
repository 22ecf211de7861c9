package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/domain/appointment"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrAppointmentNotFound = errors.New("agendamento não encontrado")
)

// AppointmentRepository implementa a interface appointment.Repository
type AppointmentRepository struct {
	db *pgxpool.Pool
}

// NewAppointmentRepository cria uma nova instância de AppointmentRepository
func NewAppointmentRepository(db *pgxpool.Pool) appointment.Repository {
	return &AppointmentRepository{
		db: db,
	}
}

// Create implementa appointment.Repository.Create
func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO appointments (id, sale_id, service_date, start_time, end_time,
			description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.SaleID, a.ServiceDate, a.StartTime, a.EndTime,
		a.Description, a.CreatedAt, a.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar agendamento: %w", err)
	}

	return nil
}

// FindByID implementa appointment.Repository.FindByID
func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*appointment.Appointment, error) {
	var a appointment.Appointment

	err := r.db.QueryRow(ctx,
		`SELECT id, sale_id, service_date, start_time, end_time, description,
			created_at, updated_at
		FROM appointments WHERE id = $1`,
		id).Scan(&a.ID, &a.SaleID, &a.ServiceDate, &a.StartTime, &a.EndTime,
		&a.Description, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("erro ao buscar agendamento: %w", err)
	}

	return &a, nil
}

// List implementa appointment.Repository.List
func (r *AppointmentRepository) List(ctx context.Context, limit, offset int) ([]*appointment.Appointment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, sale_id, service_date, start_time, end_time, description,
			created_at, updated_at
		FROM appointments
		ORDER BY service_date ASC, start_time ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar agendamentos: %w", err)
	}
	defer rows.Close()

	return r.scanAppointmentRows(rows)
}

// ListAll implementa appointment.Repository.ListAll
func (r *AppointmentRepository) ListAll(ctx context.Context) ([]*appointment.Appointment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, sale_id, service_date, start_time, end_time, description,
			created_at, updated_at
		FROM appointments
		ORDER BY service_date ASC, start_time ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar agendamentos: %w", err)
	}
	defer rows.Close()

	return r.scanAppointmentRows(rows)
}

// ListBySale implementa appointment.Repository.ListBySale
func (r *AppointmentRepository) ListBySale(ctx context.Context, saleID string) ([]*appointment.Appointment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, sale_id, service_date, start_time, end_time, description,
			created_at, updated_at
		FROM appointments
		WHERE sale_id = $1
		ORDER BY service_date ASC, start_time ASC`,
		saleID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar agendamentos da venda: %w", err)
	}
	defer rows.Close()

	return r.scanAppointmentRows(rows)
}

// Update implementa appointment.Repository.Update
func (r *AppointmentRepository) Update(ctx context.Context, a *appointment.Appointment) error {
	result, err := r.db.Exec(ctx,
		`UPDATE appointments SET sale_id = $1, service_date = $2, start_time = $3,
			end_time = $4, description = $5, updated_at = $6
		WHERE id = $7`,
		a.SaleID, a.ServiceDate, a.StartTime, a.EndTime, a.Description, a.UpdatedAt, a.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar agendamento: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Delete implementa appointment.Repository.Delete. A venda associada não é
// afetada; excluir a venda é uma operação independente.
func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM appointments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir agendamento: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Count implementa appointment.Repository.Count
func (r *AppointmentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM appointments").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar agendamentos: %w", err)
	}

	return count, nil
}

// scanAppointmentRows processa resultados de consultas que retornam múltiplos agendamentos
func (r *AppointmentRepository) scanAppointmentRows(rows pgx.Rows) ([]*appointment.Appointment, error) {
	appointments := make([]*appointment.Appointment, 0)

	for rows.Next() {
		var a appointment.Appointment

		err := rows.Scan(&a.ID, &a.SaleID, &a.ServiceDate, &a.StartTime, &a.EndTime,
			&a.Description, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler agendamento: %w", err)
		}

		appointments = append(appointments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return appointments, nil
}
