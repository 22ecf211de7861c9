package appointment

import (
	"context"
)

// Repository define a interface para operações de repositório de agendamentos
type Repository interface {
	// Create cria um novo agendamento
	Create(ctx context.Context, a *Appointment) error

	// FindByID busca um agendamento pelo ID
	FindByID(ctx context.Context, id string) (*Appointment, error)

	// List lista os agendamentos com paginação
	List(ctx context.Context, limit, offset int) ([]*Appointment, error)

	// ListAll lista todos os agendamentos (verificação de conflito e relatórios)
	ListAll(ctx context.Context) ([]*Appointment, error)

	// ListBySale lista os agendamentos de uma venda
	ListBySale(ctx context.Context, saleID string) ([]*Appointment, error)

	// Update atualiza um agendamento existente
	Update(ctx context.Context, a *Appointment) error

	// Delete remove um agendamento
	Delete(ctx context.Context, id string) error

	// Count conta quantos agendamentos existem
	Count(ctx context.Context) (int, error)
}
