package paymenttype

import (
	"context"
)

// Repository define a interface para operações de repositório de formas de pagamento
type Repository interface {
	// Create cria uma nova forma de pagamento
	Create(ctx context.Context, p *PaymentType) error

	// FindByID busca uma forma de pagamento pelo ID
	FindByID(ctx context.Context, id string) (*PaymentType, error)

	// List lista as formas de pagamento
	List(ctx context.Context, limit, offset int) ([]*PaymentType, error)

	// Update atualiza uma forma de pagamento existente
	Update(ctx context.Context, p *PaymentType) error

	// Delete remove uma forma de pagamento
	Delete(ctx context.Context, id string) error

	// Count conta quantas formas de pagamento existem
	Count(ctx context.Context) (int, error)
}
