package paymenttype

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("nome não pode ser vazio")
	ErrInvalidPercentage = errors.New("percentual deve estar entre 0 e 100")
)

// PaymentType representa uma forma de pagamento com percentual de desconto.
// O percentual é a taxa descontada do abono antes do cálculo da comissão.
type PaymentType struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Percentage float64   `json:"percentage"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewPaymentType cria uma nova forma de pagamento
func NewPaymentType(name string, percentage float64) (*PaymentType, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	// Percentual fora da faixa geraria comissão negativa
	if percentage < 0 || percentage > 100 {
		return nil, ErrInvalidPercentage
	}

	now := time.Now()
	return &PaymentType{
		ID:         uuid.New().String(),
		Name:       name,
		Percentage: percentage,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Update atualiza os dados da forma de pagamento
func (p *PaymentType) Update(name string, percentage float64) error {
	if name == "" {
		return ErrEmptyName
	}

	if percentage < 0 || percentage > 100 {
		return ErrInvalidPercentage
	}

	p.Name = name
	p.Percentage = percentage
	p.UpdatedAt = time.Now()

	return nil
}
