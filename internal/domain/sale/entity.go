package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoDetails            = errors.New("venda precisa de ao menos um serviço")
	ErrEmptyClient          = errors.New("cliente não informado")
	ErrClientNotRegistered  = errors.New("cliente não registrado")
	ErrEmptyService         = errors.New("serviço não informado no item da venda")
	ErrInvalidDepositAmount = errors.New("valor do abono não pode ser negativo")
	ErrInvalidSessionCount  = errors.New("quantidade de sessões deve ser maior que zero")
	ErrServiceNotResolvable = errors.New("serviço do item da venda não encontrado")
)

// Sale representa uma venda de serviços para um cliente
type Sale struct {
	ID               string    `json:"id"`
	ClientID         string    `json:"client_id"`
	WorkerID         *string   `json:"worker_id"` // Trabalhador que registrou a venda
	TotalPrice       float64   `json:"total_price"`
	Description      string    `json:"description"`
	PaymentTypeID    string    `json:"payment_type_id"`
	TransactionDate  time.Time `json:"transaction_date"`
	PrimaryServiceID string    `json:"primary_service_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// SaleDetail representa um item de serviço de uma venda
type SaleDetail struct {
	SaleID       string  `json:"sale_id"`
	ServiceID    string  `json:"service_id"`
	SessionCount int     `json:"session_count"`
	LinePrice    float64 `json:"line_price"`
}

// Deposit representa um abono (pagamento parcial) registrado contra a venda
type Deposit struct {
	ID            string    `json:"id"`
	SaleID        string    `json:"sale_id"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	PaymentTypeID string    `json:"payment_type_id"`
}

// Commission representa a comissão do trabalhador derivada de um abono
type Commission struct {
	ID         string    `json:"id"`
	SaleID     string    `json:"sale_id"`
	EmployeeID string    `json:"employee_id"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
}

// LineItem é a entrada de um item de serviço na hora de registrar a venda
type LineItem struct {
	ServiceID    string
	SessionCount int
	LinePrice    float64
}

// NewSale cria uma venda a partir dos itens. O preço total é a soma dos
// preços dos itens; o primeiro serviço vira o serviço principal.
func NewSale(clientID string, workerID *string, paymentTypeID, description string, items []LineItem) (*Sale, []SaleDetail, error) {
	if clientID == "" {
		return nil, nil, ErrEmptyClient
	}

	if len(items) == 0 {
		return nil, nil, ErrNoDetails
	}

	now := time.Now()
	s := &Sale{
		ID:              uuid.New().String(),
		ClientID:        clientID,
		WorkerID:        workerID,
		Description:     description,
		PaymentTypeID:   paymentTypeID,
		TransactionDate: now,
		CreatedAt:       now,
	}

	details := make([]SaleDetail, 0, len(items))
	for i, item := range items {
		if item.ServiceID == "" {
			return nil, nil, ErrEmptyService
		}
		if item.SessionCount < 1 {
			return nil, nil, ErrInvalidSessionCount
		}

		if i == 0 {
			s.PrimaryServiceID = item.ServiceID
		}
		s.TotalPrice += item.LinePrice

		details = append(details, SaleDetail{
			SaleID:       s.ID,
			ServiceID:    item.ServiceID,
			SessionCount: item.SessionCount,
			LinePrice:    item.LinePrice,
		})
	}

	return s, details, nil
}

// NewDeposit cria um abono para a venda
func NewDeposit(saleID string, amount float64, paymentTypeID string) (*Deposit, error) {
	if amount < 0 {
		return nil, ErrInvalidDepositAmount
	}

	return &Deposit{
		ID:            uuid.New().String(),
		SaleID:        saleID,
		Amount:        amount,
		Date:          time.Now(),
		PaymentTypeID: paymentTypeID,
	}, nil
}

// NewCommission cria o registro de comissão de um trabalhador para a venda
func NewCommission(saleID, employeeID string, amount float64) *Commission {
	return &Commission{
		ID:         uuid.New().String(),
		SaleID:     saleID,
		EmployeeID: employeeID,
		Amount:     amount,
		Date:       time.Now(),
	}
}
