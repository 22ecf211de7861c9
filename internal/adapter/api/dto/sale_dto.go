package dto

import (
	"time"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/domain/sale"
)

// SaleItemRequest representa um item de serviço na requisição de venda
type SaleItemRequest struct {
	ServiceID    string  `json:"service_id" binding:"required"`
	SessionCount int     `json:"session_count" binding:"required,min=1"`
	LinePrice    float64 `json:"line_price" binding:"min=0"`
}

// SaleRequest representa a requisição de registro de venda
type SaleRequest struct {
	ClientID      string            `json:"client_id" binding:"required"`
	PaymentTypeID string            `json:"payment_type_id" binding:"required"`
	Description   string            `json:"description"`
	DepositAmount float64           `json:"deposit_amount" binding:"min=0"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// DepositRequest representa a requisição de um novo abono para a venda
type DepositRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentTypeID string  `json:"payment_type_id" binding:"required"`
}

// SaleDetailResponse representa um item de serviço da venda
type SaleDetailResponse struct {
	ServiceID    string  `json:"service_id"`
	SessionCount int     `json:"session_count"`
	LinePrice    float64 `json:"line_price"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID               string               `json:"id"`
	ClientID         string               `json:"client_id"`
	WorkerID         *string              `json:"worker_id"`
	TotalPrice       float64              `json:"total_price"`
	Description      string               `json:"description"`
	PaymentTypeID    string               `json:"payment_type_id"`
	TransactionDate  time.Time            `json:"transaction_date"`
	PrimaryServiceID string               `json:"primary_service_id"`
	Details          []SaleDetailResponse `json:"details,omitempty"`
	Commission       *CommissionResponse  `json:"commission,omitempty"`
	Deposit          *DepositResponse     `json:"deposit,omitempty"`
}

// DepositResponse representa a resposta de abono
type DepositResponse struct {
	ID            string    `json:"id"`
	SaleID        string    `json:"sale_id"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	PaymentTypeID string    `json:"payment_type_id"`
}

// CommissionResponse representa a resposta de comissão
type CommissionResponse struct {
	ID         string    `json:"id"`
	SaleID     string    `json:"sale_id"`
	EmployeeID string    `json:"employee_id"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
}

// SaleListResponse representa a resposta de lista de vendas
type SaleListResponse struct {
	Items      []SaleResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// ToSaleResponse converte uma venda do domínio para DTO
func ToSaleResponse(s *sale.Sale) *SaleResponse {
	return &SaleResponse{
		ID:               s.ID,
		ClientID:         s.ClientID,
		WorkerID:         s.WorkerID,
		TotalPrice:       s.TotalPrice,
		Description:      s.Description,
		PaymentTypeID:    s.PaymentTypeID,
		TransactionDate:  s.TransactionDate,
		PrimaryServiceID: s.PrimaryServiceID,
	}
}

// ToSaleDetailResponses converte os itens da venda para DTO
func ToSaleDetailResponses(details []sale.SaleDetail) []SaleDetailResponse {
	items := make([]SaleDetailResponse, len(details))
	for i, d := range details {
		items[i] = SaleDetailResponse{
			ServiceID:    d.ServiceID,
			SessionCount: d.SessionCount,
			LinePrice:    d.LinePrice,
		}
	}
	return items
}

// ToDepositResponse converte um abono do domínio para DTO
func ToDepositResponse(d *sale.Deposit) *DepositResponse {
	return &DepositResponse{
		ID:            d.ID,
		SaleID:        d.SaleID,
		Amount:        d.Amount,
		Date:          d.Date,
		PaymentTypeID: d.PaymentTypeID,
	}
}

// ToCommissionResponse converte uma comissão do domínio para DTO
func ToCommissionResponse(c *sale.Commission) *CommissionResponse {
	return &CommissionResponse{
		ID:         c.ID,
		SaleID:     c.SaleID,
		EmployeeID: c.EmployeeID,
		Amount:     c.Amount,
		Date:       c.Date,
	}
}

// ToSaleListResponse converte uma lista de vendas do domínio para DTO
func ToSaleListResponse(sales []*sale.Sale, total, page, size, totalPages int) *SaleListResponse {
	items := make([]SaleResponse, len(sales))
	for i, s := range sales {
		items[i] = *ToSaleResponse(s)
	}

	return &SaleListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}
}
