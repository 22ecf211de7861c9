package dto

import (
	"time"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/domain/paymenttype"
)

// PaymentTypeRequest representa a requisição de forma de pagamento
type PaymentTypeRequest struct {
	Name       string  `json:"name" binding:"required"`
	Percentage float64 `json:"percentage" binding:"min=0,max=100"`
}

// PaymentTypeResponse representa a resposta de forma de pagamento
type PaymentTypeResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Percentage float64   `json:"percentage"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PaymentTypeListResponse representa a resposta de lista de formas de pagamento
type PaymentTypeListResponse struct {
	Items      []PaymentTypeResponse `json:"items"`
	Total      int                   `json:"total"`
	Page       int                   `json:"page"`
	Size       int                   `json:"size"`
	TotalPages int                   `json:"total_pages"`
}

// ToPaymentTypeResponse converte uma forma de pagamento do domínio para DTO
func ToPaymentTypeResponse(p *paymenttype.PaymentType) *PaymentTypeResponse {
	return &PaymentTypeResponse{
		ID:         p.ID,
		Name:       p.Name,
		Percentage: p.Percentage,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// ToPaymentTypeListResponse converte uma lista de formas de pagamento do domínio para DTO
func ToPaymentTypeListResponse(paymentTypes []*paymenttype.PaymentType, total, page, size, totalPages int) *PaymentTypeListResponse {
	items := make([]PaymentTypeResponse, len(paymentTypes))
	for i, p := range paymentTypes {
		items[i] = *ToPaymentTypeResponse(p)
	}

	return &PaymentTypeListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}
}
