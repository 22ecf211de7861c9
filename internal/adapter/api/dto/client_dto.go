package dto

import (
	"time"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/domain/client"
)

// ClientRequest representa a requisição de cliente
type ClientRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	NationalID string `json:"national_id" binding:"required"`
}

// ClientResponse representa a resposta de cliente
type ClientResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	NationalID string    `json:"national_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ClientListResponse representa a resposta de lista de clientes
type ClientListResponse struct {
	Items      []ClientResponse `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalPages int              `json:"total_pages"`
}

// ToClientResponse converte um cliente do domínio para DTO
func ToClientResponse(c *client.Client) *ClientResponse {
	return &ClientResponse{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		NationalID: c.NationalID,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ToClientListResponse converte uma lista de clientes do domínio para DTO
func ToClientListResponse(clients []*client.Client, total, page, size, totalPages int) *ClientListResponse {
	items := make([]ClientResponse, len(clients))
	for i, c := range clients {
		items[i] = *ToClientResponse(c)
	}

	return &ClientListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}
}
