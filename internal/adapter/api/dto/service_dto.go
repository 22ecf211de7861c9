package dto

import (
	"time"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/domain/service"
)

// ServiceRequest representa a requisição de serviço
type ServiceRequest struct {
	Name         string `json:"name" binding:"required"`
	SessionCount int    `json:"session_count" binding:"required,min=1"`
}

// ServiceStatusRequest representa a requisição de mudança de status
type ServiceStatusRequest struct {
	Status service.Status `json:"status" binding:"required,oneof=active inactive"`
}

// ServiceResponse representa a resposta de serviço
type ServiceResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	SessionCount int            `json:"session_count"`
	Status       service.Status `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// ServiceListResponse representa a resposta de lista de serviços
type ServiceListResponse struct {
	Items      []ServiceResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// ToServiceResponse converte um serviço do domínio para DTO
func ToServiceResponse(s *service.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:           s.ID,
		Name:         s.Name,
		SessionCount: s.SessionCount,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// ToServiceListResponse converte uma lista de serviços do domínio para DTO
func ToServiceListResponse(services []*service.Service, total, page, size, totalPages int) *ServiceListResponse {
	items := make([]ServiceResponse, len(services))
	for i, s := range services {
		items[i] = *ToServiceResponse(s)
	}

	return &ServiceListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}
}
