package dto

import (
	"time"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/domain/appointment"
)

// AppointmentRequest representa a requisição de agendamento. ServiceDate usa
// o formato "2006-01-02" e os horários o formato "HH:MM".
type AppointmentRequest struct {
	SaleID      *string `json:"sale_id"`
	ServiceDate string  `json:"service_date" binding:"required"`
	StartTime   string  `json:"start_time" binding:"required"`
	EndTime     string  `json:"end_time" binding:"required"`
	Description string  `json:"description"`
}

// AppointmentResponse representa a resposta de agendamento
type AppointmentResponse struct {
	ID          string    `json:"id"`
	SaleID      *string   `json:"sale_id"`
	ServiceDate string    `json:"service_date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AppointmentListResponse representa a resposta de lista de agendamentos
type AppointmentListResponse struct {
	Items      []AppointmentResponse `json:"items"`
	Total      int                   `json:"total"`
	Page       int                   `json:"page"`
	Size       int                   `json:"size"`
	TotalPages int                   `json:"total_pages"`
}

// ToAppointmentResponse converte um agendamento do domínio para DTO
func ToAppointmentResponse(a *appointment.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          a.ID,
		SaleID:      a.SaleID,
		ServiceDate: a.ServiceDate.Format("2006-01-02"),
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToAppointmentListResponse converte uma lista de agendamentos do domínio para DTO
func ToAppointmentListResponse(appointments []*appointment.Appointment, total, page, size, totalPages int) *AppointmentListResponse {
	items := make([]AppointmentResponse, len(appointments))
	for i, a := range appointments {
		items[i] = *ToAppointmentResponse(a)
	}

	return &AppointmentListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}
}
