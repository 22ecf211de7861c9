package appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTime    = errors.New("horário inválido, use o formato HH:MM")
	ErrInvertedWindow = errors.New("horário final não pode ser anterior ao inicial")
)

// clockLayout é o formato de hora do dia armazenado (ex: "09:30")
const clockLayout = "15:04"

// Appointment representa um agendamento de serviço em uma janela de horário.
// StartTime e EndTime são horas do dia; o instante real é derivado junto com
// ServiceDate.
type Appointment struct {
	ID          string    `json:"id"`
	SaleID      *string   `json:"sale_id"` // Venda associada, opcional
	ServiceDate time.Time `json:"service_date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewAppointment cria um novo agendamento validando a janela de horário
func NewAppointment(saleID *string, serviceDate time.Time, startTime, endTime, description string) (*Appointment, error) {
	if err := validateWindow(startTime, endTime); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Appointment{
		ID:          uuid.New().String(),
		SaleID:      saleID,
		ServiceDate: serviceDate,
		StartTime:   startTime,
		EndTime:     endTime,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Reschedule atualiza a janela e a descrição do agendamento
func (a *Appointment) Reschedule(serviceDate time.Time, startTime, endTime, description string) error {
	if err := validateWindow(startTime, endTime); err != nil {
		return err
	}

	a.ServiceDate = serviceDate
	a.StartTime = startTime
	a.EndTime = endTime
	a.Description = description
	a.UpdatedAt = time.Now()

	return nil
}

// StartInstant retorna o instante de início combinando data e hora do dia
func (a *Appointment) StartInstant() (time.Time, error) {
	return combine(a.ServiceDate, a.StartTime)
}

// EndInstant retorna o instante de término combinando data e hora do dia
func (a *Appointment) EndInstant() (time.Time, error) {
	return combine(a.ServiceDate, a.EndTime)
}

func validateWindow(startTime, endTime string) error {
	start, err := time.Parse(clockLayout, startTime)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, startTime)
	}

	end, err := time.Parse(clockLayout, endTime)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, endTime)
	}

	if end.Before(start) {
		return ErrInvertedWindow
	}

	return nil
}

// combine monta o instante a partir da data do serviço e da hora do dia
func combine(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
