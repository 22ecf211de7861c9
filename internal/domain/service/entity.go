package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName           = errors.New("nome não pode ser vazio")
	ErrInvalidSessionCount = errors.New("quantidade de sessões deve ser maior que zero")
)

// Status representa o estado do serviço no catálogo
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Service representa um serviço oferecido pelo salão
type Service struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SessionCount int       `json:"session_count"` // Sessões incluídas no serviço
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewService cria um novo serviço
func NewService(name string, sessionCount int) (*Service, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if sessionCount < 1 {
		return nil, ErrInvalidSessionCount
	}

	now := time.Now()
	return &Service{
		ID:           uuid.New().String(),
		Name:         name,
		SessionCount: sessionCount,
		Status:       StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// IsActive verifica se o serviço está ativo
func (s *Service) IsActive() bool {
	return s.Status == StatusActive
}

// Activate ativa o serviço
func (s *Service) Activate() {
	s.Status = StatusActive
	s.UpdatedAt = time.Now()
}

// Deactivate desativa o serviço (some do seletor de novas vendas)
func (s *Service) Deactivate() {
	s.Status = StatusInactive
	s.UpdatedAt = time.Now()
}

// Update atualiza os dados do serviço
func (s *Service) Update(name string, sessionCount int) error {
	if name == "" {
		return ErrEmptyName
	}

	if sessionCount < 1 {
		return ErrInvalidSessionCount
	}

	s.Name = name
	s.SessionCount = sessionCount
	s.UpdatedAt = time.Now()

	return nil
}
