package service

import (
	"errors"
	"testing"
)

func TestNewService(t *testing.T) {
	tests := []struct {
		name         string
		serviceName  string
		sessionCount int
		wantErr      error
	}{
		{name: "válido", serviceName: "Manicure", sessionCount: 1, wantErr: nil},
		{name: "pacote de sessões", serviceName: "Depilación láser", sessionCount: 6, wantErr: nil},
		{name: "nome vazio", serviceName: "", sessionCount: 1, wantErr: ErrEmptyName},
		{name: "sessões zero", serviceName: "Manicure", sessionCount: 0, wantErr: ErrInvalidSessionCount},
		{name: "sessões negativas", serviceName: "Manicure", sessionCount: -1, wantErr: ErrInvalidSessionCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewService(tt.serviceName, tt.sessionCount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewService() error = %v, esperado %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && s.Status != StatusActive {
				t.Errorf("Status = %v, esperado %v", s.Status, StatusActive)
			}
		})
	}
}

func TestServiceStatusTransitions(t *testing.T) {
	s, err := NewService("Manicure", 1)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	if !s.IsActive() {
		t.Fatal("serviço novo deveria estar ativo")
	}

	s.Deactivate()
	if s.IsActive() {
		t.Error("Deactivate() não desativou o serviço")
	}

	s.Activate()
	if !s.IsActive() {
		t.Error("Activate() não reativou o serviço")
	}
}
