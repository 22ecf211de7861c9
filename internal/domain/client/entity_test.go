package client

import (
	"errors"
	"testing"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name       string
		clientName string
		phone      string
		nationalID string
		wantErr    error
	}{
		{name: "válido", clientName: "María Pérez", phone: "+56911111111", nationalID: "12345678-9", wantErr: nil},
		{name: "telefone opcional", clientName: "María Pérez", phone: "", nationalID: "12345678-9", wantErr: nil},
		{name: "nome vazio", clientName: "", phone: "+56911111111", nationalID: "12345678-9", wantErr: ErrEmptyName},
		{name: "documento vazio", clientName: "María Pérez", phone: "+56911111111", nationalID: "", wantErr: ErrEmptyNationalID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.clientName, tt.phone, tt.nationalID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewClient() error = %v, esperado %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && c.ID == "" {
				t.Error("ID não foi gerado")
			}
		})
	}
}

func TestClientUpdate(t *testing.T) {
	c, err := NewClient("María Pérez", "+56911111111", "12345678-9")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if err := c.Update("", "+56922222222", "12345678-9"); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("Update() error = %v, esperado %v", err, ErrEmptyName)
	}

	if err := c.Update("María González", "+56922222222", "98765432-1"); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if c.Name != "María González" || c.NationalID != "98765432-1" {
		t.Errorf("Update() não aplicou os novos valores: %+v", c)
	}
}
