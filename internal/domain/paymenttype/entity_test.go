package paymenttype

import (
	"errors"
	"testing"
)

func TestNewPaymentType(t *testing.T) {
	tests := []struct {
		name       string
		ptName     string
		percentage float64
		wantErr    error
	}{
		{name: "válido sem desconto", ptName: "Efectivo", percentage: 0, wantErr: nil},
		{name: "válido com desconto", ptName: "Tarjeta", percentage: 10, wantErr: nil},
		{name: "limite superior", ptName: "Voucher", percentage: 100, wantErr: nil},
		{name: "nome vazio", ptName: "", percentage: 10, wantErr: ErrEmptyName},
		{name: "percentual negativo", ptName: "Tarjeta", percentage: -1, wantErr: ErrInvalidPercentage},
		{name: "percentual acima de cem", ptName: "Tarjeta", percentage: 100.5, wantErr: ErrInvalidPercentage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, err := NewPaymentType(tt.ptName, tt.percentage)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewPaymentType() error = %v, esperado %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if pt.ID == "" {
					t.Error("ID não foi gerado")
				}
				if pt.Percentage != tt.percentage {
					t.Errorf("Percentage = %v, esperado %v", pt.Percentage, tt.percentage)
				}
			}
		})
	}
}

func TestPaymentTypeUpdate(t *testing.T) {
	pt, err := NewPaymentType("Efectivo", 0)
	if err != nil {
		t.Fatalf("NewPaymentType() error = %v", err)
	}

	if err := pt.Update("Tarjeta", 150); !errors.Is(err, ErrInvalidPercentage) {
		t.Fatalf("Update() error = %v, esperado %v", err, ErrInvalidPercentage)
	}

	if err := pt.Update("Tarjeta", 12.5); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if pt.Name != "Tarjeta" || pt.Percentage != 12.5 {
		t.Errorf("Update() não aplicou os novos valores: %+v", pt)
	}
}
