package sale

import (
	"errors"
	"testing"
)

func TestCommissionForDeposit(t *testing.T) {
	tests := []struct {
		name       string
		deposit    float64
		percentage float64
		want       float64
	}{
		{
			name:       "abono zero gera comissão zero",
			deposit:    0,
			percentage: 10,
			want:       0,
		},
		{
			name:       "abono zero com percentual zero",
			deposit:    0,
			percentage: 0,
			want:       0,
		},
		{
			name:       "abono 500 com desconto de 10 por cento",
			deposit:    500,
			percentage: 10,
			want:       45, // round(500 * 0.9 * 0.10)
		},
		{
			name:       "sem desconto da forma de pagamento",
			deposit:    1000,
			percentage: 0,
			want:       100,
		},
		{
			name:       "desconto total zera a comissão",
			deposit:    1000,
			percentage: 100,
			want:       0,
		},
		{
			name:       "arredondamento para cima",
			deposit:    255,
			percentage: 0,
			want:       26, // round(25.5)
		},
		{
			name:       "arredondamento para baixo",
			deposit:    254,
			percentage: 0,
			want:       25, // round(25.4)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CommissionForDeposit(tt.deposit, tt.percentage)
			if got != tt.want {
				t.Errorf("CommissionForDeposit(%v, %v) = %v, want %v", tt.deposit, tt.percentage, got, tt.want)
			}
			if got < 0 {
				t.Errorf("CommissionForDeposit(%v, %v) = %v, comissão não pode ser negativa", tt.deposit, tt.percentage, got)
			}
		})
	}
}

func TestCommissionForUnresolvedPayment(t *testing.T) {
	if got := CommissionForUnresolvedPayment(); got != 0 {
		t.Errorf("CommissionForUnresolvedPayment() = %v, want 0", got)
	}
}

func TestNewSale(t *testing.T) {
	workerID := "worker-1"

	tests := []struct {
		name      string
		clientID  string
		items     []LineItem
		wantErr   error
		wantTotal float64
	}{
		{
			name:     "venda com dois itens soma os preços",
			clientID: "client-1",
			items: []LineItem{
				{ServiceID: "svc-1", SessionCount: 3, LinePrice: 1000},
				{ServiceID: "svc-2", SessionCount: 1, LinePrice: 2000},
			},
			wantTotal: 3000,
		},
		{
			name:     "venda sem itens é rejeitada",
			clientID: "client-1",
			items:    nil,
			wantErr:  ErrNoDetails,
		},
		{
			name:     "cliente vazio é rejeitado",
			clientID: "",
			items: []LineItem{
				{ServiceID: "svc-1", SessionCount: 1, LinePrice: 100},
			},
			wantErr: ErrEmptyClient,
		},
		{
			name:     "item sem serviço é rejeitado",
			clientID: "client-1",
			items: []LineItem{
				{ServiceID: "", SessionCount: 1, LinePrice: 100},
			},
			wantErr: ErrEmptyService,
		},
		{
			name:     "item sem sessões é rejeitado",
			clientID: "client-1",
			items: []LineItem{
				{ServiceID: "svc-1", SessionCount: 0, LinePrice: 100},
			},
			wantErr: ErrInvalidSessionCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, details, err := NewSale(tt.clientID, &workerID, "pt-1", "", tt.items)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewSale() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			if s.TotalPrice != tt.wantTotal {
				t.Errorf("TotalPrice = %v, want %v", s.TotalPrice, tt.wantTotal)
			}
			if len(details) != len(tt.items) {
				t.Errorf("len(details) = %d, want %d", len(details), len(tt.items))
			}
			if s.PrimaryServiceID != tt.items[0].ServiceID {
				t.Errorf("PrimaryServiceID = %q, want %q", s.PrimaryServiceID, tt.items[0].ServiceID)
			}
			for _, d := range details {
				if d.SaleID != s.ID {
					t.Errorf("detail SaleID = %q, want %q", d.SaleID, s.ID)
				}
			}
		})
	}
}

// Cenário completo de registro: dois itens de 1000 e 2000, abono de 500 e
// forma de pagamento com 10 por cento de desconto.
func TestSaleRegistrationAmounts(t *testing.T) {
	workerID := "worker-1"
	s, _, err := NewSale("client-1", &workerID, "pt-1", "promoção", []LineItem{
		{ServiceID: "svc-1", SessionCount: 4, LinePrice: 1000},
		{ServiceID: "svc-2", SessionCount: 2, LinePrice: 2000},
	})
	if err != nil {
		t.Fatalf("NewSale() error = %v", err)
	}

	if s.TotalPrice != 3000 {
		t.Errorf("TotalPrice = %v, want 3000", s.TotalPrice)
	}

	commission := CommissionForDeposit(500, 10)
	if commission != 45 {
		t.Errorf("comissão = %v, want 45", commission)
	}
}

func TestNewDeposit(t *testing.T) {
	if _, err := NewDeposit("sale-1", -10, "pt-1"); !errors.Is(err, ErrInvalidDepositAmount) {
		t.Errorf("NewDeposit() error = %v, want %v", err, ErrInvalidDepositAmount)
	}

	d, err := NewDeposit("sale-1", 500, "pt-1")
	if err != nil {
		t.Fatalf("NewDeposit() error = %v", err)
	}
	if d.SaleID != "sale-1" || d.Amount != 500 {
		t.Errorf("NewDeposit() = %+v", d)
	}
}
