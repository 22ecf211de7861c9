package report

import (
	"testing"
	"time"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/domain/appointment"
	"github.com/CrisMolina12/angelesWeb-sub000/internal/domain/sale"
)

func saleWith(id string, workerID *string, price float64) *sale.Sale {
	return &sale.Sale{ID: id, WorkerID: workerID, TotalPrice: price}
}

func strPtr(s string) *string { return &s }

func TestTotalSales(t *testing.T) {
	sales := []*sale.Sale{
		saleWith("s1", strPtr("w1"), 100),
		saleWith("s2", strPtr("w2"), 200),
		saleWith("s3", nil, 50), // sem trabalhador, fora do total
	}

	if got := TotalSales(sales); got != 300 {
		t.Errorf("TotalSales() = %v, want 300", got)
	}
}

func TestAverageSaleValue(t *testing.T) {
	tests := []struct {
		name  string
		sales []*sale.Sale
		want  float64
	}{
		{
			name:  "conjunto vazio resulta em zero",
			sales: nil,
			want:  0,
		},
		{
			name: "média de três vendas",
			sales: []*sale.Sale{
				saleWith("s1", strPtr("w1"), 100),
				saleWith("s2", strPtr("w1"), 200),
				saleWith("s3", strPtr("w2"), 300),
			},
			want: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AverageSaleValue(tt.sales); got != tt.want {
				t.Errorf("AverageSaleValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSalesByWorker(t *testing.T) {
	sales := []*sale.Sale{
		saleWith("s1", strPtr("w1"), 50),
		saleWith("s2", strPtr("w1"), 30),
		saleWith("s3", nil, 20),
	}

	got := SalesByWorker(sales)
	if len(got) != 2 {
		t.Fatalf("len(SalesByWorker()) = %d, want 2", len(got))
	}

	totals := make(map[string]float64, len(got))
	for _, w := range got {
		totals[w.WorkerID] = w.Total
	}

	if totals["w1"] != 80 {
		t.Errorf("total de w1 = %v, want 80", totals["w1"])
	}
	if totals[UnassignedWorker] != 20 {
		t.Errorf("total de %q = %v, want 20", UnassignedWorker, totals[UnassignedWorker])
	}
}

func TestMonthlySales(t *testing.T) {
	march := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)

	sales := []*sale.Sale{
		saleWith("s1", strPtr("w1"), 1000),
		saleWith("s2", strPtr("w1"), 500),
	}

	appointments := []*appointment.Appointment{
		{ID: "a1", SaleID: strPtr("s1"), ServiceDate: march},
		{ID: "a2", SaleID: strPtr("s2"), ServiceDate: march},
		{ID: "a3", SaleID: strPtr("s1"), ServiceDate: april},
		{ID: "a4", SaleID: strPtr("orphan"), ServiceDate: april}, // venda não resolvível
		{ID: "a5", SaleID: nil, ServiceDate: april},
	}

	got := MonthlySales(appointments, sales)
	if len(got) != 2 {
		t.Fatalf("len(MonthlySales()) = %d, want 2", len(got))
	}

	if got[0].Year != 2024 || got[0].Month != 3 || got[0].Total != 1500 {
		t.Errorf("março = %+v, want {2024 3 1500}", got[0])
	}
	if got[1].Year != 2024 || got[1].Month != 4 || got[1].Total != 1000 {
		t.Errorf("abril = %+v, want {2024 4 1000}", got[1])
	}
}

func TestCommissionsByEmployee(t *testing.T) {
	commissions := []sale.Commission{
		{EmployeeID: "e1", Amount: 45},
		{EmployeeID: "e2", Amount: 100},
		{EmployeeID: "e1", Amount: 30},
	}

	got := CommissionsByEmployee(commissions)
	if len(got) != 2 {
		t.Fatalf("len(CommissionsByEmployee()) = %d, want 2", len(got))
	}

	// Ordenado pela maior soma
	if got[0].EmployeeID != "e2" || got[0].Total != 100 {
		t.Errorf("primeiro = %+v, want {e2 100}", got[0])
	}
	if got[1].EmployeeID != "e1" || got[1].Total != 75 {
		t.Errorf("segundo = %+v, want {e1 75}", got[1])
	}
}

// Os folds são independentes de ordem: reexecutar com a entrada embaralhada
// produz o mesmo resultado.
func TestFoldsAreOrderIndependent(t *testing.T) {
	sales := []*sale.Sale{
		saleWith("s1", strPtr("w1"), 100),
		saleWith("s2", strPtr("w2"), 200),
		saleWith("s3", nil, 300),
	}
	reversed := []*sale.Sale{sales[2], sales[1], sales[0]}

	if TotalSales(sales) != TotalSales(reversed) {
		t.Error("TotalSales depende da ordem de entrada")
	}
	if AverageSaleValue(sales) != AverageSaleValue(reversed) {
		t.Error("AverageSaleValue depende da ordem de entrada")
	}

	a := SalesByWorker(sales)
	b := SalesByWorker(reversed)
	if len(a) != len(b) {
		t.Fatal("SalesByWorker depende da ordem de entrada")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("SalesByWorker[%d]: %+v != %+v", i, a[i], b[i])
		}
	}
}
