// Package report contém as agregações puras usadas nos painéis: totais,
// somas por mês e somas por trabalhador. Todas as funções operam sobre
// coleções já carregadas e são idempotentes.
package report

import (
	"sort"
	"time"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/domain/appointment"
	"github.com/CrisMolina12/angelesWeb-sub000/internal/domain/sale"
)

// UnassignedWorker é o balde sentinela para vendas sem trabalhador
const UnassignedWorker = "unassigned"

// MonthlyTotal é a soma de vendas de um mês
type MonthlyTotal struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

// WorkerTotal é a soma de vendas de um trabalhador
type WorkerTotal struct {
	WorkerID string  `json:"worker_id"`
	Total    float64 `json:"total"`
}

// EmployeeCommissionTotal é a soma de comissões de um funcionário
type EmployeeCommissionTotal struct {
	EmployeeID string  `json:"employee_id"`
	Total      float64 `json:"total"`
}

// TotalSales soma o preço de todas as vendas com trabalhador atribuído
func TotalSales(sales []*sale.Sale) float64 {
	var total float64
	for _, s := range sales {
		if s.WorkerID == nil {
			continue
		}
		total += s.TotalPrice
	}
	return total
}

// AverageSaleValue calcula o valor médio das vendas com trabalhador
// atribuído. Conjunto vazio resulta em zero, nunca divisão por zero.
func AverageSaleValue(sales []*sale.Sale) float64 {
	var total float64
	var count int
	for _, s := range sales {
		if s.WorkerID == nil {
			continue
		}
		total += s.TotalPrice
		count++
	}

	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// MonthlySales agrupa os agendamentos por mês e ano da data do serviço,
// somando o preço da venda de cada agendamento. Agendamento sem venda
// resolvível não contribui.
func MonthlySales(appointments []*appointment.Appointment, sales []*sale.Sale) []MonthlyTotal {
	prices := make(map[string]float64, len(sales))
	for _, s := range sales {
		prices[s.ID] = s.TotalPrice
	}

	type yearMonth struct {
		year  int
		month time.Month
	}

	totals := make(map[yearMonth]float64)
	for _, a := range appointments {
		if a.SaleID == nil {
			continue
		}
		price, ok := prices[*a.SaleID]
		if !ok {
			continue
		}

		key := yearMonth{year: a.ServiceDate.Year(), month: a.ServiceDate.Month()}
		totals[key] += price
	}

	result := make([]MonthlyTotal, 0, len(totals))
	for key, total := range totals {
		result = append(result, MonthlyTotal{
			Year:  key.year,
			Month: int(key.month),
			Total: total,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year < result[j].Year
		}
		return result[i].Month < result[j].Month
	})

	return result
}

// SalesByWorker agrupa as vendas por trabalhador somando o preço. Vendas
// sem trabalhador caem no balde sentinela UnassignedWorker.
func SalesByWorker(sales []*sale.Sale) []WorkerTotal {
	totals := make(map[string]float64)
	for _, s := range sales {
		workerID := UnassignedWorker
		if s.WorkerID != nil {
			workerID = *s.WorkerID
		}
		totals[workerID] += s.TotalPrice
	}

	result := make([]WorkerTotal, 0, len(totals))
	for workerID, total := range totals {
		result = append(result, WorkerTotal{WorkerID: workerID, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].WorkerID < result[j].WorkerID
	})

	return result
}

// CommissionsByEmployee agrupa as comissões por funcionário somando o valor,
// ordenadas da maior para a menor soma para exibição.
func CommissionsByEmployee(commissions []sale.Commission) []EmployeeCommissionTotal {
	totals := make(map[string]float64)
	for _, c := range commissions {
		totals[c.EmployeeID] += c.Amount
	}

	result := make([]EmployeeCommissionTotal, 0, len(totals))
	for employeeID, total := range totals {
		result = append(result, EmployeeCommissionTotal{EmployeeID: employeeID, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].EmployeeID < result[j].EmployeeID
	})

	return result
}
