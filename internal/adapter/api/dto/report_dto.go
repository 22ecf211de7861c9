package dto

import (
	"github.com/CrisMolina12/angelesWeb-sub000/internal/domain/report"
)

// SummaryResponse representa os totais do painel
type SummaryResponse struct {
	TotalSales       float64 `json:"total_sales"`
	AverageSaleValue float64 `json:"average_sale_value"`
	SaleCount        int     `json:"sale_count"`
	AppointmentCount int     `json:"appointment_count"`
	ClientCount      int     `json:"client_count"`
}

// MonthlySalesResponse representa as vendas agrupadas por mês
type MonthlySalesResponse struct {
	Items []report.MonthlyTotal `json:"items"`
}

// SalesByWorkerResponse representa as vendas agrupadas por trabalhador
type SalesByWorkerResponse struct {
	Items []report.WorkerTotal `json:"items"`
}

// CommissionsByEmployeeResponse representa as comissões agrupadas por funcionário
type CommissionsByEmployeeResponse struct {
	Items []report.EmployeeCommissionTotal `json:"items"`
}
