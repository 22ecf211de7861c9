package controller

import (
	"net/http"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/dto"
	appointmentdomain "github.com/CrisMolina12/angelesWeb-sub000/internal/domain/appointment"
	clientdomain "github.com/CrisMolina12/angelesWeb-sub000/internal/domain/client"
	"github.com/CrisMolina12/angelesWeb-sub000/internal/domain/report"
	saledomain "github.com/CrisMolina12/angelesWeb-sub000/internal/domain/sale"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ReportController gerencia as requisições dos painéis de relatório
type ReportController struct {
	saleRepo        saledomain.Repository
	appointmentRepo appointmentdomain.Repository
	clientRepo      clientdomain.Repository
	logger          logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(
	saleRepo saledomain.Repository,
	appointmentRepo appointmentdomain.Repository,
	clientRepo clientdomain.Repository,
	logger logger.Logger,
) *ReportController {
	return &ReportController{
		saleRepo:        saleRepo,
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		logger:          logger,
	}
}

// Summary retorna os totais do painel
// @Summary Resumo do painel
// @Description Retorna o total e a média de vendas com trabalhador atribuído, e as contagens gerais
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SummaryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/summary [get]
func (c *ReportController) Summary(ctx *gin.Context) {
	sales, err := c.saleRepo.ListAll(ctx)
	if err != nil {
		c.logger.Error("erro ao carregar vendas para o resumo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao carregar vendas", err.Error()))
		return
	}

	saleCount, err := c.saleRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar vendas", err.Error()))
		return
	}

	appointmentCount, err := c.appointmentRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar agendamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar agendamentos", err.Error()))
		return
	}

	clientCount, err := c.clientRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.SummaryResponse{
		TotalSales:       report.TotalSales(sales),
		AverageSaleValue: report.AverageSaleValue(sales),
		SaleCount:        saleCount,
		AppointmentCount: appointmentCount,
		ClientCount:      clientCount,
	})
}

// MonthlySales retorna as vendas agrupadas por mês
// @Summary Vendas por mês
// @Description Agrupa os agendamentos por mês da data do serviço, somando o preço da venda de cada um
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.MonthlySalesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/monthly-sales [get]
func (c *ReportController) MonthlySales(ctx *gin.Context) {
	appointments, err := c.appointmentRepo.ListAll(ctx)
	if err != nil {
		c.logger.Error("erro ao carregar agendamentos do relatório", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao carregar agendamentos", err.Error()))
		return
	}

	sales, err := c.saleRepo.ListAll(ctx)
	if err != nil {
		c.logger.Error("erro ao carregar vendas do relatório", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao carregar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.MonthlySalesResponse{
		Items: report.MonthlySales(appointments, sales),
	})
}

// SalesByWorker retorna as vendas agrupadas por trabalhador
// @Summary Vendas por trabalhador
// @Description Agrupa as vendas por trabalhador; vendas sem trabalhador caem no balde "unassigned"
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SalesByWorkerResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sales-by-worker [get]
func (c *ReportController) SalesByWorker(ctx *gin.Context) {
	sales, err := c.saleRepo.ListAll(ctx)
	if err != nil {
		c.logger.Error("erro ao carregar vendas do relatório", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao carregar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.SalesByWorkerResponse{
		Items: report.SalesByWorker(sales),
	})
}

// CommissionsByEmployee retorna as comissões agrupadas por funcionário
// @Summary Comissões por funcionário
// @Description Agrupa as comissões por funcionário, da maior soma para a menor
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.CommissionsByEmployeeResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/commissions [get]
func (c *ReportController) CommissionsByEmployee(ctx *gin.Context) {
	commissions, err := c.saleRepo.ListCommissions(ctx)
	if err != nil {
		c.logger.Error("erro ao carregar comissões do relatório", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao carregar comissões", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.CommissionsByEmployeeResponse{
		Items: report.CommissionsByEmployee(commissions),
	})
}
