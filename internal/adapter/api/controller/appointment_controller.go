package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/dto"
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/repository"
	appointmentdomain "github.com/CrisMolina12/angelesWeb-sub000/internal/domain/appointment"
	saledomain "github.com/CrisMolina12/angelesWeb-sub000/internal/domain/sale"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
)

const serviceDateLayout = "2006-01-02"

// AppointmentController gerencia as requisições relacionadas a agendamentos
type AppointmentController struct {
	appointmentRepo appointmentdomain.Repository
	saleRepo        saledomain.Repository
	logger          logger.Logger
}

// NewAppointmentController cria uma nova instância de AppointmentController
func NewAppointmentController(appointmentRepo appointmentdomain.Repository, saleRepo saledomain.Repository, logger logger.Logger) *AppointmentController {
	return &AppointmentController{
		appointmentRepo: appointmentRepo,
		saleRepo:        saleRepo,
		logger:          logger,
	}
}

// Create cria um novo agendamento
// @Summary Criar agendamento
// @Description Cria um agendamento, rejeitando janelas que sobrepõem agendamentos existentes
// @Tags appointments
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param appointment body dto.AppointmentRequest true "Dados do agendamento"
// @Success 201 {object} dto.AppointmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /appointments [post]
func (c *AppointmentController) Create(ctx *gin.Context) {
	var req dto.AppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	serviceDate, err := time.Parse(serviceDateLayout, req.ServiceDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data inválida, use o formato AAAA-MM-DD", err.Error()))
		return
	}

	if req.SaleID != nil {
		if _, err := c.saleRepo.FindByID(ctx, *req.SaleID); err != nil {
			if errors.Is(err, repository.ErrSaleNotFound) {
				ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "venda não encontrada", err.Error()))
				return
			}
			c.logger.Error("erro ao buscar venda do agendamento", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
			return
		}
	}

	a, err := appointmentdomain.NewAppointment(req.SaleID, serviceDate, req.StartTime, req.EndTime, req.Description)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar agendamento", err.Error()))
		return
	}

	if conflicted := c.checkConflict(ctx, a); conflicted {
		return
	}

	if err := c.appointmentRepo.Create(ctx, a); err != nil {
		c.logger.Error("erro ao criar agendamento no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar agendamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAppointmentResponse(a))
}

// checkConflict verifica a sobreposição da janela proposta contra os
// agendamentos existentes e responde 409 quando há conflito. Agendamentos
// com o mesmo ID do proposto são ignorados, o que permite reagendar sem
// conflitar consigo mesmo.
func (c *AppointmentController) checkConflict(ctx *gin.Context, proposed *appointmentdomain.Appointment) bool {
	existing, err := c.appointmentRepo.ListAll(ctx)
	if err != nil {
		c.logger.Error("erro ao listar agendamentos para verificação de conflito", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao verificar conflitos", err.Error()))
		return true
	}

	conflict, err := appointmentdomain.FindConflict(existing, proposed)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao verificar conflitos", err.Error()))
		return true
	}

	if conflict != nil {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(
			http.StatusConflict,
			"horário indisponível",
			"a janela conflita com o agendamento das "+conflict.StartTime+" às "+conflict.EndTime+" de "+conflict.ServiceDate.Format(serviceDateLayout),
		))
		return true
	}

	return false
}

// Get retorna um agendamento pelo ID
// @Summary Buscar agendamento
// @Tags appointments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do agendamento"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /appointments/{id} [get]
func (c *AppointmentController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	a, err := c.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "agendamento não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar agendamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar agendamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppointmentResponse(a))
}

// List retorna a lista de agendamentos. Com ?sale_id= retorna apenas os
// agendamentos da venda, ordenados por data e horário.
// @Summary Listar agendamentos
// @Tags appointments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param sale_id query string false "Filtro por venda"
// @Success 200 {object} dto.AppointmentListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /appointments [get]
func (c *AppointmentController) List(ctx *gin.Context) {
	if saleID := ctx.Query("sale_id"); saleID != "" {
		appointments, err := c.appointmentRepo.ListBySale(ctx, saleID)
		if err != nil {
			c.logger.Error("erro ao listar agendamentos da venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar agendamentos", err.Error()))
			return
		}

		total := len(appointments)
		ctx.JSON(http.StatusOK, dto.ToAppointmentListResponse(appointments, total, 1, total, 1))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	offset := (page - 1) * size

	appointments, err := c.appointmentRepo.List(ctx, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar agendamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar agendamentos", err.Error()))
		return
	}

	total, err := c.appointmentRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar agendamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar agendamentos", err.Error()))
		return
	}

	totalPages := (total + size - 1) / size

	ctx.JSON(http.StatusOK, dto.ToAppointmentListResponse(appointments, total, page, size, totalPages))
}

// Update reagenda um agendamento
// @Summary Atualizar agendamento
// @Description Atualiza a janela do agendamento, rejeitando sobreposição com outros agendamentos
// @Tags appointments
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do agendamento"
// @Param appointment body dto.AppointmentRequest true "Dados do agendamento"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /appointments/{id} [put]
func (c *AppointmentController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.AppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	serviceDate, err := time.Parse(serviceDateLayout, req.ServiceDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data inválida, use o formato AAAA-MM-DD", err.Error()))
		return
	}

	a, err := c.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "agendamento não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar agendamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar agendamento", err.Error()))
		return
	}

	if err := a.Reschedule(serviceDate, req.StartTime, req.EndTime, req.Description); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao reagendar", err.Error()))
		return
	}

	if conflicted := c.checkConflict(ctx, a); conflicted {
		return
	}

	if err := c.appointmentRepo.Update(ctx, a); err != nil {
		c.logger.Error("erro ao atualizar agendamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar agendamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppointmentResponse(a))
}

// Delete remove um agendamento
// @Summary Excluir agendamento
// @Tags appointments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do agendamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /appointments/{id} [delete]
func (c *AppointmentController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "agendamento não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir agendamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir agendamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("agendamento excluído com sucesso", nil))
}
