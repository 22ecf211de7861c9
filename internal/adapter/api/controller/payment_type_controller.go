package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/dto"
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/repository"
	ptdomain "github.com/CrisMolina12/angelesWeb-sub000/internal/domain/paymenttype"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
)

// PaymentTypeController gerencia as requisições relacionadas a formas de pagamento
type PaymentTypeController struct {
	paymentTypeRepo ptdomain.Repository
	logger          logger.Logger
}

// NewPaymentTypeController cria uma nova instância de PaymentTypeController
func NewPaymentTypeController(paymentTypeRepo ptdomain.Repository, logger logger.Logger) *PaymentTypeController {
	return &PaymentTypeController{
		paymentTypeRepo: paymentTypeRepo,
		logger:          logger,
	}
}

// Create cria uma nova forma de pagamento
// @Summary Criar forma de pagamento
// @Description Cria uma forma de pagamento com percentual de desconto
// @Tags payment-types
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param paymentType body dto.PaymentTypeRequest true "Dados da forma de pagamento"
// @Success 201 {object} dto.PaymentTypeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /payment-types [post]
func (c *PaymentTypeController) Create(ctx *gin.Context) {
	var req dto.PaymentTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	paymentType, err := ptdomain.NewPaymentType(req.Name, req.Percentage)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar forma de pagamento", err.Error()))
		return
	}

	if err := c.paymentTypeRepo.Create(ctx, paymentType); err != nil {
		c.logger.Error("erro ao criar forma de pagamento no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar forma de pagamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentTypeResponse(paymentType))
}

// Get retorna uma forma de pagamento pelo ID
// @Summary Buscar forma de pagamento
// @Tags payment-types
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da forma de pagamento"
// @Success 200 {object} dto.PaymentTypeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /payment-types/{id} [get]
func (c *PaymentTypeController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	paymentType, err := c.paymentTypeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentTypeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "forma de pagamento não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar forma de pagamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar forma de pagamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentTypeResponse(paymentType))
}

// List retorna a lista de formas de pagamento
// @Summary Listar formas de pagamento
// @Tags payment-types
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.PaymentTypeListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /payment-types [get]
func (c *PaymentTypeController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	offset := (page - 1) * size

	paymentTypes, err := c.paymentTypeRepo.List(ctx, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar formas de pagamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar formas de pagamento", err.Error()))
		return
	}

	total, err := c.paymentTypeRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar formas de pagamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar formas de pagamento", err.Error()))
		return
	}

	totalPages := (total + size - 1) / size

	ctx.JSON(http.StatusOK, dto.ToPaymentTypeListResponse(paymentTypes, total, page, size, totalPages))
}

// Update atualiza uma forma de pagamento
// @Summary Atualizar forma de pagamento
// @Tags payment-types
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da forma de pagamento"
// @Param paymentType body dto.PaymentTypeRequest true "Dados da forma de pagamento"
// @Success 200 {object} dto.PaymentTypeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /payment-types/{id} [put]
func (c *PaymentTypeController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.PaymentTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	paymentType, err := c.paymentTypeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentTypeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "forma de pagamento não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar forma de pagamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar forma de pagamento", err.Error()))
		return
	}

	if err := paymentType.Update(req.Name, req.Percentage); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar forma de pagamento", err.Error()))
		return
	}

	if err := c.paymentTypeRepo.Update(ctx, paymentType); err != nil {
		c.logger.Error("erro ao atualizar forma de pagamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar forma de pagamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentTypeResponse(paymentType))
}

// Delete remove uma forma de pagamento
// @Summary Excluir forma de pagamento
// @Tags payment-types
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da forma de pagamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /payment-types/{id} [delete]
func (c *PaymentTypeController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.paymentTypeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPaymentTypeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "forma de pagamento não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir forma de pagamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir forma de pagamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("forma de pagamento excluída com sucesso", nil))
}
