package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/dto"
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/repository"
	clientdomain "github.com/CrisMolina12/angelesWeb-sub000/internal/domain/client"
	ptdomain "github.com/CrisMolina12/angelesWeb-sub000/internal/domain/paymenttype"
	saledomain "github.com/CrisMolina12/angelesWeb-sub000/internal/domain/sale"
	servicedomain "github.com/CrisMolina12/angelesWeb-sub000/internal/domain/service"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/auth"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	saleRepo        saledomain.Repository
	clientRepo      clientdomain.Repository
	serviceRepo     servicedomain.Repository
	paymentTypeRepo ptdomain.Repository
	logger          logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(
	saleRepo saledomain.Repository,
	clientRepo clientdomain.Repository,
	serviceRepo servicedomain.Repository,
	paymentTypeRepo ptdomain.Repository,
	logger logger.Logger,
) *SaleController {
	return &SaleController{
		saleRepo:        saleRepo,
		clientRepo:      clientRepo,
		serviceRepo:     serviceRepo,
		paymentTypeRepo: paymentTypeRepo,
		logger:          logger,
	}
}

// Create registra uma nova venda
// @Summary Registrar venda
// @Description Registra uma venda com itens de serviço, abono inicial opcional e a comissão derivada
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	// A venda só pode ser registrada para um cliente já cadastrado
	if _, err := c.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "cliente não registrado", saledomain.ErrClientNotRegistered.Error()))
			return
		}
		c.logger.Error("erro ao verificar cliente da venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao verificar cliente", err.Error()))
		return
	}

	items := make([]saledomain.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		service, err := c.serviceRepo.FindByID(ctx, item.ServiceID)
		if err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "serviço não encontrado", saledomain.ErrServiceNotResolvable.Error()))
				return
			}
			c.logger.Error("erro ao buscar serviço da venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar serviço", err.Error()))
			return
		}

		if service.Status != servicedomain.StatusActive {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "serviço inativo", "o serviço "+service.Name+" não está disponível para novas vendas"))
			return
		}

		items = append(items, saledomain.LineItem{
			ServiceID:    item.ServiceID,
			SessionCount: item.SessionCount,
			LinePrice:    item.LinePrice,
		})
	}

	var workerID *string
	if id := auth.CurrentUserID(ctx); id != "" {
		workerID = &id
	}

	s, details, err := saledomain.NewSale(req.ClientID, workerID, req.PaymentTypeID, req.Description, items)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar venda", err.Error()))
		return
	}

	var deposit *saledomain.Deposit
	if req.DepositAmount > 0 {
		deposit, err = saledomain.NewDeposit(s.ID, req.DepositAmount, req.PaymentTypeID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar abono", err.Error()))
			return
		}
	}

	// Toda venda gera exatamente uma comissão; sem abono o valor é zero
	var commission *saledomain.Commission
	if workerID != nil {
		amount := c.commissionFor(ctx, req.DepositAmount, req.PaymentTypeID)
		commission = saledomain.NewCommission(s.ID, *workerID, amount)
	}

	if err := c.saleRepo.CreateGroup(ctx, s, details, deposit, commission); err != nil {
		c.logger.Error("erro ao registrar venda no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar venda", err.Error()))
		return
	}

	resp := dto.ToSaleResponse(s)
	resp.Details = dto.ToSaleDetailResponses(details)
	if deposit != nil {
		resp.Deposit = dto.ToDepositResponse(deposit)
	}
	if commission != nil {
		resp.Commission = dto.ToCommissionResponse(commission)
	}

	ctx.JSON(http.StatusCreated, resp)
}

// commissionFor calcula a comissão de um abono. Forma de pagamento que não
// existe mais zera a comissão em vez de falhar o registro da venda.
func (c *SaleController) commissionFor(ctx *gin.Context, depositAmount float64, paymentTypeID string) float64 {
	paymentType, err := c.paymentTypeRepo.FindByID(ctx, paymentTypeID)
	if err != nil {
		if !errors.Is(err, repository.ErrPaymentTypeNotFound) {
			c.logger.Error("erro ao resolver forma de pagamento da comissão", "error", err)
		}
		return saledomain.CommissionForUnresolvedPayment()
	}

	return saledomain.CommissionForDeposit(depositAmount, paymentType.Percentage)
}

// Get retorna uma venda pelo ID, com itens e abonos
// @Summary Buscar venda
// @Description Retorna os dados de uma venda com seus itens de serviço
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	s, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	details, err := c.saleRepo.FindDetails(ctx, id)
	if err != nil {
		c.logger.Error("erro ao buscar itens da venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar itens da venda", err.Error()))
		return
	}

	resp := dto.ToSaleResponse(s)
	resp.Details = dto.ToSaleDetailResponses(details)

	ctx.JSON(http.StatusOK, resp)
}

// List retorna a lista de vendas. Trabalhadores veem apenas as próprias
// vendas; administradores veem todas.
// @Summary Listar vendas
// @Description Retorna a lista de vendas paginada, mais recentes primeiro
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.SaleListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	offset := (page - 1) * size

	var sales []*saledomain.Sale
	var err error

	role, _ := ctx.Get("user_role")
	if role == "worker" {
		sales, err = c.saleRepo.ListByWorker(ctx, auth.CurrentUserID(ctx), size, offset)
	} else {
		sales, err = c.saleRepo.List(ctx, size, offset)
	}

	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	total, err := c.saleRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar vendas", err.Error()))
		return
	}

	totalPages := (total + size - 1) / size

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, total, page, size, totalPages))
}

// AddDeposit registra um novo abono para a venda
// @Summary Registrar abono
// @Description Registra um pagamento parcial contra a venda e a comissão derivada dele
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Param deposit body dto.DepositRequest true "Dados do abono"
// @Success 201 {object} dto.DepositResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id}/deposits [post]
func (c *SaleController) AddDeposit(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.DepositRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	deposit, err := saledomain.NewDeposit(s.ID, req.Amount, req.PaymentTypeID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar abono", err.Error()))
		return
	}

	var commission *saledomain.Commission
	if s.WorkerID != nil {
		amount := c.commissionFor(ctx, req.Amount, req.PaymentTypeID)
		commission = saledomain.NewCommission(s.ID, *s.WorkerID, amount)
	}

	if err := c.saleRepo.AddDeposit(ctx, deposit, commission); err != nil {
		c.logger.Error("erro ao registrar abono", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar abono", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDepositResponse(deposit))
}

// ListDeposits retorna os abonos de uma venda
// @Summary Listar abonos da venda
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {array} dto.DepositResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id}/deposits [get]
func (c *SaleController) ListDeposits(ctx *gin.Context) {
	id := ctx.Param("id")

	if _, err := c.saleRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	deposits, err := c.saleRepo.FindDeposits(ctx, id)
	if err != nil {
		c.logger.Error("erro ao buscar abonos da venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar abonos", err.Error()))
		return
	}

	items := make([]dto.DepositResponse, len(deposits))
	for i := range deposits {
		items[i] = *dto.ToDepositResponse(&deposits[i])
	}

	ctx.JSON(http.StatusOK, items)
}

// Delete remove uma venda e tudo que depende dela
// @Summary Excluir venda
// @Description Remove a venda, seus itens, abonos, comissões e os agendamentos vinculados a ela
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [delete]
func (c *SaleController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.saleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("venda excluída com sucesso", nil))
}
