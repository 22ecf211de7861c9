package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/dto"
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/repository"
	servicedomain "github.com/CrisMolina12/angelesWeb-sub000/internal/domain/service"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ServiceController gerencia as requisições relacionadas ao catálogo de serviços
type ServiceController struct {
	serviceRepo servicedomain.Repository
	logger      logger.Logger
}

// NewServiceController cria uma nova instância de ServiceController
func NewServiceController(serviceRepo servicedomain.Repository, logger logger.Logger) *ServiceController {
	return &ServiceController{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Create cria um novo serviço
// @Summary Criar serviço
// @Description Adiciona um serviço ao catálogo
// @Tags services
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param service body dto.ServiceRequest true "Dados do serviço"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /services [post]
func (c *ServiceController) Create(ctx *gin.Context) {
	var req dto.ServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	service, err := servicedomain.NewService(req.Name, req.SessionCount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar serviço", err.Error()))
		return
	}

	if err := c.serviceRepo.Create(ctx, service); err != nil {
		c.logger.Error("erro ao criar serviço no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar serviço", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToServiceResponse(service))
}

// Get retorna um serviço pelo ID
// @Summary Buscar serviço
// @Description Retorna os dados de um serviço pelo ID
// @Tags services
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do serviço"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /services/{id} [get]
func (c *ServiceController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	service, err := c.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "serviço não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar serviço", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceResponse(service))
}

// List retorna a lista de serviços. Com ?status=active retorna apenas os
// serviços elegíveis para novas vendas.
// @Summary Listar serviços
// @Description Retorna a lista de serviços paginada, com filtro opcional por status
// @Tags services
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param status query string false "Filtro por status (active|inactive)"
// @Success 200 {object} dto.ServiceListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /services [get]
func (c *ServiceController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	offset := (page - 1) * size

	var services []*servicedomain.Service
	var err error

	status := ctx.Query("status")
	if status != "" {
		services, err = c.serviceRepo.FindByStatus(ctx, servicedomain.Status(status), size, offset)
	} else {
		services, err = c.serviceRepo.List(ctx, size, offset)
	}

	if err != nil {
		c.logger.Error("erro ao listar serviços", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar serviços", err.Error()))
		return
	}

	total, err := c.serviceRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar serviços", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar serviços", err.Error()))
		return
	}

	totalPages := (total + size - 1) / size

	ctx.JSON(http.StatusOK, dto.ToServiceListResponse(services, total, page, size, totalPages))
}

// Update atualiza um serviço
// @Summary Atualizar serviço
// @Description Atualiza os dados de um serviço do catálogo
// @Tags services
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do serviço"
// @Param service body dto.ServiceRequest true "Dados do serviço"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /services/{id} [put]
func (c *ServiceController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	service, err := c.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "serviço não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar serviço", err.Error()))
		return
	}

	if err := service.Update(req.Name, req.SessionCount); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar dados do serviço", err.Error()))
		return
	}

	if err := c.serviceRepo.Update(ctx, service); err != nil {
		c.logger.Error("erro ao atualizar serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar serviço", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceResponse(service))
}

// UpdateStatus ativa ou desativa um serviço
// @Summary Atualizar status do serviço
// @Description Ativa ou desativa um serviço do catálogo
// @Tags services
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do serviço"
// @Param status body dto.ServiceStatusRequest true "Novo status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /services/{id}/status [patch]
func (c *ServiceController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ServiceStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.serviceRepo.UpdateStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "serviço não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar status do serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar status", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("status atualizado com sucesso", nil))
}

// Delete remove um serviço
// @Summary Excluir serviço
// @Description Remove um serviço do catálogo
// @Tags services
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do serviço"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /services/{id} [delete]
func (c *ServiceController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "serviço não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir serviço", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("serviço excluído com sucesso", nil))
}
