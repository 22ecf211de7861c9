package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/dto"
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/repository"
	clientdomain "github.com/CrisMolina12/angelesWeb-sub000/internal/domain/client"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ClientController gerencia as requisições relacionadas a clientes
type ClientController struct {
	clientRepo clientdomain.Repository
	logger     logger.Logger
}

// NewClientController cria uma nova instância de ClientController
func NewClientController(clientRepo clientdomain.Repository, logger logger.Logger) *ClientController {
	return &ClientController{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Create cria um novo cliente
// @Summary Registrar cliente
// @Description Registra um novo cliente no salão
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param client body dto.ClientRequest true "Dados do cliente"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients [post]
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	client, err := clientdomain.NewClient(req.Name, req.Phone, req.NationalID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar cliente", err.Error()))
		return
	}

	if err := c.clientRepo.Create(ctx, client); err != nil {
		if errors.Is(err, repository.ErrClientDuplicateNationalID) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "documento já registrado", err.Error()))
			return
		}
		c.logger.Error("erro ao criar cliente no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// Get retorna um cliente pelo ID
// @Summary Buscar cliente
// @Description Retorna os dados de um cliente pelo ID
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id} [get]
func (c *ClientController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	client, err := c.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// GetByNationalID retorna um cliente pelo documento de identidade
// @Summary Buscar cliente por documento
// @Description Retorna os dados de um cliente pelo documento de identidade
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param nationalId path string true "Documento do cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/national-id/{nationalId} [get]
func (c *ClientController) GetByNationalID(ctx *gin.Context) {
	nationalID := ctx.Param("nationalId")

	client, err := c.clientRepo.FindByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// List retorna a lista de clientes
// @Summary Listar clientes
// @Description Retorna a lista de clientes paginada
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.ClientListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients [get]
func (c *ClientController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	offset := (page - 1) * size

	clients, err := c.clientRepo.List(ctx, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar clientes", err.Error()))
		return
	}

	total, err := c.clientRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar clientes", err.Error()))
		return
	}

	totalPages := (total + size - 1) / size

	ctx.JSON(http.StatusOK, dto.ToClientListResponse(clients, total, page, size, totalPages))
}

// Update atualiza um cliente
// @Summary Atualizar cliente
// @Description Atualiza os dados de um cliente
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Param client body dto.ClientRequest true "Dados do cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id} [put]
func (c *ClientController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	client, err := c.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	if err := client.Update(req.Name, req.Phone, req.NationalID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar dados do cliente", err.Error()))
		return
	}

	if err := c.clientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, repository.ErrClientDuplicateNationalID) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "documento já registrado", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// Delete remove um cliente
// @Summary Excluir cliente
// @Description Remove um cliente do sistema
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id} [delete]
func (c *ClientController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("cliente excluído com sucesso", nil))
}
