package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/dto"
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/repository"
	userdomain "github.com/CrisMolina12/angelesWeb-sub000/internal/domain/user"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
)

// UserController gerencia as requisições relacionadas a usuários
type UserController struct {
	userRepo userdomain.Repository
	logger   logger.Logger
}

// NewUserController cria uma nova instância de UserController
func NewUserController(userRepo userdomain.Repository, logger logger.Logger) *UserController {
	return &UserController{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateAdminUser cria o primeiro administrador do sistema. Só funciona
// enquanto nenhum administrador existir.
// @Summary Criar administrador inicial
// @Description Cria o primeiro usuário administrador quando o sistema ainda não tem nenhum
// @Tags setup
// @Accept json
// @Produce json
// @Param admin body dto.AdminSetupRequest true "Dados do administrador"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /setup/admin [post]
func (c *UserController) CreateAdminUser(ctx *gin.Context) {
	var req dto.AdminSetupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	admins, err := c.userRepo.CountAdmins(ctx)
	if err != nil {
		c.logger.Error("erro ao contar administradores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao verificar administradores", err.Error()))
		return
	}

	if admins > 0 {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "sistema já configurado", "já existe um administrador cadastrado"))
		return
	}

	u, err := userdomain.NewUser(req.Email, req.Name, req.Password, userdomain.RoleAdmin)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar administrador", err.Error()))
		return
	}

	if err := c.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUserDuplicateEmail) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "email já registrado", err.Error()))
			return
		}
		c.logger.Error("erro ao criar administrador no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar administrador", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(u))
}

// Create cria um novo usuário
// @Summary Criar usuário
// @Description Cria um usuário com papel admin ou worker
// @Tags users
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param user body dto.UserRequest true "Dados do usuário"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.UserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	u, err := userdomain.NewUser(req.Email, req.Name, req.Password, req.Role)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar usuário", err.Error()))
		return
	}
	u.CommissionPercent = req.CommissionPercent

	if err := c.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUserDuplicateEmail) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "email já registrado", err.Error()))
			return
		}
		c.logger.Error("erro ao criar usuário no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(u))
}

// Get retorna um usuário pelo ID
// @Summary Buscar usuário
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	u, err := c.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "usuário não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar usuário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// List retorna a lista de usuários
// @Summary Listar usuários
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.UserListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [get]
func (c *UserController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	offset := (page - 1) * size

	users, err := c.userRepo.List(ctx, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar usuários", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar usuários", err.Error()))
		return
	}

	total, err := c.userRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar usuários", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar usuários", err.Error()))
		return
	}

	totalPages := (total + size - 1) / size

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(users, total, page, size, totalPages))
}

// Update atualiza um usuário
// @Summary Atualizar usuário
// @Description Atualiza nome, papel e percentual de comissão do usuário
// @Tags users
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do usuário"
// @Param user body dto.UserUpdateRequest true "Dados do usuário"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.UserUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	u, err := c.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "usuário não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar usuário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar usuário", err.Error()))
		return
	}

	if err := u.Update(req.Name, req.Role, req.CommissionPercent); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar dados do usuário", err.Error()))
		return
	}

	if err := c.userRepo.Update(ctx, u); err != nil {
		c.logger.Error("erro ao atualizar usuário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// Delete remove um usuário
// @Summary Excluir usuário
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "usuário não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir usuário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("usuário excluído com sucesso", nil))
}
