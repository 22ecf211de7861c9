package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/dto"
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/repository"
	userdomain "github.com/CrisMolina12/angelesWeb-sub000/internal/domain/user"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/auth"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
)

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	userRepo userdomain.Repository
	logger   logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(userRepo userdomain.Repository, logger logger.Logger) *AuthController {
	return &AuthController{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Login autentica um usuário e retorna um token JWT
// @Summary Autenticar usuário
// @Description Verifica as credenciais do usuário e retorna um token JWT com o papel da sessão
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "requisição inválida", err.Error()))
		return
	}

	u, err := c.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", "email ou senha incorretos"))
			return
		}
		c.logger.Error("erro ao autenticar usuário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao autenticar usuário", err.Error()))
		return
	}

	if !u.CheckPassword(req.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", "email ou senha incorretos"))
		return
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		c.logger.Error("erro ao configurar serviço JWT", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao configurar autenticação", err.Error()))
		return
	}

	token, err := jwtService.GenerateToken(u)
	if err != nil {
		c.logger.Error("erro ao gerar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar token", err.Error()))
		return
	}

	if err := c.userRepo.UpdateLastLogin(ctx, u.ID); err != nil {
		// Não impede o login
		c.logger.Error("erro ao registrar último login", "error", err)
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(u),
		AccessToken: token,
		ExpiresAt:   time.Now().Add(jwtService.Expiration()),
	})
}

// RefreshToken renova um token JWT
// @Summary Renovar token
// @Description Renova um token JWT ainda válido, estendendo a sessão
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Token a ser renovado"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "requisição inválida", err.Error()))
		return
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		c.logger.Error("erro ao configurar serviço JWT", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao configurar autenticação", err.Error()))
		return
	}

	newToken, err := jwtService.RefreshToken(req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "sessão expirada", "faça login novamente"))
			return
		}
		if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrInvalidClaims) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token inválido", err.Error()))
			return
		}
		c.logger.Error("erro ao renovar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao renovar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("token renovado", gin.H{
		"access_token": newToken,
		"expires_at":   time.Now().Add(jwtService.Expiration()),
	}))
}

// Me retorna os dados do usuário autenticado
// @Summary Usuário atual
// @Description Retorna os dados do usuário da sessão, incluindo o papel
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID := auth.CurrentUserID(ctx)
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "autenticação requerida", ""))
		return
	}

	u, err := c.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "usuário não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar usuário da sessão", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}
