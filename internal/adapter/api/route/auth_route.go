package route

import (
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/controller"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registra as rotas de autenticação
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	authRoutes := r.Group("/auth")
	{
		// Login e renovação não requerem autenticação
		authRoutes.POST("/login", authController.Login)
		authRoutes.POST("/refresh", authController.RefreshToken)

		// Dados do usuário da sessão
		authRoutes.GET("/me", auth.JWTAuthMiddleware(), authController.Me)
	}
}
