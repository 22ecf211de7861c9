package route

import (
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/controller"
	"github.com/gin-gonic/gin"
)

// RegisterSetupRoutes registra as rotas de configuração inicial do sistema
func RegisterSetupRoutes(r *gin.RouterGroup, userController *controller.UserController) {
	setupRoutes := r.Group("/setup")
	{
		// Cria o primeiro administrador; não requer autenticação e só
		// funciona enquanto nenhum administrador existir
		setupRoutes.POST("/admin", userController.CreateAdminUser)
	}
}
