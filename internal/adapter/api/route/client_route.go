package route

import (
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/controller"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterClientRoutes registra as rotas do módulo de clientes
func RegisterClientRoutes(r *gin.RouterGroup, clientController *controller.ClientController) {
	clients := r.Group("/clients")
	clients.Use(auth.JWTAuthMiddleware())
	clients.Use(auth.RoleAuthMiddleware("admin", "worker"))
	{
		clients.POST("", clientController.Create)
		clients.GET("", clientController.List)
		clients.GET("/:id", clientController.Get)
		clients.GET("/national-id/:nationalId", clientController.GetByNationalID)
		clients.PUT("/:id", clientController.Update)
		clients.DELETE("/:id", clientController.Delete)
	}
}
