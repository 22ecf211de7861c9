package route

import (
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/controller"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterServiceRoutes registra as rotas do catálogo de serviços. A leitura
// é aberta aos trabalhadores para o seletor de vendas; a manutenção do
// catálogo é do administrador.
func RegisterServiceRoutes(r *gin.RouterGroup, serviceController *controller.ServiceController) {
	services := r.Group("/services")
	services.Use(auth.JWTAuthMiddleware())
	{
		services.GET("", auth.RoleAuthMiddleware("admin", "worker"), serviceController.List)
		services.GET("/:id", auth.RoleAuthMiddleware("admin", "worker"), serviceController.Get)

		services.POST("", auth.RoleAuthMiddleware("admin"), serviceController.Create)
		services.PUT("/:id", auth.RoleAuthMiddleware("admin"), serviceController.Update)
		services.PATCH("/:id/status", auth.RoleAuthMiddleware("admin"), serviceController.UpdateStatus)
		services.DELETE("/:id", auth.RoleAuthMiddleware("admin"), serviceController.Delete)
	}
}
