package route

import (
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/controller"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterSaleRoutes registra as rotas do módulo de vendas. Trabalhadores
// registram e consultam vendas; a exclusão é do administrador.
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController) {
	sales := r.Group("/sales")
	sales.Use(auth.JWTAuthMiddleware())
	{
		sales.POST("", auth.RoleAuthMiddleware("admin", "worker"), saleController.Create)
		sales.GET("", auth.RoleAuthMiddleware("admin", "worker"), saleController.List)
		sales.GET("/:id", auth.RoleAuthMiddleware("admin", "worker"), saleController.Get)
		sales.POST("/:id/deposits", auth.RoleAuthMiddleware("admin", "worker"), saleController.AddDeposit)
		sales.GET("/:id/deposits", auth.RoleAuthMiddleware("admin", "worker"), saleController.ListDeposits)

		sales.DELETE("/:id", auth.RoleAuthMiddleware("admin"), saleController.Delete)
	}
}
