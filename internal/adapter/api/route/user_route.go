package route

import (
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/controller"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registra as rotas do módulo de usuários, restritas
// ao administrador
func RegisterUserRoutes(r *gin.RouterGroup, userController *controller.UserController) {
	users := r.Group("/users")
	users.Use(auth.JWTAuthMiddleware())
	users.Use(auth.RoleAuthMiddleware("admin"))
	{
		users.POST("", userController.Create)
		users.GET("", userController.List)
		users.GET("/:id", userController.Get)
		users.PUT("/:id", userController.Update)
		users.DELETE("/:id", userController.Delete)
	}
}
