package route

import (
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/controller"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterPaymentTypeRoutes registra as rotas de formas de pagamento
func RegisterPaymentTypeRoutes(r *gin.RouterGroup, paymentTypeController *controller.PaymentTypeController) {
	paymentTypes := r.Group("/payment-types")
	paymentTypes.Use(auth.JWTAuthMiddleware())
	{
		paymentTypes.GET("", auth.RoleAuthMiddleware("admin", "worker"), paymentTypeController.List)
		paymentTypes.GET("/:id", auth.RoleAuthMiddleware("admin", "worker"), paymentTypeController.Get)

		paymentTypes.POST("", auth.RoleAuthMiddleware("admin"), paymentTypeController.Create)
		paymentTypes.PUT("/:id", auth.RoleAuthMiddleware("admin"), paymentTypeController.Update)
		paymentTypes.DELETE("/:id", auth.RoleAuthMiddleware("admin"), paymentTypeController.Delete)
	}
}
