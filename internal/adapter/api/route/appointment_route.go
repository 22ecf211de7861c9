package route

import (
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/controller"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registra as rotas do módulo de agendamentos
func RegisterAppointmentRoutes(r *gin.RouterGroup, appointmentController *controller.AppointmentController) {
	appointments := r.Group("/appointments")
	appointments.Use(auth.JWTAuthMiddleware())
	appointments.Use(auth.RoleAuthMiddleware("admin", "worker"))
	{
		appointments.POST("", appointmentController.Create)
		appointments.GET("", appointmentController.List)
		appointments.GET("/:id", appointmentController.Get)
		appointments.PUT("/:id", appointmentController.Update)
		appointments.DELETE("/:id", appointmentController.Delete)
	}
}
