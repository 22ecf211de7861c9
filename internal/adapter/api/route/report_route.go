package route

import (
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/controller"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registra as rotas dos painéis de relatório,
// restritas ao administrador
func RegisterReportRoutes(r *gin.RouterGroup, reportController *controller.ReportController) {
	reports := r.Group("/reports")
	reports.Use(auth.JWTAuthMiddleware())
	reports.Use(auth.RoleAuthMiddleware("admin"))
	{
		reports.GET("/summary", reportController.Summary)
		reports.GET("/monthly-sales", reportController.MonthlySales)
		reports.GET("/sales-by-worker", reportController.SalesByWorker)
		reports.GET("/commissions", reportController.CommissionsByEmployee)
	}
}
