package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/CrisMolina12/angelesWeb-sub000/docs"
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/controller"
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/route"
	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/repository"
	"github.com/CrisMolina12/angelesWeb-sub000/internal/infrastructure/database"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger

	clientController      *controller.ClientController
	serviceController     *controller.ServiceController
	paymentTypeController *controller.PaymentTypeController
	saleController        *controller.SaleController
	appointmentController *controller.AppointmentController
	userController        *controller.UserController
	authController        *controller.AuthController
	reportController      *controller.ReportController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	// Criar repositórios
	clientRepo := repository.NewClientRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	paymentTypeRepo := repository.NewPaymentTypeRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Criar controllers
	clientController := controller.NewClientController(clientRepo, log)
	serviceController := controller.NewServiceController(serviceRepo, log)
	paymentTypeController := controller.NewPaymentTypeController(paymentTypeRepo, log)
	saleController := controller.NewSaleController(saleRepo, clientRepo, serviceRepo, paymentTypeRepo, log)
	appointmentController := controller.NewAppointmentController(appointmentRepo, saleRepo, log)
	userController := controller.NewUserController(userRepo, log)
	authController := controller.NewAuthController(userRepo, log)
	reportController := controller.NewReportController(saleRepo, appointmentRepo, clientRepo, log)

	// Configurar router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	return &App{
		router:                router,
		db:                    db,
		logger:                log,
		clientController:      clientController,
		serviceController:     serviceController,
		paymentTypeController: paymentTypeController,
		saleController:        saleController,
		appointmentController: appointmentController,
		userController:        userController,
		authController:        authController,
		reportController:      reportController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterSetupRoutes(api, a.userController)
	route.RegisterAuthRoutes(api, a.authController)
	route.RegisterClientRoutes(api, a.clientController)
	route.RegisterServiceRoutes(api, a.serviceController)
	route.RegisterPaymentTypeRoutes(api, a.paymentTypeController)
	route.RegisterSaleRoutes(api, a.saleController)
	route.RegisterAppointmentRoutes(api, a.appointmentController)
	route.RegisterUserRoutes(api, a.userController)
	route.RegisterReportRoutes(api, a.reportController)

	// Documentação da API
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Run inicia o servidor HTTP
func (a *App) Run() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
