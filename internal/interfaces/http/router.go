package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hannia06H/ProyectoArq/internal/application/auth"
	"github.com/Hannia06H/ProyectoArq/internal/application/sales"
	"github.com/Hannia06H/ProyectoArq/internal/application/usecase"
	"github.com/Hannia06H/ProyectoArq/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	RegisterSale *sales.RegisterSaleUseCase
	ListSales    *sales.ListSalesUseCase
	UserUC       *usecase.UserUseCase
	RoleUC       *usecase.RoleUseCase
	ReportUC     *usecase.ReportUseCase
	Products     productLister
	JWTSecret    string
}

// Router registra las rutas de la API. Tabla de autorización por operación:
//   - ventas POST:  Vendedor, Administrador
//   - ventas GET:   Vendedor, Consultor, Administrador
//   - usuarios/roles: Administrador
//   - productos, reportes: cualquier rol autenticado
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Ventas
	ventas := protected.Group("/ventas")
	saleHandler := NewSaleHandler(deps.RegisterSale, deps.ListSales)
	ventas.Post("/", RequireRole(entity.RoleVendedor, entity.RoleAdministrador), saleHandler.Register)
	ventas.Get("/", RequireRole(entity.RoleVendedor, entity.RoleConsultor, entity.RoleAdministrador), saleHandler.List)

	// Usuarios (solo Administrador)
	usuarios := protected.Group("/usuarios", RequireRole(entity.RoleAdministrador))
	userHandler := NewUserHandler(deps.UserUC)
	usuarios.Get("/", userHandler.List)
	usuarios.Post("/", userHandler.Create)
	usuarios.Put("/:id", userHandler.Update)
	usuarios.Delete("/:id", userHandler.Delete)

	// Roles (solo Administrador)
	roles := protected.Group("/roles", RequireRole(entity.RoleAdministrador))
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/", roleHandler.List)
	roles.Post("/", roleHandler.Create)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)

	// Productos: lectura proxy del servicio de inventario
	productHandler := NewProductHandler(deps.Products)
	protected.Get("/productos", productHandler.List)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reportes/usuarios", reportHandler.Users)
}
