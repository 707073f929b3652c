package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/llantera-api/internal/application/auth"
	"github.com/jcastro/llantera-api/internal/application/ledger"
	"github.com/jcastro/llantera-api/internal/application/usecase"
	"github.com/jcastro/llantera-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	LedgerUC    *ledger.UseCase
	BarcodeUC   *usecase.BarcodeUseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	RecordUC    *usecase.RecordUseCase
	DashboardUC *usecase.DashboardUseCase
	UserUC      *usecase.UserUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login es público, el alta de usuarios la hace un admin
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil del operador autenticado
	protected.Get("/auth/profile", authHandler.Profile)
	protected.Post("/auth/change-password", authHandler.ChangePassword)

	// Movimientos: entradas, salidas y lotes
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	invGroup.Post("/inbound", inventoryHandler.Inbound)
	invGroup.Post("/outbound", inventoryHandler.Outbound)
	invGroup.Post("/batch-inbound", inventoryHandler.BatchInbound)
	invGroup.Post("/batch-outbound", inventoryHandler.BatchOutbound)

	// Códigos de barras: el scan lo usa cualquier operador, la administración
	// es solo para admin
	barcodes := protected.Group("/barcodes")
	barcodeHandler := NewBarcodeHandler(deps.BarcodeUC)
	barcodes.Get("/scan/:code", barcodeHandler.Scan)
	barcodes.Get("/", barcodeHandler.List)
	barcodes.Post("/", RequireRole(entity.RoleAdmin), barcodeHandler.Create)
	barcodes.Put("/:id", RequireRole(entity.RoleAdmin), barcodeHandler.Update)
	barcodes.Delete("/:id", RequireRole(entity.RoleAdmin), barcodeHandler.Delete)

	// Catálogo de productos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireRole(entity.RoleAdmin), productHandler.Create)
	products.Put("/:id", RequireRole(entity.RoleAdmin), productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Árbol de categorías
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/tree", categoryHandler.Tree)
	categories.Get("/", categoryHandler.ListByLevel)
	categories.Post("/", RequireRole(entity.RoleAdmin), categoryHandler.Create)
	categories.Put("/:id", RequireRole(entity.RoleAdmin), categoryHandler.Update)
	categories.Delete("/:id", RequireRole(entity.RoleAdmin), categoryHandler.Delete)

	// Libro de movimientos
	records := protected.Group("/records")
	recordHandler := NewRecordHandler(deps.RecordUC)
	records.Get("/", recordHandler.List)
	records.Get("/export", recordHandler.Export)

	// Panel
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/trend", dashboardHandler.Trend)
	dashboard.Get("/top-products", dashboardHandler.TopProducts)

	// Usuarios (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Put("/:id/status", userHandler.UpdateStatus)
}
