package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Trazabilidad-api/internal/application/auth"
	"github.com/jhoicas/Trazabilidad-api/internal/application/tracking"
	"github.com/jhoicas/Trazabilidad-api/internal/application/usecase"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/access"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	Ledger    *tracking.EventLedgerUseCase
	AuthUC    *auth.AuthUseCase
	UserRepo  repository.UserRepository
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (registro y login públicos)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token; usuarios deshabilitados rechazados aquí)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.UserRepo))

	protected.Get("/auth/me", authHandler.Me)

	// Products (lectura para todo rol; escritura supplier|admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Ledger)
	products.Post("/", RequirePermission(access.OpRegisterProduct), productHandler.Create)
	products.Get("/", RequirePermission(access.OpReadProduct), productHandler.List)
	products.Get("/:id", RequirePermission(access.OpReadHistory), productHandler.GetHistory)
	products.Put("/:id", RequirePermission(access.OpUpdateProduct), productHandler.Update)

	// Events (lectura para todo rol; append distributor|admin)
	events := protected.Group("/events")
	eventHandler := NewEventHandler(deps.Ledger)
	events.Post("/", RequirePermission(access.OpAppendEvent), eventHandler.Append)
	events.Get("/product/:id", RequirePermission(access.OpReadHistory), eventHandler.ListByProduct)
}
