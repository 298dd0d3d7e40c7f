package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zellicsilva-star/kardex-gree-web/internal/application/auth"
	"github.com/zellicsilva-star/kardex-gree-web/internal/application/kardex"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/entity"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	KardexUC  *kardex.KardexUseCase
	AuthUC    *auth.AuthUseCase
	BlobStore repository.BlobStore // nil si la estrategia de foto es inline
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Fotos (público: las URLs guardadas en la planilla se abren sin token,
	// como los links de visualización del drive)
	photoHandler := NewPhotoHandler(deps.KardexUC, deps.BlobStore)
	api.Get("/fotos/:id", photoHandler.ServePhoto)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Kardex (protegido)
	kardexGroup := protected.Group("/kardex")
	kardexHandler := NewKardexHandler(deps.KardexUC)
	kardexGroup.Get("/:codigo", kardexHandler.GetItem)
	kardexGroup.Get("/:codigo/historico", kardexHandler.GetHistory)
	kardexGroup.Get("/:codigo/ficha", kardexHandler.GetFicha)
	kardexGroup.Post("/:codigo/movimientos", kardexHandler.RegisterMovement)
	kardexGroup.Post("/:codigo/foto", photoHandler.AttachPhoto)

	// La corrección de ubicación reescribe una fila existente: solo
	// admin y operador con rol explícito.
	kardexGroup.Put("/:codigo/ubicacion",
		RequireRole(entity.RoleAdmin, entity.RoleOperador),
		kardexHandler.UpdateLocation,
	)
}
