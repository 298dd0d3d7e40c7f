package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appauth "github.com/zellicsilva-star/kardex-gree-web/internal/application/auth"
	appkardex "github.com/zellicsilva-star/kardex-gree-web/internal/application/kardex"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/repository"
	"github.com/zellicsilva-star/kardex-gree-web/internal/infrastructure/imaging"
	"github.com/zellicsilva-star/kardex-gree-web/internal/infrastructure/memory"
	infrapdf "github.com/zellicsilva-star/kardex-gree-web/internal/infrastructure/pdf"
	"github.com/zellicsilva-star/kardex-gree-web/internal/infrastructure/postgres"
	httpRouter "github.com/zellicsilva-star/kardex-gree-web/internal/interfaces/http"
	"github.com/zellicsilva-star/kardex-gree-web/pkg/config"
	"github.com/zellicsilva-star/kardex-gree-web/pkg/logger"
)

const fotosBaseURL = "/api/fotos"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		rowStore repository.RowStore
		blob     repository.BlobStore
		userRepo repository.UserRepository
	)
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			// Sin almacén de filas no hay kardex que servir.
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		sheet := postgres.NewSheetRowStore(pool, cfg.Kardex.Throttle())
		fotos := postgres.NewPhotoBlobStore(pool, fotosBaseURL)
		usuarios := postgres.NewUserRepository(pool)
		if err := sheet.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema kardex_hoja")
		}
		if err := fotos.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema kardex_fotos")
		}
		if err := usuarios.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema kardex_usuarios")
		}
		rowStore, blob, userRepo = sheet, fotos, usuarios
	} else {
		// Modo demo, sin persistencia.
		log.Warn().Msg("sin DATABASE_URL ni DB_HOST: almacenes en memoria")
		rowStore = memory.NewSheetRowStore(nil)
		blob = memory.NewPhotoBlobStore(fotosBaseURL)
		userRepo = memory.NewUserRepository()
	}

	var photos appkardex.PhotoStrategy
	if cfg.Kardex.PhotoStrategy == "blob" {
		photos = appkardex.NewBlobPhotoStrategy(blob, cfg.Kardex.PhotoFolder)
	} else {
		photos = imaging.NewInlineThumbnail(cfg.Kardex.PhotoMaxEdge)
	}

	kardexUC := appkardex.New(rowStore, photos, infrapdf.NewMarotoFichaGenerator(), log, appkardex.Options{
		HistorySize: cfg.Kardex.HistorySize,
		Location:    cfg.Kardex.Location(),
	})
	authUC := appauth.NewAuthUseCase(userRepo, appauth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 * 1024 * 1024, // fotos de cámara
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Kardex GREE API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		KardexUC:  kardexUC,
		AuthUC:    authUC,
		BlobStore: blob,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
