package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/danipardo/petclinic/internal/auth/credentials"
	"github.com/danipardo/petclinic/internal/auth/handler"
	"github.com/danipardo/petclinic/internal/config"
	"github.com/danipardo/petclinic/internal/middleware"
	"github.com/danipardo/petclinic/internal/pets"
	"github.com/danipardo/petclinic/internal/session"
	"github.com/danipardo/petclinic/internal/vets"
	"github.com/danipardo/petclinic/internal/web"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)

	credentialService := credentials.NewService(
		credentials.NewPostgresRepository(infra.DB),
	)
	if err := credentialService.Bootstrap(ctx); err != nil {
		return nil, nil, err
	}

	authHandler := handler.NewHandler(
		credentialService,
		sessionStore,
		cfg.SessionTimeout,
	)

	gate := middleware.NewSessionGate(sessionStore, cfg.SessionTimeout)

	vetRepo := vets.NewPostgresRepository(infra.DB)
	petHandler := pets.NewHandler(pets.NewPostgresRepository(infra.DB), vetRepo)
	vetHandler := vets.NewHandler(vetRepo)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(web.Templates())

	// ----------------------------
	// Public Routes
	// ----------------------------

	router.GET("/", web.Home)
	authHandler.RegisterRoutes(router)

	// ----------------------------
	// Protected Routes
	// ----------------------------

	protected := router.Group("/")
	protected.Use(gate.RequireAuth())

	petHandler.RegisterRoutes(protected)
	vetHandler.RegisterRoutes(protected)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		if err := infra.Redis.Close(); err != nil {
			return err
		}
		return infra.DB.Close()
	}, nil
}
