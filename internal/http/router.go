package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	identityHandler "github.com/davedmaia/hemolog/internal/http/identity"
	inventoryHandler "github.com/davedmaia/hemolog/internal/http/inventory"
	appMiddleware "github.com/davedmaia/hemolog/internal/http/middleware"
	"github.com/davedmaia/hemolog/internal/identity"
)

func New(
	allowedOrigins []string,
	auth *appMiddleware.Authenticator,
	identityV1 *identityHandler.Handler,
	inventoryV1 *inventoryHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			identityV1.Routes(r)
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Use(auth.RequireAuth)
			inventoryV1.Routes(r)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireAuth)
			r.Use(appMiddleware.RequireRole(identity.RoleAdmin))
			identityV1.AdminRoutes(r)
		})
	})

	return router
}
