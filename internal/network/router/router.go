package router

import (
	"github.com/denmor86/crypto-assets/internal/config"
	"github.com/denmor86/crypto-assets/internal/network/handlers"
	"github.com/denmor86/crypto-assets/internal/network/middleware"
	"github.com/denmor86/crypto-assets/internal/services"
	"github.com/denmor86/crypto-assets/internal/storage"
	"github.com/go-chi/chi/v5"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config   config.Config
	Identity services.IdentityService
	Catalog  services.CatalogService
	Assets   services.AssetsService
	Price    services.PriceService
}

func NewRouter(config config.Config, storage storage.IStorage) *Router {
	return &Router{
		Config:   config,
		Identity: services.NewIdentity(config, storage),
		Catalog:  services.NewCatalog(storage),
		Assets:   services.NewAssets(storage),
		Price:    services.NewPrice(storage, services.NewExchangeService(config.Exchange)),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Post("/user/register", handlers.RegisterUserHandler(router.Identity))
		r.Post("/user/login", handlers.AuthenticateUserHandler(router.Identity))
		r.Post("/user/logout", handlers.LogoutUserHandler())
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(middleware.Authenticator(ja))
			r.Get("/cryptos", handlers.GetCryptosHandler(router.Catalog))
			r.Get("/cryptos/{crypto}/price", handlers.GetPriceHandler(router.Price))
			r.Route("/user/{userID}/assets", func(r chi.Router) {
				r.Use(middleware.OwnResources)
				r.Get("/", handlers.GetUserAssetsHandler(router.Assets))
				r.Post("/{crypto}", handlers.AddAssetHandler(router.Assets))
				r.Put("/{crypto}", handlers.SetAssetHandler(router.Assets))
				r.Delete("/{crypto}", handlers.DeleteAssetHandler(router.Assets))
			})
		})
	})
	return r
}
