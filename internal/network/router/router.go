package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/storecore/loyalty/internal/config"
	"github.com/storecore/loyalty/internal/network/handlers"
	"github.com/storecore/loyalty/internal/network/middleware"
	"github.com/storecore/loyalty/internal/services"
	"github.com/storecore/loyalty/internal/storage"
)

type Router struct {
	Config     config.Config
	Identity   services.IdentityService
	Rules      services.RulesService
	Points     services.PointsService
	Redemption services.RedemptionService
	Orders     services.OrdersService
}

func NewRouter(config config.Config, storage storage.Storage) *Router {
	identity := services.NewIdentity(config, storage.Users)
	rules := services.NewRules(storage.Rules, config.Loyalty.RulesCacheTTL)
	points := services.NewPoints(storage.Accounts, storage.Users, rules)
	redemption := services.NewRedemption(storage.Accounts, storage.Discounts, storage.Users, rules)
	gateway := services.NewGatewayService(config.Gateway)
	orders := services.NewOrders(storage.Orders, storage.Users, points, gateway)

	return &Router{
		Config:     config,
		Identity:   identity,
		Rules:      rules,
		Points:     points,
		Redemption: redemption,
		Orders:     orders,
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handlers.RegisterUserHandler(router.Identity))
			r.Post("/login", handlers.AuthenticateUserHandle(router.Identity))
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Post("/orders", handlers.OrdersHandler(router.Orders))
				r.Get("/orders", handlers.GetOrdersHandler(router.Orders))
				r.Get("/balance", handlers.GetBalanceHandler(router.Points))
				r.Get("/points/history", handlers.GetHistoryHandler(router.Points))
				r.Post("/points/redeem", handlers.RedeemHandler(router.Redemption))
				r.Get("/discounts", handlers.GetDiscountsHandler(router.Redemption))
				r.Post("/discounts/validate", handlers.ValidateDiscountHandler(router.Redemption))
				r.Post("/discounts/apply", handlers.ApplyDiscountHandler(router.Redemption))
			})
		})
		r.Route("/admin", func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))
			r.Use(middleware.RequireAdmin)
			r.Post("/points/adjust", handlers.AdjustPointsHandler(router.Points))
			r.Get("/rules", handlers.GetRulesHandler(router.Rules))
			r.Put("/rules", handlers.UpdateRulesHandler(router.Rules))
		})
	})
	return r
}
