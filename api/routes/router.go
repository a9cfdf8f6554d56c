package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vergerducoin/verger-clients/api/controllers"
	"github.com/vergerducoin/verger-clients/api/middleware"
	"github.com/vergerducoin/verger-clients/internal/cart"
	"github.com/vergerducoin/verger-clients/internal/gateway"
	"github.com/vergerducoin/verger-clients/internal/session"
	"github.com/vergerducoin/verger-clients/pkg/config"
	"github.com/vergerducoin/verger-clients/pkg/enums"
	"github.com/vergerducoin/verger-clients/pkg/logger"
)

// Deps carries the injected application state the routers wire into
// their handlers. Nothing here is an ambient singleton.
type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	Cart         *cart.Cart
	Session      *session.Session
	Gateway      *gateway.Client
	StateBackend controllers.Pinger
}

// NewPOSRouter assembles the kiosk application. Everything past login is
// staff-gated; sales go out on the KIOSK channel from the configured
// register location.
func NewPOSRouter(d Deps) http.Handler {
	cfg, logg := d.Config, d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, d.StateBackend))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/app/v1", func(r chi.Router) {
		r.Post("/auth/login", controllers.Login(d.Gateway, d.Session, logg))
		r.Post("/auth/logout", controllers.Logout(d.Session, logg))
		r.Get("/auth/session", controllers.SessionInfo(d.Session))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireStaff(d.Session, logg))

			r.Get("/products", controllers.ListProducts(d.Gateway, logg))
			r.Get("/products/in-season", controllers.ListInSeasonProducts(d.Gateway, logg))
			r.Get("/products/categories", controllers.ListCategories(d.Gateway, logg))
			r.Get("/products/{productID}", controllers.GetProduct(d.Gateway, logg))

			r.Get("/cart", controllers.ViewCart(d.Cart))
			r.Post("/cart/items", controllers.AddCartItem(d.Cart, d.Gateway, logg))
			r.Patch("/cart/items/{productID}", controllers.UpdateCartItem(d.Cart, logg))
			r.Delete("/cart/items/{productID}", controllers.RemoveCartItem(d.Cart, logg))
			r.Delete("/cart", controllers.ClearCart(d.Cart))

			r.Post("/checkout", controllers.Checkout(d.Cart, d.Session, d.Gateway, controllers.CheckoutConfig{
				Channel:  enums.ChannelKiosk,
				Location: int64(cfg.POS.LocationID),
			}, logg))

			r.Post("/customers/search-by-card", controllers.SearchCustomerByCard(d.Gateway, logg))

			r.Get("/inventory/stocks", controllers.ListStocks(d.Gateway, logg))
			r.Get("/inventory/locations", controllers.ListLocations(d.Gateway, logg))
		})
	})

	return r
}

// NewStorefrontRouter assembles the web shop. Browsing and the cart are
// open; checkout, account, and subscriptions require a login.
func NewStorefrontRouter(d Deps) http.Handler {
	cfg, logg := d.Config, d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, d.StateBackend))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/app/v1", func(r chi.Router) {
		r.Post("/auth/login", controllers.Login(d.Gateway, d.Session, logg))
		r.Post("/auth/logout", controllers.Logout(d.Session, logg))
		r.Post("/auth/register", controllers.Register(d.Gateway, logg))
		r.Get("/auth/session", controllers.SessionInfo(d.Session))

		r.Get("/products", controllers.ListProducts(d.Gateway, logg))
		r.Get("/products/in-season", controllers.ListInSeasonProducts(d.Gateway, logg))
		r.Get("/products/categories", controllers.ListCategories(d.Gateway, logg))
		r.Get("/products/{productID}", controllers.GetProduct(d.Gateway, logg))

		r.Get("/cart", controllers.ViewCart(d.Cart))
		r.Post("/cart/items", controllers.AddCartItem(d.Cart, d.Gateway, logg))
		r.Patch("/cart/items/{productID}", controllers.UpdateCartItem(d.Cart, logg))
		r.Delete("/cart/items/{productID}", controllers.RemoveCartItem(d.Cart, logg))
		r.Delete("/cart", controllers.ClearCart(d.Cart))

		r.Get("/plans", controllers.ListPlans(d.Gateway, logg))
		r.Get("/plans/{planID}", controllers.PlanDetail(d.Gateway, logg))
		r.Get("/plans/{planID}/current-basket", controllers.PlanCurrentBasket(d.Gateway, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuthenticated(d.Session, logg))

			r.Post("/checkout", controllers.Checkout(d.Cart, d.Session, d.Gateway, controllers.CheckoutConfig{
				Channel:  enums.ChannelWeb,
				Location: int64(cfg.POS.LocationID),
			}, logg))

			r.Get("/account/me", controllers.Me(d.Gateway, logg))
			r.Patch("/account/me", controllers.UpdateAccount(d.Gateway, d.Session, logg))
			r.Get("/account/orders", controllers.MyOrders(d.Gateway, logg))
			r.Get("/account/orders/{saleID}", controllers.OrderDetail(d.Gateway, logg))

			r.Get("/subscriptions", controllers.MySubscriptions(d.Gateway, logg))
			r.Post("/subscriptions", controllers.CreateSubscription(d.Gateway, logg))
			r.Get("/subscriptions/deliveries", controllers.UpcomingDeliveries(d.Gateway, logg))
			r.Get("/subscriptions/{subscriptionID}", controllers.SubscriptionDetail(d.Gateway, logg))
			r.Post("/subscriptions/{subscriptionID}/pause", controllers.PauseSubscription(d.Gateway, logg))
			r.Post("/subscriptions/{subscriptionID}/resume", controllers.ResumeSubscription(d.Gateway, logg))
			r.Post("/subscriptions/{subscriptionID}/cancel", controllers.CancelSubscription(d.Gateway, logg))
		})
	})

	return r
}
