package routes

import (
	"github.com/EswarAdityaReddy/Foodie/configs"
	"github.com/EswarAdityaReddy/Foodie/controllers"
	"github.com/EswarAdityaReddy/Foodie/middlewares"
	"github.com/EswarAdityaReddy/Foodie/repository"
	"github.com/EswarAdityaReddy/Foodie/services"
	"github.com/EswarAdityaReddy/Foodie/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewRouter builds the services over a seeded catalog database and
// registers every route. The returned hub must be started with Run.
func NewRouter(db *gorm.DB, cfg *configs.Config, log *zap.Logger) (*gin.Engine, *ws.CartHub, error) {
	menuSvc, err := services.NewMenuService(repository.NewMenuRepository(db))
	if err != nil {
		return nil, nil, err
	}
	catalog, err := services.NewCatalogService(repository.NewRestaurantRepository(db), menuSvc)
	if err != nil {
		return nil, nil, err
	}
	sessions, err := services.NewSessionStore(cfg.SessionCapacity, log)
	if err != nil {
		return nil, nil, err
	}

	hub := ws.NewCartHub(log)
	cartSvc := services.NewCartService(sessions, menuSvc, hub, log)
	hub.Attach(cartSvc)
	checkoutSvc := services.NewCheckoutService(sessions, catalog, repository.NewOrderRepository(db), hub, log)
	authSvc := services.NewAuthService(sessions, log)
	discoverySvc := services.NewDiscoveryService(sessions, catalog)

	log.Info("catalog loaded",
		zap.Int("restaurants", len(catalog.Restaurants())),
		zap.Int("categories", len(catalog.Categories())),
		zap.Int("menu_items", len(menuSvc.Items())),
	)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))

	RegisterRoutes(r, cfg, Controllers{
		Session:    controllers.NewSessionController(sessions, cfg.JWTSecret, cfg.JWTTTL),
		Auth:       controllers.NewAuthController(authSvc),
		Restaurant: controllers.NewRestaurantController(catalog),
		Discovery:  controllers.NewDiscoveryController(discoverySvc),
		Cart:       controllers.NewCartController(cartSvc, checkoutSvc),
		Profile:    controllers.NewProfileController(authSvc, checkoutSvc),
		Hub:        hub,
		Sessions:   sessions,
	})
	return r, hub, nil
}

type Controllers struct {
	Session    *controllers.SessionController
	Auth       *controllers.AuthController
	Restaurant *controllers.RestaurantController
	Discovery  *controllers.DiscoveryController
	Cart       *controllers.CartController
	Profile    *controllers.ProfileController
	Hub        *ws.CartHub
	Sessions   *services.SessionStore
}

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, ctl Controllers) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	session := middlewares.SessionMiddleware(cfg.JWTSecret, ctl.Sessions, false)
	signedIn := middlewares.SessionMiddleware(cfg.JWTSecret, ctl.Sessions, true)

	// Catalog (public)
	r.GET("/categories", ctl.Restaurant.Categories)
	r.GET("/restaurants", ctl.Restaurant.List)
	r.GET("/restaurants/:id", ctl.Restaurant.Get)
	r.GET("/restaurants/:id/menu", ctl.Restaurant.Menu)

	// Sessions
	r.POST("/sessions", ctl.Session.Create)
	r.GET("/session", session, ctl.Session.Get)

	// Mock auth
	a := r.Group("/auth", session)
	{
		a.POST("/login", ctl.Auth.Login)
		a.POST("/signup", ctl.Auth.Signup)
		a.POST("/logout", ctl.Auth.Logout)
	}

	// Discovery
	d := r.Group("/discovery", session)
	{
		d.GET("", ctl.Discovery.View)
		d.POST("/categories/:id", ctl.Discovery.ToggleCategory)
		d.PUT("/search", ctl.Discovery.Search)
	}

	// Favorites
	r.GET("/favorites", session, ctl.Discovery.Favorites)
	r.POST("/favorites/:id", session, ctl.Discovery.ToggleFavorite)

	// Cart
	cart := r.Group("/cart", session)
	{
		cart.GET("", ctl.Cart.Get)
		cart.DELETE("", ctl.Cart.Clear)
		cart.POST("/items", ctl.Cart.Add)
		cart.PATCH("/items/:itemId", ctl.Cart.UpdateQty)
		cart.DELETE("/items/:itemId", ctl.Cart.RemoveItem)
	}
	r.POST("/cart/checkout", signedIn, ctl.Cart.PlaceOrder)

	// Profile
	profile := r.Group("/profile", signedIn)
	{
		profile.GET("", ctl.Profile.Get)
		profile.PATCH("", ctl.Profile.Update)
		profile.POST("/addresses", ctl.Profile.AddAddress)
		profile.DELETE("/addresses/:index", ctl.Profile.RemoveAddress)
		profile.GET("/orders", ctl.Profile.Orders)
	}

	r.GET("/ws/cart", middlewares.WSAuthMiddleware(cfg.JWTSecret, ctl.Sessions), ctl.Hub.HandleWebSocket)
}
