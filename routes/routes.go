package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"foodiehub/cart"
	"foodiehub/configs"
	"foodiehub/controllers"
	"foodiehub/middlewares"
	"foodiehub/repository"
	"foodiehub/services"
	"foodiehub/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *zap.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	addrRepo := repository.NewAddressRepository(db)
	cardRepo := repository.NewCardRepository(db)

	// Core
	carts := cart.NewManager()
	pricingCfg := cfg.Pricing()

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(carts, catalogRepo, pricingCfg, log)
	checkoutSvc := services.NewCheckoutService(carts, orderRepo, addrRepo, cardRepo, pricingCfg, log)
	orderSvc := services.NewOrderService(orderRepo, log)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(catalogRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(checkoutSvc, orderSvc)
	addrCtrl := controllers.NewAddressController(addrRepo)
	cardCtrl := controllers.NewCardController(cardRepo)
	cartStream := ws.NewCartStream(carts, log)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	a.PUT("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.UpdateMe)

	// Catalog (public)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)
	r.GET("/categories", menuCtrl.Categories)

	// Authenticated
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/qty", cartCtrl.UpdateQty)
		u.DELETE("/cart/items", cartCtrl.RemoveItem)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/checkout", orderCtrl.PlaceOrder)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.PATCH("/orders/:id/cancel", orderCtrl.Cancel)

		u.GET("/addresses", addrCtrl.List)
		u.POST("/addresses", addrCtrl.Create)
		u.PUT("/addresses/:id", addrCtrl.Update)
		u.DELETE("/addresses/:id", addrCtrl.Delete)
		u.PATCH("/addresses/:id/default", addrCtrl.SetDefault)

		u.GET("/cards", cardCtrl.List)
		u.POST("/cards", cardCtrl.Create)
		u.DELETE("/cards/:id", cardCtrl.Delete)
		u.PATCH("/cards/:id/default", cardCtrl.SetDefault)
	}

	// Live cart stream (token via query string)
	r.GET("/ws/cart", middlewares.WSAuthMiddleware(cfg.JWTSecret), cartStream.HandleWebSocket)

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.PATCH("/orders/:id/status", orderCtrl.SetStatus)
	}
}
