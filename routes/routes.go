package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vinaytz/theSkFoodBackend/configs"
	"github.com/vinaytz/theSkFoodBackend/controllers"
	"github.com/vinaytz/theSkFoodBackend/middlewares"
	"github.com/vinaytz/theSkFoodBackend/repository"
	"github.com/vinaytz/theSkFoodBackend/services"
	"github.com/vinaytz/theSkFoodBackend/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, logger *zap.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(db, menuRepo, logger)
	gateway := services.NewRazorpayClient(cfg.GatewayBaseURL, cfg.GatewayKey, cfg.GatewaySecret)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, gateway, nil, logger)

	// Order tracking over websocket
	hub := ws.NewTrackHub(orderSvc, logger)
	orderSvc.Notify = hub
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, int(cfg.JWTTTL.Seconds()))
	userCtrl := controllers.NewUserPanelController(menuSvc, orderSvc)
	adminCtrl := controllers.NewAdminController(menuSvc, orderSvc, cfg.UploadDir)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	// User auth
	ua := r.Group("/userAuth")
	{
		ua.POST("/signup", authCtrl.Signup)
		ua.POST("/login", authCtrl.Login)
		ua.POST("/logout", authCtrl.Logout)
		ua.GET("/profile", auth, authCtrl.Profile)
		ua.PATCH("/addresses", auth, authCtrl.SaveAddresses)
	}

	// User panel
	up := r.Group("/userPanel", auth)
	{
		up.GET("/seeLunchMenu", userCtrl.SeeLunchMenu)
		up.GET("/seeDinnerMenu", userCtrl.SeeDinnerMenu)
		up.POST("/orderPreparedThali", userCtrl.OrderPreparedThali)
		up.POST("/checkout", userCtrl.Checkout)
		up.GET("/myAllOrders", userCtrl.MyAllOrders)
		up.GET("/confirmedOrders", userCtrl.ConfirmedOrders)
		up.GET("/activeOrders", userCtrl.ActiveOrders)
		up.GET("/orderHistory", userCtrl.OrderHistory)
		up.GET("/myOrderwithId/:id", userCtrl.MyOrderWithID)
	}

	// Admin panel
	admin := r.Group("/admin")
	{
		admin.POST("/login", authCtrl.AdminLogin)
		admin.POST("/logout", authCtrl.Logout)

		protected := admin.Group("", adminOnly)
		{
			protected.PUT("/createMeal", adminCtrl.CreateMeal)
			protected.GET("/menuHistoryLog", adminCtrl.MenuHistoryLog)
			protected.POST("/imageUpload", adminCtrl.ImageUpload)
			protected.GET("/allOrders", adminCtrl.AllOrders)
			protected.GET("/confirmedOrders", adminCtrl.ConfirmedOrders)
			protected.GET("/orderwithId/:id", adminCtrl.OrderWithID)
			protected.PATCH("/orders/:id/dispatch", adminCtrl.Dispatch)
			protected.PATCH("/orders/:id/deliver", adminCtrl.Deliver)
		}
	}

	// Live order tracking
	r.GET("/ws/orders/:id", auth, hub.Serve)
}
