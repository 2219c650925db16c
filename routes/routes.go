package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TheLiloji/UberV3-sub000/configs"
	"github.com/TheLiloji/UberV3-sub000/controllers"
	"github.com/TheLiloji/UberV3-sub000/middlewares"
	"github.com/TheLiloji/UberV3-sub000/repository"
	"github.com/TheLiloji/UberV3-sub000/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	addrRepo := repository.NewAddressRepository(db)
	payRepo := repository.NewPaymentRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	restRepo := repository.NewRestaurantRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	addrSvc := services.NewAddressService(addrRepo)
	paySvc := services.NewPaymentService(db, payRepo)
	orderSvc := services.NewOrderService(db, orderRepo)
	restSvc := services.NewRestaurantService(restRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cfg.UploadDir)
	addrCtrl := controllers.NewAddressController(addrSvc)
	payCtrl := controllers.NewPaymentController(paySvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)

	api := r.Group("/api")

	// Auth (public)
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Everything else requires a bearer token.
	authed := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		authed.GET("/auth/profile", authCtrl.Profile)
		authed.PUT("/auth/account", authCtrl.UpdateAccount)

		authed.GET("/addresses", addrCtrl.List)
		authed.POST("/addresses", addrCtrl.Create)
		authed.DELETE("/addresses/:id", addrCtrl.Delete)

		authed.GET("/payment-methods", payCtrl.List)
		authed.POST("/payment-methods", payCtrl.Create)
		authed.DELETE("/payment-methods/:id", payCtrl.Delete)
		authed.PUT("/payment-methods/:id/default", payCtrl.SetDefault)

		authed.POST("/orders", orderCtrl.Create)
		authed.GET("/orders", orderCtrl.List)

		authed.GET("/restaurants", restCtrl.List)
		authed.GET("/restaurant", restCtrl.Detail)
		authed.GET("/menu", restCtrl.Menu)
	}
}
