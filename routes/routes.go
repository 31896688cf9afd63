package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/alexanderthenotsobad-git/nvrs-rest-api/configs"
	"github.com/alexanderthenotsobad-git/nvrs-rest-api/controllers"
	"github.com/alexanderthenotsobad-git/nvrs-rest-api/repository"
	"github.com/alexanderthenotsobad-git/nvrs-rest-api/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Repositories / services
	menuRepo := repository.NewMenuRepository(db)
	imageRepo := repository.NewImageRepository(db)
	menuSvc := services.NewMenuService(menuRepo)
	imageSvc := services.NewImageService(imageRepo, menuRepo, cfg.UploadDir)

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc)
	imageCtrl := controllers.NewImageController(imageSvc)
	paymentCtrl := controllers.NewPaymentController(cfg)

	// Menu items
	r.GET("/", menuCtrl.List)
	r.POST("/createMenuItem", menuCtrl.Create)
	r.PUT("/menu/:id", menuCtrl.Update)
	r.DELETE("/menu/:id", menuCtrl.Delete)

	// Images
	img := r.Group("/api/images")
	{
		img.GET("/:imageId", imageCtrl.GetImage)
		img.GET("/menu-item/:menuItemId", imageCtrl.GetImage)
		img.POST("/menu-item/:menuItemId", imageCtrl.UploadImage)
		img.POST("/upload/:menuItemId", imageCtrl.UploadImage) // alternate route
		img.DELETE("/:imageId", imageCtrl.DeleteImage)
	}

	// Payments
	pay := r.Group("/api/payments")
	{
		pay.POST("/create-payment-intent", paymentCtrl.CreatePaymentIntent)
		pay.POST("/webhook", paymentCtrl.HandleWebhook)
		pay.GET("/:paymentIntentId", paymentCtrl.GetPaymentDetails)
	}
}
