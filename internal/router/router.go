// internal/router/router.go
package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/productcatalog/products-service/internal/config"
	"github.com/productcatalog/products-service/internal/handlers"
	"github.com/productcatalog/products-service/internal/middleware"
	"github.com/productcatalog/products-service/internal/services"
	"github.com/productcatalog/products-service/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	productService := services.NewProductService(db)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)

	// Initialize Gin router
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.RateLimit(cfg.RateLimit))

	r.NoMethod(func(c *gin.Context) {
		utils.MethodNotAllowedResponse(c)
	})
	r.NoRoute(func(c *gin.Context) {
		utils.NotFoundResponse(c, fmt.Sprintf("The requested URL %s was not found", c.Request.URL.Path))
	})

	r.GET("/", handlers.Index)
	r.GET("/health", handlers.Health)

	// Product routes, reachable both bare and under /api
	registerProductRoutes(&r.RouterGroup, productHandler)
	api := r.Group("/api")
	api.GET("/health", handlers.Health)
	registerProductRoutes(api, productHandler)

	return r
}

func registerProductRoutes(g *gin.RouterGroup, h *handlers.ProductHandler) {
	products := g.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.POST("", h.CreateProduct)
		products.GET("/:id", h.GetProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
		products.POST("/:id/discontinue", h.DiscontinueProduct)
		products.PUT("/:id/favorite", h.FavoriteProduct)
		products.PUT("/:id/unfavorite", h.UnfavoriteProduct)
	}
}
