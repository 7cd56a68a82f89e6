package router

import (
	"time"

	"github.com/sofibear01/MantenimientoProducto/internal/config"
	"github.com/sofibear01/MantenimientoProducto/internal/handler"
	"github.com/sofibear01/MantenimientoProducto/internal/middleware"
	"github.com/sofibear01/MantenimientoProducto/internal/repository"
	"github.com/sofibear01/MantenimientoProducto/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB, log zerolog.Logger) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler(log))
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMin, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	productSvc := service.NewProductService(productRepo)
	categorySvc := service.NewCategoryService(categoryRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc, log)
	categoriesH := handler.NewCategoriesHandler(categorySvc, log)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db))

	api := r.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", productsH.List)
			products.GET("/:id", productsH.GetByID)
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			// DELETE is logical: flips is_active, row persists
			products.DELETE("/:id", productsH.Deactivate)
		}

		categories := api.Group("/productcategory")
		{
			categories.GET("", categoriesH.List)
			categories.GET("/:id", categoriesH.GetByID)
			categories.POST("", categoriesH.Create)
			categories.PUT("/:id", categoriesH.Update)
			// DELETE is physical, blocked while products reference the row
			categories.DELETE("/:id", categoriesH.Delete)
		}
	}

	return r
}
