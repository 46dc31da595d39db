package router

import (
	"time"

	"invencost/internal/config"
	"invencost/internal/handler"
	"invencost/internal/middleware"
	"invencost/internal/model"
	"invencost/internal/repository"
	"invencost/internal/service"
	"invencost/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	productRepo := repository.NewProductRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	userSvc := service.NewUserService(userRepo)
	ingredientSvc := service.NewIngredientService(ingredientRepo, rdb, dispatcher)
	productSvc := service.NewProductService(productRepo, ingredientRepo, rdb)
	dashboardSvc := service.NewDashboardService(productRepo, ingredientRepo, rdb)
	seedSvc := service.NewSeedService(ingredientRepo, productRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(userSvc)
	ingredientsH := handler.NewIngredientsHandler(ingredientSvc)
	productsH := handler.NewProductsHandler(productSvc, cfg.PDFStoragePath)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	seedH := handler.NewSeedHandler(seedSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	api := r.Group("/api")

	// Public
	api.GET("/health", handler.Health(db, rdb))

	auth := api.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/register", authH.Register)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	protected := api.Group("", jwtMW)
	{
		ingredients := protected.Group("/ingredients")
		{
			ingredients.GET("", ingredientsH.List)
			ingredients.GET("/:id", ingredientsH.Get)
			ingredients.POST("", ingredientsH.Create)
			ingredients.PUT("/:id", ingredientsH.Update)
			ingredients.DELETE("/:id", ingredientsH.Delete)
		}

		products := protected.Group("/products")
		{
			products.GET("", productsH.List)
			products.GET("/:id", productsH.Get)
			products.POST("", productsH.Create)
			products.DELETE("/:id", productsH.Delete)
			products.GET("/:id/recipe.pdf", productsH.RecipePDF)
		}

		user := protected.Group("/user")
		{
			user.GET("/profile", usersH.Profile)
			user.PUT("/profile", usersH.UpdateProfile)
			user.POST("/change-password", usersH.ChangePassword)
		}

		protected.GET("/dashboard", dashboardH.Summary)

		protected.POST("/admin/seed", middleware.RequireRole(model.RoleAdmin), seedH.Seed)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
