package handlers

import (
	"regexp"

	"github.com/gapy-app/gapy_backend/cmd/docs"
	portssvc "github.com/gapy-app/gapy_backend/internal/core/ports/services"
	"github.com/gapy-app/gapy_backend/internal/middleware"
	"github.com/gapy-app/gapy_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

var pinPattern = regexp.MustCompile(`^\d{4,6}$`)

// RegisterCustomValidators wires validation rules used by request DTOs.
// "txnpin" accepts a 4-6 digit transaction PIN.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("txnpin", func(fl validator.FieldLevel) bool {
			return pinPattern.MatchString(fl.Field().String())
		})
	}
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	RegisterCustomValidators()

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	RegisterHomeRoutes(r)

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)
	registerGoogleOAuthRoutes(r, cfg, services)

	// API v1 routes behind the auth middleware
	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Money movement gets its own, tighter per-IP budget.
	moneyLimiter, err := middleware.NewIPRateLimiter("30-M")
	if err != nil {
		panic("invalid money rate limit: " + err.Error())
	}
	moneyLimit := middleware.RateLimit(moneyLimiter)

	registerUserRoutes(v1, services.User)
	registerAccountRoutes(v1, services.Account, services.QR)
	registerLedgerRoutes(v1, services.Ledger, moneyLimit)
	registerTransactionRoutes(v1, services.Transaction)
	registerPayeeRoutes(v1, services.Payee)
	registerRechargeRoutes(v1, services.Recharge, moneyLimit)
	registerBillRoutes(v1, services.Bill, moneyLimit)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
