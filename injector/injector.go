//go:build wireinject
// +build wireinject

package injector

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"
	"github.com/servicehub/servicehub-core/internal/app/deliveries"
	"github.com/servicehub/servicehub-core/internal/app/middlewares"
	"github.com/servicehub/servicehub-core/internal/app/services"
	"github.com/servicehub/servicehub-core/internal/infrastructures"
)

// Application represents the main application container for servicehub-core
type Application struct {
	HealthHandler       *deliveries.HealthHandler
	ClientHandler       *deliveries.ClientHandler
	QuoteHandler        *deliveries.QuoteHandler
	ProposalHandler     *deliveries.ProposalHandler
	ServiceHandler      *deliveries.ServiceHandler
	ServiceOrderHandler *deliveries.ServiceOrderHandler
	AuditHandler        *deliveries.AuditHandler
	AuthMiddleware      *middlewares.AuthMiddleware
	RateLimitMiddleware *middlewares.RateLimitMiddleware
}

// RegisterRoutes registers all application routes using a Fiber router
func (app *Application) RegisterRoutes(router fiber.Router) {
	// Resolve the audit actor before anything else runs
	router.Use(app.AuthMiddleware.ResolveActor)

	// Apply global rate limit for public API
	router.Use(app.RateLimitMiddleware.LimitByIP(middlewares.PublicAPILimit))

	// Authenticated traffic gets an actor-based limit
	router.Use(app.RateLimitMiddleware.LimitByActor(middlewares.AuthenticatedAPILimit))

	// Register all handlers
	app.HealthHandler.RegisterRoutes(router)
	app.ClientHandler.RegisterRoutes(router)
	app.QuoteHandler.RegisterRoutes(router)
	app.ProposalHandler.RegisterRoutes(router)
	app.ServiceHandler.RegisterRoutes(router)
	app.ServiceOrderHandler.RegisterRoutes(router)
	app.AuditHandler.RegisterRoutes(router)
}

// Infrastructure providers
var infrastructureSet = wire.NewSet(
	infrastructures.NewDatabase,
	infrastructures.NewRedisClient,
	infrastructures.NewValidator,
	wire.Value("servicehub"),
	wire.Bind(new(middlewares.RateLimiter), new(*middlewares.RedisRateLimiter)),
	middlewares.NewRedisRateLimiter,
)

// Service providers
var serviceSet = wire.NewSet(
	wire.Bind(new(services.AuditStore), new(*services.GormAuditStore)),
	services.NewGormAuditStore,
	services.NewAuditService,
	services.NewNumberingService,
	services.NewClientService,
	services.NewQuoteService,
	services.NewProposalService,
	services.NewServiceService,
	services.NewServiceOrderService,
)

// Middleware providers
var middlewareSet = wire.NewSet(
	middlewares.NewAuthMiddleware,
	middlewares.NewRateLimitMiddleware,
)

// Handler providers
var handlerSet = wire.NewSet(
	deliveries.NewHealthHandler,
	deliveries.NewClientHandler,
	deliveries.NewQuoteHandler,
	deliveries.NewProposalHandler,
	deliveries.NewServiceHandler,
	deliveries.NewServiceOrderHandler,
	deliveries.NewAuditHandler,
	wire.Struct(new(Application), "*"), // This tells Wire to build the Application struct
)

// InitializeApplication initializes the application with all its dependencies
func InitializeApplication() (*Application, error) {
	wire.Build(
		infrastructureSet,
		serviceSet,
		middlewareSet,
		handlerSet,
	)
	return &Application{}, nil // Wire will populate the Application struct based on handlerSet
}
