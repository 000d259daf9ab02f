// File: internal/handler/http/router.go
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Daniell17/football-app/internal/config"
	domainService "github.com/Daniell17/football-app/internal/domain/service"
	"github.com/Daniell17/football-app/internal/handler/http/middleware"
	"github.com/Daniell17/football-app/internal/service"
)

// SetupRouter настраивает маршрутизацию HTTP
func SetupRouter(
	authService *service.AuthService,
	tokenService *service.TokenService,
	sessionService *service.SessionService,
	matchService *service.MatchService,
	newsService *service.NewsService,
	purchaseService *service.PurchaseService,
	accessTokens domainService.AccessTokenService,
	authLimiter domainService.RateLimiter,
	cfg *config.Config,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	registerCustomValidators()

	router := gin.New()

	// Применение middleware
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.CorsMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// Создание обработчиков
	authHandler := NewAuthHandler(logger, authService, tokenService)
	sessionHandler := NewSessionHandler(logger, sessionService)
	matchHandler := NewMatchHandler(logger, matchService)
	newsHandler := NewNewsHandler(logger, newsService)
	ticketHandler := NewTicketHandler(logger, purchaseService)
	paymentHandler := NewPaymentHandler(logger, purchaseService)

	// Маршруты метрик и проверки работоспособности
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/readiness", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		// Маршруты аутентификации (публичные, с ограничением частоты)
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimitMiddleware(authLimiter, logger))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh-token", authHandler.Refresh)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		// Маршруты аутентификации, требующие access token
		authProtected := api.Group("/auth")
		authProtected.Use(middleware.AuthMiddleware(accessTokens, logger))
		{
			authProtected.POST("/logout", authHandler.Logout)
			authProtected.POST("/logout-all", authHandler.LogoutAll)
			authProtected.POST("/mfa/setup", authHandler.SetupMFA)
			// Код TOTP можно подобрать перебором, поэтому verify тоже за лимитером
			authProtected.POST("/mfa/verify",
				middleware.RateLimitMiddleware(authLimiter, logger),
				authHandler.VerifyMFA)
		}

		// Публичный каталог
		api.GET("/matches", matchHandler.List)
		api.GET("/matches/:id", matchHandler.Get)
		api.GET("/news", newsHandler.List)
		api.GET("/news/:id", newsHandler.Get)

		// Callback шлюза аутентифицируется подписью, не токеном
		api.POST("/payments/callback", paymentHandler.Callback)

		// Защищенные маршруты
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(accessTokens, logger))
		{
			me := protected.Group("/me")
			{
				me.GET("/sessions",
					middleware.RequirePermission(domainService.ActionRead, domainService.ResourceSession, logger),
					sessionHandler.List)
				me.DELETE("/sessions/:id",
					middleware.RequirePermission(domainService.ActionDelete, domainService.ResourceSession, logger),
					sessionHandler.Revoke)
			}

			tickets := protected.Group("/tickets")
			{
				tickets.POST("/purchase",
					middleware.RequirePermission(domainService.ActionCreate, domainService.ResourceTicket, logger),
					ticketHandler.Purchase)
				tickets.GET("/my",
					middleware.RequirePermission(domainService.ActionRead, domainService.ResourceTicket, logger),
					ticketHandler.My)
			}

			protected.GET("/payments/:orderId/status",
				middleware.RequirePermission(domainService.ActionRead, domainService.ResourcePayment, logger),
				paymentHandler.Status)

			admin := protected.Group("/admin")
			{
				admin.POST("/matches",
					middleware.RequirePermission(domainService.ActionCreate, domainService.ResourceMatch, logger),
					matchHandler.Create)
				admin.PATCH("/matches/:id",
					middleware.RequirePermission(domainService.ActionUpdate, domainService.ResourceMatch, logger),
					matchHandler.Update)
				admin.DELETE("/matches/:id",
					middleware.RequirePermission(domainService.ActionDelete, domainService.ResourceMatch, logger),
					matchHandler.Delete)

				admin.POST("/news",
					middleware.RequirePermission(domainService.ActionCreate, domainService.ResourceNews, logger),
					newsHandler.Create)
				admin.PATCH("/news/:id",
					middleware.RequirePermission(domainService.ActionUpdate, domainService.ResourceNews, logger),
					newsHandler.Update)
				admin.DELETE("/news/:id",
					middleware.RequirePermission(domainService.ActionDelete, domainService.ResourceNews, logger),
					newsHandler.Delete)
			}
		}
	}

	return router
}
