// File: cmd/club-service/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/Daniell17/football-app/internal/config"
	"github.com/Daniell17/football-app/internal/domain/repository"
	domainService "github.com/Daniell17/football-app/internal/domain/service"
	"github.com/Daniell17/football-app/internal/events/kafka"
	httpHandler "github.com/Daniell17/football-app/internal/handler/http"
	"github.com/Daniell17/football-app/internal/infrastructure/database"
	"github.com/Daniell17/football-app/internal/infrastructure/mail"
	"github.com/Daniell17/football-app/internal/infrastructure/payment"
	"github.com/Daniell17/football-app/internal/infrastructure/ratelimit"
	"github.com/Daniell17/football-app/internal/infrastructure/security"
	"github.com/Daniell17/football-app/internal/service"
	"github.com/Daniell17/football-app/internal/utils/logger"
)

const cloudEventSource = "club-service"

func main() {
	// Инициализация конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Инициализация логгера
	log, err := logger.NewLogger(cfg.Logging.Level, cfg.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Применение миграций
	if cfg.Database.AutoMigrate {
		log.Info("Running database migrations")
		if err := runMigrations(cfg.Database); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
		log.Info("Migrations applied successfully")
	}

	// Инициализация подключения к PostgreSQL
	dbPool, err := database.NewDBPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize PostgreSQL connection pool", zap.Error(err))
	}
	defer dbPool.Close()

	// Инициализация подключения к Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Инициализация репозиториев
	userRepo := database.NewPgxUserRepository(dbPool)
	sessionRepo := database.NewPgxSessionRepository(dbPool)
	matchRepo := database.NewPgxMatchRepository(dbPool)
	ticketRepo := database.NewPgxTicketRepository(dbPool)
	paymentRepo := database.NewPgxPaymentRepository(dbPool)
	newsRepo := database.NewPgxNewsRepository(dbPool)
	txManager := database.NewTxManager(dbPool)

	// Инициализация Kafka Producer
	var publisher domainService.EventPublisher
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(cfg.Kafka.Brokers, log, cloudEventSource)
		if err != nil {
			log.Fatal("Failed to initialize Kafka producer", zap.Error(err))
		}
		defer producer.Close()
		publisher = producer
	} else {
		log.Warn("Kafka disabled, domain events will be dropped")
		publisher = kafka.NewNopPublisher()
	}

	// Инфраструктура безопасности
	passwordService, err := security.NewArgon2idPasswordService(cfg.Security.PasswordHash)
	if err != nil {
		log.Fatal("Failed to initialize password service", zap.Error(err))
	}
	accessTokens, err := security.NewJWTService(cfg.JWT)
	if err != nil {
		log.Fatal("Failed to initialize JWT service", zap.Error(err))
	}
	totpService := security.NewPquernaTOTPService(cfg.MFA.TOTPIssuerName)
	breachChecker := security.NewHIBPClient(cfg.HIBP, log)
	authLimiter := ratelimit.NewRedisRateLimiter(redisClient, cfg.Security.RateLimiting, log)
	mailer := mail.NewLogMailer(cfg.Mail, log)

	gateway, err := payment.NewPayseraGateway(cfg.Payments)
	if err != nil {
		log.Fatal("Failed to initialize payment gateway", zap.Error(err))
	}

	// Инициализация сервисов
	tokenService := service.NewTokenService(
		userRepo,
		sessionRepo,
		txManager,
		passwordService,
		accessTokens,
		publisher,
		cfg.Kafka.Producer.AuthTopic,
		cfg.JWT.SessionTTL,
		log,
	)
	authService := service.NewAuthService(
		userRepo,
		passwordService,
		breachChecker,
		totpService,
		tokenService,
		mailer,
		publisher,
		cfg.Kafka.Producer.AuthTopic,
		cfg.Security.PasswordReset.TokenTTL,
		log,
	)
	sessionService := service.NewSessionService(sessionRepo, tokenService, log)
	matchService := service.NewMatchService(matchRepo, log)
	newsService := service.NewNewsService(newsRepo, log)
	purchaseService := service.NewPurchaseService(
		matchRepo,
		ticketRepo,
		paymentRepo,
		txManager,
		gateway,
		publisher,
		cfg.Kafka.Producer.BillingTopic,
		cfg.Kafka.Producer.TicketTopic,
		log,
	)

	// Настройка HTTP сервера
	router := httpHandler.SetupRouter(
		authService,
		tokenService,
		sessionService,
		matchService,
		newsService,
		purchaseService,
		accessTokens,
		authLimiter,
		cfg,
		log,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", zap.Error(err))
			stop()
		}
	}()

	// Фоновая очистка истекших сессий
	go cleanupExpiredSessions(ctx, sessionRepo, log)

	<-ctx.Done()
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped")
	os.Exit(0)
}

func runMigrations(cfg config.DatabaseConfig) error {
	migrationURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode)
	m, err := migrate.New("file://migrations", migrationURL)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// cleanupExpiredSessions периодически удаляет истекшие сессии
func cleanupExpiredSessions(ctx context.Context, sessionRepo repository.SessionRepository, log *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := sessionRepo.DeleteExpired(ctx)
			if err != nil {
				log.Error("Failed to delete expired sessions", zap.Error(err))
				continue
			}
			if deleted > 0 {
				log.Info("Expired sessions deleted", zap.Int64("count", deleted))
			}
		}
	}
}
