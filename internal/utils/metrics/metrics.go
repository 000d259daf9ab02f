// File: internal/utils/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics содержит метрики для мониторинга сервиса
var (
	// RequestsTotal счетчик общего количества запросов
	RequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "club_service_requests_total",
		Help: "The total number of requests",
	})

	// ResponsesTotal счетчик ответов по статусам
	ResponsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "club_service_responses_total",
		Help: "The total number of responses by status code",
	}, []string{"status"})

	// RequestDuration гистограмма времени обработки запросов
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "club_service_request_duration_seconds",
		Help:    "The request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// LoginAttemptsTotal счетчик попыток входа
	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "club_service_login_attempts_total",
		Help: "The total number of login attempts",
	}, []string{"status"})

	// TokenRefreshTotal счетчик обновлений токенов
	TokenRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "club_service_token_refresh_total",
		Help: "The total number of token refreshes",
	}, []string{"status"})

	// SessionTheftTotal счетчик обнаруженных повторных использований refresh токена
	SessionTheftTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "club_service_session_theft_detected_total",
		Help: "The total number of refresh token replay detections",
	})

	// RateLimitExceededTotal счетчик превышений ограничения частоты запросов
	RateLimitExceededTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "club_service_rate_limit_exceeded_total",
		Help: "The total number of rate limit exceeded events",
	})

	// PaymentsInitializedTotal счетчик созданных платежей
	PaymentsInitializedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "club_service_payments_initialized_total",
		Help: "The total number of initialized payments",
	})

	// PaymentCallbacksTotal счетчик обработанных уведомлений шлюза
	PaymentCallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "club_service_payment_callbacks_total",
		Help: "The total number of processed gateway callbacks",
	}, []string{"result"})

	// TicketsSoldTotal счетчик проданных билетов
	TicketsSoldTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "club_service_tickets_sold_total",
		Help: "The total number of tickets sold",
	})

	// DatabaseOperationsTotal счетчик операций с базой данных
	DatabaseOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "club_service_database_operations_total",
		Help: "The total number of database operations",
	}, []string{"operation", "status"})

	// ActiveSessions счетчик активных сессий
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "club_service_active_sessions",
		Help: "The number of active sessions",
	})
)
