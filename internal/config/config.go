// File: internal/config/config.go
package config

import (
	"time"
)

type Config struct {
	Environment string         `mapstructure:"environment" env-default:"development"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Kafka       KafkaConfig    `mapstructure:"kafka"`
	JWT         JWTConfig      `mapstructure:"jwt"`
	Security    SecurityConfig `mapstructure:"security"`
	MFA         MFAConfig      `mapstructure:"mfa"`
	HIBP        HIBPConfig     `mapstructure:"hibp"`
	Payments    PaymentsConfig `mapstructure:"payments"`
	Mail        MailConfig     `mapstructure:"mail"`
	Logging     LoggingConfig  `mapstructure:"logging"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" env-default:"8080"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" env-default:"10s"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" env-default:"15s"`
}

type DatabaseConfig struct {
	Host         string        `mapstructure:"host" env-default:"localhost"`
	Port         int           `mapstructure:"port" env-default:"5432"`
	User         string        `mapstructure:"user"`
	Password     string        `mapstructure:"password"`
	DBName       string        `mapstructure:"dbname"`
	SSLMode      string        `mapstructure:"sslmode" env-default:"disable"`
	MaxOpenConns int           `mapstructure:"max_open_conns" env-default:"10"`
	MinIdleConns int           `mapstructure:"min_idle_conns" env-default:"2"`
	ConnMaxLife  time.Duration `mapstructure:"conn_max_life" env-default:"30m"`
	AutoMigrate  bool          `mapstructure:"auto_migrate" env-default:"true"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host" env-default:"localhost"`
	Port     int    `mapstructure:"port" env-default:"6379"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" env-default:"0"`
}

type KafkaProducerConfig struct {
	AuthTopic    string `mapstructure:"auth_topic" env-default:"club.auth.events"`
	BillingTopic string `mapstructure:"billing_topic" env-default:"club.billing.events"`
	TicketTopic  string `mapstructure:"ticket_topic" env-default:"club.ticket.events"`
}

type KafkaConfig struct {
	Enabled  bool                `mapstructure:"enabled" env-default:"true"`
	Brokers  []string            `mapstructure:"brokers"`
	Producer KafkaProducerConfig `mapstructure:"producer"`
}

type JWTConfig struct {
	Secret         string        `mapstructure:"secret"`
	Issuer         string        `mapstructure:"issuer" env-default:"club-service"`
	Audience       string        `mapstructure:"audience" env-default:"club-platform"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl" env-default:"15m"`
	SessionTTL     time.Duration `mapstructure:"session_ttl" env-default:"720h"`
}

type PasswordHashConfig struct {
	Memory      uint32 `mapstructure:"memory" env-default:"65536"`
	Iterations  uint32 `mapstructure:"iterations" env-default:"3"`
	Parallelism uint8  `mapstructure:"parallelism" env-default:"4"`
	SaltLength  uint32 `mapstructure:"salt_length" env-default:"16"`
	KeyLength   uint32 `mapstructure:"key_length" env-default:"32"`
}

// RateLimitRule describes a single fixed-window limit with its block cooldown.
type RateLimitRule struct {
	Enabled       bool          `mapstructure:"enabled" env-default:"true"`
	Limit         int           `mapstructure:"limit" env-default:"5"`
	Window        time.Duration `mapstructure:"window" env-default:"1m"`
	BlockDuration time.Duration `mapstructure:"block_duration" env-default:"15m"`
}

type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled" env-default:"true"`
	AuthIP  RateLimitRule `mapstructure:"auth_ip"`
}

type PasswordResetConfig struct {
	TokenTTL time.Duration `mapstructure:"token_ttl" env-default:"1h"`
}

type SecurityConfig struct {
	PasswordHash  PasswordHashConfig  `mapstructure:"password_hash"`
	RateLimiting  RateLimitConfig     `mapstructure:"rate_limiting"`
	PasswordReset PasswordResetConfig `mapstructure:"password_reset"`
}

type MFAConfig struct {
	TOTPIssuerName string `mapstructure:"totp_issuer_name" env-default:"FootballApp"`
}

type HIBPConfig struct {
	Enabled   bool          `mapstructure:"enabled" env-default:"true"`
	UserAgent string        `mapstructure:"user_agent" env-default:"ClubServiceBreachChecker/1.0"`
	Timeout   time.Duration `mapstructure:"timeout" env-default:"3s"`
}

// PaymentsConfig содержит настройки платежного шлюза Paysera.
type PaymentsConfig struct {
	ProjectID    string `mapstructure:"project_id"`
	SignPassword string `mapstructure:"sign_password"`
	GatewayURL   string `mapstructure:"gateway_url" env-default:"https://bank.paysera.com/pay/"`
	AcceptURL    string `mapstructure:"accept_url"`
	CancelURL    string `mapstructure:"cancel_url"`
	CallbackURL  string `mapstructure:"callback_url"`
	TestMode     bool   `mapstructure:"test_mode" env-default:"true"`
}

type MailConfig struct {
	FromAddress string `mapstructure:"from_address" env-default:"noreply@club.example"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" env-default:"info"`
	Format string `mapstructure:"format" env-default:"json"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" env-default:"true"`
}
