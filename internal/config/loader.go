// File: internal/config/loader.go
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig загружает конфигурацию из файла и переменных окружения
func LoadConfig() (*Config, error) {
	// Локальный .env, если есть
	_ = godotenv.Load()

	// Установка значений по умолчанию
	setDefaults()

	env := strings.ToLower(os.Getenv("APP_ENV"))
	if env == "" {
		env = "development"
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName(fmt.Sprintf("config.%s", env))
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/club-service")
	}

	// Чтение переменных окружения
	viper.SetEnvPrefix("CLUB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Чтение конфигурационного файла
	if err := viper.ReadInConfig(); err != nil {
		// Если файл не найден, используем только переменные окружения
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Загрузка конфигурации в структуру
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// env-default теги для полей, которые не пришли ни из файла, ни из viper
	if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("failed to apply environment defaults: %w", err)
	}

	config.Environment = env

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults устанавливает значения по умолчанию для конфигурации
func setDefaults() {
	// Только базовые значения по умолчанию
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("jwt.access_token_ttl", "15m")
	viper.SetDefault("jwt.session_ttl", "720h")
}

// validate проверяет обязательные параметры
func validate(cfg *Config) error {
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	if cfg.Security.RateLimiting.AuthIP.Enabled &&
		cfg.Security.RateLimiting.AuthIP.BlockDuration <= cfg.Security.RateLimiting.AuthIP.Window {
		return fmt.Errorf("rate limit block_duration must be longer than window")
	}
	return nil
}
