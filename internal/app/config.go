package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yungbote/englishai-backend/internal/data/db"
	httpMW "github.com/yungbote/englishai-backend/internal/http/middleware"
	"github.com/yungbote/englishai-backend/internal/platform/envutil"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET_KEY is required")

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type HTTPConfig struct {
	Port        string   `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type AuthConfig struct {
	JWTSecretKey   string        `yaml:"jwt_secret_key"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl"`
}

type DBConfig struct {
	Driver         string        `yaml:"driver"`
	DSN            string        `yaml:"dsn"`
	Host           string        `yaml:"host"`
	Port           string        `yaml:"port"`
	User           string        `yaml:"user"`
	Password       string        `yaml:"password"`
	Name           string        `yaml:"name"`
	ConnectRetries int           `yaml:"connect_retries"`
	ConnectBackoff time.Duration `yaml:"connect_backoff"`
}

type AIConfig struct {
	Provider      string        `yaml:"provider"`
	Timeout       time.Duration `yaml:"timeout"`
	MaxRetries    int           `yaml:"max_retries"`
	GeminiAPIKey  string        `yaml:"gemini_api_key"`
	GeminiModel   string        `yaml:"gemini_model"`
	OpenAIAPIKey  string        `yaml:"openai_api_key"`
	OpenAIBaseURL string        `yaml:"openai_base_url"`
	OpenAIModel   string        `yaml:"openai_model"`
}

type RedisConfig struct {
	// Addr empty disables the lesson cache.
	Addr      string        `yaml:"addr"`
	Password  string        `yaml:"password"`
	DB        int           `yaml:"db"`
	LessonTTL time.Duration `yaml:"lesson_ttl"`
}

type OtelConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ServiceName string  `yaml:"service_name"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

type Config struct {
	LogMode     string      `yaml:"log_mode"`
	Environment string      `yaml:"environment"`
	HTTP        HTTPConfig  `yaml:"http"`
	Auth        AuthConfig  `yaml:"auth"`
	DB          DBConfig    `yaml:"db"`
	AI          AIConfig    `yaml:"ai"`
	Redis       RedisConfig `yaml:"redis"`
	Otel        OtelConfig  `yaml:"otel"`
}

func DefaultConfig() Config {
	return Config{
		LogMode:     "development",
		Environment: "development",
		HTTP: HTTPConfig{
			Port:        "8080",
			CORSOrigins: httpMW.DefaultCORSOrigins,
		},
		Auth: AuthConfig{
			AccessTokenTTL: 30 * time.Minute,
		},
		DB: DBConfig{
			Driver:         db.DriverPostgres,
			Host:           "localhost",
			Port:           "5432",
			User:           "postgres",
			Name:           "englishai",
			ConnectRetries: 10,
			ConnectBackoff: 3 * time.Second,
		},
		AI: AIConfig{
			Provider:      ProviderGemini,
			Timeout:       60 * time.Second,
			MaxRetries:    2,
			GeminiModel:   "gemini-1.5-flash",
			OpenAIBaseURL: "https://api.openai.com",
			OpenAIModel:   "gpt-4o-mini",
		},
		Redis: RedisConfig{
			LessonTTL: 5 * time.Minute,
		},
		Otel: OtelConfig{
			ServiceName: "englishai-backend",
			SampleRatio: 1,
		},
	}
}

// LoadConfig layers defaults, the YAML file named by CONFIG_FILE and the environment
// (including a local .env), in that order.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	cfg := DefaultConfig()
	if path := envutil.String("CONFIG_FILE", ""); path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.LogMode = envutil.String("LOG_MODE", cfg.LogMode)
	cfg.Environment = envutil.String("ENVIRONMENT", cfg.Environment)

	cfg.HTTP.Port = envutil.String("PORT", cfg.HTTP.Port)
	cfg.HTTP.CORSOrigins = envutil.CSV("CORS_ALLOWED_ORIGINS", cfg.HTTP.CORSOrigins)

	if secret := envutil.First("JWT_SECRET_KEY", "SECRET_KEY"); secret != "" {
		cfg.Auth.JWTSecretKey = secret
	}
	ttlMinutes := envutil.Int("ACCESS_TOKEN_TTL_MINUTES", int(cfg.Auth.AccessTokenTTL/time.Minute))
	cfg.Auth.AccessTokenTTL = time.Duration(ttlMinutes) * time.Minute

	cfg.DB.Driver = strings.ToLower(envutil.String("DB_DRIVER", cfg.DB.Driver))
	cfg.DB.DSN = envutil.String("DATABASE_URL", cfg.DB.DSN)
	cfg.DB.Host = envutil.String("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envutil.String("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = envutil.String("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Password = envutil.String("POSTGRES_PASSWORD", cfg.DB.Password)
	cfg.DB.Name = envutil.String("POSTGRES_NAME", cfg.DB.Name)
	cfg.DB.ConnectRetries = envutil.Int("DB_CONNECT_RETRIES", cfg.DB.ConnectRetries)
	cfg.DB.ConnectBackoff = envutil.Seconds("DB_CONNECT_BACKOFF_SECONDS", cfg.DB.ConnectBackoff)

	cfg.AI.Provider = strings.ToLower(envutil.String("AI_PROVIDER", cfg.AI.Provider))
	cfg.AI.Timeout = envutil.Seconds("AI_TIMEOUT_SECONDS", cfg.AI.Timeout)
	cfg.AI.MaxRetries = envutil.Int("AI_MAX_RETRIES", cfg.AI.MaxRetries)
	if key := envutil.First("GOOGLE_API_KEY", "GEMINI_API_KEY"); key != "" {
		cfg.AI.GeminiAPIKey = key
	}
	cfg.AI.GeminiModel = envutil.String("GEMINI_MODEL", cfg.AI.GeminiModel)
	cfg.AI.OpenAIAPIKey = envutil.String("OPENAI_API_KEY", cfg.AI.OpenAIAPIKey)
	cfg.AI.OpenAIBaseURL = envutil.String("OPENAI_BASE_URL", cfg.AI.OpenAIBaseURL)
	cfg.AI.OpenAIModel = envutil.String("OPENAI_MODEL", cfg.AI.OpenAIModel)

	cfg.Redis.Addr = envutil.String("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = envutil.String("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = envutil.Int("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.LessonTTL = envutil.Seconds("LESSON_CACHE_TTL_SECONDS", cfg.Redis.LessonTTL)

	cfg.Otel.Enabled = envutil.Bool("OTEL_ENABLED", cfg.Otel.Enabled)
	cfg.Otel.ServiceName = envutil.String("OTEL_SERVICE_NAME", cfg.Otel.ServiceName)
	cfg.Otel.Endpoint = envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Otel.Endpoint)
	cfg.Otel.Insecure = envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", cfg.Otel.Insecure)
	cfg.Otel.SampleRatio = envutil.Float("OTEL_SAMPLER_RATIO", cfg.Otel.SampleRatio)
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Auth.JWTSecretKey) == "" {
		return ErrMissingJWTSecret
	}
	switch c.DB.Driver {
	case db.DriverPostgres, db.DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	switch c.AI.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unsupported AI_PROVIDER %q", c.AI.Provider)
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.HTTP.Port, ":")
}
