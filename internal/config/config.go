package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	DatabaseURL       string
	RedisURL          string
	NATSURL           string
	AuditSubject      string
	TokenSecret       string
	TokenTTL          time.Duration
	AIBaseURL         string
	AIAPIKey          string
	AIModel           string
	AIMaxTokens       int
	AITimeout         time.Duration
	KnowledgeMaxBytes int
	BotCacheTTL       time.Duration
	StaticImageBase   string
	CloudinaryName    string
	CloudinaryKey     string
	CloudinarySecret  string
	CloudinaryFolder  string
	UploadMaxMB       int
	AdminUsername     string
	AdminPassword     string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("EMI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Campus Info API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("token.ttl", "12h")
	v.SetDefault("audit.subject", "campus.audit")
	v.SetDefault("ai.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("ai.model", "llama-3.3-70b-versatile")
	v.SetDefault("ai.max_tokens", 1024)
	v.SetDefault("ai.timeout", "30s")
	v.SetDefault("knowledge.max_bytes", 24*1024)
	v.SetDefault("bot.cache_ttl", "2m")
	v.SetDefault("static.image_base", "/static/curricula")
	v.SetDefault("cloudinary.folder", "campus/curricula")
	v.SetDefault("upload.max_mb", 10)
	v.SetDefault("admin.username", "admin")

	tokenTTL, err := time.ParseDuration(v.GetString("token.ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid token ttl: %w", err)
	}

	aiTimeout, err := time.ParseDuration(v.GetString("ai.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid ai timeout: %w", err)
	}

	botTTL, err := time.ParseDuration(v.GetString("bot.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid bot cache ttl: %w", err)
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		DatabaseURL:       v.GetString("database.url"),
		RedisURL:          v.GetString("redis.url"),
		NATSURL:           v.GetString("nats.url"),
		AuditSubject:      v.GetString("audit.subject"),
		TokenSecret:       v.GetString("token.secret"),
		TokenTTL:          tokenTTL,
		AIBaseURL:         v.GetString("ai.base_url"),
		AIAPIKey:          v.GetString("ai.api_key"),
		AIModel:           v.GetString("ai.model"),
		AIMaxTokens:       v.GetInt("ai.max_tokens"),
		AITimeout:         aiTimeout,
		KnowledgeMaxBytes: v.GetInt("knowledge.max_bytes"),
		BotCacheTTL:       botTTL,
		StaticImageBase:   strings.TrimRight(v.GetString("static.image_base"), "/"),
		CloudinaryName:    v.GetString("cloudinary.cloud_name"),
		CloudinaryKey:     v.GetString("cloudinary.api_key"),
		CloudinarySecret:  v.GetString("cloudinary.api_secret"),
		CloudinaryFolder:  v.GetString("cloudinary.folder"),
		UploadMaxMB:       v.GetInt("upload.max_mb"),
		AdminUsername:     v.GetString("admin.username"),
		AdminPassword:     v.GetString("admin.password"),
	}

	if cfg.TokenSecret == "" {
		return Config{}, fmt.Errorf("token secret must be provided")
	}

	if cfg.KnowledgeMaxBytes <= 0 {
		cfg.KnowledgeMaxBytes = 24 * 1024
	}

	if cfg.AIMaxTokens <= 0 {
		cfg.AIMaxTokens = 1024
	}

	return cfg, nil
}
