package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Search   SearchConfig
	GigaChat GigaChatConfig
	Logger   LoggerConfig
	Seed     SeedConfig
}

type LoggerConfig struct {
	Level    string
	Encoding string // json or console
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

// JWTConfig holds the shared secret of tokens minted by the HustleKE auth
// service. This service only validates them.
type JWTConfig struct {
	SecretKey string
	AdminRole string
}

type SearchConfig struct {
	DefaultLimit    int
	MaxLimit        int
	ContextEntries  int
	RefreshInterval time.Duration
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	Model              string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// Enabled reports whether an AI answerer can be built.
func (c GigaChatConfig) Enabled() bool {
	return c.APIKey != ""
}

type SeedConfig struct {
	File      string
	CacheFile string
}

func Load() (*Config, error) {
	// First .env found wins; plain environment variables work without one.
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout := getEnvInt("SERVER_READ_TIMEOUT", 15)
	writeTimeout := getEnvInt("SERVER_WRITE_TIMEOUT", 15)
	refresh := getEnvInt("SEARCH_REFRESH_SECONDS", 300)
	aiTimeout := getEnvInt("GIGACHAT_TIMEOUT_SECONDS", 20)

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "hustleke"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 10)),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			AdminRole: getEnv("JWT_ADMIN_ROLE", "admin"),
		},
		Search: SearchConfig{
			DefaultLimit:    getEnvInt("SEARCH_DEFAULT_LIMIT", 5),
			MaxLimit:        getEnvInt("SEARCH_MAX_LIMIT", 20),
			ContextEntries:  getEnvInt("SEARCH_AI_CONTEXT_ENTRIES", 3),
			RefreshInterval: time.Duration(refresh) * time.Second,
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			Model:              getEnv("GIGACHAT_MODEL", "GigaChat"),
			InsecureSkipVerify: getEnvBool("GIGACHAT_INSECURE_SKIP_VERIFY", false),
			Timeout:            time.Duration(aiTimeout) * time.Second,
		},
		Logger: LoggerConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Encoding: getEnv("LOG_ENCODING", "json"),
		},
		Seed: SeedConfig{
			File:      getEnv("SEED_FILE", "data/knowledge_base.yaml"),
			CacheFile: getEnv("SEED_CACHE_FILE", "data/.seed_cache.json"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(getEnv(key, "")) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
