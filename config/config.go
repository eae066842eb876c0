package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jumptake/backend/apperror"
)

// Store backends
const (
	StoreFirestore = "firestore"
	StorePostgres  = "postgres"
	StoreMemory    = "memory"
)

// AI backends
const (
	AIBackendGemini = "gemini"
	AIBackendVertex = "vertex"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	Debug       bool
	LogJSON     bool
	CORSOrigins []string
	MaxUploadMB int

	// Storage
	StoreBackend string
	ProjectID    string
	Location     string
	DatabaseURL  string
	CVBucketName string

	// Generative AI
	AIBackend    string
	GeminiAPIKey string
	GeminiModel  string
	AITimeout    time.Duration
	AIMaxRetries int
	AIRetryBase  time.Duration

	// Matching
	MaxRecommendations int

	// Authentication
	JWTSecret      string
	JWTExpiryHours int
	GoogleClientID string
}

// Load loads configuration from environment variables
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Port:        v.GetString("PORT"),
		Debug:       v.GetBool("DEBUG"),
		LogJSON:     v.GetBool("LOG_JSON"),
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		MaxUploadMB: v.GetInt("MAX_UPLOAD_MB"),

		StoreBackend: strings.ToLower(v.GetString("STORE_BACKEND")),
		ProjectID:    v.GetString("PROJECT_ID"),
		Location:     v.GetString("LOCATION"),
		DatabaseURL:  v.GetString("DATABASE_URL"),
		CVBucketName: v.GetString("CV_BUCKET_NAME"),

		AIBackend:    strings.ToLower(v.GetString("AI_BACKEND")),
		GeminiAPIKey: strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
		GeminiModel:  v.GetString("GEMINI_MODEL"),
		AITimeout:    time.Duration(v.GetInt("AI_TIMEOUT_SECONDS")) * time.Second,
		AIMaxRetries: v.GetInt("AI_MAX_RETRIES"),
		AIRetryBase:  time.Duration(v.GetInt("AI_RETRY_BASE_MS")) * time.Millisecond,

		MaxRecommendations: v.GetInt("MAX_RECOMMENDATIONS"),

		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTExpiryHours: v.GetInt("JWT_EXPIRY_HOURS"),
		GoogleClientID: v.GetString("GOOGLE_CLIENT_ID"),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_JSON", false)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("MAX_UPLOAD_MB", 10)

	v.SetDefault("STORE_BACKEND", StoreFirestore)
	v.SetDefault("LOCATION", "us-central1")

	v.SetDefault("AI_BACKEND", AIBackendGemini)
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("AI_TIMEOUT_SECONDS", 30)
	v.SetDefault("AI_MAX_RETRIES", 3)
	v.SetDefault("AI_RETRY_BASE_MS", 500)

	v.SetDefault("MAX_RECOMMENDATIONS", 0)

	v.SetDefault("JWT_SECRET", "jumptake-jwt-secret")
	v.SetDefault("JWT_EXPIRY_HOURS", 24)
}

// Validate checks if required configuration is present. AI credentials are
// not checked here: the server starts without them and resume parsing
// reports a configuration error per request instead.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreFirestore:
		if c.ProjectID == "" {
			return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for the Firestore store"}
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return &ConfigError{Field: "DATABASE_URL", Message: "DATABASE_URL is required for the Postgres store"}
		}
	case StoreMemory:
	default:
		return &ConfigError{Field: "STORE_BACKEND", Message: "STORE_BACKEND must be one of firestore, postgres, memory"}
	}

	if c.AIBackend != AIBackendGemini && c.AIBackend != AIBackendVertex {
		return &ConfigError{Field: "AI_BACKEND", Message: "AI_BACKEND must be gemini or vertex"}
	}

	if c.JWTSecret == "" {
		return &ConfigError{Field: "JWT_SECRET", Message: "JWT_SECRET is required"}
	}

	return nil
}

// ValidateAI checks the credentials of the configured AI backend.
func (c *Config) ValidateAI() error {
	switch c.AIBackend {
	case AIBackendVertex:
		if c.ProjectID == "" {
			return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for Vertex AI"}
		}
	default:
		if c.GeminiAPIKey == "" {
			return &ConfigError{Field: "GEMINI_API_KEY", Message: "Gemini API key not configured. Please set GEMINI_API_KEY environment variable."}
		}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// ErrorKind classifies configuration errors for the HTTP layer.
func (e *ConfigError) ErrorKind() apperror.Kind {
	return apperror.Configuration
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
