// Package config loads the static application configuration from
// config/env/<GO_ENV>.env files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds the static settings needed to run the application.
type Configuration struct {
	InitMode  bool   `env:"INITMODE" envDefault:"false"` // seed default data on startup
	Address   string `env:"ADDRESS" envDefault:"8080"`   // server port
	JwtSecret string `env:"JWT_SECRET,required"`         // JWT signing secret

	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"` // MongoDB connection URI
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`         // application database name

	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // allowed origins (comma separated, * = all)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // allow credentials

	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`      // max requests per window (0 = disabled)
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"`    // window length (seconds)
	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // toggle rate limiting

	// Vapi voice assistant configuration
	VapiBaseURL       string `env:"VAPI_BASE_URL" envDefault:"https://api.vapi.ai"` // Vapi API base URL
	VapiPrivateToken  string `env:"VAPI_PRIVATE_TOKEN"`                             // Bearer token for Vapi API calls
	VapiWebhookSecret string `env:"VAPI_WEBHOOK_SECRET" envDefault:"vapi-webhook-secret"`
	VapiServerURL     string `env:"VAPI_SERVER_URL"` // public URL Vapi calls back to (e.g. https://portal.example.com/api/vapi/webhook)

	// Seed admin account (created during init when missing)
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@arisolutions.com"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Frontend URL (used in notification links)
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	// TLS/HTTPS configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"`
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`
}

// getEnvPath returns the env file path for the current GO_ENV, walking up from
// the working directory until a config/env directory is found.
func getEnvPath() string {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		fmt.Printf("Unable to determine working directory: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", goEnv))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig loads the configuration from the env file for the active GO_ENV.
// fmt.Printf is used for failures since the logger may not be up yet.
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("config/env directory not found\n")
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Printf("Unable to load env file at %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Failed to parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
