package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Env         string `env:"APP_ENV"      envDefault:"development"`
		Port        string `env:"PORT"         envDefault:"8088"`
		FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	}
	League struct {
		Name         string `env:"LEAGUE_NAME"   envDefault:"Premier League"`
		SeasonLength int    `env:"SEASON_LENGTH" envDefault:"38"`
		FormWindow   int    `env:"FORM_WINDOW"   envDefault:"5"`
	}
}

// Global AppConfig instance, accessible after LoadConfig() is called via Initialize.
var appConfig *Config
var once sync.Once

const defaultFrontendURL = "http://localhost:3000"

// LoadConfig loads configuration from environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	// A missing .env is fine; production sets the variables directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}

	// --- App Configuration ---
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8088")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", defaultFrontendURL)

	// --- League Configuration ---
	cfg.League.Name = getEnv("LEAGUE_NAME", "Premier League")

	var err error
	cfg.League.SeasonLength, err = getEnvAsInt("SEASON_LENGTH", 38)
	if err != nil {
		return nil, fmt.Errorf("invalid SEASON_LENGTH: %w", err)
	}
	cfg.League.FormWindow, err = getEnvAsInt("FORM_WINDOW", 5)
	if err != nil {
		return nil, fmt.Errorf("invalid FORM_WINDOW: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.App.FrontendURL == defaultFrontendURL && cfg.IsProduction() {
		log.Println("WARNING: Using default FRONTEND_URL in production. Please set FRONTEND_URL environment variable.")
	}

	appConfig = cfg
	return cfg, nil
}

// Validate rejects values the analytics cannot work with.
func (c *Config) Validate() error {
	if c.League.SeasonLength <= 0 {
		return fmt.Errorf("SEASON_LENGTH must be positive, got %d", c.League.SeasonLength)
	}
	if c.League.FormWindow <= 0 {
		return fmt.Errorf("FORM_WINDOW must be positive, got %d", c.League.FormWindow)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Default returns the configuration used when no environment is set.
// Tests build controllers from it.
func Default() *Config {
	cfg := &Config{}
	cfg.App.Env = "development"
	cfg.App.Port = "8088"
	cfg.App.FrontendURL = defaultFrontendURL
	cfg.League.Name = "Premier League"
	cfg.League.SeasonLength = 38
	cfg.League.FormWindow = 5
	return cfg
}

// Initialize loads all configurations.
// This should be called once at the start of the application (e.g., in main.go).
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
// It exits if the configuration has not been loaded yet.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}
