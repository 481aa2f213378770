package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// LoginRateLimit is a ulule/limiter formatted rate, e.g. "5-M" for five
	// requests per minute per IP on the credential endpoints.
	LoginRateLimit string

	// Seed credentials for the three office accounts, used only when the user
	// table is empty on startup.
	ChairmanName      string
	ChairmanEmail     string
	ChairmanPassword  string
	SecretaryName     string
	SecretaryEmail    string
	SecretaryPassword string
	TreasurerName     string
	TreasurerEmail    string
	TreasurerPassword string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "shg-backend")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("SEED_CHAIRMAN_NAME", "Chairman")
	viper.SetDefault("SEED_CHAIRMAN_EMAIL", "chairman@shg.local")
	viper.SetDefault("SEED_CHAIRMAN_PASSWORD", "change-me-chairman")
	viper.SetDefault("SEED_SECRETARY_NAME", "Secretary")
	viper.SetDefault("SEED_SECRETARY_EMAIL", "secretary@shg.local")
	viper.SetDefault("SEED_SECRETARY_PASSWORD", "change-me-secretary")
	viper.SetDefault("SEED_TREASURER_NAME", "Treasurer")
	viper.SetDefault("SEED_TREASURER_EMAIL", "treasurer@shg.local")
	viper.SetDefault("SEED_TREASURER_PASSWORD", "change-me-treasurer")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")

	cfg.ChairmanName = viper.GetString("SEED_CHAIRMAN_NAME")
	cfg.ChairmanEmail = viper.GetString("SEED_CHAIRMAN_EMAIL")
	cfg.ChairmanPassword = viper.GetString("SEED_CHAIRMAN_PASSWORD")
	cfg.SecretaryName = viper.GetString("SEED_SECRETARY_NAME")
	cfg.SecretaryEmail = viper.GetString("SEED_SECRETARY_EMAIL")
	cfg.SecretaryPassword = viper.GetString("SEED_SECRETARY_PASSWORD")
	cfg.TreasurerName = viper.GetString("SEED_TREASURER_NAME")
	cfg.TreasurerEmail = viper.GetString("SEED_TREASURER_EMAIL")
	cfg.TreasurerPassword = viper.GetString("SEED_TREASURER_PASSWORD")

	return cfg, nil
}
