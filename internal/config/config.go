package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DBPath          string
	SecretKey       string
	Location        *time.Location
	SettlementURL   string
	SettlementToken string
	AdminToken      string
	SweepInterval   time.Duration

	R2AccountID       string
	R2AccessKeyID     string
	R2AccessKeySecret string
	R2Bucket          string
	CDNBaseURL        string
}

// Load reads the optional .env file and collects all settings from the
// environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment variables directly")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		DBPath:          getEnv("DB_PATH", "data/thinkpink.db"),
		SecretKey:       getEnv("SECRET_KEY", "change_me_in_production"),
		Location:        mustLoadLocation(getEnv("TZ", "UTC")),
		SettlementURL:   getEnv("SETTLEMENT_URL", "http://localhost:9090"),
		SettlementToken: os.Getenv("SETTLEMENT_TOKEN"),
		AdminToken:      os.Getenv("ADMIN_TOKEN"),
		SweepInterval:   getEnvDuration("SETTLEMENT_SWEEP_INTERVAL", 5*time.Minute),

		R2AccountID:       os.Getenv("CLOUDFLARE_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2AccessKeySecret: os.Getenv("R2_ACCESS_KEY_SECRET"),
		R2Bucket:          os.Getenv("R2_BUCKET_NAME"),
		CDNBaseURL:        os.Getenv("CDN_BASE_URL"),
	}
}

func (c Config) R2Configured() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2AccessKeySecret != "" && c.R2Bucket != ""
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("invalid %s %q, using %s", key, value, fallback)
		return fallback
	}
	return parsed
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
