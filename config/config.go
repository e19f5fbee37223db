package config

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// MinAdminKeyLength is the minimum required length for the admin key in production
	MinAdminKeyLength = 32
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// Data pipeline
	DataDir           string // source CSVs and curated inputs
	GeneratedDir      string // JSON artifacts written by the builders
	HenleyConfigPath  string // optional YAML overrides for the Henley pipeline
	HenleyOffline     bool   // read PDFs from HenleyPDFDir instead of downloading
	HenleyPDFDir      string
	AllowEmptyDataset bool
	// Admin
	AdminKey string
	// Cloudflare R2 (artifact publishing)
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")
	adminKey := getEnv("ADMIN_KEY", "")

	// Validate admin key - this will fatal in production if invalid
	ValidateAdminKey(adminKey, environment)

	// In development, generate a secure key if none provided
	if adminKey == "" && environment != "production" {
		adminKey = GenerateSecureSecret()
		log.Println("[INFO] Generated temporary admin key for development. Set ADMIN_KEY env var for persistence.")
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		Environment:       environment,
		AppURL:            getEnv("APP_URL", "http://localhost:8080"),
		DataDir:           getEnv("DATA_DIR", "data"),
		GeneratedDir:      getEnv("GENERATED_DIR", "data/generated"),
		HenleyConfigPath:  getEnv("HENLEY_CONFIG_PATH", ""),
		HenleyOffline:     getEnvBool("HENLEY_OFFLINE", false),
		HenleyPDFDir:      getEnv("HENLEY_PDF_DIR", "data/henley-pdfs"),
		AllowEmptyDataset: getEnvBool("ALLOW_EMPTY_DATASET", false),
		AdminKey:          adminKey,
		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:       getEnv("R2_PUBLIC_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// ValidateAdminKey validates the admin key meets security requirements.
// In production, it must be at least 32 bytes and not a known insecure default.
func ValidateAdminKey(key string, environment string) error {
	// Known insecure defaults that must be rejected
	insecureDefaults := []string{
		"dev-key-change-in-production",
		"change-me",
		"secret",
		"development",
		"test",
		"admin",
		"",
	}

	for _, insecure := range insecureDefaults {
		if strings.EqualFold(key, insecure) {
			if environment == "production" {
				log.Fatal("[CRITICAL] ADMIN_KEY is set to an insecure default value. Generate a secure random key with: openssl rand -base64 32")
			}
			log.Printf("[WARNING] ADMIN_KEY is set to an insecure default value. This is acceptable only in development.")
			return nil
		}
	}

	if environment == "production" {
		if len(key) < MinAdminKeyLength {
			log.Fatalf("[CRITICAL] ADMIN_KEY must be at least %d characters in production (current: %d). Generate with: openssl rand -base64 32", MinAdminKeyLength, len(key))
		}
	}

	return nil
}

// GenerateSecureSecret generates a cryptographically secure random secret.
// This is used only for development when no admin key is provided.
func GenerateSecureSecret() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Printf("[WARNING] Failed to generate secure secret: %v", err)
		return ""
	}
	return base64.StdEncoding.EncodeToString(bytes)
}
