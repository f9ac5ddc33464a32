package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// R2 holds Cloudflare R2 object storage credentials.
type R2 struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

// Azure holds Azure OpenAI credentials and deployment names.
type Azure struct {
	APIKey              string
	Endpoint            string
	APIVersion          string
	Deployment          string
	EmbeddingDeployment string
}

// Pinecone holds the vector index connection settings.
type Pinecone struct {
	APIKey    string
	IndexHost string
	IndexName string
	Dimension int
}

// Config is the full application configuration, loaded from the
// environment (optionally seeded from a .env file).
type Config struct {
	DBURL       string
	RabbitMQURL string
	R2          R2
	Azure       Azure
	RapidAPIKey string
	Pinecone    Pinecone

	// Path to the .docx template used when rendering tailored resumes.
	ResumeTemplate string

	APIAddr string
	Workers int
}

func required(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("empty %s in environment", key)
	}
	return v, nil
}

func optional(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// CleanEndpoint normalizes an Azure OpenAI endpoint, stripping a trailing
// slash and a trailing /openai path segment that would otherwise double up
// in request URLs.
func CleanEndpoint(endpoint string) string {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	endpoint = strings.TrimSuffix(endpoint, "/openai")
	return endpoint
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	var err error
	if cfg.DBURL, err = required("DB_URL"); err != nil {
		return nil, err
	}
	if cfg.RabbitMQURL, err = required("RABBITMQ_URL"); err != nil {
		return nil, err
	}

	if cfg.R2.AccountID, err = required("R2_ACCOUNT_ID"); err != nil {
		return nil, err
	}
	if cfg.R2.Bucket, err = required("R2_BUCKET"); err != nil {
		return nil, err
	}
	if cfg.R2.AccessKey, err = required("R2_ACCESS_KEY"); err != nil {
		return nil, err
	}
	if cfg.R2.SecretKey, err = required("R2_SECRET_KEY"); err != nil {
		return nil, err
	}

	if cfg.Azure.APIKey, err = required("AZURE_OPENAI_API_KEY"); err != nil {
		return nil, err
	}
	endpoint, err := required("AZURE_OPENAI_ENDPOINT")
	if err != nil {
		return nil, err
	}
	cfg.Azure.Endpoint = CleanEndpoint(endpoint)
	cfg.Azure.APIVersion = optional("AZURE_OPENAI_API_VERSION", "2024-02-15-preview")
	cfg.Azure.Deployment = optional("AZURE_OPENAI_DEPLOYMENT", "gpt-4o-mini")
	cfg.Azure.EmbeddingDeployment = optional("AZURE_OPENAI_EMBEDDING_DEPLOYMENT", "text-embedding-3-small")

	if cfg.RapidAPIKey, err = required("RAPIDAPI_KEY"); err != nil {
		return nil, err
	}

	if cfg.Pinecone.APIKey, err = required("PINECONE_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Pinecone.IndexHost, err = required("PINECONE_INDEX_HOST"); err != nil {
		return nil, err
	}
	cfg.Pinecone.IndexName = optional("INDEX_NAME", "job-matcher")
	cfg.Pinecone.Dimension = 1536
	if v := os.Getenv("EMBEDDING_DIMENSION"); v != "" {
		if n, convErr := strconv.Atoi(v); convErr == nil && n > 0 {
			cfg.Pinecone.Dimension = n
		}
	}

	cfg.ResumeTemplate = optional("RESUME_TEMPLATE", "templates/resume.docx")
	cfg.APIAddr = optional("API_ADDR", ":8080")
	cfg.Workers = 3
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		if n, convErr := strconv.Atoi(v); convErr == nil && n > 0 {
			cfg.Workers = n
		}
	}

	return cfg, nil
}

// MissingKeys reports which of the required environment keys are absent.
// Used by the verify command to print a setup report without failing hard.
func MissingKeys() []string {
	_ = godotenv.Load()
	keys := []string{
		"DB_URL",
		"RABBITMQ_URL",
		"R2_ACCOUNT_ID",
		"R2_BUCKET",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"AZURE_OPENAI_API_KEY",
		"AZURE_OPENAI_ENDPOINT",
		"RAPIDAPI_KEY",
		"PINECONE_API_KEY",
		"PINECONE_INDEX_HOST",
	}
	var missing []string
	for _, k := range keys {
		if os.Getenv(k) == "" {
			missing = append(missing, k)
		}
	}
	return missing
}
