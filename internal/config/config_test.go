package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanEndpoint(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://myres.openai.azure.com", "https://myres.openai.azure.com"},
		{"https://myres.openai.azure.com/", "https://myres.openai.azure.com"},
		{"https://myres.openai.azure.com/openai", "https://myres.openai.azure.com"},
		{"https://myres.openai.azure.com/openai/", "https://myres.openai.azure.com"},
		{"  https://myres.openai.azure.com/  ", "https://myres.openai.azure.com"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CleanEndpoint(tc.in), "input %q", tc.in)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	env := map[string]string{
		"DB_URL":               "postgres://localhost/test",
		"RABBITMQ_URL":         "amqp://localhost",
		"R2_ACCOUNT_ID":        "acct",
		"R2_BUCKET":            "bucket",
		"R2_ACCESS_KEY":        "ak",
		"R2_SECRET_KEY":        "sk",
		"AZURE_OPENAI_API_KEY": "key",
		"AZURE_OPENAI_ENDPOINT": "https://res.openai.azure.com/",
		"RAPIDAPI_KEY":          "rk",
		"PINECONE_API_KEY":      "pk",
		"PINECONE_INDEX_HOST":   "idx.svc.pinecone.io",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "https://res.openai.azure.com", cfg.Azure.Endpoint)
	assert.Equal(t, "gpt-4o-mini", cfg.Azure.Deployment)
	assert.Equal(t, "text-embedding-3-small", cfg.Azure.EmbeddingDeployment)
	assert.Equal(t, "job-matcher", cfg.Pinecone.IndexName)
	assert.Equal(t, 1536, cfg.Pinecone.Dimension)
	assert.Equal(t, ":8080", cfg.APIAddr)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoadMissingRequiredKey(t *testing.T) {
	t.Setenv("DB_URL", "")
	_, err := Load()
	assert.ErrorContains(t, err, "DB_URL")
}
