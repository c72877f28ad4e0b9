package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId":      "",
			"kafkaGroupId": "",
		},
		"gateway": map[string]any{
			"keySecret": "",
			"baseUrl":   "",
		},
		"storage": map[string]any{
			"dynamodb": map[string]any{
				"orderTable": "",
			},
		},
	}

	tests := map[string]string{
		"POSTGRES_SSLMODE":            "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME":    "postgres.master.userName",
		"PUBSUB_KAFKAGROUPID":         "pubsub.kafkaGroupId",
		"GATEWAY_KEYSECRET":           "gateway.keySecret",
		"GATEWAY_BASEURL":             "gateway.baseUrl",
		"STORAGE_DYNAMODB_ORDERTABLE": "storage.dynamodb.orderTable",
		"SECRETKEY_ACCESS":            "secretkey.access",
		"GATEWAY__KEYSECRET":          "gateway.keySecret",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
env:
  serviceName: petverse
gateway:
  baseUrl: https://api.gateway.test
  keySecret: ""
  timeout: 3s
checkout:
  flatShippingFee: 4000
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlBody), 0o600))
	t.Setenv("GATEWAY_KEYSECRET", "s3cret")
	t.Setenv("CHECKOUT_FLATSHIPPINGFEE", "4500")

	cfg, err := LoadWithEnv[Config]("config", filepath.Join(dir, "missing"), dir)
	require.NoError(t, err)

	assert.Equal(t, "petverse", cfg.Env.ServiceName)
	assert.Equal(t, "https://api.gateway.test", cfg.Gateway.BaseURL)
	assert.Equal(t, "s3cret", cfg.Gateway.KeySecret)
	assert.Equal(t, 3*time.Second, cfg.Gateway.Timeout)
	assert.EqualValues(t, 4500, cfg.Checkout.FlatShippingFee)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("config", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestSearchDirs_ConfigDirFirst(t *testing.T) {
	t.Setenv(configDirEnv, "/etc/petverse")

	assert.Equal(t, "/etc/petverse", searchDirs()[0])
}

func TestReplicasFromEnv(t *testing.T) {
	env := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-0",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-1",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		// index 2 has no port, so 3 is never read
		"POSTGRES_REPLICAS_2_HOST": "replica-2",
		"POSTGRES_REPLICAS_3_HOST": "replica-3",
		"POSTGRES_REPLICAS_3_PORT": "5435",
	}
	lookup := func(key string) (string, bool) {
		value, ok := env[key]

		return value, ok
	}

	assert.Equal(t, []postgres.ConnectionConfig{
		{Host: "replica-0", Port: "5432", UserName: "reader"},
		{Host: "replica-1", Port: "5433"},
	}, replicasFromEnv(lookup))
	assert.Nil(t, replicasFromEnv(func(string) (string, bool) { return "", false }))
}
