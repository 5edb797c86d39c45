package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_ReusesYAMLCasing(t *testing.T) {
	fileKeys := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "healthtrack"},
		},
		"storage":   map[string]any{"maxImageBytes": 5242880},
		"secretKey": map[string]any{"access": ""},
		"http":      map[string]any{"allowOrigins": []any{"*"}},
	}

	tests := map[string]string{
		"POSTGRES_SSLMODE":         "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME": "postgres.master.userName",
		"STORAGE_MAXIMAGEBYTES":    "storage.maxImageBytes",
		"SECRETKEY_ACCESS":         "secretKey.access",
		"HTTP_ALLOWORIGINS":        "http.allowOrigins",
		"APP_TIMEZONE":             "app.timezone",
		"POSTGRES__SSLMODE":        "postgres.sslMode",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, fileKeys))
		})
	}
}

func TestReplicasFromEnv_StopsAtFirstGap(t *testing.T) {
	env := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_2_HOST":     "replica-c",
		"POSTGRES_REPLICAS_2_PORT":     "5432",
	}

	replicas := replicasFromEnv(func(k string) string { return env[k] })

	if assert.Len(t, replicas, 1) {
		assert.Equal(t, "replica-a", replicas[0].Host)
		assert.Equal(t, "reader", replicas[0].UserName)
	}
}
