package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingValues(t *testing.T) {
	cfg := &Config{}
	cfg.Env.ServiceName = "healthtrack"

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "healthtrack", cfg.Auth.Issuer)
	assert.Equal(t, "UTC", cfg.App.Timezone)
	assert.Equal(t, defaultBucketURL, cfg.Storage.BucketURL)
	assert.Equal(t, "/media", cfg.Storage.PublicBaseURL)
	assert.EqualValues(t, 5<<20, cfg.Storage.MaxImageBytes)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth: &AuthConfig{TokenTTL: time.Hour, Issuer: "issuer", BcryptCost: 12},
		App:  AppConfig{Timezone: "Asia/Taipei"},
		Storage: StorageConfig{
			BucketURL:     "mem://",
			PublicBaseURL: "https://cdn.example.com",
			MaxImageBytes: 1024,
		},
	}
	cfg.HTTP.MaxRequestBodySize = "2M"

	applyDefaults(cfg)

	assert.Equal(t, "2M", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "issuer", cfg.Auth.Issuer)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "Asia/Taipei", cfg.App.Timezone)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.EqualValues(t, 1024, cfg.Storage.MaxImageBytes)
}

func TestAppConfig_Location(t *testing.T) {
	loc, err := AppConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = AppConfig{Timezone: "Mars/Olympus_Mons"}.Location()
	assert.Error(t, err)
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlBody := "env:\n  serviceName: healthtrack\nhttp:\n  port: 8080\nsecretKey:\n  access: from-file\n"
	require.NoError(t, writeFile(dir+"/test.yaml", yamlBody))

	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("test", relTo(t, dir))
	require.NoError(t, err)

	assert.Equal(t, "healthtrack", cfg.Env.ServiceName)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in any search path")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.SecretKey.Access = "dev-secret"
		cfg.HTTP.Port = 8080
		applyDefaults(cfg)

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "development defaults", mutate: func(*Config) {}},
		{name: "missing secret", mutate: func(c *Config) { c.SecretKey.Access = "  " }, wantErr: "secretKey.access must be set"},
		{name: "short production secret", mutate: func(c *Config) { c.Env.Env = "production" }, wantErr: "at least 32 characters"},
		{name: "unknown timezone", mutate: func(c *Config) { c.App.Timezone = "Nowhere/Place" }, wantErr: "load timezone"},
		{name: "port out of range", mutate: func(c *Config) { c.HTTP.Port = 70000 }, wantErr: "out of range"},
		{
			name: "inverted password bounds",
			mutate: func(c *Config) {
				c.PasswordStrength = &PasswordStrengthConfig{MinLength: 20, MaxLength: 10}
			},
			wantErr: "minLength exceeds maxLength",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyDefaults_AllowsAnyOriginByDefault(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowOrigins)
}
