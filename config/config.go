package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultTokenTTL           = 24 * time.Hour
	defaultTimezone           = "UTC"
	defaultMaxImageBytes      = 5 << 20
	defaultBucketURL          = "file:///tmp/healthtrack/media?create_dir=true"
	defaultPublicBaseURL      = "/media"
)

const (
	// productionEnv switches on the stricter secret checks in Validate.
	productionEnv       = "production"
	minProductionSecret = 32
	replicaEnvPrefix    = "POSTGRES_REPLICAS_"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowOrigins feeds the CORS middleware; empty means any origin.
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts     struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey.Access signs the bearer tokens.
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	App AppConfig `json:"app" yaml:"app"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Migration struct {
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	} `json:"migration" yaml:"migration"`
}

type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	Issuer     string        `json:"issuer" yaml:"issuer"`
}

// PasswordStrengthConfig is enforced on registration and admin bootstrap.
type PasswordStrengthConfig struct {
	MinLength        int      `json:"minLength" yaml:"minLength"`
	RequireUppercase bool     `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool     `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool     `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool     `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int      `json:"maxLength" yaml:"maxLength"`
	ForbiddenWords   []string `json:"forbiddenWords" yaml:"forbiddenWords"`
}

type AppConfig struct {
	// Timezone decides which calendar date "today" is.
	Timezone string `json:"timezone" yaml:"timezone"`
}

func (a AppConfig) Location() (*time.Location, error) {
	name := a.Timezone
	if strings.TrimSpace(name) == "" {
		name = defaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", name)
	}

	return loc, nil
}

// StorageConfig points at a gocloud.dev bucket URL (file://, mem://, s3://, gs://, azblob://).
type StorageConfig struct {
	BucketURL     string `json:"bucketURL" yaml:"bucketURL"`
	PublicBaseURL string `json:"publicBaseURL" yaml:"publicBaseURL"`
	MaxImageBytes int64  `json:"maxImageBytes" yaml:"maxImageBytes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
	// File enables a rotating file sink in addition to stdout.
	File *LogFile `json:"file" yaml:"file"`
}

// LogFile configures lumberjack rotation.
type LogFile struct {
	Path       string `json:"path" yaml:"path"`
	MaxSizeMB  int    `json:"maxSizeMB" yaml:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays"`
	Compress   bool   `json:"compress" yaml:"compress"`
}

// New loads config.yaml from the usual locations, overlays the environment,
// fills defaults and rejects settings the service cannot run with.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadWithEnv reads <name>.yaml from the working directory or one of the
// relative search paths, then lets environment variables override any key.
// POSTGRES_SSLMODE maps onto postgres.sslMode by matching existing YAML keys.
func LoadWithEnv[T any](name string, searchPaths ...string) (*T, error) {
	configFile, err := locateConfigFile(name, searchPaths)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", configFile)
	}

	fileKeys := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fileKeys), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "overlay environment")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", configFile)
	}

	return cfg, nil
}

func locateConfigFile(name string, searchPaths []string) (string, error) {
	candidates := []string{defaultPath}
	if len(searchPaths) > 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "resolve working directory")
		}
		for _, p := range searchPaths {
			candidates = append(candidates, filepath.Join(pwd, p))
		}
	}

	for _, dir := range candidates {
		path := filepath.Join(dir, name+".yaml")
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", name)
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if len(cfg.HTTP.AllowOrigins) == 0 {
		cfg.HTTP.AllowOrigins = []string{"*"}
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}
	if cfg.Auth.Issuer == "" {
		cfg.Auth.Issuer = cfg.Env.ServiceName
	}

	if strings.TrimSpace(cfg.App.Timezone) == "" {
		cfg.App.Timezone = defaultTimezone
	}

	if cfg.Storage.BucketURL == "" {
		cfg.Storage.BucketURL = defaultBucketURL
	}
	if cfg.Storage.PublicBaseURL == "" {
		cfg.Storage.PublicBaseURL = defaultPublicBaseURL
	}
	if cfg.Storage.MaxImageBytes <= 0 {
		cfg.Storage.MaxImageBytes = defaultMaxImageBytes
	}
}

// Validate reports the first setting the service cannot start with.
func (c *Config) Validate() error {
	secret := strings.TrimSpace(c.SecretKey.Access)
	if secret == "" {
		return errors.New("secretKey.access must be set")
	}
	if strings.EqualFold(c.Env.Env, productionEnv) && len(secret) < minProductionSecret {
		return errors.Errorf("secretKey.access must be at least %d characters in production", minProductionSecret)
	}

	if _, err := c.App.Location(); err != nil {
		return err
	}

	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return errors.Errorf("http.port %d out of range", c.HTTP.Port)
	}

	if c.PasswordStrength != nil && c.PasswordStrength.MaxLength > 0 &&
		c.PasswordStrength.MinLength > c.PasswordStrength.MaxLength {
		return errors.New("passwordStrength.minLength exceeds maxLength")
	}

	return nil
}

// canonicalizeEnvKey turns SECRETKEY_ACCESS into secretKey.access, reusing
// the casing of keys already present in the YAML file. Segments with no YAML
// counterpart are lower-cased.
func canonicalizeEnvKey(rawKey string, fileKeys map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	path := make([]string, 0, len(segments))
	level := fileKeys

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		key, child := matchKey(level, segment)
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

// matchKey finds segment among the keys of level, ignoring case and punctuation.
func matchKey(level map[string]any, segment string) (string, map[string]any) {
	want := foldKey(segment)
	for key, value := range level {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_HOST/PORT/USERNAME/PASSWORD
// starting at n=0 and stops at the first replica without a host or port.
func replicasFromEnv(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := replicaEnvPrefix + strconv.Itoa(i) + "_"

		host, port := getenv(prefix+"HOST"), getenv(prefix+"PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: getenv(prefix + "USERNAME"),
			Password: getenv(prefix + "PASSWORD"),
		})
	}
}
