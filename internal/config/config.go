package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env        string `mapstructure:"ENV"`
	ServerPort string `mapstructure:"SERVER_PORT"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`
	Timezone   string `mapstructure:"TIMEZONE"`

	JWTSecret   string `mapstructure:"JWT_SECRET"`
	JWTTTLHours int    `mapstructure:"JWT_TTL_HOURS"`
	BcryptCost  int    `mapstructure:"BCRYPT_COST"`

	// Storage
	DataDir       string `mapstructure:"DATA_DIR"`
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	DBUrl         string `mapstructure:"DATABASE_URL"`
	StrictLoad    bool   `mapstructure:"STRICT_LOAD"`

	// HTTP edge
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`
	RateLimitPerMin   int    `mapstructure:"RATE_LIMIT_PER_MIN"`
	RateLimitBurst    int    `mapstructure:"RATE_LIMIT_BURST"`
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisDB           int    `mapstructure:"REDIS_DB"`
	VerifyEmailDomain bool   `mapstructure:"VERIFY_EMAIL_DOMAIN"`

	// Media
	MediaDriver  string `mapstructure:"MEDIA_DRIVER"`
	MediaDir     string `mapstructure:"MEDIA_DIR"`
	MediaBaseURL string `mapstructure:"MEDIA_BASE_URL"`
	S3Bucket     string `mapstructure:"S3_BUCKET"`
	S3Region     string `mapstructure:"S3_REGION"`
	S3Endpoint   string `mapstructure:"S3_ENDPOINT"`
	AWSAccessKey string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
}

var defaults = map[string]any{
	"ENV":                   "development",
	"SERVER_PORT":           "8080",
	"LOG_LEVEL":             "info",
	"TIMEZONE":              "UTC",
	"JWT_SECRET":            "changeme",
	"JWT_TTL_HOURS":         24,
	"BCRYPT_COST":           10,
	"DATA_DIR":              "./data",
	"STORAGE_DRIVER":        "file",
	"DATABASE_URL":          "",
	"STRICT_LOAD":           false,
	"CORS_ORIGINS":          "*",
	"RATE_LIMIT_PER_MIN":    120,
	"RATE_LIMIT_BURST":      30,
	"REDIS_ADDR":            "",
	"REDIS_PASSWORD":        "",
	"REDIS_DB":              0,
	"VERIFY_EMAIL_DOMAIN":   false,
	"MEDIA_DRIVER":          "disk",
	"MEDIA_DIR":             "./data/media",
	"MEDIA_BASE_URL":        "/media",
	"S3_BUCKET":             "",
	"S3_REGION":             "us-east-1",
	"S3_ENDPOINT":           "",
	"AWS_ACCESS_KEY_ID":     "",
	"AWS_SECRET_ACCESS_KEY": "",
}

// Load reads .env (if present), then config.yaml (if present), then the
// process environment, which wins.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case "file":
	case "postgres":
		if c.DBUrl == "" {
			return errors.New("DATABASE_URL is required when STORAGE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	switch c.MediaDriver {
	case "disk":
	case "s3":
		if c.S3Bucket == "" {
			return errors.New("S3_BUCKET is required when MEDIA_DRIVER=s3")
		}
	default:
		return fmt.Errorf("unknown MEDIA_DRIVER %q", c.MediaDriver)
	}

	if c.IsProduction() && c.JWTSecret == "changeme" {
		return errors.New("JWT_SECRET must be set in production")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) JWTTTL() time.Duration {
	if c.JWTTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.JWTTTLHours) * time.Hour
}

// AllowedOrigins splits CORS_ORIGINS on commas. "*" allows any origin.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
