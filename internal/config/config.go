package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	OCR    OCRConfig
	Model  ModelConfig
	S3     S3Config
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// OCRConfig holds settings for the external OCR provider.
type OCRConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Endpoint    string `mapstructure:"endpoint"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	MaxImageMB  int64  `mapstructure:"max_image_mb"`
}

// Enabled reports whether an OCR credential is configured.
func (o *OCRConfig) Enabled() bool {
	return o.APIKey != ""
}

// MaxImageBytes returns the upload limit in bytes. Zero means unlimited.
func (o *OCRConfig) MaxImageBytes() int64 {
	return o.MaxImageMB * 1024 * 1024
}

// Model artifact sources.
const (
	ModelSourceLocal = "local"
	ModelSourceS3    = "s3"
)

// ModelConfig locates the fitted vectorizer/classifier artifacts.
type ModelConfig struct {
	Source   string `mapstructure:"source"`
	Dir      string `mapstructure:"dir"`
	Manifest string `mapstructure:"manifest"`
}

// S3Config holds AWS S3 settings for the s3 model source.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the SPAMLENS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SPAMLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":5000")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "0s")
	v.SetDefault("server.environment", "development")

	// OCR defaults
	v.SetDefault("ocr.api_key", "")
	v.SetDefault("ocr.endpoint", "https://api.ocr.space/parse/image")
	v.SetDefault("ocr.timeout_secs", 0)
	v.SetDefault("ocr.max_image_mb", 10)

	// Model defaults
	v.SetDefault("model.source", ModelSourceLocal)
	v.SetDefault("model.dir", "./models")
	v.SetDefault("model.manifest", "manifest.yaml")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "spamlens-models")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.prefix", "")

	// CORS defaults (all origins)
	v.SetDefault("cors.allowed_origins", "*")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string][]string{
		"server.port":          {"SPAMLENS_SERVER_PORT"},
		"server.read_timeout":  {"SPAMLENS_SERVER_READ_TIMEOUT"},
		"server.write_timeout": {"SPAMLENS_SERVER_WRITE_TIMEOUT"},
		"server.environment":   {"SPAMLENS_SERVER_ENVIRONMENT"},
		"ocr.api_key":          {"SPAMLENS_OCR_API_KEY", "OCR_API_KEY"},
		"ocr.endpoint":         {"SPAMLENS_OCR_ENDPOINT"},
		"ocr.timeout_secs":     {"SPAMLENS_OCR_TIMEOUT_SECS"},
		"ocr.max_image_mb":     {"SPAMLENS_OCR_MAX_IMAGE_MB"},
		"model.source":         {"SPAMLENS_MODEL_SOURCE"},
		"model.dir":            {"SPAMLENS_MODEL_DIR"},
		"model.manifest":       {"SPAMLENS_MODEL_MANIFEST"},
		"s3.region":            {"SPAMLENS_S3_REGION"},
		"s3.bucket":            {"SPAMLENS_S3_BUCKET"},
		"s3.endpoint":          {"SPAMLENS_S3_ENDPOINT"},
		"s3.access_key":        {"SPAMLENS_S3_ACCESS_KEY"},
		"s3.secret_key":        {"SPAMLENS_S3_SECRET_KEY"},
		"s3.prefix":            {"SPAMLENS_S3_PREFIX"},
		"cors.allowed_origins": {"SPAMLENS_CORS_ALLOWED_ORIGINS"},
	}
	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SPAMLENS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SPAMLENS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.OCR = OCRConfig{
		APIKey:      strings.TrimSpace(v.GetString("ocr.api_key")),
		Endpoint:    v.GetString("ocr.endpoint"),
		TimeoutSecs: v.GetInt("ocr.timeout_secs"),
		MaxImageMB:  v.GetInt64("ocr.max_image_mb"),
	}
	cfg.Model = ModelConfig{
		Source:   strings.ToLower(v.GetString("model.source")),
		Dir:      v.GetString("model.dir"),
		Manifest: v.GetString("model.manifest"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
		Prefix:    v.GetString("s3.prefix"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
