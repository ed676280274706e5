package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// CLIConfig configures the fhirctl administration tool.
type CLIConfig struct {
	FHIRBaseUrl       string        `mapstructure:"FHIR_BASE_URL"`
	FHIRClientID      string        `mapstructure:"FHIR_CLIENT_ID"`
	FHIRClientSecret  string        `mapstructure:"FHIR_CLIENT_SECRET"`
	FHIRTokenUrl      string        `mapstructure:"FHIR_TOKEN_URL"`
	FHIRAdminUrl      string        `mapstructure:"FHIR_ADMIN_URL"`
	FHIRProjectID     string        `mapstructure:"FHIR_PROJECT_ID"`
	LoggerLevel       string        `mapstructure:"LOGGER_LEVEL"`
	UploadRatePerSec  int           `mapstructure:"UPLOAD_RATE_PER_SECOND"`
	UploadConcurrency int           `mapstructure:"UPLOAD_CONCURRENCY"`
	RequestTimeout    time.Duration `mapstructure:"CLI_REQUEST_TIMEOUT"`
	MinioHost         string        `mapstructure:"MINIO_HOST"`
	MinioPort         string        `mapstructure:"MINIO_PORT"`
	MinioUsername     string        `mapstructure:"MINIO_USERNAME"`
	MinioPassword     string        `mapstructure:"MINIO_PASSWORD"`
	MinioUseSSL       bool          `mapstructure:"MINIO_USE_SSL"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	JWTExpTimeInHour  int           `mapstructure:"JWT_EXP_TIME_IN_HOUR"`
}

var cliConfigKeys = []string{
	"FHIR_BASE_URL",
	"FHIR_CLIENT_ID",
	"FHIR_CLIENT_SECRET",
	"FHIR_TOKEN_URL",
	"FHIR_ADMIN_URL",
	"FHIR_PROJECT_ID",
	"LOGGER_LEVEL",
	"UPLOAD_RATE_PER_SECOND",
	"UPLOAD_CONCURRENCY",
	"CLI_REQUEST_TIMEOUT",
	"MINIO_HOST",
	"MINIO_PORT",
	"MINIO_USERNAME",
	"MINIO_PASSWORD",
	"MINIO_USE_SSL",
	"JWT_SECRET",
	"JWT_EXP_TIME_IN_HOUR",
}

// LoadCLIConfig reads the environment and an optional env file. The token and
// admin urls default to paths below the FHIR server origin.
func LoadCLIConfig(envFile string) (*CLIConfig, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("FHIR_BASE_URL", "http://localhost:8103/fhir/R4/")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("UPLOAD_RATE_PER_SECOND", 10)
	v.SetDefault("UPLOAD_CONCURRENCY", 4)
	v.SetDefault("CLI_REQUEST_TIMEOUT", "30s")
	v.SetDefault("MINIO_HOST", "localhost")
	v.SetDefault("MINIO_PORT", "9000")
	v.SetDefault("JWT_EXP_TIME_IN_HOUR", 1)

	for _, key := range cliConfigKeys {
		v.BindEnv(key)
	}

	// Missing env files are fine, the environment alone may be enough.
	_ = v.ReadInConfig()

	cfg := &CLIConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if !strings.HasSuffix(cfg.FHIRBaseUrl, "/") {
		cfg.FHIRBaseUrl += "/"
	}
	origin := serverOrigin(cfg.FHIRBaseUrl)
	if cfg.FHIRTokenUrl == "" {
		cfg.FHIRTokenUrl = origin + "oauth2/token"
	}
	if cfg.FHIRAdminUrl == "" {
		cfg.FHIRAdminUrl = origin + "admin/"
	}

	return cfg, nil
}

func (c *CLIConfig) Validate() error {
	if c.FHIRClientID == "" || c.FHIRClientSecret == "" {
		return fmt.Errorf("FHIR_CLIENT_ID and FHIR_CLIENT_SECRET are required")
	}
	return nil
}

// serverOrigin strips the "fhir/R4/" style suffix from a FHIR base url.
func serverOrigin(baseUrl string) string {
	if index := strings.Index(baseUrl, "fhir/"); index >= 0 {
		return baseUrl[:index]
	}
	return baseUrl
}
