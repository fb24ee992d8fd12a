package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"time"

	"storefront/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	EnforceTransitionGraph bool

	LogLevel  string
	LogFormat string

	StorefrontBaseURL       string
	NotificationSchedule    string
	NotificationMaxAttempts int
	TemplateCacheTTL        time.Duration
}

var configKeys = []string{
	"HTTP_PORT",
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"DB_SSLMODE",
	"ENFORCE_TRANSITION_GRAPH",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"STOREFRONT_BASE_URL",
	"NOTIFICATION_SCHEDULE",
	"NOTIFICATION_MAX_ATTEMPTS",
	"TEMPLATE_CACHE_TTL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "storefront")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("ENFORCE_TRANSITION_GRAPH", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("STOREFRONT_BASE_URL", "http://localhost:3000")
	v.SetDefault("NOTIFICATION_SCHEDULE", "@every 1s")
	v.SetDefault("NOTIFICATION_MAX_ATTEMPTS", 5)
	v.SetDefault("TEMPLATE_CACHE_TTL", "5m")
}

// LoadConfig reads envFiles (missing files are skipped) into the process environment
// and then resolves every key from the environment over the defaults. Variables
// already set in the environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	cfg := Config{
		HTTPPort:                v.GetString("HTTP_PORT"),
		DBHost:                  v.GetString("DB_HOST"),
		DBPort:                  v.GetString("DB_PORT"),
		DBUser:                  v.GetString("DB_USER"),
		DBPassword:              v.GetString("DB_PASSWORD"),
		DBName:                  v.GetString("DB_NAME"),
		DBSslMode:               v.GetString("DB_SSLMODE"),
		EnforceTransitionGraph:  v.GetBool("ENFORCE_TRANSITION_GRAPH"),
		LogLevel:                v.GetString("LOG_LEVEL"),
		LogFormat:               v.GetString("LOG_FORMAT"),
		StorefrontBaseURL:       v.GetString("STOREFRONT_BASE_URL"),
		NotificationSchedule:    v.GetString("NOTIFICATION_SCHEDULE"),
		NotificationMaxAttempts: v.GetInt("NOTIFICATION_MAX_ATTEMPTS"),
		TemplateCacheTTL:        v.GetDuration("TEMPLATE_CACHE_TTL"),
	}

	return cfg, cfg.Validate()
}

// Validate checks the values that would otherwise fail late at startup.
func (c Config) Validate() error {
	var errList []error
	if c.HTTPPort == "" {
		errList = append(errList, errors.New("HTTP_PORT is required"))
	}
	if c.DBHost == "" || c.DBName == "" {
		errList = append(errList, errors.New("DB_HOST and DB_NAME are required"))
	}
	if err := jobs.ValidateSchedule(c.NotificationSchedule); err != nil {
		errList = append(errList, fmt.Errorf("NOTIFICATION_SCHEDULE: %w", err))
	}
	if c.NotificationMaxAttempts < 1 {
		errList = append(errList, fmt.Errorf("NOTIFICATION_MAX_ATTEMPTS must be at least 1, got %d", c.NotificationMaxAttempts))
	}
	if c.TemplateCacheTTL <= 0 {
		errList = append(errList, errors.New("TEMPLATE_CACHE_TTL must be a positive duration"))
	}
	if _, err := url.ParseRequestURI(c.StorefrontBaseURL); err != nil {
		errList = append(errList, fmt.Errorf("STOREFRONT_BASE_URL: %w", err))
	}
	return errors.Join(errList...)
}

// DSN is the postgres connection URL used by both gorm and goose.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return u.String()
}
