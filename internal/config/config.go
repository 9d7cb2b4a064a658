package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"orderlookup/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type (
	Config struct {
		App     App     `env-prefix:"APP_"`
		Logger  Logger  `env-prefix:"LOGGER_"`
		Client  Client  `env-prefix:"CLIENT_"`
		Display Display `env-prefix:"DISPLAY_"`
		HTTP    HTTP    `env-prefix:"HTTP_"`
		Session Session `env-prefix:"SESSION_"`
		Metrics Metrics `env-prefix:"METRICS_"`
		Tracing Tracing `env-prefix:"TRACING_"`
		Env     string  `                        env:"ENV" env-default:"local" validate:"oneof=local dev staging prod"`
	}

	App struct {
		Name    string `env:"NAME"    validate:"required"`
		Version string `env:"VERSION" validate:"required"`
	}

	// Client configures the connection to the remote order service.
	// Timeout 0 disables the deadline: a hung request keeps the widget loading.
	Client struct {
		BaseURL             string        `env:"BASE_URL"               validate:"required,url"`
		Timeout             time.Duration `env:"TIMEOUT"                validate:"gte=0s,lte=5m" env-default:"0s"`
		MaxIdleConnsPerHost int           `env:"MAX_IDLE_CONNS_PER_HOST" validate:"min=1,max=1000" env-default:"16"`
	}

	Display struct {
		Locale   string `env:"LOCALE"   validate:"required,bcp47_language_tag" env-default:"en"`
		TimeZone string `env:"TIMEZONE" validate:"required,timezone"           env-default:"Local"`
		Currency string `env:"CURRENCY" validate:"max=8"                       env-default:"₽"`
	}

	HTTP struct {
		Host              string        `env:"HOST"                validate:"required"         env-default:"0.0.0.0"`
		Port              string        `env:"PORT"                validate:"required,numeric" env-default:"8081"`
		ReadTimeout       time.Duration `env:"READ_TIMEOUT"        validate:"gte=10ms,lte=30s" env-default:"5s"`
		WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"       validate:"gte=10ms,lte=5m"  env-default:"60s"`
		IdleTimeout       time.Duration `env:"IDLE_TIMEOUT"        validate:"gte=10ms,lte=5m"  env-default:"60s"`
		ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT"    validate:"gte=10ms,lte=30s" env-default:"10s"`
		ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" validate:"gte=10ms,lte=30s" env-default:"5s"`
	}

	Session struct {
		Capacity        int           `env:"CAPACITY"         validate:"required,min=1,max=1000000" env-default:"1000"`
		TTL             time.Duration `env:"TTL"              validate:"required,gt=0s,lte=24h"     env-default:"30m"`
		CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" validate:"gt=0s,lte=24h"              env-default:"1m"`
	}

	Metrics struct {
		Enabled           bool          `env:"ENABLED"             env-default:"true"`
		Host              string        `env:"HOST"                validate:"required"         env-default:"0.0.0.0"`
		Port              string        `env:"PORT"                validate:"required,numeric" env-default:"9090"`
		ReadTimeout       time.Duration `env:"READ_TIMEOUT"        validate:"gte=10ms,lte=30s" env-default:"5s"`
		WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"       validate:"gte=10ms,lte=30s" env-default:"5s"`
		ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" validate:"gte=10ms,lte=30s" env-default:"5s"`
	}

	Tracing struct {
		Enabled  bool   `env:"ENABLED"  env-default:"false"`
		Endpoint string `env:"ENDPOINT" validate:"omitempty,url" env-default:"http://localhost:14268/api/traces"`
	}

	// Logger writes to stdout and, when Filename is set, to a rotated file.
	Logger struct {
		Level      string `env:"LEVEL"       env-default:"info"                    validate:"oneof=debug info warn error"`
		Filename   string `env:"FILENAME"    env-default:"./logs/order-lookup.log"`
		Stdout     bool   `env:"STDOUT"      env-default:"true"`
		MaxSize    int    `env:"MAX_SIZE"    env-default:"100"                     validate:"min=1,max=1000"`
		MaxBackups int    `env:"MAX_BACKUPS" env-default:"3"                       validate:"min=1,max=20"`
		MaxAge     int    `env:"MAX_AGE"     env-default:"28"                      validate:"min=1,max=365"`
	}
)

func Load() (*Config, error) {
	path := fetchConfigPath()
	if path == "" {
		return nil, entity.ErrConfigPathNotSet
	}
	return LoadPath(path)
}

func LoadPath(configPath string) (*Config, error) {
	const op = "config.LoadPath"

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, configPath)
	} else if err != nil {
		return nil, fmt.Errorf("%s: checking config file: %w", op, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: read config: %w", op, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

// LoadEnv builds the configuration from environment variables only.
func LoadEnv() (*Config, error) {
	const op = "config.LoadEnv"

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%s: read env: %w", op, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	v := validator.New()

	err := v.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("config validation: %w", err)
	}

	messages := make([]string, 0, len(validationErrs))
	for _, ve := range validationErrs {
		messages = append(messages,
			fmt.Sprintf("%s=%v must satisfy '%s'", ve.Namespace(), ve.Value(), ve.Tag()))
	}
	return fmt.Errorf("config validation: %s", strings.Join(messages, "; "))
}

func fetchConfigPath() string {
	var path string
	flag.StringVar(&path, "config", "", "Path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return path
}
