package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// developmentSecret signs tokens when no secret is configured in development.
const developmentSecret = "development-only-insecure-secret"

// placeholderSecrets are sample values from docs and example env files.
var placeholderSecrets = []string{
	developmentSecret,
	"secret",
	"changeme",
	"change-me",
	"your-secret-key",
	"your_secret_key",
	"supersecret",
}

type Config struct {
	Env            string         `yaml:"env" env:"APP_ENV" env-default:"development"`
	Debug          bool           `yaml:"debug" env:"DEBUG"`
	AppSecret      string         `yaml:"app_secret" env:"SECRET_KEY"`
	AccessTokenTTL time.Duration  `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" env-default:"30m"`
	Limiter        Limiter        `yaml:"limiter"`
	Server         Server         `yaml:"server"`
	DB             DB             `yaml:"db"`
	SMTPServer     SMTPServer     `yaml:"smtp_server"`
	BootstrapAdmin BootstrapAdmin `yaml:"bootstrap_admin"`
	Workers        Workers        `yaml:"workers"`
}

type Limiter struct {
	Enabled bool    `yaml:"enabled" env:"LIMITER_ENABLED" env-default:"true"`
	Rps     float64 `yaml:"rps" env-default:"20"`
	Burst   int     `yaml:"burst" env-default:"5"`
	// clients idle for longer than this are forgotten
	ClientTTL time.Duration `yaml:"client_ttl" env-default:"3m"`
}

type Server struct {
	Port string `yaml:"port" env:"PORT" env-default:"8000"`
	Host string `yaml:"host" env-default:"localhost"`

	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type DB struct {
	Dsn             string        `yaml:"dsn" env:"DATABASE_URL" env-required:"true"`
	MaxConns        int           `yaml:"max_conns" env-default:"25"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env-default:"10m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env-default:"5s"`
}

// SMTPServer configures outgoing mail. When ApiToken is set mail goes through
// the HTTP API at ApiURL, otherwise over SMTP.
type SMTPServer struct {
	Host     string        `yaml:"host" env:"SMTP_HOST" env-default:"smtp.gmail.com"`
	Port     int           `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Timeout  time.Duration `yaml:"timeout" env-default:"10s"`
	Username string        `yaml:"username" env:"SENDER_EMAIL"`
	Password string        `yaml:"password" env:"SENDER_PASSWORD"`
	Sender   string        `yaml:"sender" env:"SENDER"`
	ApiToken string        `yaml:"api_token" env:"MAIL_API_TOKEN"`
	ApiURL   string        `yaml:"api_url" env:"MAIL_API_URL"`
}

type BootstrapAdmin struct {
	Username string `yaml:"username" env:"ADMIN_USERNAME"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD"`
}

type Workers struct {
	Count     int `yaml:"count" env-default:"3"`
	QueueSize int `yaml:"queue_size" env-default:"100"`
}

func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// Validate fills development defaults and rejects configs that are unsafe to
// run with. Outside development it fails closed.
func (c *Config) Validate() error {
	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		return fmt.Errorf("unknown env %q, expected %s or %s", c.Env, EnvDevelopment, EnvProduction)
	}
	if c.BootstrapAdmin.Username != "" && c.BootstrapAdmin.Password == "" {
		return errors.New("bootstrap_admin.password is required when bootstrap_admin.username is set")
	}
	if c.SMTPServer.Sender == "" {
		c.SMTPServer.Sender = c.SMTPServer.Username
	}
	if c.IsDevelopment() {
		if c.AppSecret == "" {
			c.AppSecret = developmentSecret
		}
		return nil
	}
	secret := strings.TrimSpace(c.AppSecret)
	if secret == "" {
		return errors.New("app_secret (SECRET_KEY) is required")
	}
	if slices.Contains(placeholderSecrets, strings.ToLower(secret)) {
		return errors.New("app_secret (SECRET_KEY) is a placeholder value")
	}
	if c.SMTPServer.ApiToken == "" && (c.SMTPServer.Username == "" || c.SMTPServer.Password == "") {
		return errors.New("sender credentials (SENDER_EMAIL, SENDER_PASSWORD) are required")
	}
	return nil
}

// Load reads the YAML file at configPath, letting environment variables
// override it. A .env file in the working directory is loaded first when
// present. An empty configPath reads the environment only.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
	} else {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file %s not found", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err)
	}
	return cfg
}
