package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const envFile = "./configs/.env"

type Config struct {
	APIAddress string `env:"API_ADDRESS,default=:5000"`

	PostgresAddress  string `env:"POSTGRES_DB_ADDRESS,default=localhost:5432"`
	PostgresUser     string `env:"POSTGRES_USER,default=postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	PostgresDB       string `env:"POSTGRES_DB,default=healthcare"`
	PostgresSSLMode  string `env:"POSTGRES_SSLMODE,default=disable"`
	MigrationsDir    string `env:"MIGRATIONS_DIR,default=./migrations"`
	RunMigrations    bool   `env:"RUN_MIGRATIONS,default=true"`

	JWTSecret           string        `env:"JWT_SECRET"`
	JWTTTL              time.Duration `env:"JWT_TTL,default=168h"`
	VerificationCodeTTL time.Duration `env:"VERIFICATION_CODE_TTL,default=15m"`
	AuthRatePerMinute   int           `env:"AUTH_RATE_PER_MINUTE,default=10"`
	GoogleClientIDs     string        `env:"GOOGLE_CLIENT_IDS"`

	SendgridAPIKey string `env:"SENDGRID_API_KEY"`
	MailFrom       string `env:"MAIL_FROM,default=noreply@starhealth.app"`
	MailFromName   string `env:"MAIL_FROM_NAME,default=StarHealth"`

	Timezone          string `env:"TIMEZONE,default=Local"`
	CodeSweepSchedule string `env:"CODE_SWEEP_SCHEDULE,default=@every 15m"`
}

// New loads ./configs/.env (if present) into the environment once and decodes it.
func New() *Config {
	once.Do(func() {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		cfg, err := Load()
		if err != nil {
			log.Fatal("decoding envs error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load decodes the current environment without touching the .env file.
func Load() (*Config, error) {
	var cfg Config
	err := envdecode.Decode(&cfg)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	if cfg.AuthRatePerMinute <= 0 {
		return nil, fmt.Errorf("AUTH_RATE_PER_MINUTE must be positive, got %d", cfg.AuthRatePerMinute)
	}
	return &cfg, nil
}

func (c *Config) GoogleAudiences() []string {
	var ids []string
	for _, id := range strings.Split(c.GoogleClientIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// ConnString builds the postgres URL consumed by pgxpool and goose.
// Credentials are escaped, so passwords may contain URL delimiters.
func (c *Config) ConnString() string {
	u := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(c.PostgresUser, c.PostgresPassword),
		Host:     c.PostgresAddress,
		Path:     "/" + c.PostgresDB,
		RawQuery: url.Values{"sslmode": {c.PostgresSSLMode}}.Encode(),
	}
	return u.String()
}
