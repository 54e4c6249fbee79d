package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	DefaultCORSOrigins = "http://localhost:5173"
)

type Config struct {
	ServerPort string `envconfig:"PORT" default:"8080"`

	DBDriver   string `envconfig:"DB_DRIVER" default:"postgres"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"academy"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"academy.db"`

	JWTSecret     string        `envconfig:"JWT_SECRET" default:"secret"`
	SessionCookie string        `envconfig:"SESSION_COOKIE" default:"academy_session"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"72h"`
	CookieSecure  bool          `envconfig:"COOKIE_SECURE" default:"false"`
	CORSOrigins   string        `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`

	// Seeded on start when no admin with this username exists.
	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`

	ResendAPIKey string `envconfig:"RESEND_API_KEY"`
	MailFrom     string `envconfig:"MAIL_FROM" default:"Academy <noreply@academy.local>"`
	ContactInbox string `envconfig:"CONTACT_INBOX"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	// a variable set to "" in .env counts as unset
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	if cfg.DBDriver == "" {
		cfg.DBDriver = DriverPostgres
	}
	cfg.CORSOrigins = cfg.AllowedOrigins()
	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return &cfg, nil
}

// PostgresDSN builds the key/value connection string understood by the pgx driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

// AllowedOrigins is the CORS allow list without spaces. Credentials are
// allowed, so an empty list falls back to the default origin instead of a
// wildcard.
func (c *Config) AllowedOrigins() string {
	origins := strings.ReplaceAll(c.CORSOrigins, " ", "")
	if strings.Trim(origins, ",") == "" {
		return DefaultCORSOrigins
	}
	return origins
}
