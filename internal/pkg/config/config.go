package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (DB connection, sender
//   credentials, VAPID keys)
// - default: Values common across all environments (cron specs, lookback
//   windows, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	SMTP   SMTPConfig
	Push   PushConfig
	Digest DigestConfig
	Match  MatchConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type RedisConfig struct {
	URL string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	// How long a posting-created event is remembered for duplicate-firing
	// suppression.
	EventTTL time.Duration `envconfig:"REDIS_EVENT_TTL" default:"6h"`
}

type SMTPConfig struct {
	Host        string        `envconfig:"SMTP_HOST" required:"true"`
	Port        int           `envconfig:"SMTP_PORT" default:"587"`
	User        string        `envconfig:"SMTP_USER" required:"true"`
	Password    string        `envconfig:"SMTP_PASSWORD" required:"true"`
	FromEmail   string        `envconfig:"SMTP_FROM_EMAIL" default:"no-reply@careerspage.app"`
	FromName    string        `envconfig:"SMTP_FROM_NAME" default:"CareersPage"`
	SendTimeout time.Duration `envconfig:"SMTP_SEND_TIMEOUT" default:"30s"`
}

type PushConfig struct {
	VAPIDPublicKey  string        `envconfig:"VAPID_PUBLIC_KEY" required:"true"`
	VAPIDPrivateKey string        `envconfig:"VAPID_PRIVATE_KEY" required:"true"`
	Subscriber      string        `envconfig:"PUSH_SUBSCRIBER" default:"mailto:no-reply@careerspage.app"`
	TTL             int           `envconfig:"PUSH_TTL_SECONDS" default:"3600"`
	SendTimeout     time.Duration `envconfig:"PUSH_SEND_TIMEOUT" default:"10s"`
	TargetBaseURL   string        `envconfig:"PUSH_TARGET_BASE_URL" default:"https://careerspage.app/jobs"`
}

type DigestConfig struct {
	DailySpec  string `envconfig:"DIGEST_DAILY_SPEC" default:"0 9 * * *"`
	WeeklySpec string `envconfig:"DIGEST_WEEKLY_SPEC" default:"0 9 * * 1"`
	Workers    int    `envconfig:"DIGEST_WORKERS" default:"8"`
}

type MatchConfig struct {
	// "weighted" (canonical) or "additive" (synonym-table point scoring).
	Strategy string `envconfig:"MATCH_STRATEGY" default:"weighted"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Redis: RedisConfig{
			URL:      "redis://localhost:16379/0",
			EventTTL: time.Minute,
		},
		SMTP: SMTPConfig{
			Host:        "localhost",
			Port:        2525,
			User:        "test",
			Password:    "test",
			FromEmail:   "no-reply@test.local",
			FromName:    "CareersPage",
			SendTimeout: 5 * time.Second,
		},
		Push: PushConfig{
			VAPIDPublicKey:  "test-public",
			VAPIDPrivateKey: "test-private",
			Subscriber:      "mailto:no-reply@test.local",
			TTL:             60,
			SendTimeout:     5 * time.Second,
			TargetBaseURL:   "https://test.local/jobs",
		},
		Digest: DigestConfig{
			DailySpec:  "0 9 * * *",
			WeeklySpec: "0 9 * * 1",
			Workers:    2,
		},
		Match: MatchConfig{
			Strategy: "weighted",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
