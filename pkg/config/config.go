package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	Cart  CartConfig
	Flags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SOFTLINE_APP_ENV" required:"true"`
	Port         string `envconfig:"SOFTLINE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SOFTLINE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SOFTLINE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"SOFTLINE_DB_DSN"`

	LegacyHost     string `envconfig:"SOFTLINE_DB_HOST"`
	LegacyPort     int    `envconfig:"SOFTLINE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SOFTLINE_DB_USER"`
	LegacyPassword string `envconfig:"SOFTLINE_DB_PASSWORD"`
	LegacyName     string `envconfig:"SOFTLINE_DB_NAME"`
	LegacySSLMode  string `envconfig:"SOFTLINE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SOFTLINE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SOFTLINE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SOFTLINE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SOFTLINE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	// URL wins when both are set; Address/Password/DB cover deployments
	// that hand out discrete parts.
	URL          string        `envconfig:"SOFTLINE_REDIS_URL"`
	Address      string        `envconfig:"SOFTLINE_REDIS_ADDR"`
	Password     string        `envconfig:"SOFTLINE_REDIS_PASSWORD"`
	DB           int           `envconfig:"SOFTLINE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SOFTLINE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SOFTLINE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SOFTLINE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SOFTLINE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SOFTLINE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"SOFTLINE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"SOFTLINE_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"SOFTLINE_JWT_EXPIRATION_MINUTES" default:"720"`
}

// CartConfig controls how long persisted cart snapshots live. Zero keeps
// snapshots until the customer clears the cart.
type CartConfig struct {
	SnapshotTTL time.Duration `envconfig:"SOFTLINE_CART_SNAPSHOT_TTL" default:"0"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SOFTLINE_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
