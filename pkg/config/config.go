package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	ChangeFeed    ChangeFeedConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"FUELTRACK_APP_ENV" required:"true"`
	Port         string   `envconfig:"FUELTRACK_APP_PORT" required:"true"`
	LogLevel     string   `envconfig:"FUELTRACK_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"FUELTRACK_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"FUELTRACK_CORS_ORIGINS" default:"http://localhost:5173"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"FUELTRACK_DB_DSN"`

	Host     string `envconfig:"FUELTRACK_DB_HOST"`
	Port     int    `envconfig:"FUELTRACK_DB_PORT" default:"5432"`
	User     string `envconfig:"FUELTRACK_DB_USER"`
	Password string `envconfig:"FUELTRACK_DB_PASSWORD"`
	Name     string `envconfig:"FUELTRACK_DB_NAME"`
	SSLMode  string `envconfig:"FUELTRACK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"FUELTRACK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FUELTRACK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FUELTRACK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FUELTRACK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"FUELTRACK_REDIS_URL" required:"true"`
	Address      string        `envconfig:"FUELTRACK_REDIS_ADDR"`
	Password     string        `envconfig:"FUELTRACK_REDIS_PASSWORD"`
	DB           int           `envconfig:"FUELTRACK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FUELTRACK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FUELTRACK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FUELTRACK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FUELTRACK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FUELTRACK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"FUELTRACK_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"FUELTRACK_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"FUELTRACK_JWT_EXPIRATION_MINUTES" default:"60"`
	RefreshTokenTTLMinutes int    `envconfig:"FUELTRACK_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"FUELTRACK_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"FUELTRACK_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"FUELTRACK_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"FUELTRACK_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"FUELTRACK_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"FUELTRACK_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginPhoneLimit int           `envconfig:"FUELTRACK_AUTH_RATE_LIMIT_LOGIN_PHONE_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"FUELTRACK_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

// ChangeFeedConfig tunes the realtime change feed and its coalescer.
type ChangeFeedConfig struct {
	Channel        string        `envconfig:"FUELTRACK_CHANGE_FEED_CHANNEL" default:"fueltrack:changes"`
	DebounceWindow time.Duration `envconfig:"FUELTRACK_CHANGE_FEED_DEBOUNCE" default:"250ms"`
	ClientBuffer   int           `envconfig:"FUELTRACK_CHANGE_FEED_CLIENT_BUFFER" default:"8"`
	StatsCacheTTL  time.Duration `envconfig:"FUELTRACK_STATS_CACHE_TTL" default:"1m"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"FUELTRACK_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	required := []struct {
		env   string
		value string
	}{
		{"FUELTRACK_DB_HOST", db.Host},
		{"FUELTRACK_DB_USER", db.User},
		{"FUELTRACK_DB_NAME", db.Name},
	}
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either FUELTRACK_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
