package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Cedar     CedarConfig     `yaml:"cedar"`
	Tables    TablesConfig    `yaml:"tables"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,Accept-Language"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"15s"`
	ApplicationName  string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"easi-server"`
}

// AuthConfig holds identity provider token verification settings.
type AuthConfig struct {
	JWKSURL         string        `yaml:"jwks_url"          env:"AUTH_JWKS_URL"          env-required:"true"`
	Issuer          string        `yaml:"issuer"            env:"AUTH_ISSUER"            env-required:"true"`
	Audience        string        `yaml:"audience"          env:"AUTH_AUDIENCE"`
	Leeway          time.Duration `yaml:"leeway"            env:"AUTH_LEEWAY"            env-default:"30s"`
	JWKSRefresh     time.Duration `yaml:"jwks_refresh"      env:"AUTH_JWKS_REFRESH"      env-default:"1h"`
	AdminJobCode    string        `yaml:"admin_job_code"    env:"AUTH_ADMIN_JOB_CODE"    env-default:"EASI_D_GOVTEAM"`
	TRBAdminJobCode string        `yaml:"trb_admin_job_code" env:"AUTH_TRB_ADMIN_JOB_CODE" env-default:"EASI_TRB_ADMIN_D"`
}

// CedarConfig holds CEDAR system directory client settings.
type CedarConfig struct {
	Endpoint  string        `yaml:"endpoint"   env:"CEDAR_ENDPOINT"   env-required:"true"`
	APIKey    string        `yaml:"api_key"    env:"CEDAR_API_KEY"`
	Timeout   time.Duration `yaml:"timeout"    env:"CEDAR_TIMEOUT"    env-default:"10s"`
	CacheSize int           `yaml:"cache_size" env:"CEDAR_CACHE_SIZE" env-default:"16"`
	CacheTTL  time.Duration `yaml:"cache_ttl"  env:"CEDAR_CACHE_TTL"  env-default:"1h"`
}

// TablesConfig holds request table settings.
type TablesConfig struct {
	DefaultPageSize int    `yaml:"default_page_size" env:"TABLES_DEFAULT_PAGE_SIZE" env-default:"10"`
	ColumnCacheSize int    `yaml:"column_cache_size" env:"TABLES_COLUMN_CACHE_SIZE" env-default:"16"`
	HelpMailbox     string `yaml:"help_mailbox"      env:"TABLES_HELP_MAILBOX"      env-default:"IT_Governance@cms.hhs.gov"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request rate limits.
type RateLimitConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"RATE_LIMIT_ENABLED"  env-default:"true"`
	Requests int           `yaml:"requests" env:"RATE_LIMIT_REQUESTS" env-default:"120"`
	Window   time.Duration `yaml:"window"   env:"RATE_LIMIT_WINDOW"   env-default:"1m"`
}
