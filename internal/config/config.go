package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	CORS     CORSConfig     `yaml:"cors"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	Scraper  ScraperConfig  `yaml:"scraper"`
	Import   ImportConfig   `yaml:"import"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// ScrapeRateLimit caps requests per minute per client on routes that hit the dictionary site.
	ScrapeRateLimit int `yaml:"scrape_rate_limit" env:"SERVER_SCRAPE_RATE_LIMIT" env-default:"60"`
}

// CORSConfig holds Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	HealthCheck     time.Duration `yaml:"health_check"       env:"DATABASE_HEALTH_CHECK"       env-default:"1m"`
	// StatementTimeout bounds every statement server-side. Zero disables it.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"30s"`
	ApplicationName  string        `yaml:"application_name"  env:"DATABASE_APPLICATION_NAME"  env-default:"learnenglish"`
	AutoMigrate      bool          `yaml:"auto_migrate"      env:"DATABASE_AUTO_MIGRATE"      env-default:"true"`
}

// AuthConfig holds bearer token settings for administrative endpoints.
// An empty secret disables the administrative endpoints.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"learnenglish"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"24h"`
}

// Enabled reports whether a signing secret is configured.
func (c AuthConfig) Enabled() bool { return c.JWTSecret != "" }

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ScraperConfig holds settings of the dictionary and translation sources.
type ScraperConfig struct {
	DictionaryURL  string        `yaml:"dictionary_url"  env:"SCRAPER_DICTIONARY_URL"  env-default:"https://dictionary.cambridge.org/dictionary/english"`
	TranslationURL string        `yaml:"translation_url" env:"SCRAPER_TRANSLATION_URL" env-default:"https://glosbe.com/en/cs"`
	PingURL        string        `yaml:"ping_url"        env:"SCRAPER_PING_URL"`
	UserAgent      string        `yaml:"user_agent"      env:"SCRAPER_USER_AGENT"      env-default:"Mozilla/5.0 (compatible; learnenglish/1.0)"`
	Timeout        time.Duration `yaml:"timeout"         env:"SCRAPER_TIMEOUT"         env-default:"8s"`
	RetryDelay     time.Duration `yaml:"retry_delay"     env:"SCRAPER_RETRY_DELAY"     env-default:"500ms"`
	MaxExamples    int           `yaml:"max_examples"    env:"SCRAPER_MAX_EXAMPLES"    env-default:"5"`
	MaxSenses      int           `yaml:"max_senses"      env:"SCRAPER_MAX_SENSES"      env-default:"10"`
}

// ImportConfig holds batch import settings.
type ImportConfig struct {
	Workers           int    `yaml:"workers"            env:"IMPORT_WORKERS"            env-default:"4"`
	MaxLines          int    `yaml:"max_lines"          env:"IMPORT_MAX_LINES"          env-default:"1000"`
	DefaultCollection string `yaml:"default_collection" env:"IMPORT_DEFAULT_COLLECTION" env-default:"Basic"`
}
