package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. Values are read
// from a YAML file and overridden by environment variables.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the level implied by Environment when set.
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`
	// PublicURL is the web app origin used to build links sent to users.
	PublicURL string `env:"PUBLIC_URL" env-default:"http://localhost:3000" yaml:"publicUrl"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes caps JSON request bodies.
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"1048576" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// ClientTimeout bounds calls to third party APIs.
		ClientTimeout time.Duration `env:"HTTP_CLIENT_TIMEOUT" env-default:"15s" yaml:"clientTimeout"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"journal" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"journal" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"journal" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"30m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"5m" yaml:"connMaxIdleTime"`
		// SlowQueryThreshold logs queries running longer at warn level. Zero disables it.
		SlowQueryThreshold time.Duration `env:"DATABASE_SLOW_QUERY_THRESHOLD" env-default:"500ms" yaml:"slowQueryThreshold"`
	} `yaml:"database"`

	Redis struct {
		Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
		Password string `env:"REDIS_PASSWORD" env-default:"" yaml:"password"`
		DB       int    `env:"REDIS_DB" env-default:"0" yaml:"db"`
	} `yaml:"redis"`

	Session struct {
		// Secret signs session tokens. At least 32 bytes.
		Secret     string        `env:"SESSION_SECRET" env-default:"" yaml:"secret"`
		Issuer     string        `env:"SESSION_ISSUER" env-default:"journal" yaml:"issuer"`
		TTL        time.Duration `env:"SESSION_TTL" env-default:"720h" yaml:"ttl"`
		CookieName string        `env:"SESSION_COOKIE_NAME" env-default:"journal_session" yaml:"cookieName"`
		// CookieDomain is left empty to scope the cookie to the API host.
		CookieDomain string `env:"SESSION_COOKIE_DOMAIN" env-default:"" yaml:"cookieDomain"`
	} `yaml:"session"`

	Captcha struct {
		// Secret is the reCAPTCHA server key. Empty disables verification.
		Secret   string  `env:"CAPTCHA_SECRET" env-default:"" yaml:"secret"`
		MinScore float64 `env:"CAPTCHA_MIN_SCORE" env-default:"0.5" yaml:"minScore"`
	} `yaml:"captcha"`

	Mapbox struct {
		// Token is the Mapbox access token. Empty disables geocoding.
		Token    string        `env:"MAPBOX_TOKEN" env-default:"" yaml:"token"`
		CacheTTL time.Duration `env:"MAPBOX_CACHE_TTL" env-default:"168h" yaml:"cacheTtl"`
	} `yaml:"mapbox"`

	Stripe struct {
		SecretKey     string `env:"STRIPE_SECRET_KEY" env-default:"" yaml:"secretKey"`
		WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET" env-default:"" yaml:"webhookSecret"`
		// SponsorshipProductID is the product recurring sponsorship prices are created on.
		SponsorshipProductID string `env:"STRIPE_SPONSORSHIP_PRODUCT_ID" env-default:"" yaml:"sponsorshipProductId"`
		// ProMonthlyPriceID and ProAnnualPriceID are the Explorer Pro prices.
		ProMonthlyPriceID string `env:"STRIPE_PRO_MONTHLY_PRICE_ID" env-default:"" yaml:"proMonthlyPriceId"`
		ProAnnualPriceID  string `env:"STRIPE_PRO_ANNUAL_PRICE_ID" env-default:"" yaml:"proAnnualPriceId"`
		// AccountCountry is the country of newly created connected accounts.
		AccountCountry string `env:"STRIPE_ACCOUNT_COUNTRY" env-default:"US" yaml:"accountCountry"`
	} `yaml:"stripe"`

	SMTP struct {
		// Host is the SMTP relay. Empty logs emails instead of sending them.
		Host     string        `env:"SMTP_HOST" env-default:"" yaml:"host"`
		Port     int           `env:"SMTP_PORT" env-default:"587" yaml:"port"`
		Username string        `env:"SMTP_USERNAME" env-default:"" yaml:"username"`
		Password string        `env:"SMTP_PASSWORD" env-default:"" yaml:"password"`
		From     string        `env:"SMTP_FROM" env-default:"Journal <no-reply@localhost>" yaml:"from"`
		TLS      bool          `env:"SMTP_TLS" env-default:"false" yaml:"tls"`
		Timeout  time.Duration `env:"SMTP_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"smtp"`

	Sentry struct {
		DSN        string  `env:"SENTRY_DSN" env-default:"" yaml:"dsn"`
		Release    string  `env:"SENTRY_RELEASE" env-default:"" yaml:"release"`
		SampleRate float64 `env:"SENTRY_SAMPLE_RATE" env-default:"1" yaml:"sampleRate"`
	} `yaml:"sentry"`

	Fees struct {
		Currency string `env:"FEES_CURRENCY" env-default:"usd" yaml:"currency"`
		// BasisPoints is the platform fee, 1000 = 10%.
		BasisPoints int `env:"FEES_BASIS_POINTS" env-default:"1000" yaml:"basisPoints"`
		// MinSponsorship and MinPayout are in minor units.
		MinSponsorship int64 `env:"FEES_MIN_SPONSORSHIP" env-default:"500" yaml:"minSponsorship"`
		MinPayout      int64 `env:"FEES_MIN_PAYOUT" env-default:"2500" yaml:"minPayout"`
	} `yaml:"fees"`

	Worker struct {
		Concurrency int `env:"WORKER_CONCURRENCY" env-default:"10" yaml:"concurrency"`
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// MembershipExpiry is how long an unpaid membership stays incomplete.
		MembershipExpiry time.Duration `env:"WORKER_MEMBERSHIP_EXPIRY" env-default:"24h" yaml:"membershipExpiry"`
		// FanoutBatch is the number of followers notified per insert.
		FanoutBatch int `env:"WORKER_FANOUT_BATCH" env-default:"500" yaml:"fanoutBatch"`
	} `yaml:"worker"`

	RateLimit struct {
		// AuthPerMinute is the number of /v1/auth requests per IP and minute.
		AuthPerMinute int           `env:"RATELIMIT_AUTH_PER_MINUTE" env-default:"20" yaml:"authPerMinute"`
		Burst         int           `env:"RATELIMIT_BURST" env-default:"5" yaml:"burst"`
		Cleanup       time.Duration `env:"RATELIMIT_CLEANUP" env-default:"5m" yaml:"cleanup"`
		// TrustedProxies are the IPs or CIDRs whose X-Forwarded-For is honored.
		TrustedProxies []string `env:"RATELIMIT_TRUSTED_PROXIES" env-separator:"," yaml:"trustedProxies"`
	} `yaml:"ratelimit"`

	CORS struct {
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:3000" env-separator:"," yaml:"allowedOrigins"`
		// TrustedClients are X-Client header values let through the bot guard.
		TrustedClients []string `env:"CORS_TRUSTED_CLIENTS" env-default:"journal-mobile" env-separator:"," yaml:"trustedClients"`
	} `yaml:"cors"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// IsDevelopment reports whether the service runs in the development environment.
func (c *Config) IsDevelopment() bool { return c.Environment == "development" }
