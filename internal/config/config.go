// README: Config loader; .env file plus TRANSFER_* environment overrides with defaults.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type DistanceConfig struct {
	Timeout      time.Duration
	OSRMBaseURL  string
	CacheBackend string // memory or redis
	CacheTTL     time.Duration
	CacheSize    int // memory backend only
}

type CouponConfig struct {
	RateLimit  int
	RateWindow time.Duration
}

type SMTPConfig struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	Operations string
}

// Configured reports whether enough credentials are present to attempt delivery.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.User != "" && c.Password != ""
}

type PaymentConfig struct {
	APIKey       string
	CustomersURL string
	PaymentsURL  string
	Timeout      time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
		// TrustedProxies lists the proxy IPs/CIDRs whose forwarding headers are
		// believed. Empty means the peer address is the client.
		TrustedProxies []string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Maps struct {
		APIKey string
	}
	Log struct {
		Level  string
		Format string
	}
	Distance DistanceConfig
	Coupon   CouponConfig
	SMTP     SMTPConfig
	Payment  PaymentConfig
}

var defaults = map[string]any{
	"TRANSFER_HTTP_ADDR":             ":8080",
	"TRANSFER_TRUSTED_PROXIES":       "",
	"TRANSFER_DB_DSN":                "",
	"TRANSFER_REDIS_ADDR":            "localhost:6379",
	"TRANSFER_MAPS_API_KEY":          "",
	"TRANSFER_LOG_LEVEL":             "info",
	"TRANSFER_LOG_FORMAT":            "text",
	"TRANSFER_DISTANCE_TIMEOUT":      "4s",
	"TRANSFER_OSRM_BASE_URL":         "https://router.project-osrm.org",
	"TRANSFER_DISTANCE_CACHE":        "memory",
	"TRANSFER_DISTANCE_CACHE_TTL":    "24h",
	"TRANSFER_DISTANCE_CACHE_SIZE":   10000,
	"TRANSFER_COUPON_RATE_LIMIT":     10,
	"TRANSFER_COUPON_RATE_WINDOW":    "1h",
	"TRANSFER_SMTP_HOST":             "",
	"TRANSFER_SMTP_PORT":             587,
	"TRANSFER_SMTP_USER":             "",
	"TRANSFER_SMTP_PASSWORD":         "",
	"TRANSFER_SMTP_FROM":             "",
	"TRANSFER_SMTP_OPERATIONS":       "",
	"TRANSFER_PAYMENT_API_KEY":       "",
	"TRANSFER_PAYMENT_CUSTOMERS_URL": "https://api.asaas.com/v3/customers",
	"TRANSFER_PAYMENT_PAYMENTS_URL":  "https://api.asaas.com/v3/payments",
	"TRANSFER_PAYMENT_TIMEOUT":       "15s",
}

// Load reads the optional env file named by TRANSFER_ENV_FILE (default .env) and
// overlays process environment variables on top of it.
func Load() (Config, error) {
	v := viper.New()
	for k, def := range defaults {
		v.SetDefault(k, def)
	}
	v.AutomaticEnv()

	envFile := os.Getenv("TRANSFER_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("stat %s: %w", envFile, err)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = v.GetString("TRANSFER_HTTP_ADDR")
	proxies, err := parseProxies(v.GetString("TRANSFER_TRUSTED_PROXIES"))
	if err != nil {
		return Config{}, err
	}
	cfg.HTTP.TrustedProxies = proxies
	cfg.DB.DSN = v.GetString("TRANSFER_DB_DSN")
	cfg.Redis.Addr = v.GetString("TRANSFER_REDIS_ADDR")
	cfg.Maps.APIKey = v.GetString("TRANSFER_MAPS_API_KEY")
	cfg.Log.Level = v.GetString("TRANSFER_LOG_LEVEL")
	cfg.Log.Format = v.GetString("TRANSFER_LOG_FORMAT")

	cfg.Distance.Timeout = v.GetDuration("TRANSFER_DISTANCE_TIMEOUT")
	cfg.Distance.OSRMBaseURL = v.GetString("TRANSFER_OSRM_BASE_URL")
	cfg.Distance.CacheBackend = v.GetString("TRANSFER_DISTANCE_CACHE")
	cfg.Distance.CacheTTL = v.GetDuration("TRANSFER_DISTANCE_CACHE_TTL")
	cfg.Distance.CacheSize = v.GetInt("TRANSFER_DISTANCE_CACHE_SIZE")

	cfg.Coupon.RateLimit = v.GetInt("TRANSFER_COUPON_RATE_LIMIT")
	cfg.Coupon.RateWindow = v.GetDuration("TRANSFER_COUPON_RATE_WINDOW")

	cfg.SMTP.Host = v.GetString("TRANSFER_SMTP_HOST")
	cfg.SMTP.Port = v.GetInt("TRANSFER_SMTP_PORT")
	cfg.SMTP.User = v.GetString("TRANSFER_SMTP_USER")
	cfg.SMTP.Password = v.GetString("TRANSFER_SMTP_PASSWORD")
	cfg.SMTP.From = v.GetString("TRANSFER_SMTP_FROM")
	cfg.SMTP.Operations = v.GetString("TRANSFER_SMTP_OPERATIONS")

	cfg.Payment.APIKey = v.GetString("TRANSFER_PAYMENT_API_KEY")
	cfg.Payment.CustomersURL = v.GetString("TRANSFER_PAYMENT_CUSTOMERS_URL")
	cfg.Payment.PaymentsURL = v.GetString("TRANSFER_PAYMENT_PAYMENTS_URL")
	cfg.Payment.Timeout = v.GetDuration("TRANSFER_PAYMENT_TIMEOUT")

	if cfg.Distance.Timeout <= 0 {
		return Config{}, fmt.Errorf("TRANSFER_DISTANCE_TIMEOUT must be positive")
	}
	if cfg.Distance.CacheSize <= 0 {
		return Config{}, fmt.Errorf("TRANSFER_DISTANCE_CACHE_SIZE must be positive")
	}
	if cfg.Coupon.RateLimit <= 0 || cfg.Coupon.RateWindow <= 0 {
		return Config{}, fmt.Errorf("coupon rate limit and window must be positive")
	}
	switch cfg.Distance.CacheBackend {
	case "memory", "redis":
	default:
		return Config{}, fmt.Errorf("unknown TRANSFER_DISTANCE_CACHE %q", cfg.Distance.CacheBackend)
	}
	return cfg, nil
}

// parseProxies splits a comma-separated list of IPs or CIDRs.
func parseProxies(raw string) ([]string, error) {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return nil, fmt.Errorf("TRANSFER_TRUSTED_PROXIES: invalid entry %q", p)
			}
		}
		out = append(out, p)
	}
	return out, nil
}
