package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// DefaultBaseURL is the BloFin REST mainnet endpoint.
const DefaultBaseURL = "https://openapi.blofin.com"

// Config is loaded once at startup and never mutated afterwards. All
// concurrent webhook invocations share it read-only.
type Config struct {
	HTTPAddr string

	BlofinBaseURL    string
	BlofinKey        string
	BlofinSecret     string
	BlofinPassphrase string

	// WebhookSecret guards POST /webhook. Empty disables the check: the
	// relay then accepts unauthenticated alerts, matching the upstream
	// opt-out. main logs a warning when it is unset.
	WebhookSecret string

	// NotifyURL receives best-effort {"text": ...} posts. Empty disables
	// notifications.
	NotifyURL string

	// DBDSN enables the Postgres relay journal when set.
	DBDSN string

	WebSocketOrigin string

	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() (Config, error) {
	var c Config
	c.HTTPAddr = os.Getenv("HTTP_ADDR")
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":5000"
	}
	c.BlofinBaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("BLOFIN_BASE_URL")), "/")
	if c.BlofinBaseURL == "" {
		c.BlofinBaseURL = DefaultBaseURL
	}
	c.BlofinKey = strings.TrimSpace(os.Getenv("BLOFIN_API_KEY"))
	c.BlofinSecret = strings.TrimSpace(os.Getenv("BLOFIN_API_SECRET"))
	c.BlofinPassphrase = strings.TrimSpace(os.Getenv("BLOFIN_API_PASSPHRASE"))
	c.WebhookSecret = os.Getenv("TRADINGVIEW_WEBHOOK_SECRET")
	c.NotifyURL = strings.TrimSpace(os.Getenv("NOTIFY_URL"))
	c.DBDSN = os.Getenv("DB_DSN")
	c.WebSocketOrigin = os.Getenv("WS_ORIGIN")
	if c.WebSocketOrigin == "" {
		c.WebSocketOrigin = "*"
	}
	c.RateLimitRPS = 10
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return c, errors.New("invalid RATE_LIMIT_RPS")
		}
		c.RateLimitRPS = f
	}
	c.RateLimitBurst = 30
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return c, errors.New("invalid RATE_LIMIT_BURST")
		}
		c.RateLimitBurst = n
	}
	return c, nil
}

// HasExchangeCredentials reports whether all three BloFin credentials are
// present. Credentials are required at submission time, not at startup.
func (c Config) HasExchangeCredentials() bool {
	return c.BlofinKey != "" && c.BlofinSecret != "" && c.BlofinPassphrase != ""
}
