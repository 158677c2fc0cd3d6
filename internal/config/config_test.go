package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_ADDR", "BLOFIN_BASE_URL", "BLOFIN_API_KEY", "BLOFIN_API_SECRET",
		"BLOFIN_API_PASSPHRASE", "TRADINGVIEW_WEBHOOK_SECRET", "NOTIFY_URL",
		"DB_DSN", "WS_ORIGIN", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	} {
		t.Setenv(key, "")
	}

	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.HTTPAddr != ":5000" {
		t.Errorf("HTTPAddr = %s", c.HTTPAddr)
	}
	if c.BlofinBaseURL != DefaultBaseURL {
		t.Errorf("BlofinBaseURL = %s", c.BlofinBaseURL)
	}
	if c.WebSocketOrigin != "*" {
		t.Errorf("WebSocketOrigin = %s", c.WebSocketOrigin)
	}
	if c.RateLimitRPS != 10 || c.RateLimitBurst != 30 {
		t.Errorf("rate limit defaults = %v/%v", c.RateLimitRPS, c.RateLimitBurst)
	}
	if c.HasExchangeCredentials() {
		t.Error("credentials reported present when unset")
	}
}

func TestLoad_TrimsAndOverrides(t *testing.T) {
	t.Setenv("BLOFIN_BASE_URL", "https://demo.blofin.com/")
	t.Setenv("BLOFIN_API_KEY", " key ")
	t.Setenv("BLOFIN_API_SECRET", "secret")
	t.Setenv("BLOFIN_API_PASSPHRASE", "pass")
	t.Setenv("RATE_LIMIT_RPS", "25")
	t.Setenv("RATE_LIMIT_BURST", "50")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.BlofinBaseURL != "https://demo.blofin.com" {
		t.Errorf("trailing slash not trimmed: %s", c.BlofinBaseURL)
	}
	if c.BlofinKey != "key" {
		t.Errorf("key not trimmed: %q", c.BlofinKey)
	}
	if !c.HasExchangeCredentials() {
		t.Error("credentials reported missing")
	}
	if c.RateLimitRPS != 25 || c.RateLimitBurst != 50 {
		t.Errorf("rate limit overrides = %v/%v", c.RateLimitRPS, c.RateLimitBurst)
	}
}

func TestLoad_InvalidRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "zero")
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid RATE_LIMIT_RPS")
	}
}
