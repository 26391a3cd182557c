package clerk

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultScriptURL is the ClerkJS bundle loaded when no override is
// configured. The publishable key travels on the script tag, so the same
// bundle works for every Clerk instance.
const DefaultScriptURL = "https://cdn.jsdelivr.net/npm/@clerk/clerk-js@5/dist/clerk.browser.js"

// Config carries the provider-level settings forwarded to ClerkJS.
type Config struct {
	// PublishableKey is the Clerk publishable key (pk_test_... / pk_live_...).
	// It is forwarded to the browser unchanged and never inspected here.
	// May be empty, in which case ClerkJS reports its own configuration
	// error client-side.
	PublishableKey string `env:"CLERK_PUBLISHABLE_KEY"`

	// ScriptURL overrides where the ClerkJS bundle is loaded from.
	ScriptURL string `env:"CLERK_JS_URL"`
}

// FromEnv loads provider configuration from the environment
// (CLERK_PUBLISHABLE_KEY, CLERK_JS_URL).
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("clerk: parse environment: %w", err)
	}
	return cfg, nil
}

// scriptURL returns the configured bundle URL or the default.
func (c Config) scriptURL() string {
	if c.ScriptURL != "" {
		return c.ScriptURL
	}
	return DefaultScriptURL
}
