package config

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultFrontendURL = "http://localhost:3002"
	defaultBackendURL  = "http://localhost:3001"

	// Per-action timeout applied to every navigation, locator wait and click.
	actionTimeout = 15 * time.Second
	healthTimeout = 5 * time.Second
)

// Config holds all settings for a verification run. FRONTEND_URL and
// BACKEND_URL are the two authoritative knobs; the rest mirror the
// conventions of the main test suite (HEADLESS, SCREENSHOTS, SLOW_MO).
type Config struct {
	FrontendURL   string
	BackendURL    string
	Headless      bool
	SlowMo        int
	Screenshots   bool
	ScreenshotDir string

	ActionTimeout time.Duration
	HealthTimeout time.Duration
}

// Load reads configuration from the environment, falling back to a .env
// file in the working directory. Real environment variables take precedence
// over .env entries.
func Load() *Config {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // missing .env is fine

	v.AutomaticEnv()
	v.SetDefault("FRONTEND_URL", defaultFrontendURL)
	v.SetDefault("BACKEND_URL", defaultBackendURL)
	v.SetDefault("HEADLESS", true)
	v.SetDefault("SCREENSHOTS", true)
	v.SetDefault("SCREENSHOT_DIR", "test-screenshots/core-flows")
	v.SetDefault("SLOW_MO", 0)

	return &Config{
		FrontendURL:   v.GetString("FRONTEND_URL"),
		BackendURL:    v.GetString("BACKEND_URL"),
		Headless:      v.GetBool("HEADLESS"),
		SlowMo:        v.GetInt("SLOW_MO"),
		Screenshots:   v.GetBool("SCREENSHOTS"),
		ScreenshotDir: v.GetString("SCREENSHOT_DIR"),
		ActionTimeout: actionTimeout,
		HealthTimeout: healthTimeout,
	}
}

// HealthURL returns the backend health endpoint for the preflight probe.
func (c *Config) HealthURL() string {
	return c.BackendURL + "/api/health"
}

// CheckBackendHealth probes the backend health endpoint. Any 2xx/3xx
// response counts as reachable. Callers treat a failure as a warning,
// never as a reason to abort the run.
func CheckBackendHealth(c *Config) error {
	client := &http.Client{Timeout: c.HealthTimeout}
	resp, err := client.Get(c.HealthURL())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("health endpoint returned %d", resp.StatusCode)
	}
	return nil
}
