package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "SITE"

// Config holds everything the site needs at startup.
type Config struct {
	Port         string
	BaseURL      string
	HomeURL      string
	SignupURL    string
	ContactEmail string
	StaticDir    string

	RateLimitMax   int
	RateLimitExp   time.Duration
	RenderCacheTTL time.Duration

	LogLevel  string
	LogPretty bool

	TailwindCSSURL string
	HTMXURL        string
}

// Default returns the configuration used when nothing is set in the environment.
func Default() *Config {
	return &Config{
		Port:           "8080",
		BaseURL:        "https://stratus.example.com",
		HomeURL:        "/",
		SignupURL:      "/signup",
		ContactEmail:   "sales@stratus.example.com",
		StaticDir:      "./static",
		RateLimitMax:   120,
		RateLimitExp:   time.Minute,
		RenderCacheTTL: time.Hour,
		LogLevel:       "info",
		TailwindCSSURL: "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css",
		HTMXURL:        "https://unpkg.com/htmx.org@2.0.4",
	}
}

// Load reads an optional .env file, then SITE_* environment variables on top
// of the defaults.
func Load() (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	d := Default()
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", d.Port)
	v.SetDefault("base_url", d.BaseURL)
	v.SetDefault("home_url", d.HomeURL)
	v.SetDefault("signup_url", d.SignupURL)
	v.SetDefault("contact_email", d.ContactEmail)
	v.SetDefault("static_dir", d.StaticDir)
	v.SetDefault("rate_limit_max", d.RateLimitMax)
	v.SetDefault("rate_limit_exp", d.RateLimitExp)
	v.SetDefault("render_cache_ttl", d.RenderCacheTTL)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_pretty", d.LogPretty)
	v.SetDefault("tailwind_css_url", d.TailwindCSSURL)
	v.SetDefault("htmx_url", d.HTMXURL)

	cfg := &Config{
		Port:           v.GetString("port"),
		BaseURL:        strings.TrimRight(v.GetString("base_url"), "/"),
		HomeURL:        v.GetString("home_url"),
		SignupURL:      v.GetString("signup_url"),
		ContactEmail:   v.GetString("contact_email"),
		StaticDir:      v.GetString("static_dir"),
		RateLimitMax:   v.GetInt("rate_limit_max"),
		RateLimitExp:   v.GetDuration("rate_limit_exp"),
		RenderCacheTTL: v.GetDuration("render_cache_ttl"),
		LogLevel:       v.GetString("log_level"),
		LogPretty:      v.GetBool("log_pretty"),
		TailwindCSSURL: v.GetString("tailwind_css_url"),
		HTMXURL:        v.GetString("htmx_url"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the values Load cannot default its way out of.
func (c *Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("port is empty"))
	}
	if c.RateLimitMax <= 0 {
		errs = append(errs, fmt.Errorf("rate limit max must be positive, got %d", c.RateLimitMax))
	}
	if c.RateLimitExp <= 0 {
		errs = append(errs, fmt.Errorf("rate limit expiration must be positive, got %s", c.RateLimitExp))
	}
	if c.RenderCacheTTL < 0 {
		errs = append(errs, fmt.Errorf("render cache ttl must not be negative, got %s", c.RenderCacheTTL))
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("base url %q is not absolute", c.BaseURL))
	}
	if c.HomeURL == "" || c.SignupURL == "" {
		errs = append(errs, errors.New("home and signup urls are required"))
	}
	return errors.Join(errs...)
}
