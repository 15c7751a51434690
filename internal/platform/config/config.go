package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string        `env:"LAWSEARCH_ADDR" envDefault:":8080"`
	RequestTimeout time.Duration `env:"LAWSEARCH_REQUEST_TIMEOUT" envDefault:"60s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Access   Access
	Registry Registry `envPrefix:"EGOV_"`
}

// Access holds the optional gates in front of every route but /healthz.
// An empty allow-list or an empty username disables the respective gate.
// Forwarding headers are only trusted from peers in TrustedProxies.
type Access struct {
	AllowedIPs         []string `env:"ALLOWED_IPS" envSeparator:","`
	TrustedProxies     []string `env:"TRUSTED_PROXIES" envSeparator:","`
	BasicAuthUser      string   `env:"BASIC_AUTH_USER"`
	BasicAuthPassword  string   `env:"BASIC_AUTH_PASSWORD"`
	BasicAuthBcryptPwd string   `env:"BASIC_AUTH_PASSWORD_BCRYPT"`
}

// BasicAuthEnabled reports whether credentials are configured.
func (a Access) BasicAuthEnabled() bool {
	return a.BasicAuthUser != "" && (a.BasicAuthPassword != "" || a.BasicAuthBcryptPwd != "")
}

// Registry configures the upstream law registry client.
type Registry struct {
	BaseURL  string        `env:"API_BASE_URL" envDefault:"https://laws.e-gov.go.jp/api/2"`
	Timeout  time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
	PageSize int           `env:"PAGE_SIZE" envDefault:"10000"`
	MaxPages int           `env:"MAX_PAGES" envDefault:"50"`
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

func (s Server) validate() error {
	if s.Registry.PageSize <= 0 {
		return fmt.Errorf("EGOV_PAGE_SIZE must be positive, got %d", s.Registry.PageSize)
	}
	if s.Registry.MaxPages <= 0 {
		return fmt.Errorf("EGOV_MAX_PAGES must be positive, got %d", s.Registry.MaxPages)
	}
	if s.Registry.BaseURL == "" {
		return fmt.Errorf("EGOV_API_BASE_URL is required")
	}
	return nil
}
