package config

import (
	"fmt"
	"net/netip"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// Every field can be set from the environment; a YAML file is optional.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Host is the IP address the server binds to
		Host string `env:"MY_APP_HOST" env-default:"127.0.0.1" yaml:"host"`
		// Port is the TCP port the server binds to
		Port string `env:"MY_APP_PORT" env-default:"8080" yaml:"port"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"30s" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"30s" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// EnablePprof mounts net/http/pprof under /debug/pprof/
		EnablePprof bool `env:"HTTP_ENABLE_PPROF" env-default:"false" yaml:"enablePprof"`
	} `yaml:"http"`

	// Fortune configures the fortune database and the program that reads it
	Fortune struct {
		// Directory holds one file per category
		Directory string `env:"FORTUNE_DIRECTORY" env-default:"/usr/share/fortune" yaml:"directory"`
		// Program is the fortune executable, looked up in PATH when not absolute
		Program string `env:"FORTUNE_PROGRAM" env-default:"fortune" yaml:"program"`
		// Timeout bounds a single run of Program
		Timeout time.Duration `env:"FORTUNE_TIMEOUT" env-default:"5s" yaml:"timeout"`
	} `yaml:"fortune"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load returns a filled Config. With an empty configPath only the environment
// is read; otherwise the YAML file is read first and the environment overrides it.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read env: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// ListenAddr validates HTTP.Host as an IP address and HTTP.Port as a 16-bit
// port and joins them into a dialable address.
func (c *Config) ListenAddr() (string, error) {
	addr, err := netip.ParseAddr(c.HTTP.Host)
	if err != nil {
		return "", fmt.Errorf("invalid host %q: %w", c.HTTP.Host, err)
	}

	port, err := strconv.ParseUint(c.HTTP.Port, 10, 16)
	if err != nil {
		return "", fmt.Errorf("invalid port %q: %w", c.HTTP.Port, err)
	}

	return netip.AddrPortFrom(addr, uint16(port)).String(), nil
}
