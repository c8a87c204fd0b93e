package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{Name: "quotes-service", Version: "1.0.0", Environment: "local"},
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxRequestSize:  DefaultMaxRequestSize,
			RequestTimeout:  15 * time.Second,
		},
		Log: LogConfig{Level: "info", Format: "json"},
		Client: ClientConfig{
			Timeout:        10 * time.Second,
			CircuitBreaker: CircuitBreakerConfig{MaxFailures: 5, Timeout: 30 * time.Second, HalfOpenLimit: 3},
			Transport:      TransportConfig{MaxIdleConns: 100, MaxIdleConnsPerHost: 10, IdleConnTimeout: 90 * time.Second},
		},
		Services: ServicesConfig{
			Quote: ServiceEndpointConfig{BaseURL: "https://zenquotes.io", Path: "/api/today", Name: "zenquotes"},
		},
		Storage:  StorageConfig{Path: "./data/quotes.db", WatchExternal: true, WatchDebounce: 250 * time.Millisecond},
		Cache:    CacheConfig{Size: 16},
		Reminder: ReminderConfig{Enabled: true, Authorization: "notDetermined"},
	}
}

func TestValidate_Valid(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate_Accepts(t *testing.T) {
	tests := map[string]func(*Config){
		"every environment":    func(c *Config) { c.App.Environment = "prod" },
		"trace level":          func(c *Config) { c.Log.Level = "trace" },
		"pretty format":        func(c *Config) { c.Log.Format = "pretty" },
		"port bounds":          func(c *Config) { c.Server.Port = 65535 },
		"file logging":         func(c *Config) { c.Log.File = LogFileConfig{Enabled: true, Path: "/var/log/q.log", MaxSizeMB: 10} },
		"path unused when off": func(c *Config) { c.Log.File.Path = "" },
		"telemetry": func(c *Config) {
			c.Telemetry = TelemetryConfig{Enabled: true, Endpoint: "http://localhost:4317", ServiceName: "q", SamplingRate: 0.5}
		},
		"auth":                  func(c *Config) { c.Auth = AuthConfig{Enabled: true, SubjectHeader: "X-User-ID", ScopesHeader: "X-User-Scopes"} },
		"auth headers when off": func(c *Config) { c.Auth = AuthConfig{} },
		"debounce unused":       func(c *Config) { c.Storage.WatchExternal, c.Storage.WatchDebounce = false, 0 },
		"no cache size":         func(c *Config) { c.Cache.Size = 0 },
		"no authorization":      func(c *Config) { c.Reminder.Authorization = "" },
		"provisional":           func(c *Config) { c.Reminder.Authorization = "provisional" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(cfg)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing name", func(c *Config) { c.App.Name = "" }, "app.name is required"},
		{"unknown environment", func(c *Config) { c.App.Environment = "staging" }, "app.environment must be one of"},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port is required"},
		{"port too high", func(c *Config) { c.Server.Port = 65536 }, "server.port must be at most 65535"},
		{"short read timeout", func(c *Config) { c.Server.ReadTimeout = time.Millisecond }, "server.read_timeout must be at least"},
		{"request timeout past write", func(c *Config) { c.Server.RequestTimeout = time.Minute }, "server.request_timeout must be less than"},
		{"upper case level", func(c *Config) { c.Log.Level = "DEBUG" }, "log.level must be one of"},
		{"xml format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"file without path", func(c *Config) { c.Log.File = LogFileConfig{Enabled: true} }, "log.file.path is required when"},
		{"huge log file", func(c *Config) { c.Log.File = LogFileConfig{Enabled: true, Path: "x", MaxSizeMB: 2048} }, "log.file.max_size"},
		{"telemetry without endpoint", func(c *Config) {
			c.Telemetry = TelemetryConfig{Enabled: true, ServiceName: "q"}
		}, "telemetry.endpoint"},
		{"telemetry endpoint not url", func(c *Config) {
			c.Telemetry = TelemetryConfig{Enabled: true, Endpoint: "collector", ServiceName: "q"}
		}, "telemetry.endpoint must be a valid URL"},
		{"sampling above one", func(c *Config) { c.Telemetry.SamplingRate = 1.1 }, "telemetry.sampling_rate"},
		{"auth without subject header", func(c *Config) {
			c.Auth = AuthConfig{Enabled: true, ScopesHeader: "X-User-Scopes"}
		}, "auth.subject_header"},
		{"client timeout", func(c *Config) { c.Client.Timeout = 50 * time.Millisecond }, "client.timeout"},
		{"breaker failures", func(c *Config) { c.Client.CircuitBreaker.MaxFailures = 0 }, "client.circuit_breaker.max_failures"},
		{"relative quote path", func(c *Config) { c.Services.Quote.Path = "api/today" }, `services.quote.path must start with "/"`},
		{"quote base url", func(c *Config) { c.Services.Quote.BaseURL = "zenquotes" }, "services.quote.base_url"},
		{"no database", func(c *Config) { c.Storage.Path = "" }, "storage.path is required"},
		{"watch without debounce", func(c *Config) { c.Storage.WatchDebounce = 0 }, "storage.watch_debounce"},
		{"cache too big", func(c *Config) { c.Cache.Size = 5000 }, "cache.size"},
		{"unknown authorization", func(c *Config) { c.Reminder.Authorization = "maybe" }, "reminder.authorization"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	err := (&Config{App: AppConfig{Environment: "invalid"}, Server: ServerConfig{Port: -1}}).Validate()
	require.Error(t, err)

	for _, key := range []string{"app.name", "app.version", "app.environment", "server.port", "storage is required"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestSettingKey(t *testing.T) {
	assert.Equal(t, "storage.watch_debounce", settingKey("Config.storage.watch_debounce"))
	assert.Equal(t, "Config", settingKey("Config"))
}
