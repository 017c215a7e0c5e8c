package config

import "time"

// Built-in defaults, applied after every other source.
const (
	DefaultVersion           = "dev"
	DefaultLogLevel          = "debug"
	DefaultKeyHashIterations = 600_000
	DefaultDSN               = "dashcam.db"
	DefaultHTTPAddress       = "localhost:8080"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultURLCheckTimeout   = 5 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:           DefaultVersion,
			LogLevel:          DefaultLogLevel,
			KeyHashIterations: DefaultKeyHashIterations,
		},
		Storage: Storage{
			DB: DB{
				DSN: DefaultDSN,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			AllowedOrigins: []string{"*"},
		},
		Adapter: Adapter{
			URLCheckTimeout:   DefaultURLCheckTimeout,
			AllowedVideoHosts: []string{"youtube.com", "www.youtube.com"},
		},
	}
}
