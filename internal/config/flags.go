package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (pgx, sqlite3)
//	-c/-config json file path with configs
//	-version application version
//	-log-level log level (trace, debug, info, warn, error)
//	-key-hash-iterations PBKDF2 iterations for API key hashes
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-allowed-origins comma separated CORS origins
//	-url-check-timeout video URL liveness timeout (e.g., "5s")
//	-url-check-retries video URL liveness retries
//	-url-check-disabled disable video URL liveness check
//	-allowed-video-hosts comma separated video hosts
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("dashcam-catalog", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var version, logLevel string
	var keyHashIterations int
	var requestTimeout time.Duration
	var allowedOrigins, allowedVideoHosts string
	var urlCheckTimeout time.Duration
	var urlCheckRetries int
	var urlCheckDisabled bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.IntVar(&keyHashIterations, "key-hash-iterations", 0, "PBKDF2 iterations for API key hashes")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&allowedOrigins, "allowed-origins", "", "Comma separated CORS origins")
	fs.DurationVar(&urlCheckTimeout, "url-check-timeout", 0, "Video URL liveness timeout (e.g., 5s)")
	fs.IntVar(&urlCheckRetries, "url-check-retries", 0, "Video URL liveness retries")
	fs.BoolVar(&urlCheckDisabled, "url-check-disabled", false, "Disable video URL liveness check")
	fs.StringVar(&allowedVideoHosts, "allowed-video-hosts", "", "Comma separated video hosts")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version:           version,
			LogLevel:          logLevel,
			KeyHashIterations: keyHashIterations,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: splitList(allowedOrigins),
		},
		Adapter: Adapter{
			URLCheckTimeout:   urlCheckTimeout,
			URLCheckRetries:   urlCheckRetries,
			URLCheckDisabled:  urlCheckDisabled,
			AllowedVideoHosts: splitList(allowedVideoHosts),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// splitList splits a comma separated flag value, dropping empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
