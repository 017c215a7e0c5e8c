package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version           string `json:"version"`
		LogLevel          string `json:"log_level"`
		KeyHashIterations int    `json:"key_hash_iterations"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		URLCheckTimeout   Duration `json:"url_check_timeout"`
		URLCheckRetries   int      `json:"url_check_retries"`
		URLCheckDisabled  bool     `json:"url_check_disabled"`
		AllowedVideoHosts []string `json:"allowed_video_hosts"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:           jsonCfg.App.Version,
			LogLevel:          jsonCfg.App.LogLevel,
			KeyHashIterations: jsonCfg.App.KeyHashIterations,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Adapter: Adapter{
			URLCheckTimeout:   time.Duration(jsonCfg.Adapter.URLCheckTimeout),
			URLCheckRetries:   jsonCfg.Adapter.URLCheckRetries,
			URLCheckDisabled:  jsonCfg.Adapter.URLCheckDisabled,
			AllowedVideoHosts: jsonCfg.Adapter.AllowedVideoHosts,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
