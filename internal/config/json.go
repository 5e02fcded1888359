package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		DataDir  string `json:"data_dir"`
		WriterID string `json:"writer_id"`
		Version  string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Path string `json:"path"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Remote struct {
		Endpoint string   `json:"endpoint"`
		Token    string   `json:"token"`
		Prefix   string   `json:"prefix"`
		Timeout  Duration `json:"timeout"`
		Enabled  bool     `json:"enabled"`
	} `json:"remote,omitempty"`

	Sync struct {
		PullInterval   Duration `json:"pull_interval"`
		PushTimeout    Duration `json:"push_timeout"`
		MaxRetries     int      `json:"max_retries"`
		BackoffMin     Duration `json:"backoff_min"`
		BackoffMax     Duration `json:"backoff_max"`
		RetryCeiling   int      `json:"retry_ceiling"`
		DebounceWindow Duration `json:"debounce_window"`
	} `json:"sync,omitempty"`
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
			DataDir:  jsonCfg.App.DataDir,
			WriterID: jsonCfg.App.WriterID,
			Version:  jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: StorageDB{
				Path: jsonCfg.Storage.DB.Path,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Remote: Remote{
			Endpoint: jsonCfg.Remote.Endpoint,
			Token:    jsonCfg.Remote.Token,
			Prefix:   jsonCfg.Remote.Prefix,
			Timeout:  time.Duration(jsonCfg.Remote.Timeout),
			Enabled:  jsonCfg.Remote.Enabled,
		},
		Sync: Sync{
			PullInterval:   time.Duration(jsonCfg.Sync.PullInterval),
			PushTimeout:    time.Duration(jsonCfg.Sync.PushTimeout),
			MaxRetries:     jsonCfg.Sync.MaxRetries,
			BackoffMin:     time.Duration(jsonCfg.Sync.BackoffMin),
			BackoffMax:     time.Duration(jsonCfg.Sync.BackoffMax),
			RetryCeiling:   jsonCfg.Sync.RetryCeiling,
			DebounceWindow: time.Duration(jsonCfg.Sync.DebounceWindow),
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
