package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		TokenSignKey       string   `json:"token_sign_key"`
		TokenIssuer        string   `json:"token_issuer"`
		TokenDuration      Duration `json:"token_duration"`
		DefaultSessionName string   `json:"default_session_name"`
		PreviewLength      int      `json:"preview_length"`
		LogLevel           string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Path string `json:"path"`
		} `json:"db,omitempty"`

		State struct {
			Path string `json:"path"`
		} `json:"state,omitempty"`
	} `json:"storage,omitempty"`

	Monitor struct {
		PollInterval Duration `json:"poll_interval"`
		MaxTextSize  ByteSize `json:"max_text_size"`
	} `json:"monitor,omitempty"`
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
			TokenSignKey:       jsonCfg.App.TokenSignKey,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			TokenDuration:      time.Duration(jsonCfg.App.TokenDuration),
			DefaultSessionName: jsonCfg.App.DefaultSessionName,
			PreviewLength:      jsonCfg.App.PreviewLength,
			LogLevel:           jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Path: jsonCfg.Storage.DB.Path,
			},
			State: State{
				Path: jsonCfg.Storage.State.Path,
			},
		},
		Monitor: Monitor{
			PollInterval: time.Duration(jsonCfg.Monitor.PollInterval),
			MaxTextSize:  jsonCfg.Monitor.MaxTextSize,
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

// UnmarshalJSON accepts both a JSON number (byte count) and a string with an
// optional size suffix ("1MB"), mirroring the flag syntax.
func (s *ByteSize) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*s = ByteSize(value)
		return nil
	case string:
		return s.Set(value)
	default:
		return json.Unmarshal(b, (*int64)(s))
	}
}

func (s ByteSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
