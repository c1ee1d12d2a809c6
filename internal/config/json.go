package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the layout of the optional JSON config file.
//
//	{
//	  "vault":   { "path": "/home/me/notes/vault.enc" },
//	  "session": { "path": "/run/user/1000/encnotes.session" },
//	  "log":     { "path": "/tmp/encnotes.log", "level": "debug" }
//	}
type StructuredJSONConfig struct {
	Vault struct {
		Path string `json:"path"`
	} `json:"vault,omitempty"`

	Session struct {
		Path string `json:"path"`
	} `json:"session,omitempty"`

	Log struct {
		Path  string `json:"path"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
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
		Vault: Vault{
			Path: jsonCfg.Vault.Path,
		},
		Session: Session{
			Path: jsonCfg.Session.Path,
		},
		Log: Log{
			Path:  jsonCfg.Log.Path,
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
