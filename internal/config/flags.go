package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagVault      = "vault"
	FlagSession    = "session"
	FlagLogFile    = "log-file"
	FlagLogLevel   = "log-level"
	FlagJSONConfig = "config"
	flagJSONShort  = "c"
)

// RegisterFlags adds the configuration flags to fs. The CLI registers them
// as persistent flags on its root command.
//
// Flags:
//
//	--vault      vault file path
//	--session    session cache file path
//	--log-file   log file path
//	--log-level  log level (debug, info, warn, error)
//	-c/--config  json file path with configs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagVault, "", "Vault file path (default \"vault.enc\")")
	fs.String(FlagSession, "", "Session cache file path")
	fs.String(FlagLogFile, "", "Log file path")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.StringP(FlagJSONConfig, flagJSONShort, "", "JSON config file path")
}

// ParseFlags reads the values of the flags registered by [RegisterFlags]
// from an already parsed fs. Flags left unset yield zero fields, so they do
// not shadow lower-priority sources.
func ParseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	values := make(map[string]string, 5)
	for _, name := range []string{FlagVault, FlagSession, FlagLogFile, FlagLogLevel, FlagJSONConfig} {
		v, err := fs.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", name, err)
		}
		values[name] = v
	}

	return &StructuredConfig{
		Vault: Vault{
			Path: values[FlagVault],
		},
		Session: Session{
			Path: values[FlagSession],
		},
		Log: Log{
			Path:  values[FlagLogFile],
			Level: values[FlagLogLevel],
		},
		JSONFilePath: values[FlagJSONConfig],
	}, nil
}
