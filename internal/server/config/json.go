package config

import (
	"encoding/json"
	"os"

	"github.com/univerp/authd/internal/flagx"
	"github.com/univerp/authd/internal/timex"
)

// jsonConfig is an intermediate DTO used only for reading JSON configuration
// files. Duration fields accept both "10m"-style strings and integer
// nanoseconds (timex.Duration). After unmarshalling, non-zero values are
// copied into the runtime Config.
type jsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	SessionTokenValidityDuration timex.Duration `json:"session_token_validity_duration"`
	LockoutThreshold             int            `json:"lockout_threshold"`
	LockoutDuration              timex.Duration `json:"lockout_duration"`
}

// parseJSON loads configuration values from the JSON file named by the
// -c or -config flags, if any. Values absent from the file keep their
// defaults. An unreadable or invalid file panics: a half-applied config is
// worse than a failed start.
func parseJSON(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &jsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.SessionTokenValidityDuration.Duration != 0 {
		config.SessionTokenValidityDuration = c.SessionTokenValidityDuration.Duration
	}
	if c.LockoutThreshold != 0 {
		config.LockoutThreshold = c.LockoutThreshold
	}
	if c.LockoutDuration.Duration != 0 {
		config.LockoutDuration = c.LockoutDuration.Duration
	}
}
