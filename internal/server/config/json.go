package config

import (
	"encoding/json"
	"os"

	"github.com/avoronov/authkeeper/internal/flagx"
	"github.com/avoronov/authkeeper/internal/timex"
)

// JSONConfig is the intermediate DTO used only for reading JSON config
// files. timex.Duration lets the validity be given as "90s" or integer
// nanoseconds. After unmarshalling, values are copied into Config.
type JSONConfig struct {
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	BcryptCost            int            `json:"bcrypt_cost"`
}

// parseJSON overlays values from an optional JSON file onto config. The file
// path comes from the -c/-config flags; if neither is set, nothing is
// loaded. An unreadable or invalid file panics: a half-applied config is
// worse than a refused start.
func parseJSON(config *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	jc := &JSONConfig{}
	if err := json.Unmarshal(data, jc); err != nil {
		panic(err)
	}

	if jc.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = jc.EndpointAddrGRPC
	}
	if jc.DatabaseDSN != "" {
		config.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SecretKey != "" {
		config.SecretKey = jc.SecretKey
	}
	if jc.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = jc.TokenValidityDuration.Duration
	}
	if jc.BcryptCost != 0 {
		config.BcryptCost = jc.BcryptCost
	}
}
