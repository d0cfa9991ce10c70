package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config fields from AUTHKEEPER_* environment variables
// (see the env struct tags on Config). Unset variables leave the current
// values untouched. Malformed values panic, matching the JSON overlay.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
