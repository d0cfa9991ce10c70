package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/authkeeper/flagx"
	"github.com/dmitrijs2005/authkeeper/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields, which allows parsing
// both string values such as "30m" and integer nanoseconds. Fields are
// pointers so that keys absent from the file leave the defaults untouched.
type JsonConfig struct {
	DatabaseDSN     *string         `json:"database_dsn"`
	MaxOpenConns    *int            `json:"max_open_conns"`
	MaxIdleConns    *int            `json:"max_idle_conns"`
	ConnMaxLifetime *timex.Duration `json:"conn_max_lifetime"`
	AutoMigrate     *bool           `json:"auto_migrate"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path is taken from the -c or -config
// command-line flags; if neither is set, no JSON file is loaded. Only keys
// present in the file overwrite the current values. If the file cannot be
// read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.MaxOpenConns != nil {
		config.MaxOpenConns = *c.MaxOpenConns
	}
	if c.MaxIdleConns != nil {
		config.MaxIdleConns = *c.MaxIdleConns
	}
	if c.ConnMaxLifetime != nil {
		config.ConnMaxLifetime = time.Duration(c.ConnMaxLifetime.Duration)
	}
	if c.AutoMigrate != nil {
		config.AutoMigrate = *c.AutoMigrate
	}
}
