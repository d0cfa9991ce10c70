package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/authkeeper/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-o int      maximum open connections
//	-i int      maximum idle connections
//	-l int      connection max lifetime, minutes
//	-m bool     run migrations on Open
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with flags owned by the consuming
// application.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-o", "-i", "-l", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.MaxOpenConns, "o", config.MaxOpenConns, "max open connections")
	fs.IntVar(&config.MaxIdleConns, "i", config.MaxIdleConns, "max idle connections")

	connMaxLifetime := fs.Int("l", int(config.ConnMaxLifetime.Minutes()), "connection max lifetime (in minutes)")

	fs.BoolVar(&config.AutoMigrate, "m", config.AutoMigrate, "run migrations on open")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ConnMaxLifetime = time.Duration(*connMaxLifetime) * time.Minute
}
