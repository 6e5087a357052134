package conf

import (
	"fmt"
	"github.com/xyproto/env/v2"
	"strings"
)

// Config - Runtime configuration of the record table command
//   - Capacity is the initial number of buckets
//   - HashAlgorithm is either HashModulo or HashXXHash
//   - FirstNamesFile and LastNamesFile are the word lists used by the bulk loader
//   - LogLevel is one of debug, info, warn, error or off
//   - Seed seeds the random generator of the bulk loader, 0 (zero) means time based
type Config struct {
	Capacity       int64
	HashAlgorithm  string
	FirstNamesFile string
	LastNamesFile  string
	LogLevel       string
	Seed           int64
}

// Load - Reads configuration from RECORDTABLE_* environment variables, falling back on defaults.
// The environment is read anew on every call.
func Load() (config Config, err error) {
	env.Load()

	config = Config{
		Capacity:       env.Int64("RECORDTABLE_CAPACITY", DefaultCapacity),
		HashAlgorithm:  strings.ToLower(env.Str("RECORDTABLE_HASH", HashModulo)),
		FirstNamesFile: env.Str("RECORDTABLE_FIRST_NAMES", "first_names.txt"),
		LastNamesFile:  env.Str("RECORDTABLE_LAST_NAMES", "last_names.txt"),
		LogLevel:       strings.ToLower(env.Str("RECORDTABLE_LOG_LEVEL", "info")),
		Seed:           env.Int64("RECORDTABLE_SEED", 0),
	}

	err = config.Validate()

	return
}

// Validate - Checks that the configuration values are usable
func (C Config) Validate() (err error) {
	if C.Capacity <= 0 || C.Capacity > MaxCapacity {
		err = fmt.Errorf("capacity must be between 1 and %d, got %d", MaxCapacity, C.Capacity)
		return
	}

	switch C.HashAlgorithm {
	case HashModulo, HashXXHash:
	default:
		err = fmt.Errorf("unknown hash algorithm %q, use %q or %q", C.HashAlgorithm, HashModulo, HashXXHash)
		return
	}

	switch C.LogLevel {
	case "debug", "info", "warn", "error", "off":
	default:
		err = fmt.Errorf("unknown log level %q", C.LogLevel)
		return
	}

	return
}
