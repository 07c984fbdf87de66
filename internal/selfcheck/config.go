package selfcheck

import (
	"runtime"

	"github.com/pkg/errors"
)

type Config struct {
	// Workers is the number of goroutines minting tokens concurrently.
	Workers int
	// TokensPerWorker is how many tokens each worker creates and keeps alive.
	TokensPerWorker int
	// GrowthPushes is how many elements are appended to force a slice reallocation
	// during the relocation check.
	GrowthPushes int
}

func DefaultConfig() Config {
	return Config{
		Workers:         runtime.GOMAXPROCS(0),
		TokensPerWorker: 1000,
		GrowthPushes:    1024,
	}
}

func (c Config) Validate() error {
	if c.Workers <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "workers must be positive, got %d", c.Workers)
	}
	if c.TokensPerWorker <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "tokens per worker must be positive, got %d", c.TokensPerWorker)
	}
	if c.GrowthPushes <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "growth pushes must be positive, got %d", c.GrowthPushes)
	}
	return nil
}
