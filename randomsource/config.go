package randomsource

import "github.com/nozzle/rng"

// Config selects and seeds a generator.
type Config struct {
	// Algorithm is the registry name of the generator.
	// Default: "XO_SHI_RO_256_PP"
	Algorithm string

	// Seed is any seed accepted by Create. Use a fixed seed for
	// reproducible sequences.
	// Default: nil (self-seeded)
	Seed any
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Algorithm: "XO_SHI_RO_256_PP",
		Seed:      nil,
	}
}

// New creates the generator described by cfg. An empty Algorithm selects
// the default one.
func New(cfg Config) (rng.Generator, error) {
	if cfg.Algorithm == "" {
		cfg.Algorithm = DefaultConfig().Algorithm
	}
	return Create(cfg.Algorithm, cfg.Seed)
}
