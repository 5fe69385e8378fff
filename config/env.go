package config

import "github.com/ilyakaznacheev/cleanenv"

// EnvConfig is the ambient, process-level configuration for a table
// host running the hand engine: the forced-bet structure plus the
// per-actor time limit, read from the environment so the same binary
// can be retuned without a rebuild.
type EnvConfig struct {
	SmallBlind int64 `env:"HANDENGINE_SMALL_BLIND" env-default:"10"`
	BigBlind   int64 `env:"HANDENGINE_BIG_BLIND" env-default:"20"`
	Antes      int64 `env:"HANDENGINE_ANTES" env-default:"0"`
	TimeLimit  int64 `env:"HANDENGINE_TIME_LIMIT_SECONDS" env-default:"30"`
}

// Load reads EnvConfig from the process environment.
func Load() (*EnvConfig, error) {
	cfg := &EnvConfig{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
