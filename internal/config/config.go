package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board    Board  `yaml:"board"`
	Setup    Setup  `yaml:"setup"`
	Match    Match  `yaml:"match"`
	Redis    Redis  `yaml:"redis"`
}

type Board struct {
	// Size is used by fleet-less setups only when non-zero; random setups draw their own.
	Size     int    `yaml:"size" env:"BOARD_SIZE" env-default:"0"`
	Strategy string `yaml:"strategy" env:"BOARD_STRATEGY" env-default:"dense"`
}

type Setup struct {
	Seed                 int64  `yaml:"seed" env:"SETUP_SEED" env-default:"0"`
	MaxPlacementAttempts int    `yaml:"max-placement-attempts" env-default:"10000"`
	FleetFile            string `yaml:"fleet-file" env:"FLEET_FILE" env-default:""`
}

type Match struct {
	MaxTurns int `yaml:"max-turns" env-default:"0"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env-default:"localhost"`
	Port    string `yaml:"port" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
