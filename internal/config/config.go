// Package config loads application configuration and bootstraps the
// global logger. Defaults mirror the standard design inputs; any value can
// be overridden from an optional config.yaml or a WFF_-prefixed
// environment variable.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/TurnbullEngineering/water-flow-forces/internal/as5100"
)

// Config holds the full application configuration.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults" mapstructure:"defaults"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// DefaultsConfig carries the design inputs used when a flag is not given.
type DefaultsConfig struct {
	ColumnDiameter   float64 `yaml:"column_diameter" mapstructure:"column_diameter"`
	Cd               float64 `yaml:"cd" mapstructure:"cd"`
	PileDiameter     float64 `yaml:"pile_diameter" mapstructure:"pile_diameter"`
	CdPile           float64 `yaml:"cd_pile" mapstructure:"cd_pile"`
	WaterDepth       float64 `yaml:"water_depth" mapstructure:"water_depth"`
	WaterVelocity    float64 `yaml:"water_velocity" mapstructure:"water_velocity"`
	ScourDepth       float64 `yaml:"scour_depth" mapstructure:"scour_depth"`
	MinDebrisDepth   float64 `yaml:"min_debris_depth" mapstructure:"min_debris_depth"`
	MaxDebrisDepth   float64 `yaml:"max_debris_depth" mapstructure:"max_debris_depth"`
	LogMass          float64 `yaml:"log_mass" mapstructure:"log_mass"`
	StoppingDistance float64 `yaml:"stopping_distance" mapstructure:"stopping_distance"`
	LoadFactor       float64 `yaml:"load_factor" mapstructure:"load_factor"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file, environment and defaults.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("WFF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("defaults.column_diameter", as5100.DefaultColumnDiameter)
	v.SetDefault("defaults.cd", as5100.DefaultCd[as5100.Pier])
	// 0 means "adopt the pier diameter" for pier legs
	v.SetDefault("defaults.pile_diameter", 0.0)
	v.SetDefault("defaults.cd_pile", as5100.DefaultCdPile[as5100.Pier])
	v.SetDefault("defaults.water_depth", as5100.DefaultWaterDepth)
	v.SetDefault("defaults.water_velocity", as5100.DefaultWaterVelocity)
	v.SetDefault("defaults.scour_depth", as5100.DefaultScourDepth)
	v.SetDefault("defaults.min_debris_depth", as5100.DefaultMinDebrisDepth)
	v.SetDefault("defaults.max_debris_depth", as5100.DefaultMaxDebrisDepth)
	v.SetDefault("defaults.log_mass", as5100.DefaultLogMass)
	v.SetDefault("defaults.stopping_distance", as5100.DefaultStoppingDistance)
	v.SetDefault("defaults.load_factor", as5100.DefaultLoadFactor)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	return &cfg, nil
}

// InitLogger builds the process-wide zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
