package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Version is the producer version stamped into models built by the CLI.
const Version = "0.1.0"

// Config represents the onnxcommon configuration
type Config struct {
	// Opset used when the graph description does not name one
	TargetOpset int64 `mapstructure:"target_opset"`

	// Whether converters should run the optimizer on the result
	EnableOptimizer bool `mapstructure:"enable_optimizer"`

	Producer ProducerConfig `mapstructure:"producer"`
	Model    ModelConfig    `mapstructure:"model"`
	Log      LogConfig      `mapstructure:"log"`
}

type ProducerConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

type ModelConfig struct {
	Domain  string `mapstructure:"domain"`
	Version int64  `mapstructure:"version"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Debug bool   `mapstructure:"debug"`
}

// Load reads onnxcommon.yaml from the working directory or the user config directory, then
// applies ONNXCOMMON_* environment overrides such as ONNXCOMMON_LOG_FILE. A non-empty path
// names the config file explicitly, and it must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("onnxcommon")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := userConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix("ONNXCOMMON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if cfg.TargetOpset <= 0 {
		return nil, fmt.Errorf("target_opset must be positive, got %d", cfg.TargetOpset)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("target_opset", 15)
	v.SetDefault("enable_optimizer", true)

	v.SetDefault("producer.name", "onnxcommon")
	v.SetDefault("producer.version", Version)

	v.SetDefault("model.domain", "")
	v.SetDefault("model.version", 0)

	v.SetDefault("log.file", "onnxcommon.log")
	v.SetDefault("log.debug", false)
}

// userConfigDir returns $XDG_CONFIG_HOME/onnxcommon or the platform equivalent.
func userConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "onnxcommon")
}
