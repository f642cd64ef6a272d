package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/retrodesk/console"
	"github.com/lixenwraith/retrodesk/engine"
)

const (
	EnvPrefix  = "RETRODESK"
	configName = "retrodesk"
)

// Loader reads configuration from defaults, file, and environment
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader creates a loader with a private viper instance
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// WithConfigFile sets an explicit config file path
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// Viper returns the underlying instance for flag binding
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load resolves the configuration and validates it
// Precedence: flags, RETRODESK_* env, config file, defaults
func (l *Loader) Load() (*Config, error) {
	l.setDefaults()

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	} else {
		l.v.SetConfigName(configName)
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			l.v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (l *Loader) setDefaults() {
	l.v.SetDefault("background", "")

	l.v.SetDefault("console.banner", console.DefaultBanner)
	l.v.SetDefault("console.prompt", console.DefaultPrompt)
	l.v.SetDefault("console.capacity", console.DefaultCapacity)

	l.v.SetDefault("keymap.file", "")

	l.v.SetDefault("loop.interval", engine.DefaultFrameInterval)

	l.v.SetDefault("audio.enabled", false)
	l.v.SetDefault("audio.volume", 0.5)

	l.v.SetDefault("log.file", "retrodesk.log")
	l.v.SetDefault("log.debug", false)

	l.v.SetDefault("panels", DefaultPanels())
}

// DefaultPanels is the stock desktop: two overlapping color panels under a console
func DefaultPanels() []map[string]any {
	return []map[string]any{
		{"kind": KindStatic, "name": "red", "x": 1, "y": 1, "w": 40, "h": 16, "color": "#ff0000"},
		{"kind": KindStatic, "name": "green", "x": 37, "y": 3, "w": 24, "h": 10, "color": "#00ff00"},
		{"kind": KindConsole, "name": "console", "x": 8, "y": 8, "w": 60, "h": 14},
	}
}
