// Package config loads settings for both programs from flags, the
// environment and an optional offline-chess.yaml file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sakethpatnayakuni/offline-chess/internal/storage"
)

const (
	FrontendDesktop  = "desktop"
	FrontendTerminal = "terminal"
)

type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

type UIConfig struct {
	TileSize  int    `mapstructure:"tile_size"`
	GlyphFont string `mapstructure:"glyph_font"`
	AssetsDir string `mapstructure:"assets_dir"`
	Frontend  string `mapstructure:"frontend"`
	Sound     bool   `mapstructure:"sound"`
}

type EngineConfig struct {
	Path       string        `mapstructure:"path"`
	MoveTime   time.Duration `mapstructure:"move_time"`
	ReplyDelay time.Duration `mapstructure:"reply_delay"`
}

type StorageConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
}

type LogConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

// flagKeys maps command line flags to config keys. Flags a program does not
// register are skipped.
var flagKeys = map[string]string{
	"tile-size":   "ui.tile_size",
	"glyph-font":  "ui.glyph_font",
	"assets":      "ui.assets_dir",
	"frontend":    "ui.frontend",
	"engine":      "engine.path",
	"move-time":   "engine.move_time",
	"reply-delay": "engine.reply_delay",
	"storage-dir": "storage.dir",
	"no-storage":  "",
	"no-sound":    "",
	"log-level":   "log.level",
}

// NewFlagSet returns a flag set carrying the flags shared by both programs.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a config file")
	fs.Int("tile-size", 0, "board square size in pixels")
	fs.String("storage-dir", "", "database directory")
	fs.Bool("no-storage", false, "do not read or write the database")
	fs.Bool("no-sound", false, "mute move and check sounds")
	fs.String("log-level", "", "log level (trace, debug, info, warn, error)")
	return fs
}

// Load resolves the configuration. fs must already be parsed. tileSize is the
// program's default square size.
func Load(fs *pflag.FlagSet, tileSize int) (*Config, error) {
	v := viper.New()

	v.SetConfigName("offline-chess")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if dir, err := storage.DataDirPath(); err == nil {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("OFFLINE_CHESS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("ui.tile_size", tileSize)
	v.SetDefault("ui.glyph_font", "")
	v.SetDefault("ui.assets_dir", "assets")
	v.SetDefault("ui.frontend", FrontendDesktop)
	v.SetDefault("ui.sound", true)
	v.SetDefault("engine.path", "stockfish")
	v.SetDefault("engine.move_time", 500*time.Millisecond)
	v.SetDefault("engine.reply_delay", 500*time.Millisecond)
	v.SetDefault("storage.enabled", true)
	v.SetDefault("storage.dir", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", true)

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if fs != nil {
		if off, err := fs.GetBool("no-storage"); err == nil && off {
			cfg.Storage.Enabled = false
		}
		if off, err := fs.GetBool("no-sound"); err == nil && off {
			cfg.UI.Sound = false
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindFlags binds only flags the user actually set, so zero-valued flag
// defaults never mask file or env values.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		key := flagKeys[f.Name]
		if key == "" || err != nil {
			return
		}
		err = v.BindPFlag(key, f)
	})
	if err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	return nil
}

// Validate rejects values the programs cannot run with.
func (c *Config) Validate() error {
	if c.UI.TileSize < 16 {
		return fmt.Errorf("ui.tile_size %d is too small", c.UI.TileSize)
	}
	switch c.UI.Frontend {
	case FrontendDesktop, FrontendTerminal:
	default:
		return fmt.Errorf("unknown ui.frontend %q", c.UI.Frontend)
	}
	if c.Engine.MoveTime <= 0 {
		return fmt.Errorf("engine.move_time must be positive")
	}
	if c.Engine.ReplyDelay < 0 {
		return fmt.Errorf("engine.reply_delay must not be negative")
	}
	return nil
}
