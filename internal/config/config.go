// Package config loads supertab settings from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"supertab/internal/layout"
)

// PathEnv overrides the config file location.
const PathEnv = "SUPERTAB_CONFIG"

// Config holds application configuration.
type Config struct {
	Layout LayoutConfig
	UI     UIConfig
	Tmux   TmuxConfig
	Log    LogConfig
}

// LogConfig sets where logs go while the TUI runs.
type LogConfig struct {
	File string
}

// LayoutConfig selects the layout file. An empty Path means the bundled
// default layout.
type LayoutConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
	TabWidth  int  `mapstructure:"tab_width"`
}

// TmuxConfig maps view ids to the shell command started in the tmux pane
// showing that view.
type TmuxConfig struct {
	Commands map[string]string
}

// CommandFor returns the configured tmux command for a view, if any.
func (t TmuxConfig) CommandFor(view layout.ViewID) (string, bool) {
	cmd, ok := t.Commands[strings.ToLower(string(view))]
	return cmd, ok && cmd != ""
}

// ViewCommands converts Commands to the view-keyed form the tmux planner
// takes.
func (t TmuxConfig) ViewCommands() map[layout.ViewID]string {
	out := make(map[layout.ViewID]string, len(t.Commands))
	for k, v := range t.Commands {
		out[layout.ViewID(k)] = v
	}
	return out
}

// DefaultPath returns ~/.config/supertab/config.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".config", "supertab", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix
// SUPERTAB_ (e.g. SUPERTAB_LAYOUT_PATH). A missing config file is not an
// error.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("layout.path", "")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.tab_width", 16)
	v.SetDefault("tmux.commands", map[string]string{})
	v.SetDefault("log.file", filepath.Join(os.TempDir(), "supertab.log"))

	v.SetConfigType("toml")
	cfgPath := os.Getenv(PathEnv)
	if cfgPath == "" {
		cfgPath = DefaultPath()
	}
	v.SetConfigFile(cfgPath)

	v.SetEnvPrefix("SUPERTAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.TabWidth < 4 {
		c.UI.TabWidth = 4
	}
	return c, nil
}
