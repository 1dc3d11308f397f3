package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dshills/kbdwrap/internal/config/loader"
	"github.com/dshills/kbdwrap/internal/style"
)

// KeyKbdStyle is the settings key holding the style name.
const KeyKbdStyle = "kbdStyle"

// Settings holds the user preferences.
type Settings struct {
	KbdStyle string
}

// Default returns the default settings.
func Default() Settings {
	return Settings{KbdStyle: string(style.Default)}
}

// Validate reports whether the settings hold supported values.
func (s Settings) Validate() error {
	if _, err := style.Parse(s.KbdStyle); err != nil {
		return &ValidationError{Key: KeyKbdStyle, Value: s.KbdStyle, Err: ErrInvalidStyle}
	}
	return nil
}

// Style returns the configured style, or style.Default if it is invalid.
func (s Settings) Style() style.Style {
	st, err := style.Parse(s.KbdStyle)
	if err != nil {
		return style.Default
	}
	return st
}

func (s Settings) toMap() map[string]any {
	return map[string]any{KeyKbdStyle: s.KbdStyle}
}

// Config loads, holds and saves the settings for one file.
type Config struct {
	mu sync.RWMutex

	path     string
	fs       loader.FileSystem
	env      *loader.EnvLoader
	settings Settings

	// saved holds the file's last loaded values, including keys this
	// package does not know about.
	saved map[string]any

	handlers []func(Settings)
}

// Option configures a Config instance.
type Option func(*Config)

// WithPath sets the settings file path.
func WithPath(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.path = path
		}
	}
}

// WithFileSystem sets the file system used to read and write settings.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fs
	}
}

// WithEnv sets the environment loader; nil disables environment overrides.
func WithEnv(env *loader.EnvLoader) Option {
	return func(c *Config) {
		c.env = env
	}
}

// New creates a Config holding the default settings.
func New(opts ...Option) *Config {
	c := &Config{
		path:     DefaultPath(),
		fs:       loader.DefaultFS(),
		env:      loader.NewEnvLoader(),
		settings: Default(),
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Path returns the settings file path.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.path
}

// Settings returns a copy of the current settings.
func (c *Config) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

// OnChange registers a handler called after the settings change.
func (c *Config) OnChange(fn func(Settings)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, fn)
}

// Load reads the settings file, merges it over the defaults and applies
// environment overrides. A missing file yields the defaults. On error the
// current settings are kept.
func (c *Config) Load() error {
	c.mu.RLock()
	path, fsys, env := c.path, c.fs, c.env
	c.mu.RUnlock()

	codec, err := loader.ForPath(fsys, path)
	if err != nil {
		return err
	}

	saved, err := codec.Load()
	if err != nil {
		return err
	}

	merged := loader.DeepMerge(Default().toMap(), loader.Clone(saved))
	if env != nil {
		overrides, err := env.Load()
		if err != nil {
			return err
		}
		merged = loader.DeepMerge(merged, overrides)
	}

	settings, err := decode(merged)
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	c.mu.Lock()
	c.settings = settings
	c.saved = saved
	c.mu.Unlock()

	c.notify(settings)
	return nil
}

// SetStyle validates and sets the style without saving.
func (c *Config) SetStyle(name string) error {
	st, err := style.Parse(name)
	if err != nil {
		return &ValidationError{Key: KeyKbdStyle, Value: name, Err: ErrInvalidStyle}
	}

	c.mu.Lock()
	c.settings.KbdStyle = string(st)
	settings := c.settings
	c.mu.Unlock()

	c.notify(settings)
	return nil
}

// Save writes the settings to the file in its format. Keys loaded from the
// file that this package does not manage are written back unchanged.
func (c *Config) Save() error {
	c.mu.RLock()
	path, fsys := c.path, c.fs
	values := loader.DeepMerge(loader.Clone(c.saved), c.settings.toMap())
	c.mu.RUnlock()

	codec, err := loader.ForPath(fsys, path)
	if err != nil {
		return err
	}
	if err := codec.Save(values); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}

	c.mu.Lock()
	c.saved = values
	c.mu.Unlock()
	return nil
}

func (c *Config) notify(s Settings) {
	c.mu.RLock()
	handlers := make([]func(Settings), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.RUnlock()

	for _, fn := range handlers {
		fn(s)
	}
}

func decode(values map[string]any) (Settings, error) {
	s := Default()
	if v, ok := values[KeyKbdStyle]; ok {
		name, ok := v.(string)
		if !ok {
			return s, &ValidationError{Key: KeyKbdStyle, Value: v, Err: ErrTypeMismatch}
		}
		s.KbdStyle = name
	}
	return s, nil
}

// DefaultPath returns the default settings file location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kbdwrap", "settings.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "kbdwrap", "settings.toml")
}
