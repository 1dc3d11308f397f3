// Package config manages the plugin settings.
//
// Settings are read from a TOML, YAML or JSON file chosen by extension and
// merged over the defaults, so a file that sets nothing, or does not exist,
// yields the defaults. The KBDWRAP_STYLE environment variable overrides the
// file. Saving writes the settings back in the file's own format.
//
//	cfg := config.New(config.WithPath(path))
//	if err := cfg.Load(); err != nil {
//	    return err
//	}
//	style := cfg.Settings().KbdStyle
package config
