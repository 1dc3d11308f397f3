package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	mapping map[string]string // Env var -> config key
}

// NewEnvLoader creates an environment loader with the default mapping.
func NewEnvLoader() *EnvLoader {
	return &EnvLoader{mapping: defaultEnvMapping()}
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(mapping map[string]string) *EnvLoader {
	return &EnvLoader{mapping: mapping}
}

func defaultEnvMapping() map[string]string {
	return map[string]string{
		"KBDWRAP_STYLE": "kbdStyle",
	}
}

// Load reads the mapped environment variables. Unset and empty variables
// are skipped.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for env, key := range l.mapping {
		if val, ok := os.LookupEnv(env); ok && val != "" {
			config[key] = parseValue(val)
		}
	}

	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, key string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = key
}

// parseValue attempts to parse the string value into an appropriate type.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	return s
}
