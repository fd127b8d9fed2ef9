// Package config loads generator settings from an optional YAML or JSON file
// overlaid with LLFSMGEN_* environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no file is given.
const DefaultFile = ".llfsmgen.yaml"

// Config holds the settings shared by the CLI and the servers.
type Config struct {
	LogLevel    string       `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	MetricsFile string       `mapstructure:"metrics_file" yaml:"metrics_file" json:"metrics_file"`
	Serve       ServeConfig  `mapstructure:"serve" yaml:"serve" json:"serve"`
	Vivado      VivadoConfig `mapstructure:"vivado" yaml:"vivado" json:"vivado"`
}

// ServeConfig configures the HTTP server.
type ServeConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr" json:"addr"`
	// AllowedOrigins lists the browser origins granted CORS access. The
	// environment variable takes a comma separated list.
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins" json:"allowed_origins"`
}

// VivadoConfig configures installation into Vivado projects.
type VivadoConfig struct {
	// SourcesDir is the path below <project>.srcs that receives sources.
	SourcesDir string `mapstructure:"sources_dir" yaml:"sources_dir" json:"sources_dir"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Serve:    ServeConfig{Addr: "127.0.0.1:8080"},
		Vivado:   VivadoConfig{SourcesDir: filepath.Join("sources_1", "new")},
	}
}

var envKeys = map[string][]string{
	"LLFSMGEN_LOG_LEVEL":             {"log_level"},
	"LLFSMGEN_METRICS_FILE":          {"metrics_file"},
	"LLFSMGEN_SERVE_ADDR":            {"serve", "addr"},
	"LLFSMGEN_SERVE_ALLOWED_ORIGINS": {"serve", "allowed_origins"},
	"LLFSMGEN_VIVADO_SOURCES_DIR":    {"vivado", "sources_dir"},
}

// Load reads path (YAML unless it ends in .json), overlays the environment
// and decodes the result over Default. A missing file is an error only when
// required is set.
func Load(path string, required bool, environ []string) (Config, error) {
	raw := map[string]any{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := unmarshal(path, data, &raw); err != nil {
				return Config{}, err
			}
		case os.IsNotExist(err) && !required:
		default:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if keyPath, known := envKeys[key]; known {
			setNested(raw, keyPath, value)
		}
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func unmarshal(path string, data []byte, raw *map[string]any) error {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, raw); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, raw); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if *raw == nil {
		*raw = map[string]any{}
	}
	return nil
}

func setNested(raw map[string]any, path []string, value string) {
	current := raw
	for _, key := range path[:len(path)-1] {
		next, ok := current[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[key] = next
		}
		current = next
	}
	current[path[len(path)-1]] = value
}
