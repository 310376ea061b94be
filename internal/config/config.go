package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all triage service configuration.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// EngineConfig holds classification engine settings.
type EngineConfig struct {
	ModelPath     string  `yaml:"model_path"`
	VocabPath     string  `yaml:"vocab_path"`
	OnnxLibPath   string  `yaml:"onnx_lib_path"` // ONNX Runtime shared library; empty = next to the model
	GateThreshold float64 `yaml:"gate_threshold"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Engine: EngineConfig{
			ModelPath:     getenv("TRIAGE_MODEL_PATH", "models/model_quantized.onnx"),
			VocabPath:     getenv("TRIAGE_VOCAB_PATH", "models/vocab.txt"),
			OnnxLibPath:   os.Getenv("TRIAGE_ONNX_LIB_PATH"),
			GateThreshold: getenvFloat("TRIAGE_GATE_THRESHOLD", 0.5),
		},
		Server: ServerConfig{
			Addr: getenv("TRIAGE_ADDR", ":8080"),
		},
		Log: LogConfig{
			Level:  getenv("TRIAGE_LOG_LEVEL", "info"),
			Format: getenv("TRIAGE_LOG_FORMAT", "text"),
		},
	}
}

// LoadFile overlays a YAML config file on top of the environment-derived
// config. Fields present in the file win; absent fields keep the base value.
func LoadFile(path string) (Config, error) {
	cfg := Load()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
