package config

import (
	"fmt"
	"os"
	"strings"
)

// ModelSizes lists the whisper size tiers this service knows how to load,
// smallest to largest.
var ModelSizes = []string{"tiny", "base", "small", "medium", "large-v2", "large-v3"}

type Config struct {
	Host      string
	Port      string
	Engine    string // "whispercpp" or "openai"
	ModelSize string
	Device    string // "cpu" or "cuda"
	ModelDir  string
	BinPath   string // whisper.cpp binary override, empty means auto-discover
	VADModel  string // optional silero VAD model path for whisper.cpp
	OpenAIKey string
}

// Load loads configuration from environment variables. Configuration is read
// once at startup and is immutable for the process lifetime.
func Load() (*Config, error) {
	cfg := &Config{
		Host:      getEnv("WHISPER_HOST", "0.0.0.0"),
		Port:      getEnv("WHISPER_PORT", "8000"),
		Engine:    strings.ToLower(getEnv("WHISPER_ENGINE", "whispercpp")),
		ModelSize: getEnv("WHISPER_MODEL_SIZE", "small"),
		Device:    getEnv("WHISPER_DEVICE", "cpu"),
		ModelDir:  getEnv("WHISPER_MODEL_DIR", "models"),
		BinPath:   os.Getenv("WHISPER_BIN"),
		VADModel:  os.Getenv("WHISPER_VAD_MODEL"),
		OpenAIKey: os.Getenv("OPENAI_API_KEY"),
	}

	if !validModelSize(cfg.ModelSize) {
		return nil, fmt.Errorf("unsupported WHISPER_MODEL_SIZE %q. Supported: %s",
			cfg.ModelSize, strings.Join(ModelSizes, ", "))
	}

	if cfg.Device != "cpu" && cfg.Device != "cuda" {
		return nil, fmt.Errorf("unsupported WHISPER_DEVICE %q. Supported: cpu, cuda", cfg.Device)
	}

	return cfg, nil
}

// ComputeType returns the numeric precision derived from the device:
// reduced-precision floats on GPU for throughput, 8-bit quantization on CPU
// to keep the memory footprint down.
func (c *Config) ComputeType() string {
	if c.Device == "cuda" {
		return "float16"
	}
	return "int8"
}

func validModelSize(size string) bool {
	for _, s := range ModelSizes {
		if s == size {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
