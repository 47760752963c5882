package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"WHISPER_HOST", "WHISPER_PORT", "WHISPER_ENGINE", "WHISPER_MODEL_SIZE",
		"WHISPER_DEVICE", "WHISPER_MODEL_DIR", "WHISPER_BIN", "WHISPER_VAD_MODEL",
		"OPENAI_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Host != "0.0.0.0" || cfg.Port != "8000" {
		t.Errorf("bind = %s:%s, want 0.0.0.0:8000", cfg.Host, cfg.Port)
	}
	if cfg.ModelSize != "small" {
		t.Errorf("model size = %q, want small", cfg.ModelSize)
	}
	if cfg.Device != "cpu" {
		t.Errorf("device = %q, want cpu", cfg.Device)
	}
	if cfg.Engine != "whispercpp" {
		t.Errorf("engine = %q, want whispercpp", cfg.Engine)
	}
}

func TestLoadRejectsUnknownModelSize(t *testing.T) {
	clearEnv(t)
	t.Setenv("WHISPER_MODEL_SIZE", "enormous")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown model size")
	}
}

func TestLoadRejectsUnknownDevice(t *testing.T) {
	clearEnv(t)
	t.Setenv("WHISPER_DEVICE", "tpu")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown device")
	}
}

func TestComputeTypeFollowsDevice(t *testing.T) {
	if got := (&Config{Device: "cuda"}).ComputeType(); got != "float16" {
		t.Errorf("cuda compute type = %q, want float16", got)
	}
	if got := (&Config{Device: "cpu"}).ComputeType(); got != "int8" {
		t.Errorf("cpu compute type = %q, want int8", got)
	}
}

func TestLoadAcceptsEveryKnownTier(t *testing.T) {
	for _, size := range ModelSizes {
		clearEnv(t)
		t.Setenv("WHISPER_MODEL_SIZE", size)
		if _, err := Load(); err != nil {
			t.Errorf("Load with size %q: %v", size, err)
		}
	}
}
