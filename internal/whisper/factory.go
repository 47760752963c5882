package whisper

import (
	"fmt"
	"log"

	"whisperd/internal/config"
)

// CreateEngine creates a transcription engine based on configuration.
func CreateEngine(cfg *config.Config) (Engine, error) {
	switch cfg.Engine {
	case "whispercpp":
		log.Printf("[Whisper Factory] Creating whisper.cpp engine (model=%s device=%s compute=%s)",
			cfg.ModelSize, cfg.Device, cfg.ComputeType())
		return NewWhisperCPPEngine(cfg), nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for the openai engine")
		}
		log.Printf("[Whisper Factory] Creating OpenAI transcription engine")
		return NewOpenAIEngine(cfg.OpenAIKey), nil
	default:
		return nil, fmt.Errorf("unsupported WHISPER_ENGINE: %s. Supported: whispercpp, openai", cfg.Engine)
	}
}
