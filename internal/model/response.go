package model

import "whisperd/internal/whisper"

// TranscriptionResponse is the payload of a completed transcription.
type TranscriptionResponse struct {
	Text       string            `json:"text"`
	Language   string            `json:"language"`
	Confidence float64           `json:"confidence"`
	Duration   float64           `json:"duration"`
	Segments   []whisper.Segment `json:"segments"`
}

// RealtimeResponse is the payload of the low-latency path. Every call is a
// complete transcription of the chunk it was given, so IsFinal is always
// true; the service does not produce incremental partials.
type RealtimeResponse struct {
	Text       string  `json:"text"`
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	IsFinal    bool    `json:"is_final"`
}

// HealthResponse reports process-wide model-load state for liveness checks.
type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	ModelSize   string `json:"model_size"`
	Device      string `json:"device"`
}

// ModelsResponse is the static model catalog plus the active configuration.
type ModelsResponse struct {
	AvailableModels []whisper.ModelInfo `json:"available_models"`
	CurrentModel    string              `json:"current_model"`
	Device          string              `json:"device"`
}
