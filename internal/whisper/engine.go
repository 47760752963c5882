package whisper

import "context"

// Engine is the opaque transcription capability: given a staged audio file
// and a language hint, produce timed segments and the detected language.
// Engines are stateless across calls and safe for concurrent use once
// loaded.
type Engine interface {
	// Load verifies the engine can run (weights present, binary found,
	// credentials set) and acquires whatever it needs for the process
	// lifetime. Called once at startup.
	Load() error

	// Transcribe runs inference over the audio file at path. An empty
	// language means detect from the audio. The returned stream is
	// single-pass and must be consumed on the calling side before the
	// audio file is released.
	Transcribe(ctx context.Context, path, language string, profile QualityProfile) (*SegmentStream, error)

	// Name returns the engine name (e.g., "whispercpp", "openai").
	Name() string
}
