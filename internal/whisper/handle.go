package whisper

import (
	"context"
	"errors"
	"log"
	"time"
)

// ErrNotLoaded is returned by Transcribe when the handle holds no engine.
var ErrNotLoaded = errors.New("whisper model not loaded")

// Handle owns the loaded transcription engine for the process lifetime. It
// is constructed once at startup and read-only afterwards: concurrent
// transcription calls share it without locking because the engine is
// stateless across calls. A Handle that failed to load stays empty; every
// transcription call then fails fast and health reporting surfaces the
// degraded state.
type Handle struct {
	engine Engine
}

// NewHandle loads the engine and wraps it. Load failure is not fatal to the
// caller: the error is returned alongside an empty (non-nil) handle so the
// process can keep serving health checks.
func NewHandle(engine Engine) (*Handle, error) {
	start := time.Now()
	if err := engine.Load(); err != nil {
		return &Handle{}, err
	}
	log.Printf("[Whisper] Engine %s loaded in %v", engine.Name(), time.Since(start))
	return &Handle{engine: engine}, nil
}

// Loaded reports whether the handle holds a usable engine.
func (h *Handle) Loaded() bool {
	return h != nil && h.engine != nil
}

// EngineName returns the loaded engine's name, or "" when unloaded.
func (h *Handle) EngineName() string {
	if !h.Loaded() {
		return ""
	}
	return h.engine.Name()
}

// Transcribe runs inference on the staged audio file. The returned stream is
// single-pass; the caller must consume it before removing the file.
func (h *Handle) Transcribe(ctx context.Context, path, language string, profile QualityProfile) (*SegmentStream, error) {
	if !h.Loaded() {
		return nil, ErrNotLoaded
	}
	return h.engine.Transcribe(ctx, path, language, profile)
}
