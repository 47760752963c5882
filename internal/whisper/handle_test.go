package whisper

import (
	"context"
	"errors"
	"testing"
)

type stubEngine struct {
	loadErr error
}

func (s *stubEngine) Load() error { return s.loadErr }
func (s *stubEngine) Name() string { return "stub" }
func (s *stubEngine) Transcribe(ctx context.Context, path, language string, profile QualityProfile) (*SegmentStream, error) {
	return NewSegmentStream(nil, language), nil
}

func TestNewHandleLoadFailureLeavesEmptyHandle(t *testing.T) {
	handle, err := NewHandle(&stubEngine{loadErr: errors.New("weights missing")})
	if err == nil {
		t.Fatal("expected load error")
	}
	if handle == nil {
		t.Fatal("handle must be non-nil even on load failure")
	}
	if handle.Loaded() {
		t.Error("failed handle reports loaded")
	}

	if _, err := handle.Transcribe(context.Background(), "x.wav", "", ProfileAccurate()); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Transcribe on empty handle: err = %v, want ErrNotLoaded", err)
	}
}

func TestNewHandleSuccess(t *testing.T) {
	handle, err := NewHandle(&stubEngine{})
	if err != nil {
		t.Fatalf("NewHandle: %v", err)
	}
	if !handle.Loaded() {
		t.Fatal("handle not loaded")
	}
	if handle.EngineName() != "stub" {
		t.Errorf("engine name = %q", handle.EngineName())
	}
}

func TestNilHandleIsUnloaded(t *testing.T) {
	var handle *Handle
	if handle.Loaded() {
		t.Error("nil handle reports loaded")
	}
}
