package health

import (
	"context"
	"testing"

	"whisperd/internal/config"
	"whisperd/internal/whisper"
)

type okEngine struct{}

func (okEngine) Load() error { return nil }
func (okEngine) Name() string { return "ok" }
func (okEngine) Transcribe(ctx context.Context, path, language string, profile whisper.QualityProfile) (*whisper.SegmentStream, error) {
	return whisper.NewSegmentStream(nil, language), nil
}

func TestReportUnloadedModel(t *testing.T) {
	cfg := &config.Config{ModelSize: "small", Device: "cpu"}
	r := NewReporter(cfg, &whisper.Handle{})

	report := r.Report()
	if report.Status != "unhealthy" {
		t.Errorf("status = %q, want unhealthy", report.Status)
	}
	if report.ModelLoaded {
		t.Error("model_loaded = true, want false")
	}
	if report.ModelSize != "small" || report.Device != "cpu" {
		t.Errorf("config echo = %s/%s", report.ModelSize, report.Device)
	}
}

func TestReportLoadedModel(t *testing.T) {
	cfg := &config.Config{ModelSize: "medium", Device: "cuda"}
	handle, err := whisper.NewHandle(okEngine{})
	if err != nil {
		t.Fatalf("NewHandle: %v", err)
	}

	report := NewReporter(cfg, handle).Report()
	if report.Status != "healthy" || !report.ModelLoaded {
		t.Errorf("report = %+v, want healthy/loaded", report)
	}
}
