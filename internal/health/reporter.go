package health

import (
	"whisperd/internal/config"
	"whisperd/internal/model"
	"whisperd/internal/whisper"
)

// Reporter projects process-wide configuration and model-load state into the
// health payload. It is a pure read with no side effects and never fails:
// liveness probes must succeed even while the model is unusable.
type Reporter struct {
	cfg    *config.Config
	handle *whisper.Handle
}

// NewReporter creates a health reporter over the given configuration and
// model handle.
func NewReporter(cfg *config.Config, handle *whisper.Handle) *Reporter {
	return &Reporter{cfg: cfg, handle: handle}
}

// Report returns the current health status.
func (r *Reporter) Report() model.HealthResponse {
	loaded := r.handle.Loaded()
	status := "healthy"
	if !loaded {
		status = "unhealthy"
	}
	return model.HealthResponse{
		Status:      status,
		ModelLoaded: loaded,
		ModelSize:   r.cfg.ModelSize,
		Device:      r.cfg.Device,
	}
}
