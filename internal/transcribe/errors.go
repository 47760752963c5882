package transcribe

import "fmt"

// ErrModelNotLoaded means the model handle is empty: either startup
// initialization failed or it has not finished yet. Callers should check
// /health and retry later; the process does not retry the load itself.
var ErrModelNotLoaded = fmt.Errorf("whisper model not loaded. Check service health")

// InvalidInputError means the caller-supplied data violates a precondition.
// It is surfaced immediately with the reason; there is nothing to retry.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

// TranscriptionError wraps any failure during staging, inference, or
// aggregation. The design does not distinguish transient from permanent
// causes; the underlying message is carried to the caller.
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed: %v", e.Err)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}
