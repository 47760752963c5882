package transcribe

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"whisperd/internal/model"
	"whisperd/internal/whisper"
)

// Service orchestrates the transcription pipeline: validate, stage the
// upload to temp storage, run the model, aggregate segments, clean up. Every
// failure is mapped to the error taxonomy; nothing escapes to crash the
// serving task, and the staged file is released on all exit paths.
type Service struct {
	handle *whisper.Handle
}

// NewService creates a transcription service around the process-wide model
// handle.
func NewService(handle *whisper.Handle) *Service {
	return &Service{handle: handle}
}

// Transcribe runs the primary, accuracy-first path over a complete audio
// upload. language "auto" or empty lets the model detect the language.
func (s *Service) Transcribe(ctx context.Context, data []byte, contentType, language string) (*model.TranscriptionResponse, error) {
	if !s.handle.Loaded() {
		return nil, ErrModelNotLoaded
	}

	mediaType, ext := resolveMediaType(data, contentType)
	if !strings.HasPrefix(mediaType, "audio/") {
		return nil, &InvalidInputError{
			Reason: fmt.Sprintf("invalid file type: %s. Expected audio file", mediaType),
		}
	}

	path, err := StageAudio(data, ext)
	if err != nil {
		return nil, &TranscriptionError{Err: err}
	}
	defer RemoveStaged(path)

	log.Printf("[Transcribe] Processing %d bytes (%s) language=%q", len(data), mediaType, language)

	stream, err := s.handle.Transcribe(ctx, path, languageHint(language), whisper.ProfileAccurate())
	if err != nil {
		return nil, &TranscriptionError{Err: err}
	}

	agg := AggregateStream(stream, 0)
	if err := stream.Err(); err != nil {
		return nil, &TranscriptionError{Err: err}
	}

	log.Printf("[Transcribe] Done: %d segments, confidence=%.2f, duration=%.1fs",
		len(agg.Segments), agg.Confidence, agg.Duration)

	return &model.TranscriptionResponse{
		Text:       agg.Text,
		Language:   stream.Language(),
		Confidence: agg.Confidence,
		Duration:   agg.Duration,
		Segments:   agg.Segments,
	}, nil
}

// TranscribeRealtime runs the low-latency path over a short streaming chunk.
// Only the first produced segment contributes; the rest of the stream is
// abandoned. Each call is independent and complete, so the response is
// always final.
func (s *Service) TranscribeRealtime(ctx context.Context, data []byte, language string) (*model.RealtimeResponse, error) {
	if !s.handle.Loaded() {
		return nil, ErrModelNotLoaded
	}

	_, ext := resolveMediaType(data, "")
	path, err := StageAudio(data, ext)
	if err != nil {
		return nil, &TranscriptionError{Err: err}
	}
	defer RemoveStaged(path)

	stream, err := s.handle.Transcribe(ctx, path, languageHint(language), whisper.ProfileFast())
	if err != nil {
		return nil, &TranscriptionError{Err: err}
	}

	agg := AggregateStream(stream, 1)
	if err := stream.Err(); err != nil {
		return nil, &TranscriptionError{Err: err}
	}

	return &model.RealtimeResponse{
		Text:       agg.Text,
		Language:   stream.Language(),
		Confidence: agg.Confidence,
		IsFinal:    true,
	}, nil
}

// resolveMediaType returns the effective media type and a staging file
// extension. A declared Content-Type wins; when the client sent none the
// bytes are sniffed instead.
func resolveMediaType(data []byte, declared string) (string, string) {
	declared = strings.TrimSpace(strings.ToLower(declared))
	if declared != "" && declared != "application/octet-stream" {
		// Strip parameters like "; codecs=opus".
		if i := strings.Index(declared, ";"); i >= 0 {
			declared = strings.TrimSpace(declared[:i])
		}
		return declared, extensionFor(declared)
	}
	mt := mimetype.Detect(data)
	return mt.String(), mt.Extension()
}

func extensionFor(mediaType string) string {
	switch mediaType {
	case "audio/mpeg", "audio/mp3":
		return ".mp3"
	case "audio/mp4", "audio/m4a", "audio/x-m4a":
		return ".m4a"
	case "audio/ogg":
		return ".ogg"
	case "audio/flac", "audio/x-flac":
		return ".flac"
	case "audio/webm":
		return ".webm"
	default:
		return ".wav"
	}
}

func languageHint(language string) string {
	if language == "auto" {
		return ""
	}
	return language
}
