package whisper

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIEngine transcribes through the hosted OpenAI whisper API. The
// verbose-JSON response format carries per-segment timestamps and
// avg_logprob, so the segment shape maps one-to-one. Beam width and VAD
// are not controllable on the hosted API; only the temperature from the
// quality profile is honored.
type OpenAIEngine struct {
	client *openai.Client
}

// NewOpenAIEngine creates an engine backed by the OpenAI transcription API.
func NewOpenAIEngine(apiKey string) *OpenAIEngine {
	return &OpenAIEngine{client: openai.NewClient(apiKey)}
}

// Name returns the engine name.
func (e *OpenAIEngine) Name() string {
	return "openai"
}

// Load is a no-op beyond construction; the API key was validated by the
// factory and the first request surfaces any credential problem.
func (e *OpenAIEngine) Load() error {
	return nil
}

// Transcribe sends the staged audio file to the API and maps the verbose
// response into a segment stream.
func (e *OpenAIEngine) Transcribe(ctx context.Context, path, language string, profile QualityProfile) (*SegmentStream, error) {
	req := openai.AudioRequest{
		Model:       openai.Whisper1,
		FilePath:    path,
		Language:    language,
		Temperature: float32(profile.Temperature),
		Format:      openai.AudioResponseFormatVerboseJSON,
	}

	resp, err := e.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openai transcription request failed: %w", err)
	}

	segments := make([]Segment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		segments = append(segments, Segment{
			Start:      s.Start,
			End:        s.End,
			Text:       s.Text,
			AvgLogProb: s.AvgLogprob,
		})
	}

	return NewSegmentStream(segments, resp.Language), nil
}
