package whisper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"whisperd/internal/config"
)

// WhisperCPPEngine runs transcription through the whisper.cpp CLI. The model
// weights are memory-mapped by the subprocess per call; Load only verifies
// that the binary and the weight file for the configured tier exist, so a
// misconfigured tier is caught at startup rather than on the first request.
type WhisperCPPEngine struct {
	binPath   string
	modelPath string
	device    string
	vadModel  string
}

// NewWhisperCPPEngine creates a whisper.cpp engine from configuration. The
// weight file is resolved from the size tier and the derived precision:
// plain ggml weights for float16, q8_0-quantized weights for int8.
func NewWhisperCPPEngine(cfg *config.Config) *WhisperCPPEngine {
	name := "ggml-" + cfg.ModelSize + ".bin"
	if cfg.ComputeType() == "int8" {
		name = "ggml-" + cfg.ModelSize + "-q8_0.bin"
	}
	return &WhisperCPPEngine{
		binPath:   cfg.BinPath,
		modelPath: filepath.Join(cfg.ModelDir, name),
		device:    cfg.Device,
		vadModel:  cfg.VADModel,
	}
}

// Name returns the engine name.
func (e *WhisperCPPEngine) Name() string {
	return "whispercpp"
}

// Load resolves the whisper binary and checks the weight file is present.
func (e *WhisperCPPEngine) Load() error {
	if e.binPath == "" {
		e.binPath = findWhisperBinary()
	}
	if e.binPath == "" {
		return fmt.Errorf("whisper binary not found. Set WHISPER_BIN or install whisper-cli on PATH")
	}
	if _, err := os.Stat(e.binPath); err != nil {
		return fmt.Errorf("whisper binary not usable: %w", err)
	}
	if _, err := os.Stat(e.modelPath); err != nil {
		return fmt.Errorf("model weights not found: %s (download the ggml model for this tier first)", e.modelPath)
	}
	log.Printf("[WhisperCPP] Using binary %s with model %s", e.binPath, e.modelPath)
	return nil
}

// findWhisperBinary locates whisper-cli, preferring PATH over the usual
// install locations.
func findWhisperBinary() string {
	for _, name := range []string{"whisper-cli", "whisper"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	locations := []string{
		"/usr/local/bin/whisper-cli",
		"/usr/local/bin/whisper",
		"/usr/bin/whisper-cli",
		"/opt/homebrew/bin/whisper-cli",
	}
	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return ""
}

// Transcribe runs the CLI over the staged audio file and parses its JSON
// output into a segment stream.
func (e *WhisperCPPEngine) Transcribe(ctx context.Context, path, language string, profile QualityProfile) (*SegmentStream, error) {
	outBase := path + ".out"

	args := []string{
		"--model", e.modelPath,
		"--beam-size", strconv.Itoa(profile.BeamSize),
		"--best-of", strconv.Itoa(profile.BestOf),
		"--temperature", strconv.FormatFloat(profile.Temperature, 'f', -1, 64),
		"--no-prints",
		"--output-json-full",
		"--output-file", outBase,
	}
	if language == "" {
		args = append(args, "--language", "auto")
	} else {
		args = append(args, "--language", language)
	}
	if !profile.ConditionOnPreviousText {
		args = append(args, "--no-context")
	}
	if profile.VADFilter {
		args = append(args, "--vad")
		if profile.MinSilenceMs > 0 {
			args = append(args, "--vad-min-silence-duration-ms", strconv.Itoa(profile.MinSilenceMs))
		}
		if e.vadModel != "" {
			args = append(args, "--vad-model", e.vadModel)
		}
	}
	if e.device == "cpu" {
		args = append(args, "--no-gpu")
	}
	args = append(args, path)

	cmd := exec.CommandContext(ctx, e.binPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		preview := strings.TrimSpace(string(output))
		if len(preview) > 500 {
			preview = preview[:500] + "..."
		}
		return nil, fmt.Errorf("whisper.cpp failed: %w (output: %s)", err, preview)
	}

	jsonPath := outBase + ".json"
	defer os.Remove(jsonPath)

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("whisper.cpp produced no output file: %w", err)
	}

	return parseWhisperCPPOutput(data, language)
}

// whisper.cpp --output-json-full document. Offsets are milliseconds; each
// token carries its probability, from which the per-segment mean
// log-probability is computed.
type whisperCPPOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text   string            `json:"text"`
		Tokens []whisperCPPToken `json:"tokens"`
	} `json:"transcription"`
}

type whisperCPPToken struct {
	Text string  `json:"text"`
	P    float64 `json:"p"`
}

func parseWhisperCPPOutput(data []byte, languageHint string) (*SegmentStream, error) {
	var out whisperCPPOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse whisper.cpp output: %w", err)
	}

	segments := make([]Segment, 0, len(out.Transcription))
	for _, t := range out.Transcription {
		seg := Segment{
			Start: float64(t.Offsets.From) / 1000.0,
			End:   float64(t.Offsets.To) / 1000.0,
			Text:  t.Text,
		}
		seg.AvgLogProb = tokenMeanLogProb(t.Tokens)
		if seg.TrimmedText() == "" {
			continue
		}
		segments = append(segments, seg)
	}

	language := out.Result.Language
	if language == "" {
		language = languageHint
	}

	return NewSegmentStream(segments, language), nil
}

// tokenMeanLogProb averages log(p) over the text tokens of a segment,
// skipping special markers like [_BEG_]. Zero probabilities are floored so a
// single dropped token cannot push the mean to -Inf.
func tokenMeanLogProb(tokens []whisperCPPToken) float64 {
	const minProb = 1e-8
	var sum float64
	var n int
	for _, tok := range tokens {
		if strings.HasPrefix(tok.Text, "[_") {
			continue
		}
		p := tok.P
		if p < minProb {
			p = minProb
		}
		sum += math.Log(p)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
