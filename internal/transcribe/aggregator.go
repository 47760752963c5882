package transcribe

import (
	"strings"

	"whisperd/internal/whisper"
)

// logProbFloor is the log-probability mapped to confidence 0. Whisper
// log-probabilities for well-recognized speech cluster near 0 and degenerate
// audio trends toward -5 or below; the affine map (mean - floor) / -floor
// yields a human-readable [0,1] score. The floor is empirical, not
// model-verified; swap it here if a different model family clips.
const logProbFloor = -5.0

// Aggregate is the folded outcome of a segment stream.
type Aggregate struct {
	Text       string
	Duration   float64
	Confidence float64
	Segments   []whisper.Segment
}

// AggregateStream folds segments in arrival order into the final transcript,
// total duration, and normalized confidence. maxSegments limits how much of
// the stream is consumed (the low-latency path passes 1 and abandons the
// rest); zero or negative means drain everything.
func AggregateStream(stream *whisper.SegmentStream, maxSegments int) Aggregate {
	var (
		agg     Aggregate
		text    strings.Builder
		logSum  float64
		nTotals int
	)
	agg.Segments = []whisper.Segment{} // marshal as [] rather than null when empty

	for {
		if maxSegments > 0 && nTotals >= maxSegments {
			break
		}
		seg, ok := stream.Next()
		if !ok {
			break
		}
		text.WriteString(seg.TrimmedText())
		text.WriteString(" ")
		if seg.End > agg.Duration {
			agg.Duration = seg.End
		}
		logSum += seg.AvgLogProb
		nTotals++
		agg.Segments = append(agg.Segments, seg)
	}

	agg.Text = strings.TrimSpace(text.String())
	if nTotals > 0 {
		agg.Confidence = normalizeConfidence(logSum / float64(nTotals))
	}
	return agg
}

// normalizeConfidence maps a mean log-probability from [logProbFloor, 0]
// onto [0, 1], clamped because raw log-probabilities are unbounded below.
func normalizeConfidence(meanLogProb float64) float64 {
	c := (meanLogProb - logProbFloor) / -logProbFloor
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
