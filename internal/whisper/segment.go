package whisper

import "strings"

// Segment is a contiguous span of recognized speech. AvgLogProb is the
// model's per-segment mean log-probability, typically in [-5, 0] with values
// near 0 meaning higher confidence. The wire payload reports it under
// "confidence", matching what clients of this service already parse.
type Segment struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Text       string  `json:"text"`
	AvgLogProb float64 `json:"confidence"`
}

// TrimmedText returns the segment text with surrounding whitespace removed.
func (s Segment) TrimmedText() string {
	return strings.TrimSpace(s.Text)
}
