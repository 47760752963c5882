package whisper

// SegmentStream is a single-pass sequence of segments plus the language the
// model detected for the audio. Re-transcription is expensive, so the stream
// cannot be reset or re-read: each segment is handed out exactly once.
// Callers are free to stop early (the low-latency path reads only the first
// segment and abandons the rest).
type SegmentStream struct {
	segments []Segment
	pos      int
	language string
	err      error
}

// NewSegmentStream wraps already-decoded segments in a stream. The engine
// backends decode their full output before handing it over, so the stream is
// finite by construction.
func NewSegmentStream(segments []Segment, language string) *SegmentStream {
	return &SegmentStream{segments: segments, language: language}
}

// Next returns the next segment in chronological order. The second return is
// false once the stream is exhausted; calling Next past the end stays false.
func (s *SegmentStream) Next() (Segment, bool) {
	if s.pos >= len(s.segments) {
		return Segment{}, false
	}
	seg := s.segments[s.pos]
	s.pos++
	return seg, true
}

// Language returns the detected (or caller-hinted) language of the audio.
func (s *SegmentStream) Language() string {
	return s.language
}

// Err returns the error, if any, that truncated the stream.
func (s *SegmentStream) Err() error {
	return s.err
}
