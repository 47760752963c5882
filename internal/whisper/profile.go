package whisper

// QualityProfile bundles the inference parameters that trade accuracy for
// latency. Temperature is 0 in both presets: transcription must be
// deterministic for identical input.
type QualityProfile struct {
	Name                    string
	BeamSize                int
	BestOf                  int
	Temperature             float64
	ConditionOnPreviousText bool
	VADFilter               bool
	MinSilenceMs            int
}

// ProfileAccurate is the default profile for the primary transcription path:
// wide beam, multiple candidates, voice-activity filtering with a 500ms
// minimum silence gap, and no conditioning on prior text so each request is
// independent of anything transcribed before it.
func ProfileAccurate() QualityProfile {
	return QualityProfile{
		Name:                    "accurate",
		BeamSize:                5,
		BestOf:                  5,
		Temperature:             0,
		ConditionOnPreviousText: false,
		VADFilter:               true,
		MinSilenceMs:            500,
	}
}

// ProfileFast is the low-latency profile: minimal beam and candidates, VAD
// skipped entirely to save the extra pass over the audio.
func ProfileFast() QualityProfile {
	return QualityProfile{
		Name:        "fast",
		BeamSize:    1,
		BestOf:      1,
		Temperature: 0,
	}
}
