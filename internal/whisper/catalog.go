package whisper

// ModelInfo describes one size tier in the static model catalog.
type ModelInfo struct {
	Name     string `json:"name"`
	Size     string `json:"size"`
	Speed    string `json:"speed"`
	Accuracy string `json:"accuracy"`
}

// Catalog returns the static descriptors for the known whisper size tiers.
// Sizes and relative speeds are the published figures for the ggml builds.
func Catalog() []ModelInfo {
	return []ModelInfo{
		{Name: "tiny", Size: "39 MB", Speed: "~32x", Accuracy: "Low"},
		{Name: "base", Size: "74 MB", Speed: "~16x", Accuracy: "Medium"},
		{Name: "small", Size: "244 MB", Speed: "~6x", Accuracy: "Good"},
		{Name: "medium", Size: "769 MB", Speed: "~2x", Accuracy: "Better"},
		{Name: "large-v2", Size: "1550 MB", Speed: "~1x", Accuracy: "Best"},
		{Name: "large-v3", Size: "1550 MB", Speed: "~1x", Accuracy: "Best"},
	}
}
