package transcribe

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// StageAudio writes uploaded audio bytes to a uniquely named file in the
// system temp directory and returns its path. The uuid in the name rules out
// collisions between concurrent requests by construction. The caller owns
// the file exclusively and must release it with RemoveStaged on every exit
// path.
func StageAudio(data []byte, ext string) (string, error) {
	if ext == "" {
		ext = ".wav"
	}
	path := filepath.Join(os.TempDir(), "whisperd-"+uuid.NewString()+ext)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to stage audio: %w", err)
	}
	return path, nil
}

// RemoveStaged deletes a staged audio file. Removal is best-effort: a
// failure is logged, never propagated, so cleanup cannot mask the real
// outcome of a request.
func RemoveStaged(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("[Staging] Failed to remove %s: %v", path, err)
	}
}
