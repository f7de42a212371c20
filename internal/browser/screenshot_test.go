package browser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScreenshotsCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")

	NewScreenshots(dir)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestScreenshotsNilSafe(t *testing.T) {
	var s *Screenshots

	assert.NotPanics(t, func() {
		s.CaptureFailure(nil, "apply-click")
	})
}
