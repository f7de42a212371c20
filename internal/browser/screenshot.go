package browser

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Screenshots captures full-page evidence shots into a debug directory,
// used when an apply attempt goes sideways.
type Screenshots struct {
	dir string
}

// NewScreenshots creates the capture helper rooted at dir, creating the
// directory as needed.
func NewScreenshots(dir string) *Screenshots {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("⚠️ Failed to create screenshot directory %s: %v", dir, err)
	}
	return &Screenshots{dir: dir}
}

// CaptureFailure saves a timestamped full-page screenshot tagged with the
// stage that failed. Nil-safe so callers can leave debugging unwired.
func (s *Screenshots) CaptureFailure(page playwright.Page, stage string) {
	if s == nil || page == nil {
		return
	}
	name := fmt.Sprintf("%s_%s.png", stage, time.Now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(s.dir, name)
	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		log.Printf("⚠️ Failed to capture %s screenshot: %v", stage, err)
		return
	}
	log.Printf("📸 Screenshot saved: %s", path)
}
