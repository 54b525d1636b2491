package browser

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
)

// Shots writes step screenshots into a run-scoped directory so that
// consecutive runs never overwrite each other's evidence.
type Shots struct {
	Dir     string
	Enabled bool
}

// NewShots creates the run directory under base. The directory name
// combines a timestamp with a short unique suffix. The directory is
// created even when screenshots are disabled: summary.json lives there
// too.
func NewShots(base string, enabled bool) (*Shots, error) {
	runID := fmt.Sprintf("%s-%s",
		time.Now().Format("20060102-150405"),
		strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	dir := filepath.Join(base, runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create run dir: %w", err)
	}
	return &Shots{Dir: dir, Enabled: enabled}, nil
}

// Capture saves a viewport screenshot named {name}.png in the run
// directory. Failures are logged and swallowed; a missing screenshot
// never fails a flow. Returns the path written, or "" if skipped.
func (s *Shots) Capture(page playwright.Page, name string) string {
	if s == nil || !s.Enabled || page == nil {
		return ""
	}
	path := filepath.Join(s.Dir, name+".png")
	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(false),
	})
	if err != nil {
		log.Printf("[verify] screenshot %s failed: %v", name, err)
		return ""
	}
	return path
}
