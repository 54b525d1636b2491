package flows

import (
	"fmt"
	"io"
	"strings"

	"github.com/aacamara/cscx-mvp6/internal/verify/browser"
	"github.com/aacamara/cscx-mvp6/internal/verify/config"
	"github.com/playwright-community/playwright-go"
)

// Ctx carries the shared page handle and run facilities into a flow.
// Flows read from it but never own it; the runner builds one Ctx per run
// and bumps Index before each flow.
type Ctx struct {
	Page  playwright.Page
	Find  *browser.Finder
	Shots *browser.Shots
	Cfg   *config.Config
	Log   io.Writer

	// Index is the 1-based position of the currently running flow,
	// used to prefix screenshot names.
	Index int
}

// Screenshot captures a step screenshot named {NN}_{step}.png.
func (c *Ctx) Screenshot(step string) string {
	return c.Shots.Capture(c.Page, stepName(c.Index, step))
}

// Content returns the lowercased page HTML, or "" if the page cannot be
// read. Keyword checks against it are best-effort by design.
func (c *Ctx) Content() string {
	if c.Page == nil {
		return ""
	}
	html, err := c.Page.Content()
	if err != nil {
		return ""
	}
	return strings.ToLower(html)
}

// Logf writes a transcript line for this flow.
func (c *Ctx) Logf(format string, args ...any) {
	if c.Log == nil {
		return
	}
	fmt.Fprintf(c.Log, format+"\n", args...)
}

func stepName(index int, step string) string {
	return fmt.Sprintf("%02d_%s", index, step)
}

// containsAny reports whether content holds at least one of the keywords.
func containsAny(content string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(content, kw) {
			return true
		}
	}
	return false
}
