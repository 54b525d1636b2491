package browser

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

const pollInterval = 250 * time.Millisecond

// Finder resolves page elements from ordered lists of selector
// alternatives. Earlier selectors win over later ones, and a lookup that
// matches nothing is a normal outcome, not an error. The keyword and
// selector heuristics are best-effort matching against an unversioned
// DOM, so callers are expected to branch on the ok result.
type Finder struct {
	page playwright.Page
}

// NewFinder creates a Finder bound to a page.
func NewFinder(page playwright.Page) *Finder {
	return &Finder{page: page}
}

// FirstVisible polls the selector alternatives in priority order until one
// of them has a visible first match or the timeout elapses.
func (f *Finder) FirstVisible(timeout time.Duration, selectors ...string) (playwright.Locator, bool) {
	deadline := time.Now().Add(timeout)
	for {
		for _, sel := range selectors {
			loc := f.page.Locator(sel).First()
			if visible, _ := loc.IsVisible(); visible {
				return loc, true
			}
		}
		if time.Now().After(deadline) {
			return nil, false
		}
		time.Sleep(pollInterval)
	}
}

// ClickIfVisible clicks the first visible match among the alternatives.
// Returns true only if an element was found and the click succeeded.
func (f *Finder) ClickIfVisible(timeout time.Duration, selectors ...string) bool {
	loc, ok := f.FirstVisible(timeout, selectors...)
	if !ok {
		return false
	}
	return loc.Click() == nil
}

// WaitSettled waits for the network to go idle, then pauses a fixed
// amount to let client-side rendering catch up.
func (f *Finder) WaitSettled(pause time.Duration) {
	_ = f.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	})
	time.Sleep(pause)
}
