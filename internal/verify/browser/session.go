package browser

import (
	"fmt"
	"os"
	"sync"

	"github.com/aacamara/cscx-mvp6/internal/verify/config"
	"github.com/playwright-community/playwright-go"
)

// maxConsoleErrors bounds how many browser console errors are retained
// for the report.
const maxConsoleErrors = 20

// Session owns the Playwright driver, browser, context and page for one
// verification run. It also collects console "error" messages and page
// errors emitted while the session is alive.
type Session struct {
	pw      *playwright.Playwright
	Browser playwright.Browser
	Context playwright.BrowserContext
	Page    playwright.Page

	mu     sync.Mutex
	errors []string
}

// Launch starts Playwright and opens a single headless page. The chromium
// driver is installed on demand unless PLAYWRIGHT_PREINSTALLED=1, and the
// driver start is retried once after an explicit install to cope with
// driver/image version drift.
func Launch(cfg *config.Config) (*Session, error) {
	if os.Getenv("PLAYWRIGHT_PREINSTALLED") != "1" {
		if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
			return nil, fmt.Errorf("could not install playwright browsers: %w", err)
		}
	}

	pw, err := playwright.Run()
	if err != nil {
		_ = playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}})
		pw, err = playwright.Run()
		if err != nil {
			return nil, fmt.Errorf("could not start playwright after retry: %w", err)
		}
	}

	s := &Session{pw: pw}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(float64(cfg.SlowMo)),
	})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}
	s.Browser = browser

	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1920,
			Height: 1080,
		},
		IgnoreHttpsErrors: playwright.Bool(true),
	})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("could not create context: %w", err)
	}
	s.Context = context

	page, err := context.NewPage()
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("could not create page: %w", err)
	}
	s.Page = page
	page.SetDefaultTimeout(float64(cfg.ActionTimeout.Milliseconds()))

	page.OnConsole(func(msg playwright.ConsoleMessage) {
		if msg.Type() == "error" {
			s.appendError(msg.Text())
		}
	})
	page.OnPageError(func(err error) {
		s.appendError(err.Error())
	})

	return s, nil
}

func (s *Session) appendError(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.errors) < maxConsoleErrors {
		s.errors = append(s.errors, text)
	}
}

// ConsoleErrors returns the console errors captured so far, in order.
func (s *Session) ConsoleErrors() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.errors))
	copy(out, s.errors)
	return out
}

// Close releases page, context, browser and driver unconditionally.
func (s *Session) Close() {
	if s.Page != nil {
		s.Page.Close()
	}
	if s.Context != nil {
		s.Context.Close()
	}
	if s.Browser != nil {
		s.Browser.Close()
	}
	if s.pw != nil {
		s.pw.Stop()
	}
}
