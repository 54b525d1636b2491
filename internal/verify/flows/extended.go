package flows

import (
	"fmt"
	"time"

	"github.com/aacamara/cscx-mvp6/internal/verify/report"
)

// runKeyboardShortcuts exercises the chat input shortcuts: ArrowUp for
// history recall and Escape to clear.
func runKeyboardShortcuts(c *Ctx) (report.Outcome, error) {
	input, ok := c.Find.FirstVisible(5*time.Second,
		`input[type="text"][placeholder*="message" i]`,
		`textarea[placeholder*="message" i]`,
		"textarea:visible")
	if !ok {
		return fail("chat input not found for shortcut checks")
	}

	if err := input.Press("ArrowUp"); err != nil {
		return report.Outcome{}, err
	}
	if err := input.Press("Escape"); err != nil {
		return report.Outcome{}, err
	}
	c.Screenshot("after_shortcuts")
	return pass("history recall and escape delivered")
}

// runCodeBlockCopy checks that hovering a rendered code block reveals a
// copy control. A conversation with no code blocks is a normal state.
func runCodeBlockCopy(c *Ctx) (report.Outcome, error) {
	blocks := c.Page.Locator(`pre code, [class*="code-block"]`)
	count, err := blocks.Count()
	if err != nil {
		return report.Outcome{}, err
	}
	if count == 0 {
		return pass("no code blocks rendered")
	}

	if err := blocks.First().Hover(); err != nil {
		return report.Outcome{}, err
	}
	time.Sleep(500 * time.Millisecond)
	c.Screenshot("code_block_hover")

	if _, ok := c.Find.FirstVisible(2*time.Second, `[class*="copy"]`, `button:has-text("Copy")`); ok {
		return pass(fmt.Sprintf("copy control visible on hover (%d code blocks)", count))
	}
	return fail("copy control not shown on hover")
}
