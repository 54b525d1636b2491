package flows

import (
	"fmt"
	"strings"
	"time"

	"github.com/aacamara/cscx-mvp6/internal/verify/report"
	"github.com/playwright-community/playwright-go"
)

// ChatTestMessage is the literal typed into the chat input by the
// chat_send flow.
const ChatTestMessage = "Hello, this is an E2E verification test message."

func pass(detail string) (report.Outcome, error) {
	return report.Outcome{Passed: true, Detail: detail}, nil
}

func fail(detail string) (report.Outcome, error) {
	return report.Outcome{Passed: false, Detail: detail}, nil
}

// runDemoLogin enters the app via Demo Mode. If the dashboard is already
// rendered (auth not configured), the login is considered bypassed.
func runDemoLogin(c *Ctx) (report.Outcome, error) {
	_, err := c.Page.Goto(c.Cfg.FrontendURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(float64(c.Cfg.ActionTimeout.Milliseconds())),
	})
	if err != nil {
		return report.Outcome{}, err
	}
	c.Screenshot("initial_load")

	content := c.Content()
	if strings.Contains(content, "dashboard") ||
		(strings.Contains(content, "cscx") && strings.Contains(content, "customer")) {
		c.Screenshot("already_logged_in")
		return pass("bypassed login (already in demo or auth not configured)")
	}

	btn, ok := c.Find.FirstVisible(c.Cfg.ActionTimeout,
		`button:has-text("Demo Mode")`,
		`button:has-text("Continue without sign in")`)
	if !ok {
		return fail("Demo Mode button not found on login page")
	}
	if err := btn.Click(); err != nil {
		return report.Outcome{}, err
	}
	c.Find.WaitSettled(2 * time.Second)
	c.Screenshot("after_demo_login")
	return pass("")
}

// runDashboardLoads verifies the dashboard renders with customer data
// indicators.
func runDashboardLoads(c *Ctx) (report.Outcome, error) {
	// Nav click is best-effort; the dashboard may already be active.
	c.Find.ClickIfVisible(5*time.Second, `button:has-text("Dashboard")`)
	c.Find.WaitSettled(1500 * time.Millisecond)
	c.Screenshot("dashboard")

	if containsAny(c.Content(), "customer", "health", "portfolio", "arr", "revenue", "score") {
		return pass("customer data indicators found on dashboard")
	}
	return fail("no customer data indicators found")
}

// runCustomerDetail clicks into a customer row to open the detail view.
func runCustomerDetail(c *Ctx) (report.Outcome, error) {
	c.Find.ClickIfVisible(5*time.Second, `button:has-text("Dashboard")`)
	c.Find.WaitSettled(time.Second)

	row, ok := c.Find.FirstVisible(5*time.Second,
		"table tbody tr",
		`[class*="customer-row"]`,
		`[class*="customer-card"]`,
		`[role="row"]`)
	if ok {
		if err := row.Click(); err != nil {
			return report.Outcome{}, err
		}
		c.Find.WaitSettled(1500 * time.Millisecond)
		c.Screenshot("customer_detail")

		if containsAny(c.Content(), "customer", "360", "detail", "workspace") {
			return pass("customer detail view loaded")
		}
		return pass("clicked customer row, view changed")
	}

	// Fallback: any customer-related link or view button.
	link, ok := c.Find.FirstVisible(3*time.Second,
		`a[href*="customer"]`,
		`button:has-text("View")`)
	if ok {
		if err := link.Click(); err != nil {
			return report.Outcome{}, err
		}
		c.Find.WaitSettled(1500 * time.Millisecond)
		c.Screenshot("customer_detail")
		return pass("opened customer via link/button")
	}

	c.Screenshot("no_customer_rows")
	return fail("no customer rows or links found")
}

// runOperationsHub opens the Operations hub and walks its 5 sub-tabs.
// Any clicked sub-tab counts as partial success; zero is a failure.
func runOperationsHub(c *Ctx) (report.Outcome, error) {
	if !c.Find.ClickIfVisible(c.Cfg.ActionTimeout, `button:has-text("Operations")`) {
		c.Screenshot("ops_not_found")
		return fail("Operations button not found in nav")
	}
	c.Find.WaitSettled(time.Second)
	c.Screenshot("operations_hub")

	subTabs := []struct {
		label string
		slug  string
	}{
		{"Automations", "automations"},
		{"Playbooks", "playbooks"},
		{"Support", "support"},
		{"Email", "email"},
		{"VoC", "voc"},
	}

	clicked := 0
	for _, tab := range subTabs {
		sel := fmt.Sprintf(`button:has-text(%q)`, tab.label)
		if c.Find.ClickIfVisible(3*time.Second, sel) {
			time.Sleep(800 * time.Millisecond)
			c.Screenshot("ops_" + tab.slug)
			clicked++
			c.Logf("    Sub-tab %q -- visible and clicked", tab.label)
		} else {
			c.Logf("    Sub-tab %q -- not visible", tab.label)
		}
	}

	switch {
	case clicked == len(subTabs):
		return pass("all 5 sub-tabs accessible")
	case clicked > 0:
		return pass(fmt.Sprintf("%d/5 sub-tabs accessible (partial)", clicked))
	default:
		return fail("no sub-tabs found")
	}
}

// runAdminPanel opens the Admin panel. The Admin control is role-gated,
// so its absence is an expected state and records a PASS. Note the
// asymmetry with agent_center/knowledge_base, where absence is a failure.
func runAdminPanel(c *Ctx) (report.Outcome, error) {
	if !c.Find.ClickIfVisible(5*time.Second, `button:has-text("Admin")`) {
		c.Screenshot("admin_not_visible")
		return pass("Admin button not visible (expected for non-admin/demo users)")
	}
	c.Find.WaitSettled(time.Second)
	c.Screenshot("admin_panel")

	if containsAny(c.Content(), "admin", "settings", "organization", "users", "config") {
		return pass("admin panel loaded with settings content")
	}
	return pass("admin panel navigated (content may be minimal in demo)")
}

// runAgentCenter opens the Agent Center and checks the chat interface.
func runAgentCenter(c *Ctx) (report.Outcome, error) {
	if !c.Find.ClickIfVisible(c.Cfg.ActionTimeout, `button:has-text("Agent Center")`) {
		c.Screenshot("agent_center_not_found")
		return fail("Agent Center button not found")
	}
	c.Find.WaitSettled(1500 * time.Millisecond)
	c.Screenshot("agent_center")

	if containsAny(c.Content(), "message", "agent", "chat", "send", "conversation") {
		return pass("Agent Center loaded with chat interface")
	}
	return pass("Agent Center navigated (chat content may be loading)")
}

// runKnowledgeBase opens the Knowledge Base view.
func runKnowledgeBase(c *Ctx) (report.Outcome, error) {
	if !c.Find.ClickIfVisible(c.Cfg.ActionTimeout, `button:has-text("Knowledge Base")`) {
		c.Screenshot("kb_not_found")
		return fail("Knowledge Base button not found")
	}
	c.Find.WaitSettled(1500 * time.Millisecond)
	c.Screenshot("knowledge_base")

	if containsAny(c.Content(), "knowledge", "document", "upload", "search", "base", "file") {
		return pass("Knowledge Base loaded")
	}
	return pass("Knowledge Base navigated (may be empty)")
}

// runChatSend types a test message into the Agent Center chat and
// attempts to send it via a send control or Meta+Enter.
func runChatSend(c *Ctx) (report.Outcome, error) {
	c.Find.ClickIfVisible(5*time.Second, `button:has-text("Agent Center")`)
	c.Find.WaitSettled(1500 * time.Millisecond)

	input, ok := c.Find.FirstVisible(5*time.Second,
		`textarea[placeholder*="Message" i]`,
		`textarea[placeholder*="message" i]`,
		`input[type="text"][placeholder*="Message" i]`,
		`input[type="text"][placeholder*="message" i]`,
		`textarea[placeholder*="Ask" i]`,
		`input[placeholder*="Ask" i]`)
	if !ok {
		// Fallback: any visible multi-line input.
		input, ok = c.Find.FirstVisible(3*time.Second, "textarea:visible")
	}
	if !ok {
		c.Screenshot("chat_input_not_found")
		return fail("chat input not found in Agent Center")
	}

	if err := input.Fill(ChatTestMessage); err != nil {
		return report.Outcome{}, err
	}
	c.Screenshot("chat_message_typed")

	send, ok := c.Find.FirstVisible(2*time.Second,
		`button[type="submit"]`,
		`button:has-text("Send")`,
		`button[aria-label*="Send" i]`)
	if ok {
		if err := send.Click(); err != nil {
			return report.Outcome{}, err
		}
	} else if err := input.Press("Meta+Enter"); err != nil {
		return report.Outcome{}, err
	}

	time.Sleep(2 * time.Second)
	c.Screenshot("chat_message_sent")
	return pass("message typed and send attempted")
}
