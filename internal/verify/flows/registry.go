package flows

import "github.com/aacamara/cscx-mvp6/internal/verify/report"

// Flow is a named, independent sequence of UI actions plus a pass/fail
// assertion. A non-nil error from Run is converted by the runner into a
// failed result; it never aborts the remaining flows.
type Flow struct {
	Name  string
	Title string
	Run   func(*Ctx) (report.Outcome, error)
}

// Registry returns the 8 core flows in execution order.
func Registry() []Flow {
	return []Flow{
		{Name: "demo_login", Title: "Demo Mode Login", Run: runDemoLogin},
		{Name: "dashboard_loads", Title: "Dashboard Loads with Customer Data", Run: runDashboardLoads},
		{Name: "customer_detail", Title: "Customer Detail View", Run: runCustomerDetail},
		{Name: "operations_hub", Title: "Operations Hub (5 sub-tabs)", Run: runOperationsHub},
		{Name: "admin_panel", Title: "Admin Panel Access", Run: runAdminPanel},
		{Name: "agent_center", Title: "Agent Center", Run: runAgentCenter},
		{Name: "knowledge_base", Title: "Knowledge Base", Run: runKnowledgeBase},
		{Name: "chat_send", Title: "Chat Message Send", Run: runChatSend},
	}
}

// Extended returns the core flows plus the opt-in UI interaction checks.
func Extended() []Flow {
	return append(Registry(),
		Flow{Name: "keyboard_shortcuts", Title: "Keyboard Shortcuts", Run: runKeyboardShortcuts},
		Flow{Name: "code_block_copy", Title: "Code Block Copy", Run: runCodeBlockCopy},
	)
}
