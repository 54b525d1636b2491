package flows

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOrder(t *testing.T) {
	want := []string{
		"demo_login",
		"dashboard_loads",
		"customer_detail",
		"operations_hub",
		"admin_panel",
		"agent_center",
		"knowledge_base",
		"chat_send",
	}
	reg := Registry()
	require.Len(t, reg, 8)
	for i, fl := range reg {
		assert.Equal(t, want[i], fl.Name)
		assert.NotEmpty(t, fl.Title)
		assert.NotNil(t, fl.Run)
	}
}

func TestRegistryNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, fl := range Extended() {
		assert.False(t, seen[fl.Name], "duplicate flow name %q", fl.Name)
		seen[fl.Name] = true
	}
}

func TestExtendedAppendsAfterCore(t *testing.T) {
	ext := Extended()
	require.Len(t, ext, 10)
	for i, fl := range Registry() {
		assert.Equal(t, fl.Name, ext[i].Name)
	}
	assert.Equal(t, "keyboard_shortcuts", ext[8].Name)
	assert.Equal(t, "code_block_copy", ext[9].Name)
}

func TestContainsAny(t *testing.T) {
	content := "acme corp portfolio overview"
	assert.True(t, containsAny(content, "customer", "health", "portfolio"))
	assert.False(t, containsAny(content, "customer", "health", "score"))
	assert.False(t, containsAny("", "customer"))
}

func TestChatTestMessageLiteral(t *testing.T) {
	assert.Equal(t, "Hello, this is an E2E verification test message.", ChatTestMessage)
}

func TestStepName(t *testing.T) {
	assert.Equal(t, "01_initial_load", stepName(1, "initial_load"))
	assert.Equal(t, "04_ops_voc", stepName(4, "ops_voc"))
	assert.Equal(t, "10_code_block_hover", stepName(10, "code_block_hover"))
}

func TestCtxSafeWithoutPage(t *testing.T) {
	// A Ctx without a page (and without screenshots) must not blow up on
	// the helpers flows rely on for reporting.
	c := &Ctx{Index: 3}
	assert.Equal(t, "", c.Content())
	assert.Equal(t, "", c.Screenshot("anything"))

	var buf bytes.Buffer
	c.Log = &buf
	c.Logf("    Sub-tab %q -- not visible", "VoC")
	assert.Contains(t, buf.String(), `Sub-tab "VoC" -- not visible`)
}
