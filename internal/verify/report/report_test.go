package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounts(t *testing.T) {
	rec := NewRecorder("http://localhost:3002", "http://localhost:3001", io.Discard)
	rec.Record("demo_login", true, "")
	rec.Record("dashboard_loads", true, "customer data indicators found")
	rec.Record("chat_send", false, "chat input not found")

	s := rec.Finalize(nil)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Passed)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, s.Total, s.Passed+s.Failed)
	assert.Len(t, s.Results, s.Total)
}

func TestRecorderOverwriteKeepsPosition(t *testing.T) {
	rec := NewRecorder("f", "b", io.Discard)
	rec.Record("a", false, "first attempt")
	rec.Record("b", true, "")
	rec.Record("a", true, "retried")

	s := rec.Finalize(nil)
	require.Len(t, s.Results, 2)
	assert.Equal(t, "a", s.Results[0].Name)
	assert.True(t, s.Results[0].Passed)
	assert.Equal(t, "retried", s.Results[0].Detail)
	assert.Equal(t, 2, s.Passed)
	assert.Equal(t, 0, s.Failed)
}

func TestRecorderTranscriptLines(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder("f", "b", &buf)
	rec.Record("demo_login", true, "bypassed login")
	rec.Record("chat_send", false, "")

	out := buf.String()
	assert.Contains(t, out, "[PASS] demo_login -- bypassed login")
	assert.Contains(t, out, "[FAIL] chat_send")
}

func TestOrderedResultsMarshalPreservesOrder(t *testing.T) {
	results := OrderedResults{
		{Name: "zeta", Outcome: Outcome{Passed: true}},
		{Name: "alpha", Outcome: Outcome{Passed: false, Detail: "boom"}},
	}
	data, err := json.Marshal(results)
	require.NoError(t, err)

	raw := string(data)
	assert.Less(t, strings.Index(raw, "zeta"), strings.Index(raw, "alpha"))

	var decoded map[string]Outcome
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded["zeta"].Passed)
	assert.Equal(t, "boom", decoded["alpha"].Detail)
}

func TestFinalizeCapsConsoleErrors(t *testing.T) {
	rec := NewRecorder("f", "b", io.Discard)
	var errs []string
	for i := 0; i < 30; i++ {
		errs = append(errs, fmt.Sprintf("error %d", i))
	}
	s := rec.Finalize(errs)
	assert.Len(t, s.ConsoleErrors, 20)
	assert.Equal(t, "error 0", s.ConsoleErrors[0])
}

func TestSummaryJSONSchema(t *testing.T) {
	rec := NewRecorder("http://front", "http://back", io.Discard)
	rec.Record("demo_login", true, "bypassed")
	rec.Record("admin_panel", true, "Admin button not visible")
	rec.Record("chat_send", false, "timeout")

	s := rec.Finalize([]string{"ReferenceError: x is not defined"})
	path := filepath.Join(t.TempDir(), "summary.json")
	require.NoError(t, s.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Timestamp      string             `json:"timestamp"`
		FrontendURL    string             `json:"frontend_url"`
		BackendURL     string             `json:"backend_url"`
		Total          int                `json:"total"`
		Passed         int                `json:"passed"`
		Failed         int                `json:"failed"`
		ElapsedSeconds float64            `json:"elapsed_seconds"`
		Results        map[string]Outcome `json:"results"`
		ConsoleErrors  []string           `json:"console_errors"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	_, err = time.Parse(time.RFC3339, decoded.Timestamp)
	assert.NoError(t, err, "timestamp should be ISO-8601")
	assert.Equal(t, "http://front", decoded.FrontendURL)
	assert.Equal(t, "http://back", decoded.BackendURL)
	assert.Equal(t, 3, decoded.Total)
	assert.Equal(t, 2, decoded.Passed)
	assert.Equal(t, 1, decoded.Failed)
	assert.Len(t, decoded.Results, 3)
	assert.Equal(t, "timeout", decoded.Results["chat_send"].Detail)
	assert.Len(t, decoded.ConsoleErrors, 1)
}

func TestSummaryPrint(t *testing.T) {
	rec := NewRecorder("f", "b", io.Discard)
	rec.Record("demo_login", true, "")
	rec.Record("chat_send", false, "no input")
	s := rec.Finalize([]string{strings.Repeat("x", 200)})

	var buf bytes.Buffer
	s.Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "VERIFICATION SUMMARY")
	assert.Contains(t, out, "1/2 passed, 1 failed")
	assert.Contains(t, out, "Console errors captured: 1")
	// Long console errors are truncated to 120 chars in the transcript.
	assert.Contains(t, out, strings.Repeat("x", 120))
	assert.NotContains(t, out, strings.Repeat("x", 121))
}

func TestResultsGet(t *testing.T) {
	results := OrderedResults{{Name: "a", Outcome: Outcome{Passed: true, Detail: "d"}}}
	got, ok := results.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "d", got.Detail)
	_, ok = results.Get("missing")
	assert.False(t, ok)
}
