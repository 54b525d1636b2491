package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"
)

// Outcome is the pass/fail verdict of a single flow plus a human-readable
// detail string (may be empty).
type Outcome struct {
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// FlowResult pairs a flow name with its outcome.
type FlowResult struct {
	Name string
	Outcome
}

// OrderedResults marshals as a JSON object whose keys keep insertion
// order, matching the order flows ran in.
type OrderedResults []FlowResult

// MarshalJSON implements ordered-object encoding.
func (r OrderedResults) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, fr := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fr.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(fr.Outcome)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the outcome recorded under name.
func (r OrderedResults) Get(name string) (Outcome, bool) {
	for _, fr := range r {
		if fr.Name == name {
			return fr.Outcome, true
		}
	}
	return Outcome{}, false
}

// RunSummary is the terminal state of one verification run, written once
// to summary.json.
type RunSummary struct {
	Timestamp      string         `json:"timestamp"`
	FrontendURL    string         `json:"frontend_url"`
	BackendURL     string         `json:"backend_url"`
	Total          int            `json:"total"`
	Passed         int            `json:"passed"`
	Failed         int            `json:"failed"`
	ElapsedSeconds float64        `json:"elapsed_seconds"`
	Results        OrderedResults `json:"results"`
	ConsoleErrors  []string       `json:"console_errors"`
}

// maxReportedErrors caps console errors retained in the summary.
const maxReportedErrors = 20

// Recorder accumulates flow results for one run. It is owned by the
// runner; flows never touch it directly.
type Recorder struct {
	frontendURL string
	backendURL  string
	started     time.Time
	results     OrderedResults
	out         io.Writer
}

// NewRecorder starts a recording session. Per-flow result lines are
// echoed to out as they arrive.
func NewRecorder(frontendURL, backendURL string, out io.Writer) *Recorder {
	if out == nil {
		out = os.Stdout
	}
	return &Recorder{
		frontendURL: frontendURL,
		backendURL:  backendURL,
		started:     time.Now(),
		out:         out,
	}
}

// Record stores a flow result and prints its transcript line. Recording
// the same name twice overwrites the earlier entry (last write wins)
// while keeping its original position.
func (r *Recorder) Record(name string, passed bool, detail string) {
	outcome := Outcome{Passed: passed, Detail: detail}
	replaced := false
	for i := range r.results {
		if r.results[i].Name == name {
			r.results[i].Outcome = outcome
			replaced = true
			break
		}
	}
	if !replaced {
		r.results = append(r.results, FlowResult{Name: name, Outcome: outcome})
	}

	icon := "PASS"
	if !passed {
		icon = "FAIL"
	}
	line := fmt.Sprintf("  [%s] %s", icon, name)
	if detail != "" {
		line += " -- " + detail
	}
	fmt.Fprintln(r.out, line)
}

// Finalize computes totals and freezes the run summary.
func (r *Recorder) Finalize(consoleErrors []string) *RunSummary {
	s := &RunSummary{
		Timestamp:   time.Now().Format(time.RFC3339),
		FrontendURL: r.frontendURL,
		BackendURL:  r.backendURL,
		Results:     r.results,
	}
	for _, fr := range r.results {
		if fr.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	s.Total = s.Passed + s.Failed

	elapsed := time.Since(r.started).Seconds()
	s.ElapsedSeconds = math.Round(elapsed*100) / 100

	if len(consoleErrors) > maxReportedErrors {
		consoleErrors = consoleErrors[:maxReportedErrors]
	}
	s.ConsoleErrors = append([]string{}, consoleErrors...)
	return s
}

// Print writes the human-readable summary table.
func (s *RunSummary) Print(out io.Writer) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(out, "\n"+rule)
	fmt.Fprintln(out, "  VERIFICATION SUMMARY")
	fmt.Fprintln(out, rule)

	for _, fr := range s.Results {
		status := "PASS"
		if !fr.Passed {
			status = "FAIL"
		}
		line := fmt.Sprintf("  [%s]  %s", status, fr.Name)
		if fr.Detail != "" {
			line += "  --  " + fr.Detail
		}
		fmt.Fprintln(out, line)
	}

	fmt.Fprintln(out, strings.Repeat("-", 60))
	fmt.Fprintf(out, "  %d/%d passed, %d failed  (%.1fs)\n", s.Passed, s.Total, s.Failed, s.ElapsedSeconds)

	if len(s.ConsoleErrors) > 0 {
		fmt.Fprintf(out, "\n  Console errors captured: %d\n", len(s.ConsoleErrors))
		for i, msg := range s.ConsoleErrors {
			if i >= 10 {
				break
			}
			if len(msg) > 120 {
				msg = msg[:120]
			}
			fmt.Fprintf(out, "    - %s\n", msg)
		}
	}
	fmt.Fprintln(out, rule)
}

// WriteFile persists the machine-readable summary.
func (s *RunSummary) WriteFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
