package runner

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aacamara/cscx-mvp6/internal/verify/browser"
	"github.com/aacamara/cscx-mvp6/internal/verify/config"
	"github.com/aacamara/cscx-mvp6/internal/verify/flows"
	"github.com/aacamara/cscx-mvp6/internal/verify/report"
)

// Run executes every flow in list against one browser session and
// returns the process exit code: 0 iff all flows passed. A flow failure
// never stops later flows; only a session-launch failure is fatal.
func Run(cfg *config.Config, list []flows.Flow, out io.Writer) int {
	printBanner(out, cfg)

	if err := config.CheckBackendHealth(cfg); err != nil {
		fmt.Fprintf(out, "\n  WARNING: backend health check failed (%v)\n", err)
		fmt.Fprintln(out, "  Continuing anyway -- some flows may fail.")
	} else {
		fmt.Fprintln(out, "\n  Backend health check: ok")
	}

	shots, err := browser.NewShots(cfg.ScreenshotDir, cfg.Screenshots)
	if err != nil {
		fmt.Fprintf(out, "  WARNING: %v -- screenshots disabled\n", err)
		shots = &browser.Shots{Dir: cfg.ScreenshotDir}
	}

	sess, err := browser.Launch(cfg)
	if err != nil {
		fmt.Fprintf(out, "\n  FATAL: could not launch browser session: %v\n", err)
		return 1
	}
	defer sess.Close()

	rec := report.NewRecorder(cfg.FrontendURL, cfg.BackendURL, out)
	fc := &flows.Ctx{
		Page:  sess.Page,
		Find:  browser.NewFinder(sess.Page),
		Shots: shots,
		Cfg:   cfg,
		Log:   out,
	}

	for i, fl := range list {
		fc.Index = i + 1
		fmt.Fprintf(out, "\n--- Flow %d: %s ---\n", fc.Index, fl.Title)
		executeFlow(fc, fl, rec)
	}

	summary := rec.Finalize(sess.ConsoleErrors())
	summary.Print(out)

	if shots.Enabled {
		fmt.Fprintf(out, "\n  Screenshots saved to: %s\n", shots.Dir)
	}
	path := filepath.Join(shots.Dir, "summary.json")
	if err := summary.WriteFile(path); err != nil {
		fmt.Fprintf(out, "  WARNING: could not write summary: %v\n", err)
	} else {
		fmt.Fprintf(out, "  JSON summary: %s\n", path)
	}

	if summary.Failed > 0 {
		return 1
	}
	return 0
}

// executeFlow runs one flow inside its isolation boundary. Exactly one
// result is recorded per invocation: a returned error or a panic is
// converted into a failed result, never propagated.
func executeFlow(fc *flows.Ctx, fl flows.Flow, rec *report.Recorder) {
	recorded := false
	defer func() {
		if r := recover(); r != nil && !recorded {
			rec.Record(fl.Name, false, fmt.Sprintf("panic: %v", r))
		}
	}()

	outcome, err := fl.Run(fc)
	if err != nil {
		fc.Screenshot(fl.Name + "_error")
		recorded = true
		rec.Record(fl.Name, false, err.Error())
		return
	}
	recorded = true
	rec.Record(fl.Name, outcome.Passed, outcome.Detail)
}

func printBanner(out io.Writer, cfg *config.Config) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "  CSCX.AI  --  Core Flow Verification")
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "  Frontend : %s\n", cfg.FrontendURL)
	fmt.Fprintf(out, "  Backend  : %s\n", cfg.BackendURL)
	fmt.Fprintf(out, "  Screenshots : %s\n", cfg.ScreenshotDir)
	fmt.Fprintf(out, "  Started  : %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintln(out, rule)
}
