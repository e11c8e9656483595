package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"archivecheck/internal/checker"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// renderReport writes the table report: one row per archive in discovery
// order, totals in the footer, and an itemized failure list when anything
// did not pass.
func renderReport(w io.Writer, summary *checker.Summary) {
	if len(summary.Results) == 0 {
		fmt.Fprintf(w, "No archives found under %s\n", summary.Root)
		return
	}

	rows := make([][]string, 0, len(summary.Results))
	for _, result := range summary.Results {
		rows = append(rows, []string{
			displayPath(summary.Root, result.Path),
			string(result.Kind),
			string(result.Outcome),
			formatElapsed(result.Elapsed),
		})
	}
	footer := []string{
		fmt.Sprintf("%d archives", len(summary.Results)),
		"",
		fmt.Sprintf("%d passed, %d failed", summary.Passed, summary.Failed),
		formatElapsed(summary.Elapsed),
	}
	fmt.Fprintln(w, renderTable(
		[]string{"Archive", "Kind", "Outcome", "Time"},
		rows,
		footer,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
	))

	if failures := summary.Failures(); len(failures) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Failed archives:")
		for _, failure := range failures {
			fmt.Fprintf(w, "  %s (%s): %s\n", displayPath(summary.Root, failure.Path), failure.Outcome, failure.Detail)
		}
	}
}

// displayPath shortens an archive path to be relative to the scan root when
// it sits inside it.
func displayPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func formatElapsed(d time.Duration) string {
	if d < time.Millisecond {
		return "<1ms"
	}
	if d >= time.Second {
		return d.Round(100 * time.Millisecond).String()
	}
	return d.Round(time.Millisecond).String()
}

type reportView struct {
	RunID     string        `json:"run_id"`
	Root      string        `json:"root"`
	Checked   int           `json:"checked"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	Success   bool          `json:"success"`
	ElapsedMS int64         `json:"elapsed_ms"`
	Archives  []archiveView `json:"archives"`
}

type archiveView struct {
	Path      string `json:"path"`
	Kind      string `json:"kind"`
	Outcome   string `json:"outcome"`
	Detail    string `json:"detail,omitempty"`
	ElapsedMS int64  `json:"elapsed_ms"`
}

func newReportView(summary *checker.Summary) reportView {
	archives := make([]archiveView, 0, len(summary.Results))
	for _, result := range summary.Results {
		archives = append(archives, archiveView{
			Path:      result.Path,
			Kind:      string(result.Kind),
			Outcome:   string(result.Outcome),
			Detail:    result.Detail,
			ElapsedMS: result.Elapsed.Milliseconds(),
		})
	}
	return reportView{
		RunID:     summary.RunID,
		Root:      summary.Root,
		Checked:   len(summary.Results),
		Passed:    summary.Passed,
		Failed:    summary.Failed,
		Success:   summary.Success(),
		ElapsedMS: summary.Elapsed.Milliseconds(),
		Archives:  archives,
	}
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
