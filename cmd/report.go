package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/khanhnv2901/quickwins/internal/scanner"
	"github.com/khanhnv2901/quickwins/internal/shared/constants"
)

func printBanner(out io.Writer, target string) {
	fmt.Fprintf(out, "\n%s\n", rule())
	fmt.Fprintln(out, colorBold(constants.ScanName))
	fmt.Fprintf(out, "Target: %s\n", target)
	fmt.Fprintf(out, "%s\n\n", rule())
}

// printReport renders the completion banner, the severity histogram and the
// numbered finding list.
func printReport(out io.Writer, report scanner.Report) {
	fmt.Fprintf(out, "\n%s\n", rule())
	fmt.Fprintln(out, colorBold("SCAN COMPLETE"))
	fmt.Fprintln(out, rule())
	fmt.Fprintf(out, "Total findings: %d\n", len(report.Findings))

	if len(report.Findings) == 0 {
		fmt.Fprintf(out, "\n%s No quick wins found. Proceed with deeper testing.\n", colorSuccess("[+]"))
		fmt.Fprintf(out, "%s\n\n", rule())
		return
	}

	fmt.Fprintf(out, "\n%s Findings by severity:\n", colorError("[!]"))
	for _, row := range report.Summary {
		fmt.Fprintf(out, "    %s: %d\n", formatSeverityWithColor(row.Severity), row.Count)
	}

	fmt.Fprintf(out, "\n%s Detailed findings:\n", colorSuccess("[+]"))
	for i, f := range report.Findings {
		fmt.Fprintf(out, "\n  %d. [%s] %s\n", i+1, formatSeverityWithColor(f.Severity), f.Category)
		fmt.Fprintf(out, "      URL: %s\n", f.URL)
		fmt.Fprintf(out, "      Evidence: %s\n", f.Evidence)
	}

	fmt.Fprintf(out, "%s\n\n", rule())
}

func writeJSONReport(out io.Writer, report scanner.Report) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
