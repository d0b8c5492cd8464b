package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/khanhnv2901/quickwins/internal/checks"
	"github.com/khanhnv2901/quickwins/internal/finding"
	"github.com/khanhnv2901/quickwins/internal/shared/constants"
)

var checkTitles = map[string]string{
	"git":     "Checking for .git exposure...",
	"env":     "Checking for .env files...",
	"admin":   "Checking for admin panels...",
	"robots":  "Checking robots.txt...",
	"headers": "Checking security headers...",
	"cors":    "Checking CORS configuration...",
}

// progressPrinter writes one block of [*]/[!]/[+]/[-] lines per check.
// It implements scanner.Observer.
type progressPrinter struct {
	out io.Writer
}

func newProgressPrinter(out io.Writer) *progressPrinter {
	return &progressPrinter{out: out}
}

func (p *progressPrinter) CheckStarted(name string) {
	title, ok := checkTitles[name]
	if !ok {
		title = fmt.Sprintf("Running %s check...", name)
	}
	fmt.Fprintf(p.out, "%s %s\n", colorInfo("[*]"), title)
}

func (p *progressPrinter) CheckFinished(outcome checks.Outcome) {
	switch outcome.Check {
	case "git":
		p.exposure(outcome, "Git exposure at", "No .git exposure found")
	case "env":
		p.exposure(outcome, "Credentials at", "No exposed .env files found")
	case "admin":
		p.admin(outcome)
	case "robots":
		p.robots(outcome)
	case "headers":
		p.headers(outcome)
	case "cors":
		p.cors(outcome)
	default:
		p.generic(outcome)
	}
}

func (p *progressPrinter) exposure(outcome checks.Outcome, hit, miss string) {
	if outcome.Err != nil {
		p.couldNot(outcome)
		return
	}
	if !outcome.Triggered || len(outcome.Hits) == 0 {
		p.negative(miss)
		return
	}
	p.alert(fmt.Sprintf("%s: %s %s", finding.SeverityCritical, hit, outcome.Hits[0].Path))
}

func (p *progressPrinter) admin(outcome checks.Outcome) {
	if outcome.Err != nil {
		p.couldNot(outcome)
		return
	}
	if len(outcome.Hits) == 0 {
		p.negative("No admin panels found")
		return
	}
	p.positive(fmt.Sprintf("Found %d potential admin panels:", len(outcome.Hits)))
	for _, hit := range outcome.Hits {
		fmt.Fprintf(p.out, "      %s (Status: %d)\n", hit.Path, hit.Status)
	}
}

func (p *progressPrinter) robots(outcome checks.Outcome) {
	if outcome.Err != nil {
		p.couldNot(outcome)
		return
	}
	if n := len(outcome.Disallowed); n > 0 {
		p.positive(fmt.Sprintf("Found %d disallowed paths:", n))
		preview := outcome.Disallowed
		if len(preview) > constants.RobotsPreviewLines {
			preview = preview[:constants.RobotsPreviewLines]
		}
		for _, line := range preview {
			fmt.Fprintf(p.out, "      %s\n", line)
		}
	}
	if !outcome.Triggered {
		p.negative("No robots.txt or nothing interesting")
	}
}

func (p *progressPrinter) headers(outcome checks.Outcome) {
	if outcome.Err != nil {
		p.negative("Could not check headers")
		return
	}
	if len(outcome.Missing) == 0 {
		p.positive("All recommended security headers present")
		return
	}
	p.alert(fmt.Sprintf("Missing %d security headers:", len(outcome.Missing)))
	for _, name := range outcome.Missing {
		if desc := checks.DescribeHeader(name); desc != "" {
			fmt.Fprintf(p.out, "      - %s (%s)\n", name, desc)
		} else {
			fmt.Fprintf(p.out, "      - %s\n", name)
		}
	}
}

func (p *progressPrinter) cors(outcome checks.Outcome) {
	if outcome.Err != nil {
		p.negative("Could not check CORS")
		return
	}
	if len(outcome.Findings) == 0 {
		p.positive("CORS properly configured")
		return
	}
	if outcome.Findings[0].Evidence == checks.WildcardEvidence {
		p.alert("CORS allows any origin (*)")
		return
	}
	p.alert("CORS reflects arbitrary origin!")
}

func (p *progressPrinter) generic(outcome checks.Outcome) {
	switch {
	case outcome.Err != nil:
		p.couldNot(outcome)
	case len(outcome.Findings) > 0:
		p.alert(fmt.Sprintf("%d finding(s)", len(outcome.Findings)))
	default:
		p.negative("Nothing found")
	}
}

func (p *progressPrinter) couldNot(outcome checks.Outcome) {
	p.negative(fmt.Sprintf("Could not run %s check: %v", outcome.Check, outcome.Err))
}

func (p *progressPrinter) alert(msg string) {
	fmt.Fprintf(p.out, "  %s %s\n", colorError("[!]"), msg)
}

func (p *progressPrinter) positive(msg string) {
	fmt.Fprintf(p.out, "  %s %s\n", colorSuccess("[+]"), msg)
}

func (p *progressPrinter) negative(msg string) {
	fmt.Fprintf(p.out, "  %s %s\n", "[-]", msg)
}

func rule() string {
	return strings.Repeat("=", 60)
}
