package cmd

import (
	"github.com/fatih/color"
	"github.com/khanhnv2901/quickwins/internal/finding"
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
	colorBold    = color.New(color.Bold).SprintFunc()
)

func formatSeverityWithColor(sev finding.Severity) string {
	label := sev.String()
	switch sev {
	case finding.SeverityCritical, finding.SeverityHigh:
		return colorError(label)
	case finding.SeverityMedium:
		return colorWarn(label)
	case finding.SeverityLow:
		return colorInfo(label)
	default:
		return label
	}
}
