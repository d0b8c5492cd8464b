package cmd

import (
	"testing"

	"github.com/fatih/color"
	"github.com/khanhnv2901/quickwins/internal/finding"
)

func TestFormatSeverityWithColor(t *testing.T) {
	original := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		color.NoColor = original
	})

	tests := []struct {
		name     string
		severity finding.Severity
		want     string
	}{
		{name: "critical", severity: finding.SeverityCritical, want: "CRITICAL"},
		{name: "high", severity: finding.SeverityHigh, want: "HIGH"},
		{name: "medium", severity: finding.SeverityMedium, want: "MEDIUM"},
		{name: "low", severity: finding.SeverityLow, want: "LOW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSeverityWithColor(tt.severity); got != tt.want {
				t.Fatalf("formatSeverityWithColor(%s) = %q, want %q", tt.severity, got, tt.want)
			}
		})
	}
}
