package cmd

import (
	"strings"
	"testing"
)

func TestUsageError(t *testing.T) {
	err := &UsageError{}
	if err.Error() != usageText {
		t.Fatalf("expected bare usage text, got %q", err.Error())
	}

	err = &UsageError{Reason: "missing target URL"}
	if !strings.HasPrefix(err.Error(), "missing target URL\n") {
		t.Fatalf("expected reason first, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "Usage: quickwins <target_url>") {
		t.Fatalf("expected usage line, got %q", err.Error())
	}
}
