package cmd

import "fmt"

const usageText = `Usage: quickwins <target_url>
Example: quickwins https://example.com`

// UsageError signals a malformed invocation. It maps to exit code 1.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	if e.Reason == "" {
		return usageText
	}
	return fmt.Sprintf("%s\n%s", e.Reason, usageText)
}
