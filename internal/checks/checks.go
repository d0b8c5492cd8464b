package checks

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/khanhnv2901/quickwins/internal/finding"
	"github.com/khanhnv2901/quickwins/internal/probe"
)

// Fetcher is the probe capability a check needs.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string, extra http.Header) (*probe.Response, error)
}

// Check is implemented by every quick-win routine.
type Check interface {
	// Name returns a short identifier such as "git" or "cors".
	Name() string

	// Run probes target and returns what it found. Per-request transport
	// failures are treated as non-matches, never returned.
	Run(ctx context.Context, target string, fetcher Fetcher) Outcome
}

// Hit is a path that answered with a status the check cares about.
type Hit struct {
	Path   string `json:"path"`
	URL    string `json:"url"`
	Status int    `json:"status"`
}

// Outcome is the result of one check run.
type Outcome struct {
	Check     string            `json:"check"`
	Triggered bool              `json:"triggered"`
	Findings  []finding.Finding `json:"findings,omitempty"`

	// Check-specific annotations for the reporter.
	Hits       []Hit    `json:"hits,omitempty"`
	Disallowed []string `json:"disallowed,omitempty"`
	Missing    []string `json:"missing,omitempty"`

	// Err is set when the check could not evaluate the target at all.
	Err error `json:"-"`
}

// MarshalJSON adds Err as a string so JSON reports keep it.
func (o Outcome) MarshalJSON() ([]byte, error) {
	type alias Outcome
	var errText string
	if o.Err != nil {
		errText = o.Err.Error()
	}
	return json.Marshal(struct {
		alias
		Error string `json:"error,omitempty"`
	}{alias: alias(o), Error: errText})
}

// Default returns the built-in checks in execution order.
func Default() []Check {
	return []Check{
		NewGitExposure(),
		NewEnvFiles(),
		NewAdminPanels(),
		NewRobots(),
		NewSecurityHeaders(),
		NewCORS(),
	}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
