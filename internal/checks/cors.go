package checks

import (
	"context"
	"fmt"
	"net/http"

	"github.com/khanhnv2901/quickwins/internal/finding"
	apperrors "github.com/khanhnv2901/quickwins/internal/shared/errors"
)

const (
	// DefaultProbeOrigin is sent as the Origin header when testing CORS.
	DefaultProbeOrigin = "https://evil.com"
	// WildcardEvidence marks the finding raised for "Access-Control-Allow-Origin: *".
	WildcardEvidence = "Access-Control-Allow-Origin: *"
)

// CORS sends a cross-origin request from an untrusted origin and inspects
// Access-Control-Allow-Origin and Access-Control-Allow-Credentials.
type CORS struct {
	Origin string
}

func NewCORS() *CORS {
	return &CORS{Origin: DefaultProbeOrigin}
}

func (c *CORS) Name() string { return "cors" }

func (c *CORS) Run(ctx context.Context, target string, fetcher Fetcher) Outcome {
	outcome := Outcome{Check: c.Name()}

	extra := http.Header{}
	extra.Set("Origin", c.Origin)

	resp, err := fetcher.Fetch(ctx, target, extra)
	if err != nil {
		outcome.Err = fmt.Errorf("%w: cors: %v", apperrors.ErrCheckSkipped, err)
		return outcome
	}

	acao := resp.Header.Get("Access-Control-Allow-Origin")
	acac := resp.Header.Get("Access-Control-Allow-Credentials")

	// A wildcard ends the check; credentials alongside "*" are not evaluated.
	if acao == "*" {
		outcome.Triggered = true
		outcome.Findings = []finding.Finding{finding.New(
			finding.SeverityLow,
			finding.CategoryCORS,
			target,
			WildcardEvidence,
		)}
		return outcome
	}

	if acao == c.Origin {
		severity := finding.SeverityMedium
		if acac == "true" {
			severity = finding.SeverityHigh
		}
		credentials := acac
		if credentials == "" {
			credentials = "None"
		}
		outcome.Triggered = true
		outcome.Findings = []finding.Finding{finding.New(
			severity,
			finding.CategoryCORS,
			target,
			fmt.Sprintf("Reflects origin %s, credentials: %s", acao, credentials),
		)}
	}

	return outcome
}
