package checks

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/khanhnv2901/quickwins/internal/finding"
	apperrors "github.com/khanhnv2901/quickwins/internal/shared/errors"
)

// SecurityHeaderSpec names a response header the target should send.
type SecurityHeaderSpec struct {
	Name        string
	Description string
}

// DefaultSecurityHeaders are audited in this order.
var DefaultSecurityHeaders = []SecurityHeaderSpec{
	{Name: "Strict-Transport-Security", Description: "HSTS"},
	{Name: "Content-Security-Policy", Description: "CSP"},
	{Name: "X-Frame-Options", Description: "Clickjacking protection"},
	{Name: "X-Content-Type-Options", Description: "MIME sniffing protection"},
	{Name: "X-XSS-Protection", Description: "XSS filter"},
}

// SecurityHeaders reports which recommended headers the target root omits.
// Presence is enough; values are not graded.
type SecurityHeaders struct {
	Headers []SecurityHeaderSpec
}

func NewSecurityHeaders() *SecurityHeaders {
	return &SecurityHeaders{Headers: DefaultSecurityHeaders}
}

func (s *SecurityHeaders) Name() string { return "headers" }

func (s *SecurityHeaders) Run(ctx context.Context, target string, fetcher Fetcher) Outcome {
	outcome := Outcome{Check: s.Name()}

	resp, err := fetcher.Fetch(ctx, target, nil)
	if err != nil {
		outcome.Err = fmt.Errorf("%w: security headers: %v", apperrors.ErrCheckSkipped, err)
		return outcome
	}

	outcome.Missing = missingHeaders(resp.Header, s.Headers)
	if len(outcome.Missing) == 0 {
		return outcome
	}

	outcome.Triggered = true
	outcome.Findings = []finding.Finding{finding.New(
		finding.SeverityLow,
		finding.CategoryMisconfiguration,
		target,
		"Missing headers: "+strings.Join(outcome.Missing, ", "),
	)}
	return outcome
}

// DescribeHeader returns the short description for a known header name.
func DescribeHeader(name string) string {
	for _, spec := range DefaultSecurityHeaders {
		if strings.EqualFold(spec.Name, name) {
			return spec.Description
		}
	}
	return ""
}

func missingHeaders(headers http.Header, specs []SecurityHeaderSpec) []string {
	var missing []string
	for _, spec := range specs {
		if _, ok := headers[http.CanonicalHeaderKey(spec.Name)]; ok {
			continue
		}
		missing = append(missing, spec.Name)
	}
	return missing
}
