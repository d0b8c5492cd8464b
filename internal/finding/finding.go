package finding

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity ranks a finding. Higher values are more severe.
type Severity int

const (
	SeverityLow Severity = iota + 1
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// Severities lists every level in reporting order, most severe first.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityHigh:
		return "HIGH"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityLow:
		return "LOW"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// ParseSeverity converts a label such as "high" into a Severity.
func ParseSeverity(value string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "CRITICAL":
		return SeverityCritical, nil
	case "HIGH":
		return SeverityHigh, nil
	case "MEDIUM":
		return SeverityMedium, nil
	case "LOW":
		return SeverityLow, nil
	}
	return 0, fmt.Errorf("unknown severity %q", value)
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseSeverity(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Finding categories emitted by the built-in checks.
const (
	CategorySourceDisclosure   = "Source Code Disclosure"
	CategoryCredentialExposure = "Credential Exposure"
	CategoryInfoDisclosure     = "Information Disclosure"
	CategoryMisconfiguration   = "Security Misconfiguration"
	CategoryCORS               = "CORS Misconfiguration"
)

// Finding is one reportable observation. It is passed by value and never
// modified once a check has produced it.
type Finding struct {
	Severity Severity `json:"severity"`
	Category string   `json:"category"`
	URL      string   `json:"url"`
	Evidence string   `json:"evidence"`
}

// New builds a Finding.
func New(severity Severity, category, url, evidence string) Finding {
	return Finding{
		Severity: severity,
		Category: category,
		URL:      url,
		Evidence: evidence,
	}
}

// SeverityCount is one row of a severity histogram.
type SeverityCount struct {
	Severity Severity `json:"severity"`
	Count    int      `json:"count"`
}

// Summarize counts findings per severity in the fixed order CRITICAL, HIGH,
// MEDIUM, LOW. Levels with no findings are omitted.
func Summarize(findings []Finding) []SeverityCount {
	counts := make(map[Severity]int, len(Severities))
	for _, f := range findings {
		counts[f.Severity]++
	}

	summary := make([]SeverityCount, 0, len(Severities))
	for _, sev := range Severities {
		if n := counts[sev]; n > 0 {
			summary = append(summary, SeverityCount{Severity: sev, Count: n})
		}
	}
	return summary
}
