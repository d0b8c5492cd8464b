package finding

import (
	"encoding/json"
	"testing"
)

func TestSeverityOrdering(t *testing.T) {
	if !(SeverityCritical > SeverityHigh && SeverityHigh > SeverityMedium && SeverityMedium > SeverityLow) {
		t.Fatal("expected CRITICAL > HIGH > MEDIUM > LOW")
	}
}

func TestSeverityString(t *testing.T) {
	cases := map[Severity]string{
		SeverityCritical: "CRITICAL",
		SeverityHigh:     "HIGH",
		SeverityMedium:   "MEDIUM",
		SeverityLow:      "LOW",
	}
	for sev, want := range cases {
		if got := sev.String(); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	sev, err := ParseSeverity(" medium ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sev != SeverityMedium {
		t.Fatalf("expected MEDIUM, got %s", sev)
	}

	if _, err := ParseSeverity("urgent"); err == nil {
		t.Fatal("expected error for unknown severity")
	}
}

func TestFindingJSONUsesSeverityLabel(t *testing.T) {
	f := New(SeverityHigh, CategoryCORS, "https://example.com", "Reflects origin")
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"severity":"HIGH","category":"CORS Misconfiguration","url":"https://example.com","evidence":"Reflects origin"}`
	if string(data) != want {
		t.Fatalf("unexpected JSON:\n got %s\nwant %s", data, want)
	}
}

func TestSummarize(t *testing.T) {
	findings := []Finding{
		New(SeverityLow, CategoryMisconfiguration, "u", "e"),
		New(SeverityCritical, CategorySourceDisclosure, "u", "e"),
		New(SeverityLow, CategoryInfoDisclosure, "u", "e"),
		New(SeverityCritical, CategoryCredentialExposure, "u", "e"),
	}

	summary := Summarize(findings)
	if len(summary) != 2 {
		t.Fatalf("expected 2 rows, got %d: %+v", len(summary), summary)
	}
	if summary[0].Severity != SeverityCritical || summary[0].Count != 2 {
		t.Errorf("unexpected first row: %+v", summary[0])
	}
	if summary[1].Severity != SeverityLow || summary[1].Count != 2 {
		t.Errorf("unexpected second row: %+v", summary[1])
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if summary := Summarize(nil); len(summary) != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}
