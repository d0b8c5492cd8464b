package checks

import (
	"context"
	"net/http"
	"testing"

	"github.com/khanhnv2901/quickwins/internal/finding"
)

func TestAdminPanels_RecordsProtectedPaths(t *testing.T) {
	fetcher := newFakeFetcher(map[string]stubResponse{
		testTarget + "/admin":    {status: http.StatusOK},
		testTarget + "/wp-admin": {status: http.StatusForbidden},
	})

	outcome := NewAdminPanels().Run(context.Background(), testTarget, fetcher)

	if len(fetcher.calls) != len(DefaultAdminPaths) {
		t.Fatalf("expected every admin path to be probed, got %d", len(fetcher.calls))
	}
	if !outcome.Triggered {
		t.Fatal("expected admin check to trigger")
	}

	wantHits := []Hit{
		{Path: "/admin", URL: testTarget + "/admin", Status: http.StatusOK},
		{Path: "/wp-admin", URL: testTarget + "/wp-admin", Status: http.StatusForbidden},
	}
	if len(outcome.Hits) != len(wantHits) {
		t.Fatalf("expected %d hits, got %+v", len(wantHits), outcome.Hits)
	}
	for i, want := range wantHits {
		if outcome.Hits[i] != want {
			t.Errorf("hit %d: expected %+v, got %+v", i, want, outcome.Hits[i])
		}
	}

	if len(outcome.Findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(outcome.Findings))
	}
	f := outcome.Findings[0]
	if f.Severity != finding.SeverityMedium || f.URL != testTarget+"/admin" {
		t.Errorf("unexpected finding: %+v", f)
	}
	if f.Evidence != "Admin panel accessible (status 200)" {
		t.Errorf("unexpected evidence: %s", f.Evidence)
	}
}

func TestAdminPanels_FindingsFollowPathOrder(t *testing.T) {
	fetcher := newFakeFetcher(map[string]stubResponse{
		testTarget + "/phpmyadmin": {status: http.StatusOK},
		testTarget + "/dashboard":  {status: http.StatusOK},
		testTarget + "/console":    {status: http.StatusUnauthorized},
	})

	outcome := NewAdminPanels().Run(context.Background(), testTarget, fetcher)

	if len(outcome.Findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(outcome.Findings))
	}
	if outcome.Findings[0].URL != testTarget+"/dashboard" || outcome.Findings[1].URL != testTarget+"/phpmyadmin" {
		t.Errorf("findings out of path order: %+v", outcome.Findings)
	}
	if len(outcome.Hits) != 3 {
		t.Errorf("expected 3 hits, got %+v", outcome.Hits)
	}
}

func TestAdminPanels_NoneFound(t *testing.T) {
	outcome := NewAdminPanels().Run(context.Background(), testTarget, newFakeFetcher(nil))
	if outcome.Triggered || len(outcome.Hits) != 0 || len(outcome.Findings) != 0 {
		t.Fatalf("expected nothing, got %+v", outcome)
	}
}

func TestRobots_SensitiveDisallow(t *testing.T) {
	fetcher := newFakeFetcher(map[string]stubResponse{
		testTarget + "/robots.txt": {
			status: http.StatusOK,
			body:   "User-agent: *\nDisallow: /admin\nDisallow: /public",
		},
	})

	outcome := NewRobots().Run(context.Background(), testTarget, fetcher)

	if len(outcome.Disallowed) != 2 {
		t.Fatalf("expected 2 disallow lines, got %v", outcome.Disallowed)
	}
	if len(outcome.Findings) != 1 {
		t.Fatalf("expected exactly 1 finding, got %d", len(outcome.Findings))
	}
	f := outcome.Findings[0]
	if f.Severity != finding.SeverityLow || f.Category != finding.CategoryInfoDisclosure {
		t.Errorf("unexpected finding: %+v", f)
	}
	if f.URL != testTarget+"/robots.txt" {
		t.Errorf("unexpected URL: %s", f.URL)
	}
}

func TestRobots_ManySensitiveLinesYieldOneFinding(t *testing.T) {
	fetcher := newFakeFetcher(map[string]stubResponse{
		testTarget + "/robots.txt": {
			status: http.StatusOK,
			body:   "Disallow: /admin\r\nDisallow: /api/v1\r\nDisallow: /backup\r\n",
		},
	})

	outcome := NewRobots().Run(context.Background(), testTarget, fetcher)

	if len(outcome.Findings) != 1 {
		t.Fatalf("expected exactly 1 finding, got %d", len(outcome.Findings))
	}
	if outcome.Disallowed[0] != "Disallow: /admin" {
		t.Errorf("expected trimmed line, got %q", outcome.Disallowed[0])
	}
}

func TestRobots_NothingInteresting(t *testing.T) {
	fetcher := newFakeFetcher(map[string]stubResponse{
		testTarget + "/robots.txt": {status: http.StatusOK, body: "User-agent: *\nDisallow: /public\n"},
	})

	outcome := NewRobots().Run(context.Background(), testTarget, fetcher)

	if outcome.Triggered || len(outcome.Findings) != 0 {
		t.Fatalf("expected no finding, got %+v", outcome.Findings)
	}
	if len(outcome.Disallowed) != 1 {
		t.Errorf("expected disallow line to be reported, got %v", outcome.Disallowed)
	}
}

func TestRobots_MissingFile(t *testing.T) {
	outcome := NewRobots().Run(context.Background(), testTarget, newFakeFetcher(nil))
	if outcome.Triggered || len(outcome.Disallowed) != 0 {
		t.Fatalf("expected nothing for 404 robots.txt, got %+v", outcome)
	}
}

func TestDiscoveryChecks_TransportFailure(t *testing.T) {
	for _, check := range []Check{NewAdminPanels(), NewRobots()} {
		outcome := check.Run(context.Background(), testTarget, &failingFetcher{})
		if outcome.Triggered || len(outcome.Findings) != 0 {
			t.Errorf("%s: expected no findings, got %+v", check.Name(), outcome)
		}
	}
}
