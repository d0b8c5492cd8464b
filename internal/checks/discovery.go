package checks

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/khanhnv2901/quickwins/internal/finding"
	"github.com/khanhnv2901/quickwins/internal/probe"
)

var (
	DefaultAdminPaths = []string{
		"/admin",
		"/administrator",
		"/admin/login",
		"/admin-panel",
		"/dashboard",
		"/panel",
		"/manage",
		"/console",
		"/wp-admin",
		"/phpmyadmin",
	}

	DefaultRobotsPath     = "/robots.txt"
	DefaultRobotsKeywords = []string{"/admin", "/api", "/config", "/backup", "/.git", "/internal"}
)

// AdminPanels probes every admin path and records the ones that exist.
// 401 and 403 mean protected but present; only 200 is a finding.
type AdminPanels struct {
	Paths []string
}

func NewAdminPanels() *AdminPanels {
	return &AdminPanels{Paths: DefaultAdminPaths}
}

func (a *AdminPanels) Name() string { return "admin" }

func (a *AdminPanels) Run(ctx context.Context, target string, fetcher Fetcher) Outcome {
	outcome := Outcome{Check: a.Name()}

	for _, path := range a.Paths {
		url := probe.Join(target, path)
		resp, err := fetcher.Fetch(ctx, url, nil)
		if err != nil {
			continue
		}

		switch resp.StatusCode {
		case http.StatusOK, http.StatusUnauthorized, http.StatusForbidden:
		default:
			continue
		}

		outcome.Hits = append(outcome.Hits, Hit{Path: path, URL: url, Status: resp.StatusCode})
		if resp.StatusCode == http.StatusOK {
			outcome.Findings = append(outcome.Findings, finding.New(
				finding.SeverityMedium,
				finding.CategoryInfoDisclosure,
				url,
				fmt.Sprintf("Admin panel accessible (status %d)", resp.StatusCode),
			))
		}
	}

	outcome.Triggered = len(outcome.Hits) > 0
	return outcome
}

// Robots reads robots.txt and flags Disallow rules that point at sensitive areas.
type Robots struct {
	Path     string
	Keywords []string
}

func NewRobots() *Robots {
	return &Robots{Path: DefaultRobotsPath, Keywords: DefaultRobotsKeywords}
}

func (r *Robots) Name() string { return "robots" }

func (r *Robots) Run(ctx context.Context, target string, fetcher Fetcher) Outcome {
	outcome := Outcome{Check: r.Name()}

	url := probe.Join(target, r.Path)
	resp, err := fetcher.Fetch(ctx, url, nil)
	if err != nil || resp.StatusCode != http.StatusOK {
		return outcome
	}

	outcome.Disallowed = disallowLines(resp.Body)

	for _, line := range outcome.Disallowed {
		if containsAny(line, r.Keywords) {
			outcome.Triggered = true
			outcome.Findings = []finding.Finding{finding.New(
				finding.SeverityLow,
				finding.CategoryInfoDisclosure,
				url,
				"robots.txt reveals interesting paths",
			)}
			break
		}
	}

	return outcome
}

func disallowLines(body string) []string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if strings.Contains(line, "Disallow:") {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines
}
