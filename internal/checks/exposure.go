package checks

import (
	"context"
	"net/http"

	"github.com/khanhnv2901/quickwins/internal/finding"
	"github.com/khanhnv2901/quickwins/internal/probe"
)

// Default candidate lists. Order matters: probing stops at the first match.
var (
	DefaultGitPaths   = []string{"/.git/", "/.git/config", "/.git/HEAD", "/.git/index"}
	DefaultGitMarkers = []string{"[core]", "ref:", "repositoryformatversion"}

	DefaultEnvPaths = []string{
		"/.env",
		"/.env.local",
		"/.env.production",
		"/config/.env",
		"/api/.env",
		"/admin/.env",
	}
	DefaultEnvMarkers = []string{"DB_PASSWORD", "API_KEY", "SECRET", "AWS_"}
)

// exposureProbe walks Paths in order and reports the first 200 response whose
// body contains one of Markers. Remaining paths are not requested.
type exposureProbe struct {
	name     string
	paths    []string
	markers  []string
	severity finding.Severity
	category string
	evidence string
}

func (e exposureProbe) run(ctx context.Context, target string, fetcher Fetcher) Outcome {
	outcome := Outcome{Check: e.name}

	for _, path := range e.paths {
		url := probe.Join(target, path)
		resp, err := fetcher.Fetch(ctx, url, nil)
		if err != nil {
			continue
		}
		if resp.StatusCode != http.StatusOK || !containsAny(resp.Body, e.markers) {
			continue
		}

		outcome.Triggered = true
		outcome.Hits = []Hit{{Path: path, URL: url, Status: resp.StatusCode}}
		outcome.Findings = []finding.Finding{finding.New(e.severity, e.category, url, e.evidence)}
		return outcome
	}

	return outcome
}

// GitExposure looks for a readable .git directory.
type GitExposure struct {
	Paths   []string
	Markers []string
}

func NewGitExposure() *GitExposure {
	return &GitExposure{Paths: DefaultGitPaths, Markers: DefaultGitMarkers}
}

func (g *GitExposure) Name() string { return "git" }

func (g *GitExposure) Run(ctx context.Context, target string, fetcher Fetcher) Outcome {
	return exposureProbe{
		name:     g.Name(),
		paths:    g.Paths,
		markers:  g.Markers,
		severity: finding.SeverityCritical,
		category: finding.CategorySourceDisclosure,
		evidence: "Exposed .git directory",
	}.run(ctx, target, fetcher)
}

// EnvFiles looks for environment files that leak credentials.
type EnvFiles struct {
	Paths   []string
	Markers []string
}

func NewEnvFiles() *EnvFiles {
	return &EnvFiles{Paths: DefaultEnvPaths, Markers: DefaultEnvMarkers}
}

func (e *EnvFiles) Name() string { return "env" }

func (e *EnvFiles) Run(ctx context.Context, target string, fetcher Fetcher) Outcome {
	return exposureProbe{
		name:     e.Name(),
		paths:    e.Paths,
		markers:  e.Markers,
		severity: finding.SeverityCritical,
		category: finding.CategoryCredentialExposure,
		evidence: "Exposed .env with credentials",
	}.run(ctx, target, fetcher)
}
