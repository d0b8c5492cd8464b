package scanner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/khanhnv2901/quickwins/internal/checks"
	"github.com/khanhnv2901/quickwins/internal/finding"
	"github.com/khanhnv2901/quickwins/internal/probe"
	apperrors "github.com/khanhnv2901/quickwins/internal/shared/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Observer receives progress callbacks. Calls always arrive in check order.
type Observer interface {
	CheckStarted(name string)
	CheckFinished(outcome checks.Outcome)
}

// Report is the immutable result of one scan.
type Report struct {
	ID          string                  `json:"id"`
	Target      string                  `json:"target"`
	StartedAt   time.Time               `json:"started_at"`
	CompletedAt time.Time               `json:"completed_at"`
	Outcomes    []checks.Outcome        `json:"outcomes"`
	Findings    []finding.Finding       `json:"findings"`
	Summary     []finding.SeverityCount `json:"summary"`
}

// Scanner runs a fixed sequence of checks against one target.
type Scanner struct {
	target   string
	fetcher  checks.Fetcher
	checks   []checks.Check
	parallel bool
	observer Observer
	logger   *zap.SugaredLogger
}

// Option customises a Scanner.
type Option func(*Scanner)

// WithChecks replaces the default check sequence.
func WithChecks(list ...checks.Check) Option {
	return func(s *Scanner) {
		s.checks = list
	}
}

// WithParallel runs checks concurrently. Findings keep check order.
func WithParallel(parallel bool) Option {
	return func(s *Scanner) {
		s.parallel = parallel
	}
}

func WithObserver(o Observer) Option {
	return func(s *Scanner) {
		s.observer = o
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New validates target and builds a Scanner.
func New(target string, fetcher checks.Fetcher, opts ...Option) (*Scanner, error) {
	normalized, err := probe.NormalizeTarget(target)
	if err != nil {
		return nil, err
	}

	s := &Scanner{
		target:  normalized,
		fetcher: fetcher,
		checks:  checks.Default(),
		logger:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Target returns the normalized target.
func (s *Scanner) Target() string {
	return s.target
}

// Scan runs every check once, unconditionally, and returns the report.
func (s *Scanner) Scan(ctx context.Context) Report {
	report := Report{
		ID:        uuid.NewString(),
		Target:    s.target,
		StartedAt: time.Now().UTC(),
	}

	if s.parallel {
		report.Outcomes = s.runParallel(ctx)
	} else {
		report.Outcomes = s.runSequential(ctx)
	}

	findings := make([]finding.Finding, 0)
	for _, outcome := range report.Outcomes {
		findings = append(findings, outcome.Findings...)
	}

	report.Findings = findings
	report.Summary = finding.Summarize(findings)
	report.CompletedAt = time.Now().UTC()

	s.logger.Debugw("scan complete",
		"id", report.ID,
		"target", s.target,
		"findings", len(findings),
		"duration", report.CompletedAt.Sub(report.StartedAt).String())

	return report
}

func (s *Scanner) runSequential(ctx context.Context) []checks.Outcome {
	outcomes := make([]checks.Outcome, 0, len(s.checks))
	for _, chk := range s.checks {
		s.notifyStarted(chk.Name())
		outcome := s.runOne(ctx, chk)
		s.notifyFinished(outcome)
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// runParallel gives each check its own slot, so no locking is needed and the
// result order matches the sequential order.
func (s *Scanner) runParallel(ctx context.Context) []checks.Outcome {
	outcomes := make([]checks.Outcome, len(s.checks))

	var g errgroup.Group
	for i, chk := range s.checks {
		g.Go(func() error {
			outcomes[i] = s.runOne(ctx, chk)
			return nil
		})
	}
	_ = g.Wait()

	for i, chk := range s.checks {
		s.notifyStarted(chk.Name())
		s.notifyFinished(outcomes[i])
	}
	return outcomes
}

func (s *Scanner) runOne(ctx context.Context, chk checks.Check) (outcome checks.Outcome) {
	name := chk.Name()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorw("check panicked", "check", name, "panic", r)
			outcome = checks.Outcome{
				Check: name,
				Err:   fmt.Errorf("%w: %s: %v", apperrors.ErrCheckPanicked, name, r),
			}
		}
	}()

	s.logger.Debugw("check started", "check", name, "target", s.target)
	outcome = chk.Run(ctx, s.target, s.fetcher)
	outcome.Check = name
	s.logger.Debugw("check finished",
		"check", name,
		"triggered", outcome.Triggered,
		"findings", len(outcome.Findings),
		"elapsed", time.Since(start).String())
	return outcome
}

func (s *Scanner) notifyStarted(name string) {
	if s.observer != nil {
		s.observer.CheckStarted(name)
	}
}

func (s *Scanner) notifyFinished(outcome checks.Outcome) {
	if s.observer != nil {
		s.observer.CheckFinished(outcome)
	}
}
