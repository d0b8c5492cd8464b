package probe

import (
	"fmt"
	"net/url"
	"strings"

	apperrors "github.com/khanhnv2901/quickwins/internal/shared/errors"
)

// NormalizeTarget validates a target URL and strips trailing slashes.
// Only http and https targets with a host are accepted.
func NormalizeTarget(target string) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", apperrors.ErrEmptyTarget
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidTarget, err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("%w: %q must start with http:// or https://", apperrors.ErrInvalidTarget, target)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", apperrors.ErrInvalidTarget, target)
	}

	return strings.TrimRight(target, "/"), nil
}

// Join resolves path against target the way a browser resolves a link:
// an absolute path replaces whatever path the target carries.
func Join(target, path string) string {
	base, err := url.Parse(target)
	if err != nil {
		return strings.TrimRight(target, "/") + path
	}
	ref, err := url.Parse(path)
	if err != nil {
		return strings.TrimRight(target, "/") + path
	}
	return base.ResolveReference(ref).String()
}
