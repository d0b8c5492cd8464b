package constants

import "time"

const (
	// DefaultTimeout bounds every probe request.
	DefaultTimeout = 10 * time.Second
	// DefaultUserAgent identifies the scanner to the target.
	DefaultUserAgent = "Open-Bounty-Scanner/2.0"
	// ScanName is printed in the report banner.
	ScanName = "Open-Bounty Quick Wins Scanner"
)

const (
	// MaxBodyBytes caps how much of a response body the probe keeps for matching.
	MaxBodyBytes = 5 << 20
	// RobotsPreviewLines limits how many Disallow lines the report prints.
	RobotsPreviewLines = 10
)
