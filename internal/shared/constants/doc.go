// Package constants centralizes defaults shared across the CLI.
//
// Probe timeouts, the identifying User-Agent and body limits live here so
// cmd/ and internal/ reference one value without introducing import cycles.
package constants
