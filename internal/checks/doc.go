// Package checks holds the quick-win routines run against a single target.
//
// Every routine implements Check (Name + Run) and drives a Fetcher over a
// fixed, ordered candidate list exposed as a struct field so callers can
// substitute shorter lists:
//
//   - GitExposure and EnvFiles stop at the first positive path.
//   - AdminPanels, Robots, SecurityHeaders and CORS always evaluate their
//     whole candidate set.
//
// A transport failure on one path counts as a non-match. Checks that make a
// single request (SecurityHeaders, CORS) set Outcome.Err instead so the
// reporter can say the check could not run.
package checks
