// Package recount provides functionality for rebuilding cached per-vote
// reaction tallies from the raw reaction records.
//
// Tallies are maintained incrementally as reactions are toggled; a recount
// repairs any drift. The package supports batch processing of the vote
// feed, progress tracking, and retry logic with exponential backoff.
package recount
