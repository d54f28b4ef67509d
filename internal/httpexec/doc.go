// Package httpexec performs the single timed HTTP request behind every
// advisor operation: one GET, optionally bearer-authenticated, one attempt,
// with the whole exchange (connect, headers, body) bounded by a deadline.
// Every failure mode is folded into ErrRemoteAPI; the taxonomy is
// deliberately coarse.
package httpexec
