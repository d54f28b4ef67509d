// Package render turns raw response payloads into user-facing output: the
// people table, and the healthcheck line with its optional server
// compatibility note. Payloads that do not decode in the expected shape are
// reported as ErrMalformedResponse, distinct from transport failures.
package render
