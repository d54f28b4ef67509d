// Package version compares advisor server versions against the range this
// client supports. Servers report their version in the healthcheck payload;
// payloads without one are fine and produce no note.
package version
