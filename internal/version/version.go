package version

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinServerVersion is the oldest advisor server this client is tested
// against. Older servers still work for the wired operations, but we warn.
const MinServerVersion = "0.4.0"

// Compare compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func Compare(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// ServerNote inspects a healthcheck payload for a reported server version and
// returns a compatibility warning when that version predates
// MinServerVersion. Payloads that are not JSON, carry no version field, or
// carry one that does not parse as semver produce no note.
func ServerNote(payload string) string {
	var health struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal([]byte(payload), &health); err != nil || health.Version == "" {
		return ""
	}
	cmp, err := Compare(health.Version, MinServerVersion)
	if err != nil {
		return ""
	}
	if cmp < 0 {
		return fmt.Sprintf("note: server version %s is older than the supported minimum %s", health.Version, MinServerVersion)
	}
	return ""
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
