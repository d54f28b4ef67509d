package cli

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeAdvisorConfig drops a .advisor.yaml pointing at the given location
// into a fresh working directory.
func writeAdvisorConfig(t *testing.T, location, token string) {
	t.Helper()
	dir := t.TempDir()
	contents := "apps:\n  - name: test\n    location: " + location + "\n"
	if token != "" {
		contents += "    token: " + token + "\n"
	}
	if err := os.WriteFile(filepath.Join(dir, ".advisor.yaml"), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	appName = ""
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestHealthCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthcheck" {
			t.Errorf("path = %q, want /healthcheck", r.URL.Path)
		}
		w.Write([]byte("OK"))
	}))
	defer server.Close()
	writeAdvisorConfig(t, server.URL, "")

	out, err := execute(t, "health")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(out, "Success: OK") {
		t.Errorf("output = %q, want Success line", out)
	}
}

func TestShowPeopleCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer s3cret" {
			t.Errorf("Authorization header = %q", got)
		}
		w.Write([]byte(`[{"name":"A","email":"a@x.com","is_mentor":true}]`))
	}))
	defer server.Close()
	writeAdvisorConfig(t, server.URL, "s3cret")

	out, err := execute(t, "show", "people", "--app", "test")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	for _, want := range []string{"Success:", "a@x.com", "IS MENTOR"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestUnwiredCommandPrintsFailure(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()
	writeAdvisorConfig(t, server.URL, "s3cret")

	out, err := execute(t, "show", "questionnaires")
	if !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("expected ErrCommandFailed, got %v", err)
	}
	if !strings.Contains(out, "Failure:") {
		t.Errorf("output = %q, want Failure line", out)
	}
	if requests != 0 {
		t.Errorf("unwired command hit the network %d times", requests)
	}
}

func TestDeleteRejectsBadEmail(t *testing.T) {
	writeAdvisorConfig(t, "https://unused.example.com", "")

	_, err := execute(t, "delete", "not-an-email")
	if err == nil {
		t.Fatal("expected argument validation error, got nil")
	}
	if errors.Is(err, ErrCommandFailed) {
		t.Error("bad email should fail validation before dispatch")
	}
}

func TestShowRejectsUnknownKind(t *testing.T) {
	writeAdvisorConfig(t, "https://unused.example.com", "")

	_, err := execute(t, "show", "pets")
	if err == nil {
		t.Fatal("expected argument validation error, got nil")
	}
}

func TestUpdateRejectsUnknownMode(t *testing.T) {
	writeAdvisorConfig(t, "https://unused.example.com", "")

	_, err := execute(t, "update", "123a", "swap", "a@b.com")
	if err == nil {
		t.Fatal("expected argument validation error, got nil")
	}
}

func TestCreatePersonCollectsAppFlag(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()
	writeAdvisorConfig(t, server.URL, "s3cret")

	// create is unwired, so this reports Failure, but the --app flag must
	// still be picked out of the raw tokens rather than swallowed as an
	// attribute.
	out, err := execute(t, "create", "person", "--app", "test", "--name", "Steve")
	if !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("expected ErrCommandFailed, got %v", err)
	}
	if !strings.Contains(out, "Failure:") {
		t.Errorf("output = %q, want Failure line", out)
	}
	if appName != "test" {
		t.Errorf("appName = %q, want %q", appName, "test")
	}
	if requests != 0 {
		t.Errorf("create issued %d network calls, want 0", requests)
	}
}
