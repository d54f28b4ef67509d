package registry

import (
	"errors"
	"testing"
)

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := New([]Instance{
		{Name: "prod", Location: "https://prod.example.com"},
		{Name: "prod", Location: "https://other.example.com"},
	}, "")
	if err == nil {
		t.Fatal("expected error for duplicate instance names, got nil")
	}
}

func TestResolve(t *testing.T) {
	staging := Instance{Name: "staging", Location: "https://staging.example.com", Token: "st"}
	prod := Instance{Name: "prod", Location: "https://prod.example.com", Token: "pr"}

	tests := []struct {
		name      string
		instances []Instance
		def       string
		explicit  string
		want      string
		wantErr   bool
	}{
		{"explicit match", []Instance{staging, prod}, "", "prod", "prod", false},
		{"explicit beats default", []Instance{staging, prod}, "staging", "prod", "prod", false},
		{"explicit miss", []Instance{staging, prod}, "", "qa", "", true},
		{"default fallback", []Instance{staging, prod}, "staging", "", "staging", false},
		{"default names missing instance", []Instance{staging}, "qa", "", "", true},
		{"single instance convenience", []Instance{staging}, "", "", "staging", false},
		{"ambiguous without default", []Instance{staging, prod}, "", "", "", true},
		{"empty registry", nil, "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.instances, tt.def)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			inst, err := r.Resolve(tt.explicit)
			if tt.wantErr {
				if !errors.Is(err, ErrInstanceNotFound) {
					t.Fatalf("expected ErrInstanceNotFound, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if inst.Name != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.explicit, inst.Name, tt.want)
			}
		})
	}
}

func TestInstanceAuth(t *testing.T) {
	withToken := Instance{Name: "a", Token: "s3cret"}
	if auth := withToken.Auth(); auth.Token != "s3cret" {
		t.Errorf("Auth().Token = %q, want %q", auth.Token, "s3cret")
	}

	withoutToken := Instance{Name: "b"}
	if auth := withoutToken.Auth(); auth.Token != "" {
		t.Errorf("expected unauthenticated Auth, got token %q", auth.Token)
	}
}
