package registry

import (
	"errors"
	"fmt"

	"github.com/advisor-tools/advisor/internal/httpexec"
)

// ErrInstanceNotFound means no instance could be resolved for a command:
// an unknown name was requested, or no name was given and the registry has
// no usable default.
var ErrInstanceNotFound = errors.New("instance not found")

// Instance is one named remote advisor service endpoint.
type Instance struct {
	Name     string
	Location string
	Token    string
}

// Auth derives the authentication for this instance: bearer iff a token is
// configured, unauthenticated otherwise.
func (i Instance) Auth() httpexec.Auth {
	if i.Token == "" {
		return httpexec.None
	}
	return httpexec.Bearer(i.Token)
}

// Registry is the immutable collection of configured instances plus an
// optional default selection.
type Registry struct {
	instances   []Instance
	defaultName string
}

// New builds a Registry. Instance names must be unique; defaultName may be
// empty and is not required to match an instance until resolution time.
func New(instances []Instance, defaultName string) (*Registry, error) {
	seen := make(map[string]bool, len(instances))
	for _, inst := range instances {
		if seen[inst.Name] {
			return nil, fmt.Errorf("duplicate instance name %q", inst.Name)
		}
		seen[inst.Name] = true
	}
	return &Registry{instances: instances, defaultName: defaultName}, nil
}

// Resolve picks the instance a command targets. An explicit name always wins;
// otherwise the configured default is used; otherwise, when exactly one
// instance is configured, that instance is returned. An empty registry, or
// several instances with nothing to pick between them, is ErrInstanceNotFound.
func (r *Registry) Resolve(explicit string) (Instance, error) {
	if explicit != "" {
		return r.lookup(explicit)
	}
	if r.defaultName != "" {
		return r.lookup(r.defaultName)
	}
	switch len(r.instances) {
	case 0:
		return Instance{}, fmt.Errorf("%w: no instances configured", ErrInstanceNotFound)
	case 1:
		return r.instances[0], nil
	default:
		return Instance{}, fmt.Errorf("%w: %d instances configured and no default set; pass --app", ErrInstanceNotFound, len(r.instances))
	}
}

func (r *Registry) lookup(name string) (Instance, error) {
	for _, inst := range r.instances {
		if inst.Name == name {
			return inst, nil
		}
	}
	return Instance{}, fmt.Errorf("%w: %q", ErrInstanceNotFound, name)
}
