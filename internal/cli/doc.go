// Package cli defines the Cobra command tree for the advisor client. Each
// file in this package registers one top-level command (health, show, delete,
// update, create, ...) with the root command. Commands only handle flag
// parsing and output; the command model, instance resolution, and dispatch
// live in their own packages.
package cli
