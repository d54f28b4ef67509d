// Package registry holds the in-memory list of configured advisor instances
// and resolves which one a command targets. The registry is built once at
// startup from the config file and is never mutated afterwards.
package registry
