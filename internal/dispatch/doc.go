// Package dispatch maps a resolved instance and a Command onto a concrete
// network operation. The mapping is total over the command variants: every
// case is handled, and variants without a wired endpoint fail fast with
// ErrUnsupportedCommand instead of silently doing nothing.
package dispatch
