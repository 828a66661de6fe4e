// Package mode decides whether dark mode is active for a run.
//
// The reference decision is IsDarkModeEnabled, a constant false. Callers
// that want real detection compose Detectors into a Chain, which still
// falls back to the reference decision when no detector answers.
package mode

// Resolver is the single decision point for dark mode.
type Resolver interface {
	DarkModeEnabled() bool
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func() bool

// DarkModeEnabled calls f.
func (f ResolverFunc) DarkModeEnabled() bool { return f() }

// IsDarkModeEnabled is the built-in decision. Replace the Resolver, not
// this function, to change behavior.
func IsDarkModeEnabled() bool {
	return false
}

// Default returns IsDarkModeEnabled as a Resolver.
func Default() Resolver {
	return ResolverFunc(IsDarkModeEnabled)
}

// Static returns a Resolver that always answers dark.
func Static(dark bool) Resolver {
	return ResolverFunc(func() bool { return dark })
}
