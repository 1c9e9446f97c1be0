// Package visibility maps the caller's authentication state to the level of
// detail read endpoints may return.
package visibility

// Level orders callers by how much entity detail they may see.
type Level int

const (
	// Anonymous callers get the public projection only.
	Anonymous Level = iota
	// Authenticated callers get the standard projection.
	Authenticated
	// Admin callers get the full projection, inactive rows included.
	Admin
)

// String implements fmt.Stringer.
func (l Level) String() string {
	switch l {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	case Admin:
		return "admin"
	default:
		return "unknown"
	}
}

// FromCaller derives the level from the parsed token state.
func FromCaller(authenticated, isAdmin bool) Level {
	switch {
	case authenticated && isAdmin:
		return Admin
	case authenticated:
		return Authenticated
	default:
		return Anonymous
	}
}

// AtLeast reports whether the level grants the access of want.
func (l Level) AtLeast(want Level) bool {
	return l >= want
}
