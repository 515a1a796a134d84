package assets

// StyleLoader loads a CSS stylesheet by name (without the .css extension).
// Implementations return ErrStyleNotFound for unknown names and
// ErrInvalidStyleName for names with path components.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}

// DefaultStyle is the style used when none is configured.
const DefaultStyle = "letter"

// NoStyle disables the stylesheet.
const NoStyle = "none"
