// Package surface declares the rendering-surface primitives a host provides to
// the carousel and hero components. A host may be a terminal, a browser bridge
// or a test fake; components only see these interfaces.
package surface

// Key is a navigation key delivered by the host.
type Key int

const (
	KeyOther Key = iota
	KeyArrowLeft
	KeyArrowRight
	KeyEnter
	KeySpace
)

// String returns the key's DOM-style name.
func (k Key) String() string {
	switch k {
	case KeyArrowLeft:
		return "ArrowLeft"
	case KeyArrowRight:
		return "ArrowRight"
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return " "
	default:
		return "Unidentified"
	}
}

// Document exposes page-level state that is not owned by any component.
type Document interface {
	// Hidden reports whether the page is currently not visible to the user.
	Hidden() bool
}

// Control is a navigation control that can be enabled or disabled.
type Control interface {
	SetDisabled(disabled bool)
}

// Toggle is an element with an "active" state (slides, dots).
type Toggle interface {
	SetActive(active bool)
}

// Progress is an indicator showing a fraction in [0, 1].
type Progress interface {
	SetFraction(f float64)
}

// StaticDocument is a Document whose visibility is set by its owner.
type StaticDocument struct {
	IsHidden bool
}

// Hidden implements Document.
func (d *StaticDocument) Hidden() bool { return d != nil && d.IsHidden }
