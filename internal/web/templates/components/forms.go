package components

// Form names selectable on the roster page
const (
	FormAdd        = "add"
	FormPosition   = "position"
	FormSubstitute = "substitute"
)

// ValidForm reports whether name selects one of the roster forms
func ValidForm(name string) bool {
	switch name {
	case FormAdd, FormPosition, FormSubstitute:
		return true
	}
	return false
}
