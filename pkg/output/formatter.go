package output

import "fmt"

// Supported format names.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case FormatText:
		return NewTextFormatter(opts), nil
	case FormatJSON:
		return NewJSONFormatter(opts), nil
	default:
		return nil, CheckFormat(name)
	}
}

// CheckFormat reports an error unless name is a supported format.
func CheckFormat(name string) error {
	switch name {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (use %s or %s)", name, FormatText, FormatJSON)
	}
}
