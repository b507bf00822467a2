package printf

import "errors"

var (
	// ErrTooFewArguments is returned when a directive references an argument that was not supplied.
	ErrTooFewArguments = errors.New("printf: too few arguments")

	// ErrArgumentIndex is returned for a positional reference of zero.
	ErrArgumentIndex = errors.New("printf: argument number must be greater than zero")

	// ErrUnknownSpecifier is returned for an unsupported conversion specifier.
	ErrUnknownSpecifier = errors.New("printf: unknown format specifier")

	// ErrIncompleteDirective is returned when the format string ends inside a directive.
	ErrIncompleteDirective = errors.New("printf: incomplete format directive")
)
