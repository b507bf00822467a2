// Package printf implements printf-style formatting with explicit positional
// argument references, as used by flash notification templates.
//
// Go's fmt package addresses arguments with %[n]verb and reports mistakes
// inline (for example "%!s(MISSING)"). Notification templates are usually
// authored outside Go code and follow the classic %n$s convention, so this
// package accepts that syntax and reports malformed templates as errors.
//
// # Directive syntax
//
//	%[argnum$][flags][width][.precision]specifier
//
//   - argnum: 1-based argument index followed by "$". Positional references do
//     not advance the sequential argument cursor.
//   - flags: "-" (left-justify), "+" (always print sign), " " or "0"
//     (padding character), "'c" (use c as padding character).
//   - width: minimum output width in characters.
//   - precision: digits after the decimal point for floats, maximum length
//     for strings.
//   - specifier: b c d e E f F g G o s u x X, or "%%" for a literal percent.
//
// Arguments are coerced to the type the specifier needs: numeric strings are
// accepted by %d and %f, any value is accepted by %s. %c writes the low byte
// of its integer argument, not a UTF-8 encoded rune. %s prints floats with 14
// significant digits, switching to exponent form ("1.0E+25") for very large
// or small values.
//
// # Usage
//
//	out, err := printf.Sprintf(`<p class="%2$s %3$s">%1$s</p>`, "Saved", "default", "info")
//	// out == `<p class="default info">Saved</p>`
//
// # Error Handling
//
//   - ErrTooFewArguments: a directive references a missing argument.
//   - ErrArgumentIndex: a positional reference is zero.
//   - ErrUnknownSpecifier: the directive ends with an unsupported specifier.
//   - ErrIncompleteDirective: the format ends in the middle of a directive.
package printf
