package printf

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const specifiers = "bcdeEfFgGosuxX"

// directive is a single parsed conversion such as "%2$-'*10.3f".
type directive struct {
	argnum    int // 1-based, 0 means "next sequential argument"
	left      bool
	plus      bool
	pad       rune
	width     int
	precision int // -1 when absent
	verb      byte
}

// Sprintf formats args according to format.
// Each directive is formatted independently; the first malformed directive
// or missing argument aborts formatting with an error.
func Sprintf(format string, args ...any) (string, error) {
	var sb strings.Builder
	sb.Grow(len(format))

	next := 0
	for i := 0; i < len(format); {
		pos := strings.IndexByte(format[i:], '%')
		if pos < 0 {
			sb.WriteString(format[i:])
			break
		}
		sb.WriteString(format[i : i+pos])
		i += pos

		if i+1 < len(format) && format[i+1] == '%' {
			sb.WriteByte('%')
			i += 2
			continue
		}

		d, n, err := parseDirective(format[i+1:])
		if err != nil {
			return "", err
		}
		i += 1 + n

		idx := d.argnum - 1
		if d.argnum == 0 {
			idx = next
			next++
		}
		if idx >= len(args) {
			return "", fmt.Errorf("%w: %d given, argument %d referenced", ErrTooFewArguments, len(args), idx+1)
		}

		sb.WriteString(d.format(args[idx]))
	}

	return sb.String(), nil
}

// MustSprintf is like Sprintf but panics on a malformed format.
func MustSprintf(format string, args ...any) string {
	out, err := Sprintf(format, args...)
	if err != nil {
		panic(err)
	}
	return out
}

// parseDirective parses the directive following a '%' and returns it with
// the number of bytes consumed.
func parseDirective(s string) (directive, int, error) {
	d := directive{pad: ' ', precision: -1}
	i := 0

	j := scanDigits(s, i)
	if j > i && j < len(s) && s[j] == '$' {
		n, _ := strconv.Atoi(s[i:j])
		if n == 0 {
			return d, 0, ErrArgumentIndex
		}
		d.argnum = n
		i = j + 1
	}

flags:
	for i < len(s) {
		switch s[i] {
		case '-':
			d.left = true
			i++
		case '+':
			d.plus = true
			i++
		case '0':
			d.pad = '0'
			i++
		case ' ':
			d.pad = ' '
			i++
		case '\'':
			if i+1 >= len(s) {
				return d, 0, ErrIncompleteDirective
			}
			r, size := utf8.DecodeRuneInString(s[i+1:])
			d.pad = r
			i += 1 + size
		default:
			break flags
		}
	}

	if j = scanDigits(s, i); j > i {
		d.width, _ = strconv.Atoi(s[i:j])
		i = j
	}

	if i < len(s) && s[i] == '.' {
		i++
		d.precision = 0
		if j = scanDigits(s, i); j > i {
			d.precision, _ = strconv.Atoi(s[i:j])
		}
		i = j
	}

	if i >= len(s) {
		return d, 0, ErrIncompleteDirective
	}
	d.verb = s[i]
	if strings.IndexByte(specifiers, d.verb) < 0 {
		return d, 0, fmt.Errorf("%w: %q", ErrUnknownSpecifier, rune(d.verb))
	}

	return d, i + 1, nil
}

func scanDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

func (d directive) format(arg any) string {
	switch d.verb {
	case 's':
		s := toString(arg)
		if d.precision >= 0 && utf8.RuneCountInString(s) > d.precision {
			s = string([]rune(s)[:d.precision])
		}
		return d.justify(s, false)
	case 'd':
		n := toInt(arg)
		s := strconv.FormatInt(n, 10)
		if d.plus && n >= 0 {
			s = "+" + s
		}
		return d.justify(s, true)
	case 'u':
		return d.justify(strconv.FormatUint(uint64(toInt(arg)), 10), true)
	case 'c':
		return string([]byte{byte(toInt(arg))})
	case 'b':
		return d.justify(strconv.FormatUint(uint64(toInt(arg)), 2), true)
	case 'o':
		return d.justify(strconv.FormatUint(uint64(toInt(arg)), 8), true)
	case 'x':
		return d.justify(strconv.FormatUint(uint64(toInt(arg)), 16), true)
	case 'X':
		return d.justify(strings.ToUpper(strconv.FormatUint(uint64(toInt(arg)), 16)), true)
	}

	// floating point: e E f F g G
	f := toFloat(arg)
	prec := d.precision
	if prec < 0 {
		prec = 6
	}

	var s string
	switch d.verb {
	case 'e', 'E':
		s = shortExponent(strconv.FormatFloat(f, 'e', prec, 64))
	case 'g', 'G':
		s = shortExponent(strconv.FormatFloat(f, 'g', prec, 64))
	default:
		s = strconv.FormatFloat(f, 'f', prec, 64)
	}
	if d.verb == 'E' || d.verb == 'G' {
		s = strings.ToUpper(s)
	}
	if d.plus && f >= 0 {
		s = "+" + s
	}
	return d.justify(s, true)
}

// justify pads s to the directive width. Zero padding of a signed number is
// inserted after the sign.
func (d directive) justify(s string, numeric bool) string {
	n := utf8.RuneCountInString(s)
	if d.width <= n {
		return s
	}
	fill := strings.Repeat(string(d.pad), d.width-n)

	if d.left {
		return s + fill
	}
	if numeric && d.pad == '0' && s != "" && (s[0] == '-' || s[0] == '+') {
		return s[:1] + fill + s[1:]
	}
	return fill + s
}

// shortExponent drops leading zeros from the exponent: "1.5e+01" becomes "1.5e+1".
func shortExponent(s string) string {
	idx := strings.IndexAny(s, "eE")
	if idx < 0 || idx+2 >= len(s) {
		return s
	}
	digits := strings.TrimLeft(s[idx+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:idx+2] + digits
}
