package printf_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/flashbag/pkg/printf"
)

type label string

func (l label) String() string { return "label:" + string(l) }

func TestSprintf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{name: "no directives", format: "plain text", want: "plain text"},
		{name: "sequential strings", format: "Hello %s and %s", args: []any{"Ann", "Bob"}, want: "Hello Ann and Bob"},
		{name: "positional", format: "%2$s %1$s", args: []any{"world", "hello"}, want: "hello world"},
		{name: "positional reuse", format: "%1$s-%1$s", args: []any{"x"}, want: "x-x"},
		{name: "positional does not advance cursor", format: "%2$s %s %s", args: []any{"a", "b"}, want: "b a b"},
		{name: "default notification template", format: `<p class="%2$s %3$s">%1$s</p>`, args: []any{"Saved", "default", "info"}, want: `<p class="default info">Saved</p>`},
		{name: "literal percent", format: "100%% done", want: "100% done"},
		{name: "integer", format: "%d items", args: []any{42}, want: "42 items"},
		{name: "integer from string", format: "%d", args: []any{"17 apples"}, want: "17"},
		{name: "integer from float truncates", format: "%d", args: []any{3.9}, want: "3"},
		{name: "non numeric string is zero", format: "%d", args: []any{"abc"}, want: "0"},
		{name: "plus sign", format: "%+d/%+d", args: []any{5, -5}, want: "+5/-5"},
		{name: "zero padding", format: "%05d", args: []any{42}, want: "00042"},
		{name: "zero padding keeps sign first", format: "%05d", args: []any{-42}, want: "-0042"},
		{name: "width right justified", format: "[%6s]", args: []any{"ab"}, want: "[    ab]"},
		{name: "width left justified", format: "[%-6s]", args: []any{"ab"}, want: "[ab    ]"},
		{name: "custom padding", format: "[%'*6s]", args: []any{"ab"}, want: "[****ab]"},
		{name: "string precision truncates", format: "%.3s", args: []any{"abcdef"}, want: "abc"},
		{name: "float default precision", format: "%f", args: []any{1.5}, want: "1.500000"},
		{name: "float precision", format: "%.2f", args: []any{3.14159}, want: "3.14"},
		{name: "float from string", format: "%.1F", args: []any{"2.26"}, want: "2.3"},
		{name: "scientific", format: "%.2e", args: []any{12345.678}, want: "1.23e+4"},
		{name: "scientific upper", format: "%.1E", args: []any{0.00012}, want: "1.2E-4"},
		{name: "unsigned", format: "%u", args: []any{7}, want: "7"},
		{name: "binary", format: "%b", args: []any{5}, want: "101"},
		{name: "octal", format: "%o", args: []any{8}, want: "10"},
		{name: "hex", format: "%x/%X", args: []any{255, 255}, want: "ff/FF"},
		{name: "char", format: "%c%c", args: []any{72, 105}, want: "Hi"},
		{name: "char keeps the low byte", format: "%c", args: []any{256 + 65}, want: "A"},
		{name: "bool as string", format: "[%s][%s]", args: []any{true, false}, want: "[1][]"},
		{name: "nil as string", format: "[%s]", args: []any{nil}, want: "[]"},
		{name: "stringer", format: "%s", args: []any{label("x")}, want: "label:x"},
		{name: "error value", format: "%s", args: []any{errors.New("boom")}, want: "boom"},
		{name: "integer as string", format: "%s", args: []any{12}, want: "12"},
		{name: "float as string", format: "%s", args: []any{1.25}, want: "1.25"},
		{name: "whole float as string", format: "%s", args: []any{3.0}, want: "3"},
		{name: "float as string keeps 14 digits", format: "%s", args: []any{1.0 / 3}, want: "0.33333333333333"},
		{name: "float as string rounds to 14 digits", format: "%s", args: []any{123456789.12345678}, want: "123456789.12346"},
		{name: "large float as string", format: "%s", args: []any{1e25}, want: "1.0E+25"},
		{name: "small float as string", format: "%s", args: []any{0.00001}, want: "1.0E-5"},
		{name: "small float as string without exponent", format: "%s", args: []any{0.0001}, want: "0.0001"},
		{name: "infinite float as string", format: "%s", args: []any{math.Inf(1)}, want: "INF"},
		{name: "extra arguments ignored", format: "%s", args: []any{"a", "b"}, want: "a"},
		{name: "multibyte text", format: "%s ✓", args: []any{"готово"}, want: "готово ✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := printf.Sprintf(tt.format, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSprintf_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		args    []any
		wantErr error
	}{
		{name: "missing sequential argument", format: "%s %s", args: []any{"a"}, wantErr: printf.ErrTooFewArguments},
		{name: "missing positional argument", format: "%3$s", args: []any{"a", "b"}, wantErr: printf.ErrTooFewArguments},
		{name: "zero positional argument", format: "%0$s", args: []any{"a"}, wantErr: printf.ErrArgumentIndex},
		{name: "unknown specifier", format: "%y", args: []any{"a"}, wantErr: printf.ErrUnknownSpecifier},
		{name: "trailing percent", format: "100%", wantErr: printf.ErrIncompleteDirective},
		{name: "dangling padding flag", format: "%'", wantErr: printf.ErrIncompleteDirective},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := printf.Sprintf(tt.format, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, got)
		})
	}
}

func TestMustSprintf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a=1", printf.MustSprintf("%s=%d", "a", 1))
	assert.Panics(t, func() {
		printf.MustSprintf("%s")
	})
}
