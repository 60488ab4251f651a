package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "country code with dashes and parens", input: "1-(555)-123-4567", want: true},
		{name: "spaces", input: "555 123 4567", want: true},
		{name: "alphanumeric vanity number", input: "1-800-ABCDEFG", want: true},
		{name: "digits only", input: "5551234567", want: true},
		{name: "country code digits only", input: "15551234567", want: true},
		{name: "parens no separators", input: "(555)1234567", want: true},
		{name: "country code space", input: "1 555 123 4567", want: true},
		{name: "mixed separators", input: "555-123 4567", want: true},
		{name: "lowercase vanity", input: "800-flowers", want: true},

		{name: "dots", input: "1.123.123.1234", want: false},
		{name: "wrong grouping", input: "(123)-1234-123", want: false},
		{name: "missing area code", input: "123-1234", want: false},
		{name: "empty", input: "", want: false},
		{name: "leading whitespace", input: " 555 123 4567", want: false},
		{name: "trailing newline", input: "555 123 4567\n", want: false},
		{name: "trailing whitespace", input: "555 123 4567 ", want: false},
		{name: "double separator", input: "555--123-4567", want: false},
		{name: "unbalanced paren", input: "(555-123-4567", want: false},
		{name: "other country code", input: "2-555-123-4567", want: false},
		{name: "vanity with separator", input: "800-FLO-WERS", want: false},
		{name: "too long", input: "555-123-45678", want: false},
		{name: "extension", input: "555-123-4567 x12", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.input))
			assert.Equal(t, tt.want, NewUSMatcher().IsValid(tt.input))
		})
	}
}
