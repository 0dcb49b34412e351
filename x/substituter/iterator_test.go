package substituter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariableIter(t *testing.T) {
	cases := []struct {
		input    string
		expected []string
	}{
		{"{{any}}", []string{"{{any}}"}},
		{"/home/{{identity}}/", []string{"{{identity}}"}},
		{"home/{{identity}}/middle/{{operation}}/last", []string{"{{identity}}", "{{operation}}"}},
		{"prefix-{{identity}}-contains-{{identity}}-suffix", []string{"{{identity}}", "{{identity}}"}},
		{"no variables here", nil},
		{"", nil},
		{"{{unterminated", nil},
		// a closing "}}" before any "{{" terminates the scan
		{"}}{{reversed}}", nil},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, Variables(tc.input), tc.input)
	}
}

func TestVariableIterReset(t *testing.T) {
	it := NewVariableIter("{{a}}/{{b}}")

	first, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, "{{a}}", first)

	it.Reset()

	first, ok = it.Next()
	assert.True(t, ok)
	assert.Equal(t, "{{a}}", first)

	second, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, "{{b}}", second)

	_, ok = it.Next()
	assert.False(t, ok)
}

// The lexer must terminate on arbitrary brace soup.
func TestVariableIterDoesNotHang(t *testing.T) {
	inputs := []string{
		"{{{{}}}}",
		"{}{}{}",
		strings.Repeat("{{", 100),
		strings.Repeat("}}", 100),
		strings.Repeat("{{x}}", 100),
	}

	for _, input := range inputs {
		it := NewVariableIter(input)
		count := 0
		for {
			_, ok := it.Next()
			if !ok {
				break
			}
			count++
			assert.LessOrEqual(t, count, len(input))
		}
	}
}
