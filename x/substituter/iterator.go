package substituter

import "strings"

// VariableIter walks all occurrences of variable tokens like {{var_name}}
// in a pattern string. It is a pure lexer: it allocates nothing and never
// fails, whatever the input looks like.
type VariableIter struct {
	value string
	index int
}

func NewVariableIter(value string) *VariableIter {
	return &VariableIter{value: value}
}

// Next returns the next variable token, including the surrounding braces.
// The second return value is false once the pattern is exhausted.
func (it *VariableIter) Next() (string, bool) {
	value := it.value[it.index:]
	start := strings.Index(value, "{{")
	if start < 0 {
		return "", false
	}
	end := strings.Index(value, "}}")
	if end < 0 || end < start {
		return "", false
	}
	it.index += end + 2
	return value[start : end+2], true
}

// Reset rewinds the iterator to the beginning of the pattern.
func (it *VariableIter) Reset() {
	it.index = 0
}

// Variables collects every variable token found in the pattern.
func Variables(value string) []string {
	var variables []string
	it := NewVariableIter(value)
	for {
		variable, ok := it.Next()
		if !ok {
			break
		}
		variables = append(variables, variable)
	}
	return variables
}
