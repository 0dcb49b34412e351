package matcher

import (
	"strings"

	"github.com/totegamma/allowme/core"
)

type exact[C any] struct{}

// NewExact creates the default matcher: the concrete value must equal the
// pattern after substitution.
func NewExact[C any]() core.Matcher[C] {
	return &exact[C]{}
}

func (m *exact[C]) Match(request *core.Request[C], value string, pattern string) (bool, error) {
	return value == pattern, nil
}

type prefix[C any] struct{}

// NewPrefix creates a "starts with" matcher: the concrete value matches if it
// begins with the pattern after substitution. Useful for hierarchical
// resources like /home/{{identity}}/.
func NewPrefix[C any]() core.Matcher[C] {
	return &prefix[C]{}
}

func (m *prefix[C]) Match(request *core.Request[C], value string, pattern string) (bool, error) {
	return strings.HasPrefix(value, pattern), nil
}
