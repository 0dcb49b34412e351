package substituter

import (
	"strings"

	"github.com/totegamma/allowme/core"
)

// Built-in variables understood by the default substituter.
// Variable names are case-sensitive.
const (
	AnyVariable       = "{{any}}"
	IdentityVariable  = "{{identity}}"
	OperationVariable = "{{operation}}"
)

type defaultSubstituter[C any] struct{}

// NewDefault creates the built-in substituter. It resolves {{any}} to the
// concrete value of the field being matched, {{identity}} to the request
// identity and {{operation}} to the request operation. Variables it does not
// recognize are left in place so that custom substituters can be layered on
// top of identity patterns.
func NewDefault[C any]() core.Substituter[C] {
	return &defaultSubstituter[C]{}
}

func (s *defaultSubstituter[C]) Identity(request *core.Request[C], pattern string) (string, error) {
	return resolve(pattern, func(variable string) (string, bool) {
		switch variable {
		case AnyVariable, IdentityVariable:
			return request.Identity(), true
		}
		return "", false
	}), nil
}

func (s *defaultSubstituter[C]) Operation(request *core.Request[C], pattern string) (string, error) {
	return resolve(pattern, func(variable string) (string, bool) {
		switch variable {
		case AnyVariable, OperationVariable:
			return request.Operation(), true
		case IdentityVariable:
			return request.Identity(), true
		}
		return "", false
	}), nil
}

func (s *defaultSubstituter[C]) Resource(request *core.Request[C], pattern string) (string, error) {
	return resolve(pattern, func(variable string) (string, bool) {
		switch variable {
		case AnyVariable:
			return request.Resource(), true
		case IdentityVariable:
			return request.Identity(), true
		case OperationVariable:
			return request.Operation(), true
		}
		return "", false
	}), nil
}

// resolve replaces every variable the lookup recognizes with its value.
func resolve(pattern string, lookup func(variable string) (string, bool)) string {
	result := pattern
	it := NewVariableIter(pattern)
	for {
		variable, ok := it.Next()
		if !ok {
			break
		}
		if value, found := lookup(variable); found {
			result = strings.ReplaceAll(result, variable, value)
		}
	}
	return result
}
