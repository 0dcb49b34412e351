package core

import "strings"

// Effect is the outcome a statement assigns to the requests it matches.
type Effect string

const (
	EffectAllow Effect = "allow"
	EffectDeny  Effect = "deny"
)

// ParseEffect normalizes a raw effect value. Parsing is case-insensitive;
// the canonical form is lowercase.
func ParseEffect(value string) (Effect, bool) {
	switch strings.ToLower(value) {
	case "allow":
		return EffectAllow, true
	case "deny":
		return EffectDeny, true
	default:
		return "", false
	}
}

// Decision is the final outcome of evaluating a request against a policy.
type Decision string

const (
	DecisionAllowed Decision = "allowed"
	DecisionDenied  Decision = "denied"
)

// Decision returns the decision corresponding to the effect.
func (e Effect) Decision() Decision {
	if e == EffectAllow {
		return DecisionAllowed
	}
	return DecisionDenied
}

// Statement is a single allow/deny rule. Pattern entries may contain
// substitution variables like {{any}} or {{identity}}.
// The order of statements within a policy document is evaluation order.
type Statement struct {
	Effect      Effect   `json:"effect" yaml:"effect"`
	Identities  []string `json:"identities" yaml:"identities"`
	Operations  []string `json:"operations" yaml:"operations"`
	Resources   []string `json:"resources" yaml:"resources"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// Request is the input to policy evaluation: who wants to do what to which
// resource. C is a caller-defined context type threaded through to the
// configured substituter and matcher; the engine itself never looks inside it.
type Request[C any] struct {
	identity  string
	operation string
	resource  string
	context   *C
}

// NewRequest creates a request. Identity, operation and resource must all be
// non-empty.
func NewRequest[C any](identity, operation, resource string) (*Request[C], error) {
	if identity == "" {
		return nil, NewErrorBadRequest("identity")
	}
	if operation == "" {
		return nil, NewErrorBadRequest("operation")
	}
	if resource == "" {
		return nil, NewErrorBadRequest("resource")
	}
	return &Request[C]{
		identity:  identity,
		operation: operation,
		resource:  resource,
	}, nil
}

// NewRequestWithContext creates a request carrying a caller-defined context
// value for custom substituters and matchers.
func NewRequestWithContext[C any](identity, operation, resource string, rc C) (*Request[C], error) {
	request, err := NewRequest[C](identity, operation, resource)
	if err != nil {
		return nil, err
	}
	request.context = &rc
	return request, nil
}

func (r *Request[C]) Identity() string {
	return r.identity
}

func (r *Request[C]) Operation() string {
	return r.operation
}

func (r *Request[C]) Resource() string {
	return r.resource
}

// Context returns the caller-defined context value, if one was attached.
func (r *Request[C]) Context() (C, bool) {
	if r.context == nil {
		var zero C
		return zero, false
	}
	return *r.context, true
}
