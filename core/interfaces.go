package core

// Matcher decides whether a concrete request value satisfies a pattern.
// The pattern has already been through the substituter when the matcher is
// consulted. Implementations must be safe for concurrent use.
type Matcher[C any] interface {
	Match(request *Request[C], value string, pattern string) (bool, error)
}

// Substituter resolves {{variable}} tokens in a pattern before matching.
// It is consulted once per field: Identity for identity patterns, Operation
// for operation patterns, Resource for resource patterns. Variables the
// implementation does not recognize must be left in place.
// Implementations must be safe for concurrent use.
type Substituter[C any] interface {
	Identity(request *Request[C], pattern string) (string, error)
	Operation(request *Request[C], pattern string) (string, error)
	Resource(request *Request[C], pattern string) (string, error)
}

// Validator checks a parsed statement for structural well-formedness before
// it is accepted into a policy. It runs once per statement at build time.
type Validator interface {
	Validate(statement Statement) error
}
