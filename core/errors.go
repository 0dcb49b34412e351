package core

import "fmt"

// ErrorParse means the policy source text is not a well-formed document.
type ErrorParse struct {
	Err error
}

func (e ErrorParse) Error() string {
	return fmt.Sprintf("failed to parse policy source: %v", e.Err)
}

func (e ErrorParse) Unwrap() error {
	return e.Err
}

func NewErrorParse(err error) ErrorParse {
	return ErrorParse{Err: err}
}

// ErrorValidation means a statement was rejected by the validator.
// Index is the statement's position in the source document.
type ErrorValidation struct {
	Index int
	Err   error
}

func (e ErrorValidation) Error() string {
	return fmt.Sprintf("statement %d is invalid: %v", e.Index, e.Err)
}

func (e ErrorValidation) Unwrap() error {
	return e.Err
}

func NewErrorValidation(index int, err error) ErrorValidation {
	return ErrorValidation{Index: index, Err: err}
}

// ErrorBadRequest means a request was constructed with an empty field.
type ErrorBadRequest struct {
	Field string
}

func (e ErrorBadRequest) Error() string {
	return fmt.Sprintf("%s must be specified", e.Field)
}

func NewErrorBadRequest(field string) ErrorBadRequest {
	return ErrorBadRequest{Field: field}
}

// ErrorSubstitution means a substituter could not resolve a variable,
// e.g. because the request carries no context for it.
type ErrorSubstitution struct {
	Pattern  string
	Variable string
}

func (e ErrorSubstitution) Error() string {
	return fmt.Sprintf("failed to resolve %s in pattern %q", e.Variable, e.Pattern)
}

func NewErrorSubstitution(pattern, variable string) ErrorSubstitution {
	return ErrorSubstitution{Pattern: pattern, Variable: variable}
}

// ErrorMatch means a matcher failed while comparing a value to a pattern.
type ErrorMatch struct {
	Pattern string
	Err     error
}

func (e ErrorMatch) Error() string {
	return fmt.Sprintf("failed to match against pattern %q: %v", e.Pattern, e.Err)
}

func (e ErrorMatch) Unwrap() error {
	return e.Err
}

func NewErrorMatch(pattern string, err error) ErrorMatch {
	return ErrorMatch{Pattern: pattern, Err: err}
}
