package validator

import (
	"github.com/pkg/errors"

	"github.com/totegamma/allowme/core"
)

type defaultValidator struct{}

// NewDefault creates the built-in validator. It rejects statements with an
// unrecognized effect or with empty identity, operation or resource pattern
// lists.
func NewDefault() core.Validator {
	return &defaultValidator{}
}

func (v *defaultValidator) Validate(statement core.Statement) error {
	if _, ok := core.ParseEffect(string(statement.Effect)); !ok {
		return errors.Errorf("unrecognized effect %q", statement.Effect)
	}
	if len(statement.Identities) == 0 {
		return errors.New("identities must not be empty")
	}
	if len(statement.Operations) == 0 {
		return errors.New("operations must not be empty")
	}
	if len(statement.Resources) == 0 {
		return errors.New("resources must not be empty")
	}
	return nil
}
