package policy

import (
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/allowme/core"
	"github.com/totegamma/allowme/x/matcher"
	"github.com/totegamma/allowme/x/substituter"
	"github.com/totegamma/allowme/x/validator"
)

var tracer = otel.Tracer("policy")

type sourceKind int

const (
	sourceAuto sourceKind = iota
	sourceJSON
	sourceYAML
	sourceStatements
)

// Builder assembles an immutable Policy from a policy definition.
// Strategies default to the exact matcher, the built-in substituter, the
// default validator, and a default decision of denied.
type Builder[C any] struct {
	source          string
	kind            sourceKind
	statements      []core.Statement
	matcher         core.Matcher[C]
	substituter     core.Substituter[C]
	validator       core.Validator
	defaultDecision core.Decision
}

func newBuilder[C any]() *Builder[C] {
	return &Builder[C]{
		matcher:         matcher.NewExact[C](),
		substituter:     substituter.NewDefault[C](),
		validator:       validator.NewDefault(),
		defaultDecision: core.DecisionDenied,
	}
}

// FromSource creates a builder from policy source text. JSON and YAML
// documents are both accepted; a document whose first character is '{' is
// treated as JSON.
func FromSource[C any](source string) *Builder[C] {
	b := newBuilder[C]()
	b.source = source
	b.kind = sourceAuto
	return b
}

// FromJSON creates a builder from a JSON policy document.
func FromJSON[C any](source string) *Builder[C] {
	b := newBuilder[C]()
	b.source = source
	b.kind = sourceJSON
	return b
}

// FromYAML creates a builder from a YAML policy document.
func FromYAML[C any](source string) *Builder[C] {
	b := newBuilder[C]()
	b.source = source
	b.kind = sourceYAML
	return b
}

// FromStatements creates a builder from an already-parsed statement list.
// The slice order is evaluation order.
func FromStatements[C any](statements []core.Statement) *Builder[C] {
	b := newBuilder[C]()
	b.statements = statements
	b.kind = sourceStatements
	return b
}

func (b *Builder[C]) WithMatcher(m core.Matcher[C]) *Builder[C] {
	b.matcher = m
	return b
}

func (b *Builder[C]) WithSubstituter(s core.Substituter[C]) *Builder[C] {
	b.substituter = s
	return b
}

func (b *Builder[C]) WithValidator(v core.Validator) *Builder[C] {
	b.validator = v
	return b
}

func (b *Builder[C]) WithDefaultDecision(decision core.Decision) *Builder[C] {
	b.defaultDecision = decision
	return b
}

// Build parses the source, validates every statement in document order, and
// returns the immutable policy. It fails fast: the first statement to fail
// validation aborts the build and no partial policy is returned. An empty
// statement list is accepted; such a policy always returns its default
// decision.
func (b *Builder[C]) Build() (*Policy[C], error) {
	statements := b.statements
	if b.kind != sourceStatements {
		var document Document
		var err error
		switch b.kind {
		case sourceJSON:
			document, err = decodeJSON(b.source)
		case sourceYAML:
			document, err = decodeYAML(b.source)
		default:
			document, err = decodeSource(b.source)
		}
		if err != nil {
			return nil, err
		}
		statements = document.Statements
	}

	normalized := make([]core.Statement, 0, len(statements))
	for i, statement := range statements {
		err := b.validator.Validate(statement)
		if err != nil {
			return nil, core.NewErrorValidation(i, err)
		}

		if effect, ok := core.ParseEffect(string(statement.Effect)); ok {
			statement.Effect = effect
		}
		normalized = append(normalized, statement)
	}

	return &Policy[C]{
		id:              xid.New().String(),
		statements:      normalized,
		defaultDecision: b.defaultDecision,
		matcher:         b.matcher,
		substituter:     b.substituter,
	}, nil
}
