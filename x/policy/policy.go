package policy

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/totegamma/allowme/core"
)

// Policy is an ordered set of statements plus a default decision and the
// strategies resolved at build time. A built policy is immutable and safe
// for unlimited concurrent Evaluate calls. To change rules, build a new
// policy.
type Policy[C any] struct {
	id              string
	statements      []core.Statement
	defaultDecision core.Decision
	matcher         core.Matcher[C]
	substituter     core.Substituter[C]
}

// ID is a unique identifier assigned at build time, attached to trace spans.
func (p *Policy[C]) ID() string {
	return p.id
}

// DefaultDecision is the decision returned when no statement matches.
func (p *Policy[C]) DefaultDecision() core.Decision {
	return p.defaultDecision
}

// Statements returns a copy of the policy's statements in evaluation order.
func (p *Policy[C]) Statements() []core.Statement {
	statements := make([]core.Statement, len(p.statements))
	copy(statements, p.statements)
	return statements
}

// Evaluate walks the statements in order and returns the effect of the first
// statement whose identity, operation and resource patterns all match the
// request. If no statement matches, the default decision is returned. If the
// substituter or matcher fails, the error is returned and no decision is
// produced.
func (p *Policy[C]) Evaluate(ctx context.Context, request *core.Request[C]) (core.Decision, error) {
	ctx, span := tracer.Start(ctx, "Policy.Evaluate")
	defer span.End()

	span.SetAttributes(
		attribute.String("policy.id", p.id),
		attribute.String("request.identity", request.Identity()),
		attribute.String("request.operation", request.Operation()),
		attribute.String("request.resource", request.Resource()),
	)

	for i, statement := range p.statements {
		matched, err := p.matchStatement(request, statement)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return "", err
		}
		if matched {
			decision := statement.Effect.Decision()
			span.SetAttributes(
				attribute.Int("policy.statement", i),
				attribute.String("policy.decision", string(decision)),
			)
			return decision, nil
		}
	}

	span.SetAttributes(attribute.String("policy.decision", string(p.defaultDecision)))
	return p.defaultDecision, nil
}

// matchStatement reports whether all three fields of the request match the
// statement. Identity, operation and resource all go through the same
// substitute-then-match pipeline.
func (p *Policy[C]) matchStatement(request *core.Request[C], statement core.Statement) (bool, error) {
	matched, err := p.matchAny(request, statement.Identities, p.substituter.Identity, request.Identity())
	if err != nil || !matched {
		return false, err
	}

	matched, err = p.matchAny(request, statement.Operations, p.substituter.Operation, request.Operation())
	if err != nil || !matched {
		return false, err
	}

	return p.matchAny(request, statement.Resources, p.substituter.Resource, request.Resource())
}

func (p *Policy[C]) matchAny(
	request *core.Request[C],
	patterns []string,
	substitute func(*core.Request[C], string) (string, error),
	value string,
) (bool, error) {
	for _, pattern := range patterns {
		resolved, err := substitute(request, pattern)
		if err != nil {
			return false, err
		}

		matched, err := p.matcher.Match(request, value, resolved)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
