package template

import (
	"context"
	"errors"

	"github.com/on-the-ground/pipe_ive_go/shared/helper"
	"github.com/on-the-ground/pipe_ive_go/transform"
)

type scopeKey string

const templateScopeKey scopeKey = "pipe_ive_go_template_scope"

// ErrNoScope is returned when a context carries no template scope.
var ErrNoScope = errors.New("template: no scope in context")

// WithScope installs a new scope in the context.
//
//   - Returns a context carrying the scope.
//   - Returns a teardown function that destroys the scope and hands back the
//     parent context.
//   - The teardown function should be called when the template instance is
//     destroyed. Calling it early tears every binding down; use the context
//     it returns for further operations.
func WithScope(
	ctx context.Context,
	reg *transform.Registry,
	opts ...Option,
) (context.Context, func() context.Context) {
	scope := NewScope(reg, opts...)
	ctxWith := context.WithValue(ctx, templateScopeKey, scope)
	return ctxWith, func() context.Context {
		scope.Teardown()
		return ctx
	}
}

// FromContext retrieves the scope installed by WithScope.
func FromContext(ctx context.Context) (*Scope, error) {
	scope, ok := helper.GetTypedValueOf2[*Scope](func() (any, bool) {
		raw := ctx.Value(templateScopeKey)
		return raw, raw != nil
	})
	if !ok {
		return nil, ErrNoScope
	}
	return scope, nil
}

// MustFromContext is the panic-on-failure variant of FromContext.
func MustFromContext(ctx context.Context) *Scope {
	return helper.MustGetTypedValue[*Scope](func() (any, error) {
		return FromContext(ctx)
	})
}
