// Package template ties transform bindings to the lifecycle of the template
// instance that declared them. A Scope owns every binding created through it
// and tears them all down, exactly once each, when the instance goes away.
package template

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/pipe_ive_go/transform"
)

// ErrScopeTornDown is returned when a destroyed scope creates a binding.
var ErrScopeTornDown = errors.New("template: scope has been torn down")

// Option configures a scope at construction.
type Option func(*Scope)

// WithLogger replaces the scope's no-op logger. Bindings created through the
// scope inherit it.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scope) { s.logger = logger }
}

// WithObserver attaches an evaluation observer to every binding the scope
// creates.
func WithObserver(obs transform.Observer) Option {
	return func(s *Scope) { s.observer = obs }
}

// IMPORTANT:
// A Scope is **intentionally NOT thread-safe**.
//
// It assumes single-goroutine ownership, mirroring the bindings it hands out:
// binding setup and teardown are driven synchronously by the owning template
// instance. Sharing a scope across goroutines leads to undefined behavior.
type Scope struct {
	id       string
	registry *transform.Registry
	logger   *zap.Logger
	observer transform.Observer
	bindings []*transform.Binding
	torndown bool
}

// NewScope creates a scope resolving names against reg.
func NewScope(reg *transform.Registry, opts ...Option) *Scope {
	s := &Scope{
		id:       uuid.New().String(),
		registry: reg,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger.Debug("template scope created", zap.String("scopeId", s.id))
	return s
}

// ID returns the scope's unique identifier.
func (s *Scope) ID() string { return s.id }

// Bind constructs a binding for name with a fixed extra-argument count and
// takes ownership of its teardown. Resolution failures surface immediately.
func (s *Scope) Bind(name string, numArgs int) (*transform.Binding, error) {
	if s.torndown {
		return nil, ErrScopeTornDown
	}

	opts := []transform.BindingOption{transform.WithLogger(s.logger)}
	if s.observer != nil {
		opts = append(opts, transform.WithObserver(s.observer))
	}

	b, err := transform.NewBinding(s.registry, name, numArgs, opts...)
	if err != nil {
		return nil, err
	}
	s.bindings = append(s.bindings, b)
	return b, nil
}

// Teardown destroys every owned binding in reverse creation order.
// Safe to call more than once; each binding is torn down exactly once.
func (s *Scope) Teardown() {
	if s.torndown {
		return
	}
	s.torndown = true

	for i := len(s.bindings) - 1; i >= 0; i-- {
		s.bindings[i].Teardown()
	}
	s.logger.Debug("template scope torn down",
		zap.String("scopeId", s.id),
		zap.Int("bindings", len(s.bindings)),
	)
	s.bindings = nil
}
