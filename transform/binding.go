package transform

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/pipe_ive_go/pure"
)

// Observer receives one notification per binding evaluation.
// Implementations must not block: they are called on the evaluation path.
type Observer interface {
	ObserveEvaluation(Evaluation)
}

// Evaluation describes the outcome of a single Evaluate call.
type Evaluation struct {
	BindingID string
	Transform string
	Pure      bool
	// CacheHit is true when the memoized result was returned without
	// invoking the transform instance.
	CacheHit bool
}

// BindingOption configures a binding at construction.
type BindingOption func(*Binding)

// WithObserver attaches an evaluation observer to the binding.
func WithObserver(obs Observer) BindingOption {
	return func(b *Binding) { b.obs = obs }
}

// WithLogger replaces the binding's no-op logger.
func WithLogger(logger *zap.Logger) BindingOption {
	return func(b *Binding) { b.logger = logger }
}

// IMPORTANT:
// A Binding is **intentionally NOT thread-safe**.
//
// Evaluations are driven synchronously by a single owner (an evaluation pass)
// and never overlap for the same binding, so the memo needs no synchronization.
// Sharing a binding across goroutines without external coordination leads to
// undefined behavior.
type Binding struct {
	id      string
	name    string
	pure    bool
	numArgs int
	// tail holds the defaulted trailing arguments, resolved once at
	// construction, not at each call.
	tail []any
	inst Transform

	obs    Observer
	logger *zap.Logger

	hasMemo  bool
	memoArgs []any
	memoVal  any

	torndown bool
}

// NewBinding resolves name in the registry and constructs a binding with a
// fixed extra-argument count. An unknown name or an out-of-signature count is
// a fatal construction error: the binding is never created.
func NewBinding(reg *Registry, name string, numArgs int, opts ...BindingOption) (*Binding, error) {
	spec, ok := reg.Lookup(name)
	if !ok {
		return nil, UnknownTransformError{Name: name}
	}
	if numArgs < spec.requiredArgs() || numArgs > spec.MaxArgs {
		return nil, ArityError{Name: name, Got: numArgs, Min: spec.requiredArgs(), Max: spec.MaxArgs}
	}

	var tail []any
	if omitted := spec.MaxArgs - numArgs; omitted > 0 {
		tail = make([]any, omitted)
		copy(tail, spec.Defaults[len(spec.Defaults)-omitted:])
	}

	b := &Binding{
		id:      uuid.New().String(),
		name:    spec.Name,
		pure:    spec.Pure,
		numArgs: numArgs,
		tail:    tail,
		inst:    spec.New(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.logger.Debug("transform binding created",
		zap.String("bindingId", b.id),
		zap.String("transform", b.name),
		zap.Bool("pure", b.pure),
		zap.Int("numArgs", b.numArgs),
	)
	return b, nil
}

// ID returns the binding's unique identifier.
func (b *Binding) ID() string { return b.id }

// Name returns the registered transform name the binding resolved.
func (b *Binding) Name() string { return b.name }

// Pure reports whether the binding memoizes results.
func (b *Binding) Pure() bool { return b.pure }

// Evaluate applies the transform to value and the given extra arguments.
//
// An impure binding invokes its instance every time, even within what an
// external scheduler considers a single pass. A pure binding returns its
// memoized result while every argument is identical to the stored snapshot;
// otherwise it invokes the instance and overwrites the snapshot. Errors from
// the instance pass through unmodified and are never memoized.
func (b *Binding) Evaluate(value any, args ...any) (any, error) {
	if b.torndown {
		return nil, ErrBindingTornDown
	}
	if len(args) != b.numArgs {
		return nil, ArityError{Name: b.name, Got: len(args), Min: b.numArgs, Max: b.numArgs}
	}

	snapshot := make([]any, 0, 1+len(args))
	snapshot = append(snapshot, value)
	snapshot = append(snapshot, args...)

	if b.pure && b.hasMemo && pure.IdenticalArgs(b.memoArgs, snapshot) {
		b.observe(true)
		return b.memoVal, nil
	}

	full := make([]any, 0, len(args)+len(b.tail))
	full = append(full, args...)
	full = append(full, b.tail...)

	out, err := b.inst.Transform(value, full...)
	b.observe(false)
	if err != nil {
		return nil, err
	}

	if b.pure {
		b.memoArgs = snapshot
		b.memoVal = out
		b.hasMemo = true
	}
	return out, nil
}

// Teardown destroys the binding: the memo is discarded and the instance's
// teardown hook, if any, fires exactly once. Safe to call more than once.
func (b *Binding) Teardown() {
	if b.torndown {
		return
	}
	b.torndown = true
	b.hasMemo = false
	b.memoArgs = nil
	b.memoVal = nil

	if hook, ok := b.inst.(TeardownHook); ok {
		hook.Teardown()
	}
	b.logger.Debug("transform binding torn down",
		zap.String("bindingId", b.id),
		zap.String("transform", b.name),
	)
}

func (b *Binding) observe(hit bool) {
	if b.obs == nil {
		return
	}
	b.obs.ObserveEvaluation(Evaluation{
		BindingID: b.id,
		Transform: b.name,
		Pure:      b.pure,
		CacheHit:  hit,
	})
}
