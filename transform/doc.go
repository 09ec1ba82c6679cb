// Package transform implements named value transforms and the per-binding
// evaluation cache that bounds how often they run.
//
// # Registry
//
// Transforms are registered by name in a Registry during setup. Registration
// is last-write-wins: a later Spec under the same name fully replaces the
// earlier one for all subsequent lookups. After setup the registry is
// read-mostly; bindings resolve their transform once, at construction time.
//
// # Bindings
//
// A Binding is one occurrence of a named transform with a fixed argument
// count. Construction fails immediately when the name is unknown or the
// declared count falls outside the transform's signature — a binding that
// cannot resolve its transform can never be evaluated. Omitted trailing
// arguments are filled with the signature's declared defaults, resolved once
// at construction, not at each call.
//
// # Purity
//
// A pure binding memoizes its last result together with the argument
// snapshot that produced it. The result is reused if and only if every
// argument — base value and extras — is identical (reference or primitive
// equality, never deep equality) to the snapshot; any single differing
// argument invalidates the whole entry. An impure binding invokes its
// instance on every evaluation and holds no cache at all.
//
// # Lifecycle
//
// Every binding exclusively owns its transform instance. Tearing a binding
// down discards the memo and fires the instance's teardown hook exactly
// once; further evaluations fail with ErrBindingTornDown.
package transform
