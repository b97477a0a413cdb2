// Package opcount configuration: functional options and sentinel
// errors for the delete-relaxation constraint generator.
package opcount

import "errors"

// Sentinel errors returned by NewGenerator.
var (
	// ErrNilTask indicates that a nil *task.Task was passed to NewGenerator.
	ErrNilTask = errors.New("opcount: task is nil")

	// ErrTimeVarsUnsupported indicates that WithTimeVars() was requested.
	// The timing-variable constraint family of the underlying theory is
	// intentionally unimplemented; the option fails fast instead of
	// silently building an incomplete model.
	ErrTimeVarsUnsupported = errors.New("opcount: time-step variables are not supported")
)

// Options configures the constraint generator.
//   - UseTimeVars: reserved; rejected by NewGenerator with
//     ErrTimeVarsUnsupported.
//   - UseIntegerVars: mark all auxiliary variables integral so a MIP
//     solver treats them as exact binaries; LP solvers keep the [0,1]
//     continuous relaxation either way.
//   - Verbose: attach debug labels to program columns and log build
//     statistics. Diagnostic only.
type Options struct {
	UseTimeVars    bool
	UseIntegerVars bool
	Verbose        bool
}

// Option represents a functional option for configuring the generator.
type Option func(*Options)

// WithTimeVars requests the (unimplemented) timing-variable family.
// NewGenerator rejects it with ErrTimeVarsUnsupported; the option
// exists so callers probing for it get a clean failure, not a wrong
// heuristic.
func WithTimeVars() Option {
	return func(o *Options) {
		o.UseTimeVars = true
	}
}

// WithIntegerVars restricts all auxiliary variables created by the
// generator to integer values. This generally improves the heuristic
// value at the cost of solver runtime.
func WithIntegerVars() Option {
	return func(o *Options) {
		o.UseIntegerVars = true
	}
}

// WithVerbose enables debug column labels and build-statistics
// logging. It never changes the generated model.
func WithVerbose() Option {
	return func(o *Options) {
		o.Verbose = true
	}
}

// DefaultOptions returns the default configuration: continuous
// auxiliary variables, no time-step variables, quiet.
func DefaultOptions() Options {
	return Options{}
}
