package glstate

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Live driver:
//	ctx := glstate.NewContext(glstate.WithDriver(gldriver.New()))
//
//	// Debug build with thread-affinity checking:
//	ctx := glstate.NewContext(glstate.WithDriver(d), glstate.WithThreadGuard())
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	driver      Driver
	threadGuard bool
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{}
}

// WithDriver injects the driver the context mirrors. This is required for
// a usable context; a context created without a driver fails Init with
// ErrEntryPointsUnavailable. Tests inject a recording fake here.
func WithDriver(d Driver) ContextOption {
	return func(o *contextOptions) {
		o.driver = d
	}
}

// WithThreadGuard enables the debug-mode thread-affinity assertion: every
// state-mutating call must happen on the goroutine that called Init, and a
// violation panics with both goroutine IDs. The guard costs a runtime
// stack capture per checked call, so it is off by default.
func WithThreadGuard() ContextOption {
	return func(o *contextOptions) {
		o.threadGuard = true
	}
}
