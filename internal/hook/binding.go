package hook

// DefaultPriority is the priority a binding carries when none is given.
const DefaultPriority = 10

// DefaultArgCount is the number of dispatch arguments forwarded to a
// callback when no explicit count is given.
const DefaultArgCount = 1

// Binding is a single recorded registration: which method on which owner
// should be invoked for a named extension point.
type Binding struct {
	// Hook is the extension point name (action or filter name, or the
	// shortcode tag).
	Hook string

	// Owner is the handler instance the method is resolved against at
	// dispatch time. The ledger holds a plain reference; the host owns
	// the instance's lifetime.
	Owner any

	// Method is the exported method name on Owner.
	Method string

	// Priority orders callbacks within a hook when the host fires it.
	// Unused for shortcodes.
	Priority int

	// ArgCount is how many dispatch arguments the host forwards to the
	// callback. Unused for shortcodes.
	ArgCount int
}

// Callback is the bound owner/method pair handed to the dispatcher. The
// dispatcher resolves the method by name when the hook fires, not when the
// callback is registered.
type Callback struct {
	Owner  any
	Method string
}

// BindingOption adjusts a single action or filter binding at record time.
type BindingOption func(*Binding)

// WithPriority overrides the default priority of 10.
func WithPriority(p int) BindingOption {
	return func(b *Binding) {
		b.Priority = p
	}
}

// WithArgCount overrides the default forwarded-argument count of 1.
func WithArgCount(n int) BindingOption {
	return func(b *Binding) {
		b.ArgCount = n
	}
}
