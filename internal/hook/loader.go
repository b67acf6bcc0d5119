package hook

// Dispatcher is the host platform's registration surface. The Loader calls
// it during Commit and owns none of the state behind it.
type Dispatcher interface {
	RegisterAction(hook string, cb Callback, priority, argCount int)
	RegisterFilter(hook string, cb Callback, priority, argCount int)
	RegisterShortcode(tag string, cb Callback)
}

// Plugin is implemented by every compiled-in plugin. Bind is the plugin's
// one chance to record its hook bindings before the application commits
// the ledger.
type Plugin interface {
	// Name identifies the plugin in the site configuration.
	Name() string

	// Bind records the plugin's callbacks on the loader.
	Bind(l *Loader)
}

// Settable is implemented by plugins that take settings from the site
// configuration. Settings must return a pointer the converter can decode
// into before Bind runs.
type Settable interface {
	Settings() any
}

// Loader accumulates binding records and replays them into a Dispatcher.
// It is constructed empty, populated during setup, and consumed by Commit.
// Single-goroutine use only.
type Loader struct {
	actions    []Binding
	filters    []Binding
	shortcodes []Binding
}

// NewLoader returns an empty ledger.
func NewLoader() *Loader {
	return &Loader{}
}

// AddAction records an action binding. Defaults: priority 10, one
// forwarded argument. Nothing is validated and nothing can fail; the
// record simply joins the end of the action sequence.
func (l *Loader) AddAction(hook string, owner any, method string, opts ...BindingOption) {
	l.actions = append(l.actions, newBinding(hook, owner, method, opts))
}

// AddFilter records a filter binding with the same contract as AddAction,
// kept in its own sequence.
func (l *Loader) AddFilter(hook string, owner any, method string, opts ...BindingOption) {
	l.filters = append(l.filters, newBinding(hook, owner, method, opts))
}

// AddShortcode records a shortcode binding. Shortcodes carry no priority
// or argument count.
func (l *Loader) AddShortcode(tag string, owner any, method string) {
	l.shortcodes = append(l.shortcodes, Binding{Hook: tag, Owner: owner, Method: method})
}

// Commit replays every recorded binding into the dispatcher, sequence by
// sequence, in insertion order. Duplicates are replayed as-is; whether the
// host tolerates re-registration is the host's concern. Committing twice
// replays everything again.
func (l *Loader) Commit(d Dispatcher) {
	for _, b := range l.actions {
		d.RegisterAction(b.Hook, Callback{Owner: b.Owner, Method: b.Method}, b.Priority, b.ArgCount)
	}
	for _, b := range l.filters {
		d.RegisterFilter(b.Hook, Callback{Owner: b.Owner, Method: b.Method}, b.Priority, b.ArgCount)
	}
	for _, b := range l.shortcodes {
		d.RegisterShortcode(b.Hook, Callback{Owner: b.Owner, Method: b.Method})
	}
}

// Actions returns a copy of the recorded action sequence.
func (l *Loader) Actions() []Binding {
	return append([]Binding(nil), l.actions...)
}

// Filters returns a copy of the recorded filter sequence.
func (l *Loader) Filters() []Binding {
	return append([]Binding(nil), l.filters...)
}

// Shortcodes returns a copy of the recorded shortcode sequence.
func (l *Loader) Shortcodes() []Binding {
	return append([]Binding(nil), l.shortcodes...)
}

func newBinding(hook string, owner any, method string, opts []BindingOption) Binding {
	b := Binding{
		Hook:     hook,
		Owner:    owner,
		Method:   method,
		Priority: DefaultPriority,
		ArgCount: DefaultArgCount,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}
