package dispatch

import (
	"context"
	"sort"

	"github.com/mk/hookline/internal/ctxlog"
	"github.com/mk/hookline/internal/hook"
)

// handler is one registered callback within a hook's table.
type handler struct {
	cb       hook.Callback
	priority int
	argCount int
	seq      int
}

// Dispatcher holds the host-side hook tables. It implements
// hook.Dispatcher so a Loader can commit into it. Registration is
// append-only and tolerates duplicates: re-registering the same pair adds
// a second entry and both fire.
type Dispatcher struct {
	actions    map[string][]handler
	filters    map[string][]handler
	shortcodes map[string][]hook.Callback
	seq        int
}

// New returns a Dispatcher with empty tables.
func New() *Dispatcher {
	return &Dispatcher{
		actions:    make(map[string][]handler),
		filters:    make(map[string][]handler),
		shortcodes: make(map[string][]hook.Callback),
	}
}

// RegisterAction adds a callback to the named action's table.
func (d *Dispatcher) RegisterAction(name string, cb hook.Callback, priority, argCount int) {
	d.seq++
	d.actions[name] = append(d.actions[name], handler{cb: cb, priority: priority, argCount: argCount, seq: d.seq})
}

// RegisterFilter adds a callback to the named filter's table.
func (d *Dispatcher) RegisterFilter(name string, cb hook.Callback, priority, argCount int) {
	d.seq++
	d.filters[name] = append(d.filters[name], handler{cb: cb, priority: priority, argCount: argCount, seq: d.seq})
}

// RegisterShortcode adds a callback for the tag. Later registrations for
// the same tag are kept; the last one wins at expansion time.
func (d *Dispatcher) RegisterShortcode(tag string, cb hook.Callback) {
	d.shortcodes[tag] = append(d.shortcodes[tag], cb)
}

// DoAction fires the named action. Callbacks run in ascending priority,
// insertion order within equal priority, each receiving at most its
// registered argument count.
func (d *Dispatcher) DoAction(ctx context.Context, name string, args ...any) {
	for _, h := range byPriority(d.actions[name]) {
		fn, ok := resolveAction(ctx, name, h.cb)
		if !ok {
			continue
		}
		fn(ctx, clampArgs(args, h.argCount)...)
	}
}

// ApplyFilters threads value through the named filter chain in ascending
// priority and returns the final value. The registered argument count
// covers the value itself, so a callback with the default count of one
// sees no extra arguments.
func (d *Dispatcher) ApplyFilters(ctx context.Context, name string, value any, args ...any) any {
	for _, h := range byPriority(d.filters[name]) {
		fn, ok := resolveFilter(ctx, name, h.cb)
		if !ok {
			continue
		}
		value = fn(ctx, value, clampArgs(args, h.argCount-1)...)
	}
	return value
}

// ActionCount reports how many action callbacks are registered across all
// hooks.
func (d *Dispatcher) ActionCount() int { return tableSize(d.actions) }

// FilterCount reports how many filter callbacks are registered across all
// hooks.
func (d *Dispatcher) FilterCount() int { return tableSize(d.filters) }

// ShortcodeCount reports how many shortcode callbacks are registered.
func (d *Dispatcher) ShortcodeCount() int {
	n := 0
	for _, cbs := range d.shortcodes {
		n += len(cbs)
	}
	return n
}

// byPriority returns the handlers sorted for firing. The table itself is
// never reordered; registration order stays the tie-break within a
// priority.
func byPriority(hs []handler) []handler {
	if len(hs) < 2 {
		return hs
	}
	sorted := append([]handler(nil), hs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].priority < sorted[j].priority
	})
	return sorted
}

// clampArgs trims the dispatch arguments to the callback's registered
// count. A count larger than what the dispatch supplied forwards whatever
// is there.
func clampArgs(args []any, n int) []any {
	if n < 0 {
		n = 0
	}
	if len(args) > n {
		return args[:n]
	}
	return args
}

func tableSize(m map[string][]handler) int {
	n := 0
	for _, hs := range m {
		n += len(hs)
	}
	return n
}

// warnUnresolvable reports a callback the dispatcher had to skip. This is
// the host's non-fatal diagnostic channel; the ledger never sees it.
func warnUnresolvable(ctx context.Context, kind, name string, cb hook.Callback, reason string) {
	ctxlog.FromContext(ctx).Warn("Skipping unresolvable callback.",
		"kind", kind, "hook", name, "owner", ownerType(cb.Owner), "method", cb.Method, "reason", reason)
}
