package dispatch

import (
	"context"
	"fmt"
	"reflect"

	"github.com/mk/hookline/internal/hook"
)

// Callback shapes the dispatcher asserts when a hook fires. Aliases, not
// defined types, so method values assert directly.
type (
	// ActionFunc receives the dispatch arguments, already clamped to the
	// binding's argument count.
	ActionFunc = func(ctx context.Context, args ...any)

	// FilterFunc receives the value being filtered plus any clamped extra
	// arguments and returns the replacement value.
	FilterFunc = func(ctx context.Context, value any, args ...any) any

	// ShortcodeFunc receives the tag's attributes and enclosed content and
	// returns the replacement text.
	ShortcodeFunc = func(ctx context.Context, attrs map[string]string, inner string) string
)

func resolveAction(ctx context.Context, name string, cb hook.Callback) (ActionFunc, bool) {
	v, ok := methodValue(ctx, "action", name, cb)
	if !ok {
		return nil, false
	}
	fn, ok := v.Interface().(ActionFunc)
	if !ok {
		warnUnresolvable(ctx, "action", name, cb, shapeMismatch(v))
		return nil, false
	}
	return fn, true
}

func resolveFilter(ctx context.Context, name string, cb hook.Callback) (FilterFunc, bool) {
	v, ok := methodValue(ctx, "filter", name, cb)
	if !ok {
		return nil, false
	}
	fn, ok := v.Interface().(FilterFunc)
	if !ok {
		warnUnresolvable(ctx, "filter", name, cb, shapeMismatch(v))
		return nil, false
	}
	return fn, true
}

func resolveShortcode(ctx context.Context, tag string, cb hook.Callback) (ShortcodeFunc, bool) {
	v, ok := methodValue(ctx, "shortcode", tag, cb)
	if !ok {
		return nil, false
	}
	fn, ok := v.Interface().(ShortcodeFunc)
	if !ok {
		warnUnresolvable(ctx, "shortcode", tag, cb, shapeMismatch(v))
		return nil, false
	}
	return fn, true
}

// methodValue resolves the bound pair to a method value, warning and
// reporting failure instead of panicking when the owner is nil or the
// method does not exist.
func methodValue(ctx context.Context, kind, name string, cb hook.Callback) (reflect.Value, bool) {
	if cb.Owner == nil {
		warnUnresolvable(ctx, kind, name, cb, "owner is nil")
		return reflect.Value{}, false
	}
	mv := reflect.ValueOf(cb.Owner).MethodByName(cb.Method)
	if !mv.IsValid() {
		warnUnresolvable(ctx, kind, name, cb, "no such method")
		return reflect.Value{}, false
	}
	return mv, true
}

func shapeMismatch(v reflect.Value) string {
	return fmt.Sprintf("method shape %s not callable by dispatcher", v.Type())
}

func ownerType(owner any) string {
	if owner == nil {
		return "<nil>"
	}
	return reflect.TypeOf(owner).String()
}
