package hook

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/mk/hookline/internal/ctxlog"
)

var (
	actionShape    = reflect.TypeOf((func(context.Context, ...any))(nil))
	filterShape    = reflect.TypeOf((func(context.Context, any, ...any) any)(nil))
	shortcodeShape = reflect.TypeOf((func(context.Context, map[string]string, string) string)(nil))
)

// Validate performs a strict parity check between the recorded ledger and
// the Go code behind it: every binding's owner must expose the named
// exported method with the callback shape the dispatcher will assert at
// fire time. It checks all three sequences and reports every problem at
// once.
//
// Commit never runs this; a dispatcher is expected to tolerate broken
// bindings on its own. Validate exists for applications that prefer to
// fail at startup.
func (l *Loader) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	check := func(kind string, bindings []Binding, shape reflect.Type) {
		for _, b := range bindings {
			if b.Owner == nil {
				errs = append(errs, fmt.Sprintf("%s '%s': owner is nil", kind, b.Hook))
				continue
			}
			mv := reflect.ValueOf(b.Owner).MethodByName(b.Method)
			if !mv.IsValid() {
				errs = append(errs, fmt.Sprintf("%s '%s': owner %T has no method '%s'", kind, b.Hook, b.Owner, b.Method))
				continue
			}
			if mv.Type() != shape {
				errs = append(errs, fmt.Sprintf("%s '%s': method '%s' on %T has shape %s, dispatcher expects %s",
					kind, b.Hook, b.Method, b.Owner, mv.Type(), shape))
			}
		}
	}

	check("action", l.actions, actionShape)
	check("filter", l.filters, filterShape)
	check("shortcode", l.shortcodes, shortcodeShape)

	if len(errs) > 0 {
		return fmt.Errorf("ledger validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Ledger validation passed.",
		"actions", len(l.actions), "filters", len(l.filters), "shortcodes", len(l.shortcodes))
	return nil
}
