// Package dispatch is the in-process host side of the hook system: the
// global-by-convention tables that hook.Loader commits its ledger into,
// plus the firing API the content pipeline drives.
//
// Actions are fire-and-forget notifications, filters thread a value
// through a chain of callbacks, and shortcodes are textual macros expanded
// inside rendered content. Callbacks are bound owner/method pairs resolved
// by reflection when a hook fires; a pair that cannot be resolved is
// skipped with a log warning rather than failing the dispatch.
package dispatch
