// Package hook provides the deferred registration ledger at the core of
// hookline.
//
// A Loader accumulates binding records for the three kinds of extension
// points the host dispatcher understands (actions, filters, shortcodes)
// and, on Commit, replays every record into the dispatcher's registration
// primitives in the exact order it was recorded.
//
// The Loader itself performs no validation and handles no errors: a
// binding whose owner does not expose the named method is the host's
// problem at dispatch time, not the ledger's. The optional Validate method
// exists so applications can catch that class of programmer error at
// startup instead.
package hook
