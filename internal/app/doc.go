// Package app encapsulates the application's wiring and lifecycle: it
// builds the isolated logger, loads the site configuration, binds the
// compiled-in plugins into a hook ledger, validates it, commits it into
// the dispatcher, and drives the render pipeline.
package app
