// Package model defines the value types shared by the form engine: attribute
// paths, field specs, option sources and descriptors, form targets, and the
// capability interfaces a bound record implements. Everything here is created
// per render call and never retained by the engine. The error taxonomy lives
// here too so callers can match failures with errors.Is regardless of which
// stage produced them.
package model
