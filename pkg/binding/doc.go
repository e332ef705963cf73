// Package binding reads field values off bound records. Lookups walk an
// attribute path one segment at a time through model.AttributeReadable; the
// Struct and Map adapters let plain Go values take part without implementing
// the interface by hand.
package binding
