package model

// AttributeReadable exposes single-segment attribute lookups. Nested paths are
// resolved by calling ReadAttribute once per segment; a segment may yield a
// scalar or another AttributeReadable.
type AttributeReadable interface {
	ReadAttribute(name string) (any, bool)
}

// BoundObject is the record a form is bound to. The engine only reads from
// it; implementations used from concurrent renders must tolerate concurrent
// reads.
type BoundObject interface {
	AttributeReadable
	// IsNew reports whether the record has not been persisted yet.
	IsNew() bool
	// ModelName is the param key of the record (for example "article"). An
	// empty string defers to the runtime type name.
	ModelName() string
}

// Identifiable exposes the key used in member URLs.
type Identifiable interface {
	RecordID() any
}

// ResourceTyped is implemented by records that belong to a declared resource
// type different from, or equal to, their own model (single-table
// inheritance style specialisations).
type ResourceTyped interface {
	ResourceType() string
}
