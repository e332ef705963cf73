package binding

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/naming"
)

// Option configures the Struct and Map adapters.
type Option func(*objectConfig)

type objectConfig struct {
	modelName    string
	resourceType string
	isNew        *bool
	id           any
	hasID        bool
}

// WithModelName overrides the param key reported by the adapter.
func WithModelName(name string) Option {
	return func(cfg *objectConfig) {
		cfg.modelName = strings.TrimSpace(name)
	}
}

// WithNew forces the persistence state instead of inferring it from the id.
func WithNew(isNew bool) Option {
	return func(cfg *objectConfig) {
		cfg.isNew = &isNew
	}
}

// WithID sets the record identifier used for member URLs.
func WithID(id any) Option {
	return func(cfg *objectConfig) {
		cfg.id = id
		cfg.hasID = true
	}
}

// WithResourceType declares the resource type the record belongs to.
func WithResourceType(name string) Option {
	return func(cfg *objectConfig) {
		cfg.resourceType = strings.TrimSpace(name)
	}
}

func newObjectConfig(options []Option) objectConfig {
	var cfg objectConfig
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Object is a BoundObject backed by a Go struct or map.
type Object struct {
	source       any
	read         func(name string) (any, bool)
	modelName    string
	resourceType string
	isNew        bool
	id           any
}

var (
	_ model.BoundObject   = (*Object)(nil)
	_ model.Identifiable  = (*Object)(nil)
	_ model.ResourceTyped = (*Object)(nil)
	_ naming.Wrapper      = (*Object)(nil)
)

// ReadAttribute implements model.AttributeReadable.
func (o *Object) ReadAttribute(name string) (any, bool) {
	if o == nil || o.read == nil {
		return nil, false
	}
	return o.read(name)
}

// IsNew implements model.BoundObject.
func (o *Object) IsNew() bool {
	return o != nil && o.isNew
}

// ModelName implements model.BoundObject.
func (o *Object) ModelName() string {
	if o == nil {
		return ""
	}
	return o.modelName
}

// WrappedValue returns the struct or map the adapter reads from.
func (o *Object) WrappedValue() any {
	if o == nil {
		return nil
	}
	return o.source
}

// RecordID implements model.Identifiable.
func (o *Object) RecordID() any {
	if o == nil {
		return nil
	}
	return o.id
}

// ResourceType implements model.ResourceTyped. Without an explicit declaration
// the record is its own resource.
func (o *Object) ResourceType() string {
	if o == nil {
		return ""
	}
	if o.resourceType != "" {
		return o.resourceType
	}
	return o.modelName
}

// Struct adapts a struct (or pointer to struct). Attributes match the `form`
// tag first, then the snake_case field name, then the Go field name. The id
// is the field tagged `form:"id"` or named ID; a zero id marks the record new
// unless WithNew says otherwise.
func Struct(v any, options ...Option) *Object {
	cfg := newObjectConfig(options)

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			break
		}
		rv = rv.Elem()
	}

	fields := map[string]reflect.Value{}
	if rv.Kind() == reflect.Struct {
		collectStructFields(rv, fields)
	}

	obj := &Object{
		source: v,
		read: func(name string) (any, bool) {
			field, ok := fields[name]
			if !ok {
				field, ok = fields[strcase.ToSnake(name)]
			}
			if !ok || !field.CanInterface() {
				return nil, false
			}
			return field.Interface(), true
		},
		modelName:    cfg.modelName,
		resourceType: cfg.resourceType,
	}
	if obj.modelName == "" {
		obj.modelName = naming.TypeModelName(v)
	}

	if cfg.hasID {
		obj.id = cfg.id
	} else if idField, ok := fields["id"]; ok && idField.CanInterface() {
		obj.id = idField.Interface()
	}

	if cfg.isNew != nil {
		obj.isNew = *cfg.isNew
	} else {
		obj.isNew = isZeroID(obj.id)
	}
	return obj
}

// Map adapts a string-keyed map. Nested maps and structs resolve through
// Adapt during path lookups. The id is read from the "id" key unless WithID
// is given.
func Map(modelName string, values map[string]any, options ...Option) *Object {
	cfg := newObjectConfig(options)
	snapshot := make(map[string]any, len(values))
	for key, value := range values {
		snapshot[strings.TrimSpace(key)] = value
	}

	obj := &Object{
		source: values,
		read: func(name string) (any, bool) {
			value, ok := snapshot[name]
			return value, ok
		},
		modelName:    strings.TrimSpace(modelName),
		resourceType: cfg.resourceType,
	}
	if cfg.modelName != "" {
		obj.modelName = cfg.modelName
	}
	if cfg.hasID {
		obj.id = cfg.id
	} else {
		obj.id = snapshot["id"]
	}
	if cfg.isNew != nil {
		obj.isNew = *cfg.isNew
	} else {
		obj.isNew = isZeroID(obj.id)
	}
	return obj
}

// Adapt turns value into an AttributeReadable when possible: values that
// already implement the interface, string-keyed maps, and structs.
func Adapt(value any) (model.AttributeReadable, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case model.AttributeReadable:
		return v, true
	case map[string]any:
		return Map("", v), true
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return Struct(value), true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		values := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			values[iter.Key().String()] = iter.Value().Interface()
		}
		return Map("", values), true
	default:
		return nil, false
	}
}

func collectStructFields(rv reflect.Value, dest map[string]reflect.Value) {
	typ := rv.Type()
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if sf.Anonymous && fv.Kind() == reflect.Struct {
			collectStructFields(fv, dest)
			continue
		}

		tag := strings.TrimSpace(strings.Split(sf.Tag.Get("form"), ",")[0])
		if tag == "-" {
			continue
		}
		if tag != "" {
			dest[tag] = fv
		}
		if _, exists := dest[strcase.ToSnake(sf.Name)]; !exists {
			dest[strcase.ToSnake(sf.Name)] = fv
		}
		if _, exists := dest[sf.Name]; !exists {
			dest[sf.Name] = fv
		}
	}
}

func isZeroID(id any) bool {
	if id == nil {
		return true
	}
	rv := reflect.ValueOf(id)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return true
	}
	return rv.IsZero()
}
