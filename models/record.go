package models

import (
	"context"

	"github.com/kvokka/her/errors"
	"github.com/kvokka/her/errors/class"
)

// Record is a single model instance. It keeps the mutable field mapping -
// the record's current data - and the set of relationship keys that were
// already resolved. The loaded set makes the 'never fetched', 'fetched
// empty' and 'fetched nil' states distinguishable without inspecting the
// stored values.
//
// A record is not safe for concurrent use. Concurrent accessor calls on
// the same record must be serialized by the caller.
type Record struct {
	mStruct *ModelStruct
	data    map[string]interface{}
	loaded  map[string]struct{}
}

// NewRecord creates the model record from the 'raw' payload. Embedded
// relationship payloads found under the declared data keys are
// materialized in place into typed values, so that the lazy network fetch
// is short-circuited entirely for them.
func (m *ModelStruct) NewRecord(raw map[string]interface{}) (*Record, error) {
	r := &Record{
		mStruct: m,
		data:    make(map[string]interface{}, len(raw)),
		loaded:  map[string]struct{}{},
	}
	for k, v := range raw {
		r.data[k] = v
	}

	if err := r.parseRelations(); err != nil {
		return nil, err
	}
	return r, nil
}

// Struct returns the record's model definition.
func (r *Record) Struct() *ModelStruct {
	return r.mStruct
}

// Data returns the record's current field mapping. The returned map is
// the live record data.
func (r *Record) Data() map[string]interface{} {
	return r.data
}

// Get gets the field value stored under 'key'.
func (r *Record) Get(key string) (interface{}, bool) {
	value, ok := r.data[key]
	return value, ok
}

// Set sets the field 'value' under 'key'.
func (r *Record) Set(key string, value interface{}) {
	r.data[key] = value
}

// PrimaryValue returns the record's primary key value.
func (r *Record) PrimaryValue() interface{} {
	return r.data[r.mStruct.primary]
}

// ResourcePath resolves the record's canonical resource path from its
// current data.
func (r *Record) ResourcePath() (string, error) {
	return ResolvePath(r.mStruct.resourcePath, r.data)
}

// Relation resolves the relationship with provided 'name'. Without
// overrides an already resolved value - including the fetched empty
// collection and the fetched nil - is reused with no fetch. Providing a
// non empty overrides mapping always forces a fresh fetch. When the
// required path parameters can't be resolved from the record's current
// data the result is nil with no error and nothing is cached.
func (r *Record) Relation(ctx context.Context, name string, overrides ...Params) (interface{}, error) {
	accessor, ok := r.mStruct.accessors[name]
	if !ok {
		return nil, errors.Newf(class.RelationNotFound, "relationship: '%s' is not declared for the model: '%s'", name, r.mStruct.Name())
	}

	var params Params
	if len(overrides) > 0 {
		params = overrides[0]
	}
	return accessor.Resolve(ctx, r, params)
}

// RelationMany resolves the to-many relationship with provided 'name'.
func (r *Record) RelationMany(ctx context.Context, name string, overrides ...Params) (*Collection, error) {
	rel, ok := r.mStruct.RelationByName(name)
	if !ok {
		return nil, errors.Newf(class.RelationNotFound, "relationship: '%s' is not declared for the model: '%s'", name, r.mStruct.Name())
	}
	if rel.kind != RelHasMany {
		return nil, errors.Newf(class.RelationKindMismatch, "relationship: '%s' is not a to-many relationship", name)
	}

	value, err := r.Relation(ctx, name, overrides...)
	if err != nil || value == nil {
		return nil, err
	}

	collection, ok := value.(*Collection)
	if !ok {
		return nil, errors.Newf(class.RelationValueInvalid, "relationship: '%s' holds a non collection value", name)
	}
	return collection, nil
}

// RelationOne resolves the to-one or owned-by relationship with provided
// 'name'.
func (r *Record) RelationOne(ctx context.Context, name string, overrides ...Params) (*Record, error) {
	rel, ok := r.mStruct.RelationByName(name)
	if !ok {
		return nil, errors.Newf(class.RelationNotFound, "relationship: '%s' is not declared for the model: '%s'", name, r.mStruct.Name())
	}
	if rel.kind != RelHasOne && rel.kind != RelBelongsTo {
		return nil, errors.Newf(class.RelationKindMismatch, "relationship: '%s' is not a single relationship", name)
	}

	value, err := r.Relation(ctx, name, overrides...)
	if err != nil || value == nil {
		return nil, err
	}

	record, ok := value.(*Record)
	if !ok {
		return nil, errors.Newf(class.RelationValueInvalid, "relationship: '%s' holds a non record value", name)
	}
	return record, nil
}

// SetRelation stores the caller provided relationship 'value' as already
// resolved. Storing an empty collection for a to-many relationship or a
// nil for a single relationship creates the explicit 'known empty' and
// 'known nil' sentinels that the accessors reuse without refetching.
func (r *Record) SetRelation(name string, value interface{}) error {
	rel, ok := r.mStruct.RelationByName(name)
	if !ok {
		return errors.Newf(class.RelationNotFound, "relationship: '%s' is not declared for the model: '%s'", name, r.mStruct.Name())
	}

	switch rel.kind {
	case RelHasMany:
		switch v := value.(type) {
		case *Collection:
			r.setRelationValue(name, v)
		case nil:
			related, err := rel.RelatedStruct()
			if err != nil {
				return err
			}
			r.setRelationValue(name, &Collection{mStruct: related})
		default:
			return errors.Newf(class.RelationValueInvalid, "relationship: '%s' requires a collection value", name)
		}
	default:
		switch v := value.(type) {
		case *Record:
			r.setRelationValue(name, v)
		case nil:
			r.setRelationValue(name, nil)
		default:
			return errors.Newf(class.RelationValueInvalid, "relationship: '%s' requires a record value", name)
		}
	}
	return nil
}

// IsRelationLoaded checks if the relationship with provided 'name' was
// already resolved - fetched, materialized from the payload or set by the
// caller.
func (r *Record) IsRelationLoaded(name string) bool {
	_, ok := r.loaded[name]
	return ok
}

// loadedRelation gets the already resolved relationship value.
func (r *Record) loadedRelation(name string) (interface{}, bool) {
	if _, ok := r.loaded[name]; !ok {
		return nil, false
	}
	return r.data[name], true
}

// setRelationValue stores the resolved relationship value and marks the
// key as loaded. A nil 'value' is stored as the untyped nil.
func (r *Record) setRelationValue(name string, value interface{}) {
	if record, ok := value.(*Record); ok && record == nil {
		value = nil
	}
	if value == nil {
		r.data[name] = nil
	} else {
		r.data[name] = value
	}
	r.loaded[name] = struct{}{}
}

// mergedFields returns a copy of the record's current data overlaid with
// the call-time 'overrides'.
func (r *Record) mergedFields(overrides Params) map[string]interface{} {
	merged := make(map[string]interface{}, len(r.data)+len(overrides))
	for k, v := range r.data {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
