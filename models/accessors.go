package models

import (
	"context"

	"github.com/kvokka/her/errors"
	"github.com/kvokka/her/errors/class"
	"github.com/kvokka/her/log"
)

// Accessor resolves the value of a single declared relationship for the
// records of its owner model. The implementations differ by the
// relationship kind - the path composition and the loader operation used.
type Accessor interface {
	// Relationship returns the accessor's relationship descriptor.
	Relationship() *Relationship
	// Resolve gets the relationship value for the 'record'. An already
	// resolved value is reused unless 'overrides' are provided. When the
	// path can't be resolved from the record's data the result is a nil
	// value with no error and no caching.
	Resolve(ctx context.Context, record *Record, overrides Params) (interface{}, error)
}

func newAccessor(rel *Relationship) Accessor {
	switch rel.kind {
	case RelHasMany:
		return &toManyAccessor{rel: rel}
	case RelHasOne:
		return &toOneAccessor{rel: rel}
	default:
		return &belongsToAccessor{rel: rel}
	}
}

// toManyAccessor resolves a to-many relationship. The related collection
// is fetched from the parent's resource path suffixed with the
// relationship path, i.e. '/users/1/articles'.
type toManyAccessor struct {
	rel *Relationship
}

// Relationship implements Accessor interface.
func (a *toManyAccessor) Relationship() *Relationship {
	return a.rel
}

// Resolve implements Accessor interface.
func (a *toManyAccessor) Resolve(ctx context.Context, record *Record, overrides Params) (interface{}, error) {
	rel := a.rel
	if len(overrides) == 0 {
		if value, ok := record.loadedRelation(rel.name); ok {
			return value, nil
		}
	}

	related, err := rel.RelatedStruct()
	if err != nil {
		return nil, err
	}

	path, ok, err := nestedPath(record, rel, overrides)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	loader, err := related.resourceLoader()
	if err != nil {
		return nil, err
	}

	collection, err := loader.FetchCollection(ctx, related, path, overrides)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		collection = &Collection{mStruct: related}
	}

	record.setRelationValue(rel.name, collection)
	for _, child := range collection.records {
		child.setRelationValue(rel.inverseName, record)
	}
	return collection, nil
}

// toOneAccessor resolves a to-one relationship. The related record is
// fetched from the parent's resource path suffixed with the relationship
// path, i.e. '/users/1/profile'.
type toOneAccessor struct {
	rel *Relationship
}

// Relationship implements Accessor interface.
func (a *toOneAccessor) Relationship() *Relationship {
	return a.rel
}

// Resolve implements Accessor interface.
func (a *toOneAccessor) Resolve(ctx context.Context, record *Record, overrides Params) (interface{}, error) {
	rel := a.rel
	if len(overrides) == 0 {
		if value, ok := record.loadedRelation(rel.name); ok {
			return value, nil
		}
	}

	related, err := rel.RelatedStruct()
	if err != nil {
		return nil, err
	}

	path, ok, err := nestedPath(record, rel, overrides)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	return fetchSingle(ctx, record, rel, related, path, overrides)
}

// belongsToAccessor resolves an owned-by relationship. The related record
// is located by its own canonical path with the parent's foreign key
// value substituted for the related primary placeholder, i.e. a 'team_id'
// of 5 resolves '/teams/:id' into '/teams/5'.
type belongsToAccessor struct {
	rel *Relationship
}

// Relationship implements Accessor interface.
func (a *belongsToAccessor) Relationship() *Relationship {
	return a.rel
}

// Resolve implements Accessor interface.
func (a *belongsToAccessor) Resolve(ctx context.Context, record *Record, overrides Params) (interface{}, error) {
	rel := a.rel
	if len(overrides) == 0 {
		if value, ok := record.loadedRelation(rel.name); ok {
			return value, nil
		}
	}

	related, err := rel.RelatedStruct()
	if err != nil {
		return nil, err
	}

	template := rel.path
	if template == "" {
		template = related.resourcePath
	}

	// The foreign key value always comes from the record itself, not
	// from the overrides.
	fields := record.mergedFields(overrides)
	fields[related.primary] = record.data[rel.foreignKey]

	path, err := ResolvePath(template, fields)
	if err != nil {
		if errors.IsMajor(err, class.MjrPath) {
			log.Debug2f("Model: '%s' relationship: '%s' path not resolvable: %v", rel.mStruct.Name(), rel.name, err)
			return nil, nil
		}
		return nil, err
	}

	return fetchSingle(ctx, record, rel, related, path, overrides)
}

// nestedPath composes the relationship path nested under the parent's
// resolved resource path. The false result means the parent path
// parameters are not resolvable from the record's data.
func nestedPath(record *Record, rel *Relationship, overrides Params) (string, bool, error) {
	parentPath, err := ResolvePath(record.mStruct.resourcePath, record.mergedFields(overrides))
	if err != nil {
		if errors.IsMajor(err, class.MjrPath) {
			log.Debug2f("Model: '%s' relationship: '%s' path not resolvable: %v", rel.mStruct.Name(), rel.name, err)
			return "", false, nil
		}
		return "", false, err
	}
	return parentPath + rel.path, true, nil
}

// fetchSingle fetches and stores a single related record. A nil fetch
// result is stored as the 'known nil' sentinel, so the absence won't be
// refetched.
func fetchSingle(ctx context.Context, record *Record, rel *Relationship, related *ModelStruct, path string, overrides Params) (interface{}, error) {
	loader, err := related.resourceLoader()
	if err != nil {
		return nil, err
	}

	result, err := loader.FetchResource(ctx, related, path, overrides)
	if err != nil {
		return nil, err
	}

	if result == nil {
		record.setRelationValue(rel.name, nil)
		return nil, nil
	}
	record.setRelationValue(rel.name, result)
	return result, nil
}
