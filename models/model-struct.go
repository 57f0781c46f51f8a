package models

import (
	"context"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"

	"github.com/kvokka/her/errors"
	"github.com/kvokka/her/errors/class"
)

// ModelStruct is the single model definition. It holds the naming, the
// canonical resource path and the declared relationships of the model.
type ModelStruct struct {
	modelMap *ModelMap

	name      string
	namespace string
	modelName string

	collection   string
	primary      string
	resourcePath string

	relationships *RelationshipTable
	accessors     map[string]Accessor

	resource ResourceLoader
}

// Name returns the qualified model name, i.e. 'admin.User'.
func (m *ModelStruct) Name() string {
	return m.name
}

// ModelName returns the simple model name with the namespace stripped.
func (m *ModelStruct) ModelName() string {
	return m.modelName
}

// Namespace returns the model's namespace. Empty for top level models.
func (m *ModelStruct) Namespace() string {
	return m.namespace
}

// Collection returns the pluralized collection name of the model.
func (m *ModelStruct) Collection() string {
	return m.collection
}

// Primary returns the primary key field name.
func (m *ModelStruct) Primary() string {
	return m.primary
}

// ResourcePath returns the canonical resource path template, i.e.
// '/users/:id'.
func (m *ModelStruct) ResourcePath() string {
	return m.resourcePath
}

// CollectionPath returns the path of the model collection, i.e. '/users'.
func (m *ModelStruct) CollectionPath() string {
	return strings.TrimSuffix(m.resourcePath, "/:"+m.primary)
}

// Relations returns the model's relationship table.
func (m *ModelStruct) Relations() *RelationshipTable {
	return m.relationships
}

// HasRelation checks if the relationship with provided 'name' is declared
// for the model under any kind.
func (m *ModelStruct) HasRelation(name string) bool {
	return m.relationships.Has(name)
}

// RelationByName gets the relationship descriptor with provided 'name'.
func (m *ModelStruct) RelationByName(name string) (*Relationship, bool) {
	return m.relationships.ByName(name)
}

// Resource returns the model's own resource loader. Nil when the model
// uses the map's default.
func (m *ModelStruct) Resource() ResourceLoader {
	return m.resource
}

// SetResource sets the model's own resource loader.
func (m *ModelStruct) SetResource(resource ResourceLoader) {
	m.resource = resource
}

// HasMany declares the to-many relationship with provided 'name' for the
// model. The returned descriptor is immutable.
func (m *ModelStruct) HasMany(name string, options ...HasManyOptions) (*Relationship, error) {
	var o HasManyOptions
	if len(options) > 0 {
		o = options[0]
	}

	relatedName := o.ClassName
	if relatedName == "" {
		relatedName = strcase.ToCamel(inflection.Singular(name))
	}
	inverseName := o.InverseName
	if inverseName == "" {
		inverseName = m.modelMap.NamerFunc(inflection.Singular(m.modelName))
	}

	rel := &Relationship{
		kind:        RelHasMany,
		name:        name,
		relatedName: relatedName,
		dataKey:     defaultString(o.DataKey, name),
		path:        defaultString(o.Path, "/"+name),
		inverseName: inverseName,
		mStruct:     m,
	}
	return m.declare(rel)
}

// HasOne declares the to-one relationship with provided 'name' for the
// model. The returned descriptor is immutable.
func (m *ModelStruct) HasOne(name string, options ...HasOneOptions) (*Relationship, error) {
	var o HasOneOptions
	if len(options) > 0 {
		o = options[0]
	}

	relatedName := o.ClassName
	if relatedName == "" {
		relatedName = strcase.ToCamel(inflection.Singular(name))
	}

	rel := &Relationship{
		kind:        RelHasOne,
		name:        name,
		relatedName: relatedName,
		dataKey:     defaultString(o.DataKey, name),
		path:        defaultString(o.Path, "/"+name),
		mStruct:     m,
	}
	return m.declare(rel)
}

// BelongsTo declares the owned-by relationship with provided 'name' for
// the model. The related resource is located by its own canonical path
// with the parent's foreign key value substituted for the primary
// placeholder.
func (m *ModelStruct) BelongsTo(name string, options ...BelongsToOptions) (*Relationship, error) {
	var o BelongsToOptions
	if len(options) > 0 {
		o = options[0]
	}

	relatedName := o.ClassName
	if relatedName == "" {
		relatedName = strcase.ToCamel(inflection.Singular(name))
	}

	rel := &Relationship{
		kind:        RelBelongsTo,
		name:        name,
		relatedName: relatedName,
		dataKey:     defaultString(o.DataKey, name),
		path:        o.Path,
		foreignKey:  defaultString(o.ForeignKey, name+"_id"),
		mStruct:     m,
	}
	return m.declare(rel)
}

// Find gets the single record with provided primary 'id' value.
func (m *ModelStruct) Find(ctx context.Context, id interface{}) (*Record, error) {
	loader, err := m.resourceLoader()
	if err != nil {
		return nil, err
	}

	path, err := ResolvePath(m.resourcePath, map[string]interface{}{m.primary: id})
	if err != nil {
		return nil, err
	}
	return loader.FetchResource(ctx, m, path, nil)
}

// All gets the whole model collection with optional request 'params'.
func (m *ModelStruct) All(ctx context.Context, params Params) (*Collection, error) {
	loader, err := m.resourceLoader()
	if err != nil {
		return nil, err
	}
	return loader.FetchCollection(ctx, m, m.CollectionPath(), params)
}

func (m *ModelStruct) declare(rel *Relationship) (*Relationship, error) {
	if err := m.relationships.declare(rel); err != nil {
		return nil, err
	}
	m.accessors[rel.name] = newAccessor(rel)
	return rel, nil
}

func (m *ModelStruct) resourceLoader() (ResourceLoader, error) {
	if m.resource != nil {
		return m.resource, nil
	}
	if m.modelMap.defaultResource != nil {
		return m.modelMap.defaultResource, nil
	}
	return nil, errors.Newf(class.ResourceNotDefined, "no resource loader defined for the model: '%s'", m.name)
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
