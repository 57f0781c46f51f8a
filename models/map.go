package models

import (
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/kvokka/her/errors"
	"github.com/kvokka/her/errors/class"
	"github.com/kvokka/her/log"
	"github.com/kvokka/her/namer"
)

// ModelMap contains the model definitions mapped by their qualified names
// and by their collections.
type ModelMap struct {
	models      map[string]*ModelStruct
	collections map[string]*ModelStruct

	// NamerFunc defines the function strategy how the collections, data
	// keys and foreign keys are being named.
	NamerFunc namer.Namer

	defaultResource ResourceLoader
}

// NewModelMap creates new model map with provided 'namerFunc'. When nil
// the snake case naming is used.
func NewModelMap(namerFunc namer.Namer) *ModelMap {
	if namerFunc == nil {
		namerFunc = namer.NamingSnake
	}
	return &ModelMap{
		models:      map[string]*ModelStruct{},
		collections: map[string]*ModelStruct{},
		NamerFunc:   namerFunc,
	}
}

// DefaultResource returns the default resource loader of the map.
func (m *ModelMap) DefaultResource() ResourceLoader {
	return m.defaultResource
}

// Model gets the model with provided qualified 'name'.
func (m *ModelMap) Model(name string) (*ModelStruct, bool) {
	mStruct, ok := m.models[name]
	return mStruct, ok
}

// ModelByCollection gets the model with provided 'collection'.
func (m *ModelMap) ModelByCollection(collection string) (*ModelStruct, bool) {
	mStruct, ok := m.collections[collection]
	return mStruct, ok
}

// Models returns all the registered models.
func (m *ModelMap) Models() []*ModelStruct {
	models := make([]*ModelStruct, 0, len(m.models))
	for _, mStruct := range m.models {
		models = append(models, mStruct)
	}
	return models
}

// RegisterModel registers the model definition under provided 'name'.
// The name might be qualified with a dot separated namespace, i.e.
// 'admin.User'. The collection defaults to the pluralized simple name
// formatted with the map's NamerFunc, the primary key defaults to 'id'
// and the canonical resource path to '/<collection>/:<primary>'.
func (m *ModelMap) RegisterModel(name string, options ...ModelOption) (*ModelStruct, error) {
	opts := &modelOptions{}
	for _, option := range options {
		option(opts)
	}

	namespace, modelName := splitName(name)
	if modelName == "" {
		return nil, errors.New(class.ModelDefinition, "provided empty model name")
	}

	if _, ok := m.models[name]; ok {
		return nil, errors.Newf(class.ModelAlreadyRegistered, "model: '%s' is already registered", name)
	}

	collection := opts.collection
	if collection == "" {
		collection = m.NamerFunc(inflection.Plural(modelName))
	}
	if other, ok := m.collections[collection]; ok {
		return nil, errors.Newf(class.ModelAlreadyRegistered, "collection: '%s' is already registered by the model: '%s'", collection, other.Name())
	}

	primary := opts.primary
	if primary == "" {
		if opts.parent != nil {
			primary = opts.parent.primary
		} else {
			primary = "id"
		}
	}

	resourcePath := opts.resourcePath
	if resourcePath == "" {
		resourcePath = "/" + collection + "/:" + primary
	}

	mStruct := &ModelStruct{
		modelMap:      m,
		name:          name,
		namespace:     namespace,
		modelName:     modelName,
		collection:    collection,
		primary:       primary,
		resourcePath:  resourcePath,
		relationships: newRelationshipTable(),
		accessors:     map[string]Accessor{},
		resource:      opts.resource,
	}

	if opts.parent != nil {
		mStruct.relationships.deriveFrom(opts.parent.relationships)
		for _, rel := range mStruct.relationships.Relations() {
			mStruct.accessors[rel.name] = newAccessor(rel)
		}
	}

	m.models[name] = mStruct
	m.collections[collection] = mStruct

	log.Debugf("Model: '%s' registered with collection: '%s'", name, collection)
	return mStruct, nil
}

// SetDefaultResource sets the default resource loader used by the models
// without their own loader.
func (m *ModelMap) SetDefaultResource(resource ResourceLoader) {
	m.defaultResource = resource
}

// resolveModel resolves the model 'name' into its definition. Qualified
// names are matched directly. Relative names are first looked up within
// the 'context' model's namespace and then at the top level.
func (m *ModelMap) resolveModel(name string, context *ModelStruct) (*ModelStruct, error) {
	if strings.Contains(name, ".") {
		if mStruct, ok := m.models[name]; ok {
			return mStruct, nil
		}
		return nil, errors.Newf(class.ModelNotMapped, "model: '%s' is not mapped", name)
	}

	if context != nil && context.namespace != "" {
		if mStruct, ok := m.models[context.namespace+"."+name]; ok {
			return mStruct, nil
		}
	}
	if mStruct, ok := m.models[name]; ok {
		return mStruct, nil
	}
	return nil, errors.Newf(class.ModelNotMapped, "model: '%s' is not mapped", name)
}

func splitName(name string) (namespace, modelName string) {
	i := strings.LastIndex(name, ".")
	if i == -1 {
		return "", name
	}
	return name[:i], name[i+1:]
}
