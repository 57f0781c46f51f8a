package models

// HasManyOptions are the optional settings of a has many relationship
// declaration.
type HasManyOptions struct {
	// ClassName is the related model name. Defaults to the singularized,
	// camelized relationship name.
	ClassName string

	// DataKey is the payload key holding the raw embedded data.
	// Defaults to the relationship name.
	DataKey string

	// Path is the path suffix appended to the parent's resource path.
	// Defaults to '/<name>'.
	Path string

	// InverseName is the child field used for the back-reference to the
	// parent. Defaults to the singularized, lower-cased parent model name.
	InverseName string
}

// HasOneOptions are the optional settings of a has one relationship
// declaration.
type HasOneOptions struct {
	// ClassName is the related model name. Defaults to the camelized
	// relationship name.
	ClassName string

	// DataKey is the payload key holding the raw embedded data.
	// Defaults to the relationship name.
	DataKey string

	// Path is the path suffix appended to the parent's resource path.
	// Defaults to '/<name>'.
	Path string
}

// BelongsToOptions are the optional settings of a belongs to relationship
// declaration.
type BelongsToOptions struct {
	// ClassName is the related model name. Defaults to the camelized
	// relationship name.
	ClassName string

	// DataKey is the payload key holding the raw embedded data.
	// Defaults to the relationship name.
	DataKey string

	// Path is the full path template of the related resource. Defaults to
	// the related model's canonical resource path.
	Path string

	// ForeignKey is the parent field holding the related primary value.
	// Defaults to '<name>_id'.
	ForeignKey string
}

// ModelOption is the function that changes the model registration options.
type ModelOption func(o *modelOptions)

type modelOptions struct {
	collection   string
	primary      string
	resourcePath string
	parent       *ModelStruct
	resource     ResourceLoader
}

// WithCollection overrides the pluralized collection name of the model.
func WithCollection(collection string) ModelOption {
	return func(o *modelOptions) {
		o.collection = collection
	}
}

// WithPrimary overrides the model's primary key field name.
func WithPrimary(primary string) ModelOption {
	return func(o *modelOptions) {
		o.primary = primary
	}
}

// WithResourcePath overrides the model's canonical resource path template.
func WithResourcePath(path string) ModelOption {
	return func(o *modelOptions) {
		o.resourcePath = path
	}
}

// WithParent derives the model's relationship table from the 'parent'
// model at registration time. The derived table is an independent copy.
func WithParent(parent *ModelStruct) ModelOption {
	return func(o *modelOptions) {
		o.parent = parent
	}
}

// WithResource sets the model's own resource loader.
func WithResource(resource ResourceLoader) ModelOption {
	return func(o *modelOptions) {
		o.resource = resource
	}
}
