package models

// RelationshipKind is the relation's relationship kind enum.
type RelationshipKind int

const (
	// RelUnknown is the unknown relationship kind.
	RelUnknown RelationshipKind = iota

	// RelHasMany is the 'has many' - to-many - relationship kind.
	RelHasMany

	// RelHasOne is the 'has one' - to-one - relationship kind.
	RelHasOne

	// RelBelongsTo is the 'belongs to' - owned-by - relationship kind.
	RelBelongsTo
)

// String implements fmt.Stringer interface.
func (k RelationshipKind) String() string {
	switch k {
	case RelHasMany:
		return "HasMany"
	case RelHasOne:
		return "HasOne"
	case RelBelongsTo:
		return "BelongsTo"
	}
	return "Unknown"
}

// Relationship is the descriptor of a single declared relationship.
// It is created once at declaration time and never mutated afterwards.
type Relationship struct {
	kind RelationshipKind

	// name identifies both the accessor and the default data key.
	name string

	// relatedName is the declared related model name. It is resolved
	// lazily against the model map, relative to the owner's namespace.
	relatedName string

	// dataKey is the key under which the raw embedded data appears
	// in a payload.
	dataKey string

	// path is the relationship path template. For the has many and has one
	// kinds it is the suffix appended to the parent's resource path. For
	// the belongs to kind it overrides the related model's canonical
	// resource path and when empty the canonical path is used.
	path string

	// foreignKey is the parent field holding the related primary value.
	// Used only by the belongs to kind.
	foreignKey string

	// inverseName is the child field used to set the back-reference to
	// the parent record. Used only by the has many kind.
	inverseName string

	// mStruct is the relationship owner.
	mStruct *ModelStruct

	// related is the memoized resolved related model handle.
	related *ModelStruct
}

// Kind returns the relationship kind.
func (r *Relationship) Kind() RelationshipKind {
	return r.kind
}

// Name returns the relationship name.
func (r *Relationship) Name() string {
	return r.name
}

// RelatedName returns the declared related model name.
func (r *Relationship) RelatedName() string {
	return r.relatedName
}

// DataKey returns the payload key holding the raw embedded data.
func (r *Relationship) DataKey() string {
	return r.dataKey
}

// Path returns the relationship path template.
func (r *Relationship) Path() string {
	return r.path
}

// ForeignKey returns the foreign key field name of the belongs to kind.
func (r *Relationship) ForeignKey() string {
	return r.foreignKey
}

// InverseName returns the back-reference field name of the has many kind.
func (r *Relationship) InverseName() string {
	return r.inverseName
}

// Struct returns the relationship owner model.
func (r *Relationship) Struct() *ModelStruct {
	return r.mStruct
}

// RelatedStruct resolves and returns the related model. The resolution is
// done against the owner's model map, honoring the owner's namespace for
// relative names, and is memoized at first use.
func (r *Relationship) RelatedStruct() (*ModelStruct, error) {
	if r.related != nil {
		return r.related, nil
	}
	related, err := r.mStruct.modelMap.resolveModel(r.relatedName, r.mStruct)
	if err != nil {
		return nil, err
	}
	r.related = related
	return related, nil
}
