package models

import (
	"github.com/kvokka/her/errors"
	"github.com/kvokka/her/errors/class"
	"github.com/kvokka/her/log"
)

// relationshipKinds is the stable iteration order of the table kinds.
var relationshipKinds = []RelationshipKind{RelHasMany, RelHasOne, RelBelongsTo}

// RelationshipTable maps the relationship kinds into the ordered lists of
// declared relationship descriptors. Each model owns a single table.
type RelationshipTable struct {
	relations map[RelationshipKind][]*Relationship
}

func newRelationshipTable() *RelationshipTable {
	return &RelationshipTable{relations: map[RelationshipKind][]*Relationship{}}
}

// ByName gets the relationship with provided 'name' among any kind.
func (t *RelationshipTable) ByName(name string) (*Relationship, bool) {
	for _, kind := range relationshipKinds {
		for _, rel := range t.relations[kind] {
			if rel.name == name {
				return rel, true
			}
		}
	}
	return nil, false
}

// Has checks if the relationship with provided 'name' is declared
// under any kind.
func (t *RelationshipTable) Has(name string) bool {
	_, ok := t.ByName(name)
	return ok
}

// Kind returns the ordered relationship descriptors of given 'kind'.
func (t *RelationshipTable) Kind(kind RelationshipKind) []*Relationship {
	return t.relations[kind]
}

// Relations returns all the declared relationships in the kind order.
func (t *RelationshipTable) Relations() []*Relationship {
	var relations []*Relationship
	for _, kind := range relationshipKinds {
		relations = append(relations, t.relations[kind]...)
	}
	return relations
}

// deriveFrom copies the 'parent' table relations into 't'. The copy is done
// once, at model registration time, so that declaring a relationship on the
// derived model never affects the parent.
func (t *RelationshipTable) deriveFrom(parent *RelationshipTable) {
	for _, kind := range relationshipKinds {
		parentRelations := parent.relations[kind]
		if len(parentRelations) == 0 {
			continue
		}
		relations := make([]*Relationship, len(parentRelations))
		copy(relations, parentRelations)
		t.relations[kind] = relations
	}
}

// declare appends the relationship descriptor to the table of its kind.
func (t *RelationshipTable) declare(rel *Relationship) error {
	switch rel.kind {
	case RelHasMany, RelHasOne, RelBelongsTo:
	default:
		return errors.Newf(class.RelationKindUnknown, "unknown relationship kind: '%s'", rel.kind)
	}

	if t.Has(rel.name) {
		return errors.Newf(class.RelationRedeclared, "relationship: '%s' is already declared for the model: '%s'", rel.name, rel.mStruct.Name())
	}

	t.relations[rel.kind] = append(t.relations[rel.kind], rel)
	log.Debug2f("Model: '%s' declared %s relationship: '%s'", rel.mStruct.Name(), rel.kind, rel.name)
	return nil
}
