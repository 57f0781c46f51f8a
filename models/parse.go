package models

import (
	"github.com/kvokka/her/errors"
	"github.com/kvokka/her/errors/class"
)

// parseRelations materializes the embedded relationship payloads of the
// record. For every declared relationship whose data key is present in
// the raw payload the value is converted into its typed form and marked
// as already resolved. An explicit nil under the data key becomes the
// empty collection for a to-many relationship and the 'known nil'
// sentinel for the single kinds.
func (r *Record) parseRelations() error {
	for _, rel := range r.mStruct.relationships.Relations() {
		raw, ok := r.data[rel.dataKey]
		if !ok {
			continue
		}

		related, err := rel.RelatedStruct()
		if err != nil {
			return err
		}

		switch rel.kind {
		case RelHasMany:
			collection, err := parseCollectionValue(related, raw)
			if err != nil {
				return wrapParseError(err, rel)
			}
			delete(r.data, rel.dataKey)
			r.setRelationValue(rel.name, collection)
		default:
			record, err := parseRecordValue(related, raw)
			if err != nil {
				return wrapParseError(err, rel)
			}
			delete(r.data, rel.dataKey)
			if record == nil {
				r.setRelationValue(rel.name, nil)
			} else {
				r.setRelationValue(rel.name, record)
			}
		}
	}
	return nil
}

func parseCollectionValue(related *ModelStruct, raw interface{}) (*Collection, error) {
	switch v := raw.(type) {
	case *Collection:
		if v.mStruct != related {
			return nil, errors.Newf(class.RelationValueInvalid, "provided collection of the model: '%s'", v.mStruct.Name())
		}
		return v, nil
	case nil:
		return &Collection{mStruct: related}, nil
	case []interface{}:
		return related.NewCollection(v)
	case []map[string]interface{}:
		items := make([]interface{}, len(v))
		for i := range v {
			items[i] = v[i]
		}
		return related.NewCollection(items)
	default:
		return nil, errors.Newf(class.RelationValueInvalid, "unexpected to-many payload type: %T", raw)
	}
}

func parseRecordValue(related *ModelStruct, raw interface{}) (*Record, error) {
	switch v := raw.(type) {
	case *Record:
		if v.mStruct != related {
			return nil, errors.Newf(class.RelationValueInvalid, "provided record of the model: '%s'", v.mStruct.Name())
		}
		return v, nil
	case nil:
		return nil, nil
	case map[string]interface{}:
		return related.NewRecord(v)
	default:
		return nil, errors.Newf(class.RelationValueInvalid, "unexpected single relationship payload type: %T", raw)
	}
}

func wrapParseError(err error, rel *Relationship) error {
	if e, ok := err.(*errors.Error); ok {
		e.WrapDetailf("parsing relationship: '%s' of the model: '%s' failed", rel.name, rel.mStruct.Name())
	}
	return err
}
