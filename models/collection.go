package models

import (
	"github.com/kvokka/her/errors"
	"github.com/kvokka/her/errors/class"
)

// Collection is the ordered set of records of a single model.
type Collection struct {
	mStruct *ModelStruct
	records []*Record
}

// NewCollection creates the model collection from the 'raw' array.
// The items might be raw payload mappings or already materialized records
// of the model. The resulting collection shape is symmetric with the
// resource loader's FetchCollection result.
func (m *ModelStruct) NewCollection(raw []interface{}) (*Collection, error) {
	c := &Collection{mStruct: m}
	for i, item := range raw {
		switch v := item.(type) {
		case *Record:
			if v.mStruct != m {
				return nil, errors.Newf(class.ModelValueInvalid, "collection item at index: %d belongs to the model: '%s'", i, v.mStruct.Name())
			}
			c.records = append(c.records, v)
		case map[string]interface{}:
			record, err := m.NewRecord(v)
			if err != nil {
				return nil, err
			}
			c.records = append(c.records, record)
		default:
			return nil, errors.Newf(class.ModelValueInvalid, "collection item at index: %d has unexpected type: %T", i, item)
		}
	}
	return c, nil
}

// Struct returns the collection's model definition.
func (c *Collection) Struct() *ModelStruct {
	return c.mStruct
}

// Len returns the number of records in the collection.
func (c *Collection) Len() int {
	return len(c.records)
}

// At gets the record at 'index'. Returns nil when out of range.
func (c *Collection) At(index int) *Record {
	if index < 0 || index >= len(c.records) {
		return nil
	}
	return c.records[index]
}

// Records returns the ordered records of the collection.
func (c *Collection) Records() []*Record {
	return c.records
}
