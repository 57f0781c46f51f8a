package class

import (
	"errors"
	"sync"
)

var indices = &indicesContainer{entries: map[minorKey]*indexEntries{}}

// Index is the lowest level error classification.
// It is the most precise division - i.e.:
// 'major' Resource
//	'minor' response
//	 'index' unexpected status.
type Index struct {
	value uint16
	minor Minor
	own   bool
}

// Class gets the index related class.
func (i Index) Class() Class {
	if !i.valid() {
		return Class(0)
	}
	return Class(uint32(i.minor.major)<<(32-majorBitSize) | uint32(i.minor.value)<<indexBitSize | uint32(i.value))
}

// Description gets the index registered description.
func (i Index) Description() string {
	if !i.valid() {
		return ""
	}
	return indices.entries[i.key()].descriptions[i.containerIndex()]
}

// InBounds checks if the index value is in the allowed 15-bit range.
func (i Index) InBounds() bool {
	return i.inBounds()
}

// Minor returns the index related Minor.
func (i Index) Minor() Minor {
	return i.minor
}

// Name gets the index stored name.
func (i Index) Name() string {
	if !i.valid() {
		return ""
	}
	return indices.entries[i.key()].names[i.containerIndex()]
}

// Valid checks if the provided index is valid.
func (i Index) Valid() bool {
	return i.valid()
}

// Value gets the index uint16 value.
func (i Index) Value() uint16 {
	return i.value
}

func (i Index) containerIndex() int {
	return int(i.value) - 1
}

func (i Index) inBounds() bool {
	return i.value>>indexBitSize == 0 && i.value != 0
}

func (i Index) key() minorKey {
	return minorKey{major: i.minor.major, minor: i.minor.value}
}

func (i Index) valid() bool {
	if !i.inBounds() || !i.own || !i.minor.valid() {
		return false
	}
	entries, ok := indices.entries[i.key()]
	if !ok {
		return false
	}
	return int(i.value) <= len(entries.names)
}

type minorKey struct {
	major Major
	minor uint16
}

type indexEntries struct {
	uniqueNames  map[string]struct{}
	names        []string
	descriptions []string
}

type indicesContainer struct {
	entries map[minorKey]*indexEntries
	lock    sync.Mutex
}

func (c *indicesContainer) new(minor Minor, name string, description ...string) (Index, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	key := minorKey{major: minor.major, minor: minor.value}
	entries, ok := c.entries[key]
	if !ok {
		entries = &indexEntries{uniqueNames: map[string]struct{}{}}
		c.entries[key] = entries
	}

	if _, ok = entries.uniqueNames[name]; ok {
		return Index{}, errors.New("index with provided name already registered")
	}
	if len(entries.names)+1 > maxIndexValue {
		return Index{}, errors.New("index values exceeded")
	}

	entries.uniqueNames[name] = struct{}{}
	entries.names = append(entries.names, name)

	var desc string
	if len(description) > 0 {
		desc = description[0]
	}
	entries.descriptions = append(entries.descriptions, desc)

	return Index{value: uint16(len(entries.names)), minor: minor, own: true}, nil
}
