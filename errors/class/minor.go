package class

import (
	"errors"
	"sync"
)

var minors = &minorsContainer{entries: map[Major]*minorEntries{}}

// Minor is a 10 bit error subclassification unique within its major.
type Minor struct {
	value uint16
	major Major
	own   bool
}

// Description gets the minor registered description.
func (m Minor) Description() string {
	if !m.valid() {
		return ""
	}
	return minors.entries[m.major].descriptions[m.containerIndex()]
}

// InBounds checks if the minor value is in the allowed 10-bit range.
func (m Minor) InBounds() bool {
	return m.inBounds()
}

// Major returns the minor related Major.
func (m Minor) Major() Major {
	return m.major
}

// MustRegisterIndex registers the index classification for given Minor 'm',
// unique 'name' and an optional 'description'. Panics on error.
func (m Minor) MustRegisterIndex(name string, description ...string) Index {
	index, err := m.RegisterIndex(name, description...)
	if err != nil {
		panic(err)
	}
	return index
}

// Name gets the minor registered name.
func (m Minor) Name() string {
	if !m.valid() {
		return ""
	}
	return minors.entries[m.major].names[m.containerIndex()]
}

// RegisterIndex registers the index classification for given Minor 'm',
// unique 'name' and an optional 'description'.
func (m Minor) RegisterIndex(name string, description ...string) (Index, error) {
	if !m.valid() {
		return Index{}, errors.New("invalid minor provided")
	}
	return indices.new(m, name, description...)
}

// Valid checks if the provided minor is valid.
func (m Minor) Valid() bool {
	return m.valid()
}

// Value gets the minor uint16 value.
func (m Minor) Value() uint16 {
	return m.value
}

func (m Minor) containerIndex() int {
	return int(m.value) - 1
}

func (m Minor) inBounds() bool {
	return m.value>>minorBitSize == 0 && m.value != 0
}

func (m Minor) valid() bool {
	if !m.inBounds() || !m.own {
		return false
	}
	entries, ok := minors.entries[m.major]
	if !ok {
		return false
	}
	return int(m.value) <= len(entries.names)
}

type minorEntries struct {
	uniqueNames  map[string]struct{}
	names        []string
	descriptions []string
}

type minorsContainer struct {
	entries map[Major]*minorEntries
	lock    sync.Mutex
}

func (m *minorsContainer) new(major Major, name string, description ...string) (Minor, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	entries, ok := m.entries[major]
	if !ok {
		entries = &minorEntries{uniqueNames: map[string]struct{}{}}
		m.entries[major] = entries
	}

	if _, ok = entries.uniqueNames[name]; ok {
		return Minor{}, errors.New("minor with provided name already registered")
	}
	if len(entries.names)+1 > maxMinorValue {
		return Minor{}, errors.New("minor values exceeded")
	}

	entries.uniqueNames[name] = struct{}{}
	entries.names = append(entries.names, name)

	var desc string
	if len(description) > 0 {
		desc = description[0]
	}
	entries.descriptions = append(entries.descriptions, desc)

	return Minor{value: uint16(len(entries.names)), major: major, own: true}, nil
}
