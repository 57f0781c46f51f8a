package class

import (
	"errors"
	"sync"
)

var majors = &majorsContainer{uniqueNames: map[string]struct{}{}}

// Major is a 7 bit top level error classification.
type Major uint8

// Description gets the major registered description.
func (m Major) Description() string {
	if !m.valid() {
		return ""
	}
	return majors.descriptions[m.containerIndex()]
}

// InBounds checks if the major value is not greater than the allowed size.
func (m Major) InBounds() bool {
	return (m >> majorBitSize) == 0
}

// MustRegisterMinor registers the minor classification for given Major 'm',
// unique 'name' and an optional 'description'. Panics on invalid major or
// duplicated name.
func (m Major) MustRegisterMinor(name string, description ...string) Minor {
	minor, err := m.RegisterMinor(name, description...)
	if err != nil {
		panic(err)
	}
	return minor
}

// Name returns the major registered name.
func (m Major) Name() string {
	if !m.valid() {
		return ""
	}
	return majors.names[m.containerIndex()]
}

// RegisterMinor registers the minor classification for given Major 'm',
// unique 'name' and an optional 'description'.
func (m Major) RegisterMinor(name string, description ...string) (Minor, error) {
	if !m.valid() {
		return Minor{}, errors.New("major out of bounds")
	}
	return minors.new(m, name, description...)
}

// Valid checks if the major is registered and in bounds.
func (m Major) Valid() bool {
	return m.valid()
}

func (m Major) containerIndex() int {
	return int(m) - 1
}

func (m Major) valid() bool {
	return m.InBounds() && m != 0 && int(m) <= len(majors.names)
}

// MustRegisterMajor registers the major classification with given unique
// 'name' and an optional 'description'. Panics on error.
func MustRegisterMajor(name string, description ...string) Major {
	m, err := RegisterMajor(name, description...)
	if err != nil {
		panic(err)
	}
	return m
}

// RegisterMajor registers the major classification with given unique 'name'
// and an optional 'description'.
func RegisterMajor(name string, description ...string) (Major, error) {
	return majors.new(name, description...)
}

type majorsContainer struct {
	uniqueNames  map[string]struct{}
	names        []string
	descriptions []string
	lock         sync.Mutex
}

func (m *majorsContainer) new(name string, description ...string) (Major, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if _, ok := m.uniqueNames[name]; ok {
		return Major(0), errors.New("major with provided name already registered")
	}
	if len(m.names)+1 > maxMajorValue {
		return Major(0), errors.New("major values exceeded")
	}

	m.uniqueNames[name] = struct{}{}
	m.names = append(m.names, name)

	var desc string
	if len(description) > 0 {
		desc = description[0]
	}
	m.descriptions = append(m.descriptions, desc)

	return Major(len(m.names)), nil
}
