package class

import (
	"strings"
)

const (
	majorBitSize = 7
	minorBitSize = 10
	indexBitSize = 32 - majorBitSize - minorBitSize

	maxIndexValue = (2 << (indexBitSize - 1)) - 1
	maxMinorValue = (2 << (minorBitSize - 1)) - 1
	maxMajorValue = (2 << (majorBitSize - 1)) - 1

	majorMinorMask = uint32((2<<(majorBitSize+minorBitSize-1) - 1) << indexBitSize)
)

func init() {
	registerClasses()
}

func registerClasses() {
	registerCommonClasses()
	registerConfigClasses()
	registerModelClasses()
	registerRelationClasses()
	registerPathClasses()
	registerResourceClasses()
}

// Class is the 'her' error classification model.
// It is composed of the major, minor and index subclassifications.
// Each subclassification is a different length number, where
// major is composed of 7, minor of 10 and index of 15 bits.
// Major divides the errors into package-level scopes like 'Model',
// 'Relation' or 'Resource'. Minor divides the major into subscopes
// and index is the most precise classification.
type Class uint32

// Index is the lowest level error subclassification unique within
// given minor and major.
func (c Class) Index() Index {
	return c.index()
}

// IsMajor checks if the given class is composed of the provided major 'm'.
func (c Class) IsMajor(m Major) bool {
	return c.major() == m
}

// Major is a single digit major classification.
func (c Class) Major() Major {
	return c.major()
}

// Minor is a double digit minor classification unique within given major.
func (c Class) Minor() Minor {
	return c.minor()
}

// MjrMnrMasked returns the class value masked by the major and minor value only.
func (c Class) MjrMnrMasked() uint32 {
	return uint32(c) & majorMinorMask
}

// String implements fmt.Stringer interface.
func (c Class) String() string {
	var names []string

	names = append(names, strings.Split(c.Major().Name(), " ")...)

	minor := c.minor()
	if !minor.InBounds() {
		return strings.Join(names, "")
	}
	names = append(names, strings.Split(minor.Name(), " ")...)

	index := c.Index()
	if index.Valid() {
		names = append(names, strings.Split(index.Name(), " ")...)
	}
	return strings.Join(names, "")
}

func (c Class) major() Major {
	return Major(c >> (32 - majorBitSize))
}

func (c Class) minor() Minor {
	return Minor{
		value: uint16(uint32(c) >> indexBitSize & maxMinorValue),
		major: c.major(),
		own:   true,
	}
}

func (c Class) index() Index {
	return Index{
		value: uint16(uint32(c) & maxIndexValue),
		minor: c.minor(),
		own:   true,
	}
}
