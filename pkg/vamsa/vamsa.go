// Package vamsa defines the domain entities of the family tree:
// people and the relationships between them. Entities carry generated
// UUIDs that are independent of any interchange format's identifiers,
// so repeated imports from different source systems never collide.
package vamsa

import "time"

// UnknownName fills in for a missing first or last name.
const UnknownName = "Unknown"

// Gender of a person. Empty means not recorded.
type Gender string

const (
	Male   Gender = "MALE"
	Female Gender = "FEMALE"
)

// RelationshipType classifies a directed relationship edge.
type RelationshipType string

const (
	// Spouse edges always come in reciprocal pairs with identical dates.
	Spouse RelationshipType = "SPOUSE"
	// Parent points from parent to child.
	Parent RelationshipType = "PARENT"
	// Child points from child to parent, reciprocal to a Parent edge.
	Child RelationshipType = "CHILD"
)

// Person is one member of the family tree.
type Person struct {
	ID            string
	FirstName     string
	LastName      string
	Gender        Gender
	DateOfBirth   *time.Time
	DateOfPassing *time.Time
	BirthPlace    string
	Profession    string
	Bio           string
	// IsLiving is true exactly when DateOfPassing is absent.
	IsLiving bool
}

// Relationship is a directed edge between two people.
type Relationship struct {
	ID              string
	PersonID        string
	RelatedPersonID string
	Type            RelationshipType
	MarriageDate    *time.Time
	DivorceDate     *time.Time
	// IsActive is true exactly when DivorceDate is absent.
	IsActive bool
}

// MappingErrorType classifies problems found while mapping between
// interchange records and domain entities.
type MappingErrorType string

const (
	// BrokenReference marks a pointer to a record that does not exist.
	BrokenReference MappingErrorType = "broken_reference"
	// InvalidFormat marks structural problems reported by validation.
	InvalidFormat MappingErrorType = "invalid_format"
	// MappingFailure marks records too incomplete to produce entities.
	MappingFailure MappingErrorType = "mapping_error"
)

// MappingError is one recoverable problem accumulated during mapping.
// Mapping never aborts on these; they are data for the caller.
type MappingError struct {
	Type    MappingErrorType
	Message string
}
