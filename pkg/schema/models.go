// Package schema provides database schema models for Vamsa. The
// models mirror the domain entities in pkg/vamsa plus bookkeeping
// columns the import/export pipeline needs.
package schema

import "time"

// Person is one stored family tree member. Seq preserves insertion
// order so exports reproduce the order people were imported in.
type Person struct {
	ID            string `gorm:"type:uuid;primaryKey"`
	FirstName     string `gorm:"size:255;not null"`
	LastName      string `gorm:"size:255;not null"`
	Gender        string `gorm:"size:10"`
	DateOfBirth   *time.Time
	DateOfPassing *time.Time
	BirthPlace    string `gorm:"size:255"`
	Profession    string `gorm:"size:255"`
	Bio           string `gorm:"type:text"`
	IsLiving      bool
	Seq           int64 `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName returns the PostgreSQL table name for Person.
func (Person) TableName() string { return "people" }

// Relationship is one stored directed edge between two people.
type Relationship struct {
	ID              string `gorm:"type:uuid;primaryKey"`
	PersonID        string `gorm:"type:uuid;index;not null"`
	RelatedPersonID string `gorm:"type:uuid;index;not null"`
	Type            string `gorm:"size:10;not null"`
	MarriageDate    *time.Time
	DivorceDate     *time.Time
	IsActive        bool
	Seq             int64 `gorm:"index"`
	CreatedAt       time.Time
}

// TableName returns the PostgreSQL table name for Relationship.
func (Relationship) TableName() string { return "relationships" }

// ImportLog records one import run: what file was read, what came out
// of it, and every error the mapper accumulated.
type ImportLog struct {
	ID            string `gorm:"type:uuid;primaryKey"`
	FileName      string `gorm:"size:255"`
	GedcomVersion string `gorm:"size:10"`
	Individuals   int
	Families      int
	People        int
	Relationships int
	ErrorCount    int
	Errors        string `gorm:"type:text"`
	CreatedAt     time.Time
}

// TableName returns the PostgreSQL table name for ImportLog.
func (ImportLog) TableName() string { return "import_logs" }
