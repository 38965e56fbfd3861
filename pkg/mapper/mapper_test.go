package mapper_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vamsahq/vamsa/pkg/gedcom"
	"github.com/vamsahq/vamsa/pkg/mapper"
	"github.com/vamsahq/vamsa/pkg/vamsa"
)

const familyFile = `0 HEAD
1 GEDC
2 VERS 5.5.1
0 @I1@ INDI
1 NAME John /Smith/
1 SEX M
1 BIRT
2 DATE 15 JAN 1955
2 PLAC Boston
1 OCCU Carpenter
1 NOTE First note.
1 NOTE Second note.
0 @I2@ INDI
1 NAME Mary /Jones/
1 SEX F
0 @I3@ INDI
1 NAME Peter /Smith/
1 SEX M
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
1 MARR
2 DATE 10 JUN 1985
0 TRLR
`

func mustParse(t *testing.T, text string) *gedcom.File {
	t.Helper()
	file, err := gedcom.Parse(text)
	require.NoError(t, err)
	return file
}

func relsOfType(rels []vamsa.Relationship, typ vamsa.RelationshipType) []vamsa.Relationship {
	var res []vamsa.Relationship
	for _, r := range rels {
		if r.Type == typ {
			res = append(res, r)
		}
	}
	return res
}

func TestFromGedcomFamily(t *testing.T) {
	res := mapper.FromGedcom(mustParse(t, familyFile), mapper.Options{})

	require.Len(t, res.People, 3)
	assert.Empty(t, res.Errors)

	john := res.People[0]
	assert.Equal(t, "John", john.FirstName)
	assert.Equal(t, "Smith", john.LastName)
	assert.Equal(t, vamsa.Male, john.Gender)
	assert.Equal(t, "Boston", john.BirthPlace)
	assert.Equal(t, "Carpenter", john.Profession)
	assert.Equal(t, "First note.\n\nSecond note.", john.Bio)
	assert.True(t, john.IsLiving)
	require.NotNil(t, john.DateOfBirth)
	assert.True(t, john.DateOfBirth.Equal(
		time.Date(1955, 1, 15, 0, 0, 0, 0, time.UTC)))

	// IDs are generated, unique, and not GEDCOM xrefs.
	seen := map[string]bool{}
	for _, p := range res.People {
		_, err := uuid.Parse(p.ID)
		require.NoError(t, err)
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}

	spouses := relsOfType(res.Relationships, vamsa.Spouse)
	parents := relsOfType(res.Relationships, vamsa.Parent)
	children := relsOfType(res.Relationships, vamsa.Child)
	require.Len(t, spouses, 2)
	require.Len(t, parents, 2)
	require.Len(t, children, 2)

	// Spouse edges are reciprocal with identical dates.
	assert.Equal(t, spouses[0].PersonID, spouses[1].RelatedPersonID)
	assert.Equal(t, spouses[0].RelatedPersonID, spouses[1].PersonID)
	for _, s := range spouses {
		require.NotNil(t, s.MarriageDate)
		assert.True(t, s.MarriageDate.Equal(
			time.Date(1985, 6, 10, 0, 0, 0, 0, time.UTC)))
		assert.Nil(t, s.DivorceDate)
		assert.True(t, s.IsActive)
	}

	// Each parent-child pair is reciprocal.
	peter := res.People[2]
	for _, p := range parents {
		assert.Equal(t, peter.ID, p.RelatedPersonID)
	}
	for _, c := range children {
		assert.Equal(t, peter.ID, c.PersonID)
	}

	// Relationship ids are unique too.
	for _, r := range res.Relationships {
		assert.False(t, seen[r.ID])
		seen[r.ID] = true
	}
}

func TestFromGedcomMissingNameDefaults(t *testing.T) {
	text := `0 HEAD
0 @I1@ INDI
1 SEX F
0 TRLR
`
	res := mapper.FromGedcom(mustParse(t, text), mapper.Options{SkipValidation: true})

	require.Len(t, res.People, 1)
	assert.Equal(t, "Unknown", res.People[0].FirstName)
	assert.Equal(t, "Unknown", res.People[0].LastName)
	assert.Equal(t, vamsa.Female, res.People[0].Gender)
}

func TestFromGedcomPartialDatesAnchor(t *testing.T) {
	text := `0 HEAD
0 @I1@ INDI
1 NAME A /B/
1 BIRT
2 DATE JUN 1985
1 DEAT
2 DATE 2001
0 TRLR
`
	res := mapper.FromGedcom(mustParse(t, text), mapper.Options{})

	require.Len(t, res.People, 1)
	p := res.People[0]
	require.NotNil(t, p.DateOfBirth)
	assert.True(t, p.DateOfBirth.Equal(
		time.Date(1985, 6, 1, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, p.DateOfPassing)
	assert.True(t, p.DateOfPassing.Equal(
		time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.IsLiving)
}

func TestFromGedcomBrokenReference(t *testing.T) {
	text := `0 HEAD
0 @I1@ INDI
1 NAME A /B/
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I999@
0 TRLR
`
	file := mustParse(t, text)

	res := mapper.FromGedcom(file, mapper.Options{SkipValidation: true})
	var broken int
	for _, e := range res.Errors {
		if e.Type == vamsa.BrokenReference {
			broken++
		}
	}
	assert.GreaterOrEqual(t, broken, 1)

	res = mapper.FromGedcom(file, mapper.Options{
		SkipValidation:          true,
		IgnoreMissingReferences: true,
	})
	for _, e := range res.Errors {
		assert.NotEqual(t, vamsa.BrokenReference, e.Type)
	}
}

func TestFromGedcomValidationChannel(t *testing.T) {
	text := `0 HEAD
0 @I1@ INDI
1 NAME A /B/
1 FAMS @F9@
0 TRLR
`
	file := mustParse(t, text)

	res := mapper.FromGedcom(file, mapper.Options{})
	var structural int
	for _, e := range res.Errors {
		if e.Type == vamsa.InvalidFormat {
			structural++
		}
	}
	assert.GreaterOrEqual(t, structural, 1)

	res = mapper.FromGedcom(file, mapper.Options{SkipValidation: true})
	for _, e := range res.Errors {
		assert.NotEqual(t, vamsa.InvalidFormat, e.Type)
	}
}

func TestFromGedcomDivorce(t *testing.T) {
	text := `0 HEAD
0 @I1@ INDI
1 NAME A /B/
1 SEX M
0 @I2@ INDI
1 NAME C /D/
1 SEX F
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 MARR
2 DATE 10 JUN 1985
1 DIV
2 DATE 5 MAY 1999
0 TRLR
`
	res := mapper.FromGedcom(mustParse(t, text), mapper.Options{})

	spouses := relsOfType(res.Relationships, vamsa.Spouse)
	require.Len(t, spouses, 2)
	for _, s := range spouses {
		assert.False(t, s.IsActive)
		require.NotNil(t, s.DivorceDate)
		assert.True(t, s.DivorceDate.Equal(
			time.Date(1999, 5, 5, 0, 0, 0, 0, time.UTC)))
	}
}

func TestFromGedcomSingleParentFamily(t *testing.T) {
	text := `0 HEAD
0 @I1@ INDI
1 NAME A /B/
1 SEX F
0 @I2@ INDI
1 NAME C /B/
0 @F1@ FAM
1 WIFE @I1@
1 CHIL @I2@
0 TRLR
`
	res := mapper.FromGedcom(mustParse(t, text), mapper.Options{})

	assert.Len(t, relsOfType(res.Relationships, vamsa.Spouse), 0)
	assert.Len(t, relsOfType(res.Relationships, vamsa.Parent), 1)
	assert.Len(t, relsOfType(res.Relationships, vamsa.Child), 1)
	assert.Empty(t, res.Errors)
}

func TestFromGedcomEmptyFamily(t *testing.T) {
	text := `0 HEAD
0 @I1@ INDI
1 NAME A /B/
0 @F1@ FAM
1 HUSB @I1@
0 TRLR
`
	res := mapper.FromGedcom(mustParse(t, text), mapper.Options{SkipValidation: true})

	require.Len(t, res.Errors, 1)
	assert.Equal(t, vamsa.MappingFailure, res.Errors[0].Type)
	assert.Empty(t, res.Relationships)
}

func TestFromGedcomRepeatedImportsDiffer(t *testing.T) {
	file := mustParse(t, familyFile)

	first := mapper.FromGedcom(file, mapper.Options{})
	second := mapper.FromGedcom(file, mapper.Options{})

	for i := range first.People {
		assert.NotEqual(t, first.People[i].ID, second.People[i].ID)
	}
}
