package mapper_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vamsahq/vamsa/pkg/mapper"
	"github.com/vamsahq/vamsa/pkg/vamsa"
)

func spousePair(a, b vamsa.Person, marriage, divorce *time.Time) []vamsa.Relationship {
	return []vamsa.Relationship{
		{
			ID: "r-" + a.ID + "-" + b.ID, PersonID: a.ID, RelatedPersonID: b.ID,
			Type: vamsa.Spouse, MarriageDate: marriage, DivorceDate: divorce,
			IsActive: divorce == nil,
		},
		{
			ID: "r-" + b.ID + "-" + a.ID, PersonID: b.ID, RelatedPersonID: a.ID,
			Type: vamsa.Spouse, MarriageDate: marriage, DivorceDate: divorce,
			IsActive: divorce == nil,
		},
	}
}

func parentChild(parent, child vamsa.Person) []vamsa.Relationship {
	return []vamsa.Relationship{
		{
			ID: "p-" + parent.ID + "-" + child.ID, PersonID: parent.ID,
			RelatedPersonID: child.ID, Type: vamsa.Parent, IsActive: true,
		},
		{
			ID: "c-" + child.ID + "-" + parent.ID, PersonID: child.ID,
			RelatedPersonID: parent.ID, Type: vamsa.Child, IsActive: true,
		},
	}
}

func TestToGedcomFamily(t *testing.T) {
	birth := time.Date(1955, 1, 15, 0, 0, 0, 0, time.UTC)
	marriage := time.Date(1985, 6, 10, 0, 0, 0, 0, time.UTC)

	john := vamsa.Person{
		ID: "p1", FirstName: "John", LastName: "Smith",
		Gender: vamsa.Male, DateOfBirth: &birth,
		BirthPlace: "Boston", Profession: "Carpenter",
		IsLiving: true,
	}
	mary := vamsa.Person{
		ID: "p2", FirstName: "Mary", LastName: "Jones",
		Gender: vamsa.Female, IsLiving: true,
	}
	peter := vamsa.Person{
		ID: "p3", FirstName: "Peter", LastName: "Smith",
		Gender: vamsa.Male, IsLiving: true,
	}

	rels := spousePair(john, mary, &marriage, nil)
	rels = append(rels, parentChild(john, peter)...)
	rels = append(rels, parentChild(mary, peter)...)

	exp := mapper.ToGedcom([]vamsa.Person{john, mary, peter}, rels)

	require.Len(t, exp.Individuals, 3)
	require.Len(t, exp.Families, 1)

	assert.Equal(t, "@I1@", exp.Individuals[0].Xref)
	assert.Equal(t, "John /Smith/", exp.Individuals[0].Name)
	assert.Equal(t, "M", exp.Individuals[0].Sex)
	assert.Equal(t, "15 JAN 1955", exp.Individuals[0].BirthDate)
	assert.Equal(t, "Boston", exp.Individuals[0].BirthPlace)
	assert.Equal(t, "Carpenter", exp.Individuals[0].Occupation)

	fam := exp.Families[0]
	assert.Equal(t, "@F1@", fam.Xref)
	assert.Equal(t, "@I1@", fam.HusbandXref)
	assert.Equal(t, "@I2@", fam.WifeXref)
	assert.Equal(t, []string{"@I3@"}, fam.ChildXrefs)
	assert.Equal(t, "10 JUN 1985", fam.MarriageDate)
	assert.Empty(t, fam.DivorceDate)
}

func TestToGedcomXrefWellFormedness(t *testing.T) {
	people := []vamsa.Person{
		{ID: "a", FirstName: "A", LastName: "X", IsLiving: true},
		{ID: "b", FirstName: "B", LastName: "X", IsLiving: true},
		{ID: "c", FirstName: "C", LastName: "X", IsLiving: true},
	}
	rels := spousePair(people[0], people[1], nil, nil)

	exp := mapper.ToGedcom(people, rels)

	indRx := regexp.MustCompile(`^@I\d+@$`)
	famRx := regexp.MustCompile(`^@F\d+@$`)

	seen := map[string]bool{}
	for _, ind := range exp.Individuals {
		assert.Regexp(t, indRx, ind.Xref)
		assert.False(t, seen[ind.Xref])
		seen[ind.Xref] = true
	}
	for _, fam := range exp.Families {
		assert.Regexp(t, famRx, fam.Xref)
		assert.False(t, seen[fam.Xref])
		seen[fam.Xref] = true
	}
}

func TestToGedcomRoundTripCardinality(t *testing.T) {
	res := mapper.FromGedcom(mustParse(t, familyFile), mapper.Options{})
	exp := mapper.ToGedcom(res.People, res.Relationships)

	assert.Len(t, exp.Individuals, len(res.People))
	assert.Len(t, exp.Families, 1)
	assert.Len(t, exp.Families[0].ChildXrefs, 1)
}

func TestToGedcomGenderSlots(t *testing.T) {
	wife := vamsa.Person{
		ID: "w", FirstName: "Mary", LastName: "Jones",
		Gender: vamsa.Female, IsLiving: true,
	}
	husband := vamsa.Person{
		ID: "h", FirstName: "John", LastName: "Smith",
		Gender: vamsa.Male, IsLiving: true,
	}

	// Wife first in input order; the MALE member still takes the
	// husband slot.
	exp := mapper.ToGedcom(
		[]vamsa.Person{wife, husband},
		spousePair(wife, husband, nil, nil),
	)

	require.Len(t, exp.Families, 1)
	assert.Equal(t, "@I2@", exp.Families[0].HusbandXref)
	assert.Equal(t, "@I1@", exp.Families[0].WifeXref)
}

func TestToGedcomPositionalFallback(t *testing.T) {
	a := vamsa.Person{ID: "a", FirstName: "Alex", LastName: "Gray", IsLiving: true}
	b := vamsa.Person{ID: "b", FirstName: "Blake", LastName: "Gray", IsLiving: true}

	// No known gender: the first-encountered member takes the husband
	// slot.
	exp := mapper.ToGedcom([]vamsa.Person{a, b}, spousePair(a, b, nil, nil))

	require.Len(t, exp.Families, 1)
	assert.Equal(t, "@I1@", exp.Families[0].HusbandXref)
	assert.Equal(t, "@I2@", exp.Families[0].WifeXref)
}

func TestToGedcomSameSexUnion(t *testing.T) {
	a := vamsa.Person{
		ID: "a", FirstName: "Tom", LastName: "Lane",
		Gender: vamsa.Male, IsLiving: true,
	}
	b := vamsa.Person{
		ID: "b", FirstName: "Jim", LastName: "Lane",
		Gender: vamsa.Male, IsLiving: true,
	}

	exp := mapper.ToGedcom([]vamsa.Person{a, b}, spousePair(a, b, nil, nil))

	require.Len(t, exp.Families, 1)
	assert.Equal(t, "@I1@", exp.Families[0].HusbandXref)
	assert.Equal(t, "@I2@", exp.Families[0].WifeXref)
}

func TestToGedcomChildInMultipleUnions(t *testing.T) {
	dad := vamsa.Person{ID: "d", FirstName: "D", LastName: "X", Gender: vamsa.Male, IsLiving: true}
	mom1 := vamsa.Person{ID: "m1", FirstName: "M1", LastName: "X", Gender: vamsa.Female, IsLiving: true}
	mom2 := vamsa.Person{ID: "m2", FirstName: "M2", LastName: "X", Gender: vamsa.Female, IsLiving: true}
	kid := vamsa.Person{ID: "k", FirstName: "K", LastName: "X", IsLiving: true}

	var rels []vamsa.Relationship
	rels = append(rels, spousePair(dad, mom1, nil, nil)...)
	rels = append(rels, spousePair(dad, mom2, nil, nil)...)
	rels = append(rels, parentChild(dad, kid)...)
	rels = append(rels, parentChild(mom2, kid)...)

	exp := mapper.ToGedcom([]vamsa.Person{dad, mom1, mom2, kid}, rels)

	require.Len(t, exp.Families, 2)
	// The child has a parent in both unions, so it appears in both,
	// once each.
	assert.Equal(t, []string{"@I4@"}, exp.Families[0].ChildXrefs)
	assert.Equal(t, []string{"@I4@"}, exp.Families[1].ChildXrefs)
}

func TestToGedcomUnmarriedPersonStillExported(t *testing.T) {
	solo := vamsa.Person{ID: "s", FirstName: "Solo", LastName: "Only", IsLiving: true}

	exp := mapper.ToGedcom([]vamsa.Person{solo}, nil)

	require.Len(t, exp.Individuals, 1)
	assert.Empty(t, exp.Families)
}

func TestToGedcomDivorceDates(t *testing.T) {
	marriage := time.Date(1985, 6, 10, 0, 0, 0, 0, time.UTC)
	divorce := time.Date(1999, 5, 5, 0, 0, 0, 0, time.UTC)

	a := vamsa.Person{ID: "a", FirstName: "A", LastName: "X", Gender: vamsa.Male, IsLiving: true}
	b := vamsa.Person{ID: "b", FirstName: "B", LastName: "X", Gender: vamsa.Female, IsLiving: true}

	exp := mapper.ToGedcom([]vamsa.Person{a, b}, spousePair(a, b, &marriage, &divorce))

	require.Len(t, exp.Families, 1)
	assert.Equal(t, "10 JUN 1985", exp.Families[0].MarriageDate)
	assert.Equal(t, "5 MAY 1999", exp.Families[0].DivorceDate)
}
