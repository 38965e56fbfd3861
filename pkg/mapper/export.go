package mapper

import (
	"fmt"

	"github.com/vamsahq/vamsa/pkg/gedcom"
	"github.com/vamsahq/vamsa/pkg/vamsa"
)

// Export is the outcome of mapping domain entities back into GEDCOM
// records, ready for the generator. It is transient and never
// persisted.
type Export struct {
	Individuals []gedcom.Individual
	Families    []gedcom.Family
}

// union is one unordered spouse pair collapsed from its reciprocal
// SPOUSE edges, exported as one FAM record.
type union struct {
	// first and second in encounter order; the positional fallback
	// for the husband slot depends on it.
	first, second string
	marriage      *vamsa.Relationship
	children      []string
	childSet      map[string]bool
}

// ToGedcom maps people and relationships into individual and family
// records. Each person receives a sequential xref @I<n>@ in input
// order; each union a sequential @F<n>@ in first-encounter order.
// Every person appears as exactly one individual, spouse or not.
func ToGedcom(people []vamsa.Person, relationships []vamsa.Relationship) Export {
	var out Export

	xrefs := make(map[string]string, len(people))
	genders := make(map[string]vamsa.Gender, len(people))

	for i, p := range people {
		xref := fmt.Sprintf("@I%d@", i+1)
		xrefs[p.ID] = xref
		genders[p.ID] = p.Gender
		out.Individuals = append(out.Individuals, individualFromPerson(p, xref))
	}

	unions := collectUnions(relationships, xrefs)

	for i, u := range unions {
		fam := gedcom.Family{Xref: fmt.Sprintf("@F%d@", i+1)}

		husband, wife := u.first, u.second
		// A member with known MALE gender takes the husband slot;
		// otherwise the first-encountered member keeps it.
		if genders[wife] == vamsa.Male && genders[husband] != vamsa.Male {
			husband, wife = wife, husband
		}
		fam.HusbandXref = xrefs[husband]
		fam.WifeXref = xrefs[wife]

		if rel := u.marriage; rel != nil {
			if rel.MarriageDate != nil {
				fam.MarriageDate = gedcom.FormatDate(*rel.MarriageDate)
			}
			if rel.DivorceDate != nil {
				fam.DivorceDate = gedcom.FormatDate(*rel.DivorceDate)
			}
		}

		for _, child := range u.children {
			fam.ChildXrefs = append(fam.ChildXrefs, xrefs[child])
		}
		out.Families = append(out.Families, fam)
	}

	return out
}

// collectUnions partitions SPOUSE edges into unordered pairs, then
// attaches children by scanning PARENT/CHILD edges: a child with a
// parent edge to either union member joins that union once, in
// first-encountered order. A child of parents in different unions
// joins each applicable union.
func collectUnions(
	relationships []vamsa.Relationship,
	xrefs map[string]string,
) []*union {
	var unions []*union
	byPair := make(map[string]*union)
	byMember := make(map[string][]*union)

	for i, rel := range relationships {
		if rel.Type != vamsa.Spouse {
			continue
		}
		if xrefs[rel.PersonID] == "" || xrefs[rel.RelatedPersonID] == "" {
			continue
		}
		key := pairKey(rel.PersonID, rel.RelatedPersonID)
		if _, ok := byPair[key]; ok {
			continue
		}
		u := &union{
			first:    rel.PersonID,
			second:   rel.RelatedPersonID,
			marriage: &relationships[i],
			childSet: make(map[string]bool),
		}
		byPair[key] = u
		unions = append(unions, u)
		byMember[rel.PersonID] = append(byMember[rel.PersonID], u)
		byMember[rel.RelatedPersonID] = append(byMember[rel.RelatedPersonID], u)
	}

	for _, rel := range relationships {
		var parent, child string
		switch rel.Type {
		case vamsa.Parent:
			parent, child = rel.PersonID, rel.RelatedPersonID
		case vamsa.Child:
			parent, child = rel.RelatedPersonID, rel.PersonID
		default:
			continue
		}
		if xrefs[child] == "" {
			continue
		}
		for _, u := range byMember[parent] {
			if u.childSet[child] {
				continue
			}
			u.childSet[child] = true
			u.children = append(u.children, child)
		}
	}

	return unions
}

func individualFromPerson(p vamsa.Person, xref string) gedcom.Individual {
	ind := gedcom.Individual{
		Xref:       xref,
		Name:       gedcom.FormatName(p.FirstName, p.LastName),
		BirthPlace: p.BirthPlace,
		Occupation: p.Profession,
		Note:       p.Bio,
	}
	switch p.Gender {
	case vamsa.Male:
		ind.Sex = "M"
	case vamsa.Female:
		ind.Sex = "F"
	}
	if p.DateOfBirth != nil {
		ind.BirthDate = gedcom.FormatDate(*p.DateOfBirth)
	}
	if p.DateOfPassing != nil {
		ind.DeathDate = gedcom.FormatDate(*p.DateOfPassing)
	}
	return ind
}

// pairKey builds an order-independent key for a spouse pair so the
// reciprocal A->B and B->A edges collapse into one union.
func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}
