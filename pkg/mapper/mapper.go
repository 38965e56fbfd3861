// Package mapper translates between parsed GEDCOM records and the
// domain model, in both directions. It owns identity generation and
// the broken-reference policy. The package is pure: every call is
// independent and the caller owns the result.
package mapper

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vamsahq/vamsa/pkg/gedcom"
	"github.com/vamsahq/vamsa/pkg/vamsa"
)

// Options control recovery behavior during import mapping.
type Options struct {
	// IgnoreMissingReferences drops unresolved pointer edges silently
	// instead of reporting broken_reference errors.
	IgnoreMissingReferences bool
	// SkipValidation bypasses the structural-error channel, for
	// recovering partially malformed files.
	SkipValidation bool
}

// Result is the outcome of mapping one GEDCOM file into the domain.
type Result struct {
	People        []vamsa.Person
	Relationships []vamsa.Relationship
	Errors        []vamsa.MappingError
}

// FromGedcom maps a parsed file into people and relationships. Every
// person and relationship receives a freshly generated UUID; GEDCOM
// xrefs are used only inside the call to resolve pointers. Problems
// accumulate in Result.Errors and never abort remaining records.
func FromGedcom(file *gedcom.File, opts Options) Result {
	var res Result

	if !opts.SkipValidation {
		for _, issue := range gedcom.Validate(file) {
			if issue.Severity != gedcom.SeverityError {
				continue
			}
			res.Errors = append(res.Errors, vamsa.MappingError{
				Type:    vamsa.InvalidFormat,
				Message: issue.Message,
			})
		}
	}

	// xref -> generated id. Repeated imports never collide on reused
	// low xrefs because ids are minted per call.
	byXref := make(map[string]string, len(file.Individuals))

	for _, raw := range file.Individuals {
		person := personFromRecord(gedcom.ParseIndividual(raw))
		byXref[raw.ID] = person.ID
		res.People = append(res.People, person)
	}

	for _, raw := range file.Families {
		mapFamily(&res, gedcom.ParseFamily(raw), byXref, opts)
	}

	return res
}

func personFromRecord(ind gedcom.ParsedIndividual) vamsa.Person {
	person := vamsa.Person{
		ID:         uuid.NewString(),
		FirstName:  vamsa.UnknownName,
		LastName:   vamsa.UnknownName,
		BirthPlace: ind.BirthPlace,
		Profession: ind.Occupation,
		Bio:        strings.Join(ind.Notes, "\n\n"),
	}

	if len(ind.Names) > 0 {
		if first := ind.Names[0].First; first != "" {
			person.FirstName = first
		}
		if last := ind.Names[0].Last; last != "" {
			person.LastName = last
		}
	}

	switch ind.Sex {
	case "M":
		person.Gender = vamsa.Male
	case "F":
		person.Gender = vamsa.Female
	}

	person.DateOfBirth = gedcom.AnchorDate(ind.BirthDate)
	person.DateOfPassing = gedcom.AnchorDate(ind.DeathDate)
	person.IsLiving = person.DateOfPassing == nil

	return person
}

// mapFamily resolves one family's pointers and emits its relationship
// edges. A resolved husband and wife yield two reciprocal SPOUSE edges
// carrying the family's dates. Each resolved child, paired with each
// resolved parent independently (single-parent families included),
// yields one PARENT edge and its reciprocal CHILD edge.
func mapFamily(
	res *Result,
	fam gedcom.ParsedFamily,
	byXref map[string]string,
	opts Options,
) {
	resolve := func(xref, role string) string {
		if xref == "" {
			return ""
		}
		id, ok := byXref[xref]
		if !ok {
			if !opts.IgnoreMissingReferences {
				res.Errors = append(res.Errors, vamsa.MappingError{
					Type: vamsa.BrokenReference,
					Message: fmt.Sprintf(
						"Family @%s@ %s references missing individual @%s@",
						fam.ID, role, xref),
				})
			}
			return ""
		}
		return id
	}

	husband := resolve(fam.Husband, "HUSB")
	wife := resolve(fam.Wife, "WIFE")

	var children []string
	for _, xref := range fam.Children {
		if id := resolve(xref, "CHIL"); id != "" {
			children = append(children, id)
		}
	}

	marriage := gedcom.AnchorDate(fam.MarriageDate)
	divorce := gedcom.AnchorDate(fam.DivorceDate)

	edges := 0
	if husband != "" && wife != "" {
		for _, pair := range [][2]string{{husband, wife}, {wife, husband}} {
			res.Relationships = append(res.Relationships, vamsa.Relationship{
				ID:              uuid.NewString(),
				PersonID:        pair[0],
				RelatedPersonID: pair[1],
				Type:            vamsa.Spouse,
				MarriageDate:    marriage,
				DivorceDate:     divorce,
				IsActive:        divorce == nil,
			})
			edges++
		}
	}

	for _, child := range children {
		for _, parent := range []string{husband, wife} {
			if parent == "" {
				continue
			}
			res.Relationships = append(res.Relationships,
				vamsa.Relationship{
					ID:              uuid.NewString(),
					PersonID:        parent,
					RelatedPersonID: child,
					Type:            vamsa.Parent,
					IsActive:        true,
				},
				vamsa.Relationship{
					ID:              uuid.NewString(),
					PersonID:        child,
					RelatedPersonID: parent,
					Type:            vamsa.Child,
					IsActive:        true,
				},
			)
			edges += 2
		}
	}

	if edges == 0 {
		res.Errors = append(res.Errors, vamsa.MappingError{
			Type: vamsa.MappingFailure,
			Message: fmt.Sprintf(
				"Family @%s@ produced no relationships: no resolvable spouse pair or parent-child link",
				fam.ID),
		})
	}
}
