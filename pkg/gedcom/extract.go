package gedcom

import "strings"

// ParsedIndividual is a typed projection of one INDI record. It is
// derived on demand from the RawRecord and never cached.
type ParsedIndividual struct {
	ID         string
	Names      []Name
	Sex        string
	BirthDate  string
	BirthPlace string
	DeathDate  string
	DeathPlace string
	Occupation string
	Notes      []string
	// Family pointers with order and multiplicity preserved, xrefs
	// stored without the '@' wrapper.
	FamiliesAsSpouse []string
	FamiliesAsChild  []string
}

// ParsedFamily is a typed projection of one FAM record.
type ParsedFamily struct {
	ID            string
	Husband       string
	Wife          string
	Children      []string
	MarriageDate  string
	MarriagePlace string
	DivorceDate   string
	Notes         []string
}

// ParseIndividual projects a raw INDI record. NAME values run through
// ParseName in order; BIRT/DEAT read their nested DATE (through
// ParseDate) and PLAC; NOTE values arrive already CONT-folded and blank
// ones are dropped.
func ParseIndividual(raw *RawRecord) ParsedIndividual {
	ind := ParsedIndividual{ID: raw.ID}

	for _, l := range raw.All("NAME") {
		ind.Names = append(ind.Names, ParseName(l.Value))
	}
	ind.Sex = raw.FirstValue("SEX")
	ind.Occupation = raw.FirstValue("OCCU")

	if birt := raw.First("BIRT"); birt != nil {
		ind.BirthDate = ParseDate(birt.ChildValue("DATE"))
		ind.BirthPlace = birt.ChildValue("PLAC")
	}
	if deat := raw.First("DEAT"); deat != nil {
		ind.DeathDate = ParseDate(deat.ChildValue("DATE"))
		ind.DeathPlace = deat.ChildValue("PLAC")
	}

	ind.Notes = collectNotes(raw)
	for _, l := range raw.All("FAMS") {
		ind.FamiliesAsSpouse = append(ind.FamiliesAsSpouse, StripXref(l.Value))
	}
	for _, l := range raw.All("FAMC") {
		ind.FamiliesAsChild = append(ind.FamiliesAsChild, StripXref(l.Value))
	}
	return ind
}

// ParseFamily projects a raw FAM record. HUSB and WIFE take the first
// occurrence only; CHIL keeps all occurrences in order.
func ParseFamily(raw *RawRecord) ParsedFamily {
	fam := ParsedFamily{ID: raw.ID}

	fam.Husband = StripXref(raw.FirstValue("HUSB"))
	fam.Wife = StripXref(raw.FirstValue("WIFE"))
	for _, l := range raw.All("CHIL") {
		fam.Children = append(fam.Children, StripXref(l.Value))
	}

	if marr := raw.First("MARR"); marr != nil {
		fam.MarriageDate = ParseDate(marr.ChildValue("DATE"))
		fam.MarriagePlace = marr.ChildValue("PLAC")
	}
	if div := raw.First("DIV"); div != nil {
		fam.DivorceDate = ParseDate(div.ChildValue("DATE"))
	}

	fam.Notes = collectNotes(raw)
	return fam
}

func collectNotes(raw *RawRecord) []string {
	var notes []string
	for _, l := range raw.All("NOTE") {
		if strings.TrimSpace(l.Value) == "" {
			continue
		}
		notes = append(notes, l.Value)
	}
	return notes
}
