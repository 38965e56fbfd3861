package gedcom

import (
	"fmt"
	"strings"
)

// Individual is the generator's input for one INDI block. Xrefs are
// assigned by the mapper; the generator never invents them.
type Individual struct {
	Xref       string
	Name       string
	Sex        string
	BirthDate  string
	BirthPlace string
	DeathDate  string
	DeathPlace string
	Occupation string
	Note       string
}

// Family is the generator's input for one FAM block. Member fields
// hold xrefs in pointer form, e.g. "@I1@".
type Family struct {
	Xref          string
	HusbandXref   string
	WifeXref      string
	ChildXrefs    []string
	MarriageDate  string
	MarriagePlace string
	DivorceDate   string
	Note          string
}

// GeneratorConfig holds the header fields written verbatim into HEAD.
type GeneratorConfig struct {
	SourceProgram string
	SubmitterName string
}

// Generate serializes individuals and families into GEDCOM 5.5.1 text.
// Output is always version 5.5.1 regardless of what version the data
// was imported from. Embedded newlines in values become CONT lines at
// the next deeper level.
func Generate(individuals []Individual, families []Family, cfg GeneratorConfig) string {
	var b strings.Builder

	b.WriteString("0 HEAD\n")
	writeValueLine(&b, 1, "SOUR", cfg.SourceProgram)
	b.WriteString("1 GEDC\n")
	b.WriteString("2 VERS 5.5.1\n")
	b.WriteString("1 CHAR UTF-8\n")
	if cfg.SubmitterName != "" {
		writeValueLine(&b, 1, "SUBM", cfg.SubmitterName)
	}

	for _, ind := range individuals {
		fmt.Fprintf(&b, "0 %s INDI\n", ind.Xref)
		writeValueLine(&b, 1, "NAME", ind.Name)
		if ind.Sex != "" {
			writeValueLine(&b, 1, "SEX", ind.Sex)
		}
		writeEvent(&b, "BIRT", ind.BirthDate, ind.BirthPlace)
		writeEvent(&b, "DEAT", ind.DeathDate, ind.DeathPlace)
		if ind.Occupation != "" {
			writeValueLine(&b, 1, "OCCU", ind.Occupation)
		}
		if ind.Note != "" {
			writeValueLine(&b, 1, "NOTE", ind.Note)
		}
	}

	for _, fam := range families {
		fmt.Fprintf(&b, "0 %s FAM\n", fam.Xref)
		if fam.HusbandXref != "" {
			writeValueLine(&b, 1, "HUSB", fam.HusbandXref)
		}
		if fam.WifeXref != "" {
			writeValueLine(&b, 1, "WIFE", fam.WifeXref)
		}
		for _, child := range fam.ChildXrefs {
			writeValueLine(&b, 1, "CHIL", child)
		}
		writeEvent(&b, "MARR", fam.MarriageDate, fam.MarriagePlace)
		writeEvent(&b, "DIV", fam.DivorceDate, "")
		if fam.Note != "" {
			writeValueLine(&b, 1, "NOTE", fam.Note)
		}
	}

	b.WriteString("0 TRLR\n")
	return b.String()
}

// writeEvent emits an event line with nested DATE and PLAC, skipping
// the whole block when both are empty.
func writeEvent(b *strings.Builder, tag, date, place string) {
	if date == "" && place == "" {
		return
	}
	fmt.Fprintf(b, "1 %s\n", tag)
	if date != "" {
		writeValueLine(b, 2, "DATE", date)
	}
	if place != "" {
		writeValueLine(b, 2, "PLAC", place)
	}
}

// writeValueLine emits one tagged line, splitting embedded newlines
// into CONT continuation lines at the next deeper level.
func writeValueLine(b *strings.Builder, level int, tag, value string) {
	segments := strings.Split(value, "\n")
	fmt.Fprintf(b, "%d %s", level, tag)
	if segments[0] != "" {
		b.WriteString(" " + segments[0])
	}
	b.WriteString("\n")
	for _, seg := range segments[1:] {
		fmt.Fprintf(b, "%d CONT", level+1)
		if seg != "" {
			b.WriteString(" " + seg)
		}
		b.WriteString("\n")
	}
}
