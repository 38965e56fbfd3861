// Package gedcom implements parsing, validation and generation of
// GEDCOM 5.5.1/7.0 interchange text. It is a pure package: no file
// system, no network, no shared state between calls.
//
// The package works on three representations:
//
//   - LineRecord: one physical line of a GEDCOM file, with its nested
//     sub-lines attached as children.
//   - RawRecord: a top-level INDI or FAM record with its level-1 lines
//     bucketed by tag, order and multiplicity preserved.
//   - ParsedIndividual / ParsedFamily: typed projections of a RawRecord,
//     derived on demand and never cached.
package gedcom

// Tags recognized at the top level and inside records.
const (
	tagHead = "HEAD"
	tagTrlr = "TRLR"
	tagIndi = "INDI"
	tagFam  = "FAM"
	tagCont = "CONT"
	tagConc = "CONC"
)

// DefaultVersion is assumed when a header does not declare GEDC/VERS.
const DefaultVersion = "5.5.1"

// LineRecord is one physical GEDCOM line: `<level> [<xref>] <tag> [<value>]`.
// Children holds the lines nested directly under it (level + 1).
type LineRecord struct {
	Level    int
	Tag      string
	Value    string
	Pointer  string
	Children []*LineRecord
}

// First returns the first child line with the given tag, or nil.
func (l *LineRecord) First(tag string) *LineRecord {
	for _, ch := range l.Children {
		if ch.Tag == tag {
			return ch
		}
	}
	return nil
}

// ChildValue returns the value of the first child line with the given
// tag, or the empty string.
func (l *LineRecord) ChildValue(tag string) string {
	if ch := l.First(tag); ch != nil {
		return ch.Value
	}
	return ""
}

// RawRecord is a top-level record (HEAD, TRLR, INDI or FAM) with its
// level-1 lines bucketed by tag. A tag maps to an ordered list because
// GEDCOM permits repetition of almost every tag (NAME, FAMS, NOTE...).
type RawRecord struct {
	// ID is the record's xref with the surrounding '@' stripped,
	// e.g. "I1" for `0 @I1@ INDI`. Empty for HEAD and TRLR.
	ID  string
	Tag string
	// Tags maps a level-1 tag name to its lines in file order.
	Tags map[string][]*LineRecord
}

// All returns the lines for tag in file order. The result may be empty.
func (r *RawRecord) All(tag string) []*LineRecord {
	return r.Tags[tag]
}

// First returns the first line for tag, or nil.
func (r *RawRecord) First(tag string) *LineRecord {
	lines := r.Tags[tag]
	if len(lines) == 0 {
		return nil
	}
	return lines[0]
}

// FirstValue returns the value of the first line for tag, or "".
func (r *RawRecord) FirstValue(tag string) string {
	if l := r.First(tag); l != nil {
		return l.Value
	}
	return ""
}

// File is the result of parsing one GEDCOM document. Records are
// immutable once produced by Parse.
type File struct {
	Header  *RawRecord
	Trailer *RawRecord

	Individuals []*RawRecord
	Families    []*RawRecord

	// Charset is the header CHAR value, e.g. "UTF-8".
	Charset string
	// Version is the raw GEDC/VERS value from the header.
	Version string
	// GedcomVersion is Version, or DefaultVersion when the header
	// declares none. It gates date-format expectations: ISO dates are
	// legal under 7.0.
	GedcomVersion string
}
