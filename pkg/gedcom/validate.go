package gedcom

import "fmt"

// Severity classifies a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationIssue is one advisory finding about a parsed file. Issues
// never block anything by themselves; callers decide whether
// error-severity issues abort an import.
type ValidationIssue struct {
	Severity Severity
	Message  string
}

// Validate runs a read-only structural and referential pass over a
// parsed file. It never mutates the file and never fails.
//
// Error severity: missing header or trailer, duplicate xrefs across
// the combined individual and family population, and family pointers
// (FAMS/FAMC/HUSB/WIFE/CHIL) whose target does not exist.
func Validate(file *File) []ValidationIssue {
	var issues []ValidationIssue

	errf := func(format string, args ...any) {
		issues = append(issues, ValidationIssue{
			Severity: SeverityError,
			Message:  fmt.Sprintf(format, args...),
		})
	}
	warnf := func(format string, args ...any) {
		issues = append(issues, ValidationIssue{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	if file.Header == nil {
		errf("File has no header record")
	}
	if file.Trailer == nil {
		errf("File has no trailer record")
	}

	individuals := make(map[string]bool, len(file.Individuals))
	families := make(map[string]bool, len(file.Families))
	seen := make(map[string]bool)

	for _, rec := range file.Individuals {
		if seen[rec.ID] {
			errf("Duplicate xref @%s@", rec.ID)
		}
		seen[rec.ID] = true
		individuals[rec.ID] = true
	}
	for _, rec := range file.Families {
		if seen[rec.ID] {
			errf("Duplicate xref @%s@", rec.ID)
		}
		seen[rec.ID] = true
		families[rec.ID] = true
	}

	for _, rec := range file.Individuals {
		for _, tag := range []string{"FAMS", "FAMC"} {
			for _, l := range rec.All(tag) {
				target := StripXref(l.Value)
				if !families[target] {
					errf("Broken reference: individual @%s@ %s points to missing family @%s@",
						rec.ID, tag, target)
				}
			}
		}
		if len(rec.All("NAME")) == 0 {
			warnf("Individual @%s@ has no name", rec.ID)
		}
	}

	for _, rec := range file.Families {
		for _, tag := range []string{"HUSB", "WIFE", "CHIL"} {
			for _, l := range rec.All(tag) {
				target := StripXref(l.Value)
				if !individuals[target] {
					errf("Broken reference: family @%s@ %s points to missing individual @%s@",
						rec.ID, tag, target)
				}
			}
		}
		if rec.First("HUSB") == nil && rec.First("WIFE") == nil && rec.First("CHIL") == nil {
			warnf("Family @%s@ has no members", rec.ID)
		}
	}

	return issues
}
