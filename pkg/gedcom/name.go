package gedcom

import "strings"

// Name is a personal name split into its GEDCOM components. Empty
// fields mean the component is absent.
type Name struct {
	First string
	Last  string
}

// ParseName splits a GEDCOM NAME value. The surname is the substring
// between the first pair of slashes; everything outside the slashes is
// the given name, trimmed only at the outer ends so internal spacing
// survives. A value without slashes is all given name.
func ParseName(value string) Name {
	if value == "" {
		return Name{}
	}

	open := strings.Index(value, "/")
	if open < 0 {
		return Name{First: strings.TrimSpace(value)}
	}

	rest := value[open+1:]
	closing := strings.Index(rest, "/")
	if closing < 0 {
		// Unterminated surname: treat the slash tail as the surname.
		return Name{
			First: strings.TrimSpace(value[:open]),
			Last:  strings.TrimSpace(rest),
		}
	}

	outside := value[:open] + rest[closing+1:]
	return Name{
		First: strings.TrimSpace(outside),
		Last:  strings.TrimSpace(rest[:closing]),
	}
}

// FormatName renders name components back into GEDCOM form,
// "First /Last/".
func FormatName(first, last string) string {
	return first + " /" + last + "/"
}
