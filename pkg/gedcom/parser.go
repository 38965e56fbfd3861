package gedcom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for structurally unusable documents. Everything else
// a file can get wrong is recoverable and reported through Validate or
// the mapper's error channel.
var (
	ErrNoHeader  = errors.New("gedcom: missing HEAD record")
	ErrNoTrailer = errors.New("gedcom: missing TRLR record")
)

// Parse turns raw GEDCOM text into a File. Lines may end with LF or
// CRLF. Continuation lines are folded into their parent value: CONT
// appends "\n" plus the value, CONC appends the value directly.
//
// Parse fails only when the document lacks a HEAD or a TRLR record;
// all other irregularities survive parsing and surface later.
func Parse(text string) (*File, error) {
	file := &File{GedcomVersion: DefaultVersion}

	// Open node per depth. open[n] is the line a level-(n+1) line
	// nests under.
	var open []*LineRecord
	var roots []*LineRecord

	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSuffix(raw, "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}

		line, ok := parseLine(raw)
		if !ok {
			continue
		}

		// Continuations extend the value of the open line one level
		// up; they never become nodes themselves.
		if line.Tag == tagCont || line.Tag == tagConc {
			if target := openAt(open, line.Level-1); target != nil {
				if line.Tag == tagCont {
					target.Value += "\n" + line.Value
				} else {
					target.Value += line.Value
				}
			}
			continue
		}

		if line.Level == 0 {
			roots = append(roots, line)
			open = open[:0]
			open = append(open, line)
			continue
		}

		parent := openAt(open, line.Level-1)
		if parent == nil {
			// Orphan depth jump; skip rather than guess a parent.
			continue
		}
		parent.Children = append(parent.Children, line)
		open = open[:line.Level]
		open = append(open, line)
	}

	for _, root := range roots {
		rec := newRawRecord(root)
		switch root.Tag {
		case tagHead:
			file.Header = rec
		case tagTrlr:
			file.Trailer = rec
		case tagIndi:
			file.Individuals = append(file.Individuals, rec)
		case tagFam:
			file.Families = append(file.Families, rec)
		}
	}

	if file.Header == nil {
		return nil, ErrNoHeader
	}
	if file.Trailer == nil {
		return nil, ErrNoTrailer
	}

	readHeader(file)
	return file, nil
}

// parseLine splits one physical line into its level, optional xref
// pointer, tag and value. Returns false for lines that do not start
// with a numeric level.
func parseLine(raw string) (*LineRecord, bool) {
	raw = strings.TrimLeft(raw, " \t")

	levelTok, rest, _ := strings.Cut(raw, " ")
	level, err := strconv.Atoi(levelTok)
	if err != nil || level < 0 {
		return nil, false
	}

	line := &LineRecord{Level: level}

	tok, rest, _ := strings.Cut(rest, " ")
	if strings.HasPrefix(tok, "@") && strings.HasSuffix(tok, "@") && len(tok) > 1 {
		line.Pointer = strings.Trim(tok, "@")
		tok, rest, _ = strings.Cut(rest, " ")
	}
	if tok == "" {
		return nil, false
	}
	line.Tag = strings.ToUpper(tok)
	line.Value = rest
	return line, true
}

// openAt returns the open line at the given depth, or nil when the
// stack is shallower.
func openAt(open []*LineRecord, depth int) *LineRecord {
	if depth < 0 || depth >= len(open) {
		return nil
	}
	return open[depth]
}

func newRawRecord(root *LineRecord) *RawRecord {
	rec := &RawRecord{
		ID:   root.Pointer,
		Tag:  root.Tag,
		Tags: make(map[string][]*LineRecord),
	}
	for _, ch := range root.Children {
		rec.Tags[ch.Tag] = append(rec.Tags[ch.Tag], ch)
	}
	return rec
}

// readHeader pulls charset and version information out of HEAD.
func readHeader(file *File) {
	file.Charset = file.Header.FirstValue("CHAR")
	if gedc := file.Header.First("GEDC"); gedc != nil {
		file.Version = gedc.ChildValue("VERS")
	}
	if file.Version != "" {
		file.GedcomVersion = file.Version
	}
}

// StripXref removes the surrounding '@' from a pointer value, turning
// "@I1@" into "I1". Values without the wrapper pass through unchanged.
func StripXref(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "@") && strings.HasSuffix(s, "@") && len(s) > 1 {
		return strings.Trim(s, "@")
	}
	return s
}

// WrapXref turns an id like "I1" into the pointer form "@I1@".
func WrapXref(id string) string {
	return fmt.Sprintf("@%s@", id)
}
