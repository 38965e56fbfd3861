package gedcom

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// months maps GEDCOM month abbreviations to their number. SEPT is a
// common nonstandard alias that real files use.
var months = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"SEPT": time.September, "OCT": time.October, "NOV": time.November,
	"DEC": time.December,
}

var (
	isoDateRx = regexp.MustCompile(`^\d{4}(-\d{2}(-\d{2})?)?$`)
	yearRx    = regexp.MustCompile(`^\d{3,4}$`)
)

// ParseDate converts a GEDCOM date value into a canonical ISO-like
// string: "YYYY-MM-DD", "YYYY-MM" or "YYYY" depending on the precision
// the value carries. Qualifiers ABT/BEF/AFT are stripped; a
// "BET a AND b" range keeps only its first date. ISO values (legal in
// GEDCOM 7.0) pass through unchanged.
//
// Unrecognized months or out-of-range days yield "" (unknown), never
// an error: a bad date is missing information, not a failed import.
func ParseDate(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}

	upper := strings.ToUpper(v)

	// Range: keep the first date only.
	if rest, ok := strings.CutPrefix(upper, "BET "); ok {
		first, _, _ := strings.Cut(rest, " AND ")
		return ParseDate(first)
	}

	// Qualifiers carry no precision of their own.
	for _, q := range []string{"ABT ", "BEF ", "AFT "} {
		if rest, ok := strings.CutPrefix(upper, q); ok {
			return ParseDate(rest)
		}
	}

	// ISO passthrough (GEDCOM 7.0 allows it).
	if isoDateRx.MatchString(v) {
		return v
	}

	parts := strings.Fields(upper)
	switch len(parts) {
	case 1:
		if yearRx.MatchString(parts[0]) {
			return parts[0]
		}
	case 2:
		// MON YYYY
		mon, ok := months[parts[0]]
		if !ok || !yearRx.MatchString(parts[1]) {
			return ""
		}
		return parts[1] + "-" + pad2(int(mon))
	case 3:
		// DD MON YYYY
		day, err := strconv.Atoi(parts[0])
		if err != nil {
			return ""
		}
		mon, ok := months[parts[1]]
		if !ok || !yearRx.MatchString(parts[2]) {
			return ""
		}
		year, _ := strconv.Atoi(parts[2])
		if day < 1 || day > daysIn(year, mon) {
			return ""
		}
		return parts[2] + "-" + pad2(int(mon)) + "-" + pad2(day)
	}
	return ""
}

// FormatDate renders a time in GEDCOM form, "2 JAN 2006": no zero
// padding on the day, three-letter uppercase month.
func FormatDate(t time.Time) string {
	return strings.ToUpper(t.Format("2 Jan 2006"))
}

// AnchorDate converts a canonical date string from ParseDate into a
// UTC-midnight instant. Partial-precision dates anchor to the first
// representable day of their period: "1985" becomes 1985-01-01,
// "1985-06" becomes 1985-06-01. Returns nil for "" or malformed input.
func AnchorDate(canonical string) *time.Time {
	if canonical == "" {
		return nil
	}
	parts := strings.Split(canonical, "-")
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil
	}
	month, day := 1, 1
	if len(parts) > 1 {
		if month, err = strconv.Atoi(parts[1]); err != nil {
			return nil
		}
	}
	if len(parts) > 2 {
		if day, err = strconv.Atoi(parts[2]); err != nil {
			return nil
		}
	}
	if month < 1 || month > 12 || day < 1 || day > daysIn(year, time.Month(month)) {
		return nil
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func daysIn(year int, m time.Month) int {
	// Day 0 of the next month is the last day of m.
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
