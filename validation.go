package spend

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDate is returned when a date is not a valid DD-MM-YYYY calendar date.
	ErrInvalidDate = errors.New("invalid date, want DD-MM-YYYY")
	// ErrInvalidAmount is returned when an amount is not a non-negative number.
	ErrInvalidAmount = errors.New("invalid amount, want a non-negative number")
)

// IsValidDate reports whether d is a calendar date written exactly as DD-MM-YYYY.
//
// The year must be 1900 or later and the day must exist in that month,
// leap years included.
func IsValidDate(d string) bool {
	if len(d) != DateLen || d[2] != '-' || d[5] != '-' {
		return false
	}
	day, mon, year, ok := dateParts(d)
	if !ok {
		return false
	}
	if year < 1900 || mon < 1 || mon > 12 || day < 1 {
		return false
	}
	return day <= daysIn(mon, year)
}

// IsValidMonth reports whether s is a month written exactly as MM-YYYY.
func IsValidMonth(s string) bool {
	if len(s) != 7 || s[2] != '-' {
		return false
	}
	mon, ok := digits(s[0:2])
	if !ok || mon < 1 || mon > 12 {
		return false
	}
	year, ok := digits(s[3:7])
	return ok && year >= 1900
}

// DateKey converts a DD-MM-YYYY date into the comparable integer
// YYYY*10000+MM*100+DD.
//
// Only the first ten bytes are considered and separators are not
// checked, so keys can be computed for dates that [IsValidDate] rejects.
// It returns false if a numeric position is not a digit or if the day,
// month or year is zero.
func DateKey(d string) (int, bool) {
	if len(d) < DateLen {
		return 0, false
	}
	day, mon, year, ok := dateParts(d)
	if !ok || day <= 0 || mon <= 0 || year <= 0 {
		return 0, false
	}
	return year*10000 + mon*100 + day, true
}

// NormalizeDate turns an ISO like YYYY-MM-DD date into DD-MM-YYYY.
//
// The ISO form is detected by a '-' at the fifth byte. Any other input is
// returned truncated to the date bound, unchecked.
func NormalizeDate(d string) string {
	d = strings.TrimSpace(d)
	if len(d) >= DateLen && d[4] == '-' {
		return d[8:10] + "-" + d[5:7] + "-" + d[0:4]
	}
	return truncate(d, DateLen)
}

// dateParts reads the day, month and year digits of a DD-MM-YYYY date.
func dateParts(d string) (day, mon, year int, ok bool) {
	var okDay, okMon, okYear bool
	day, okDay = digits(d[0:2])
	mon, okMon = digits(d[3:5])
	year, okYear = digits(d[6:10])
	return day, mon, year, okDay && okMon && okYear
}

// digits parses s made only of ASCII digits.
func digits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func daysIn(mon, year int) int {
	switch mon {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeap(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func isLeap(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// numberPrefix matches the longest decimal number at the start of a string,
// in decimal or exponent notation. Hexadecimal, inf and nan are not numbers here.
var numberPrefix = regexp.MustCompile(`^[ \t\n\v\f\r]*[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`)

// parseNumberPrefix parses the numeric prefix of s, ignoring whatever follows.
func parseNumberPrefix(s string) (float64, bool) {
	prefix := strings.TrimSpace(numberPrefix.FindString(s))
	if prefix == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseAmount parses a non-negative amount.
//
// The parse is lenient: text following a valid numeric prefix is ignored,
// so "12.5 EUR" is 12.5. It fails if s has no numeric prefix or if the
// value is negative.
func ParseAmount(s string) (float64, bool) {
	v, ok := parseNumberPrefix(s)
	if !ok || v < 0 {
		return 0, false
	}
	return v, true
}
