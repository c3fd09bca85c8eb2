package textutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// CleanSpaces collapses runs of whitespace into single spaces and
// trims the ends of the string.
func CleanSpaces(s string) string {
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.Trim(s, " ")
}

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// Anchor controls which end of the string Between searches from.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorEnd
)

// Between returns the substring of s found between the delimiters start
// and end. With AnchorStart the first occurrence of start is used, then
// the first occurrence of end after it. With AnchorEnd the last
// occurrence of end is used, then the last occurrence of start before
// it, which makes id extraction from URL paths ("/", ".") reliable no
// matter how many path segments precede the id.
func Between(s, start, end string, anchor Anchor) (string, error) {
	switch anchor {
	case AnchorStart:
		i := strings.Index(s, start)
		if i < 0 {
			return "", fmt.Errorf("start delimiter %q not found in %q", start, s)
		}
		rest := s[i+len(start):]
		j := strings.Index(rest, end)
		if j < 0 {
			return "", fmt.Errorf("end delimiter %q not found in %q", end, s)
		}
		return rest[:j], nil
	case AnchorEnd:
		j := strings.LastIndex(s, end)
		if j < 0 {
			return "", fmt.Errorf("end delimiter %q not found in %q", end, s)
		}
		i := strings.LastIndex(s[:j], start)
		if i < 0 {
			return "", fmt.Errorf("start delimiter %q not found in %q", start, s)
		}
		return s[i+len(start) : j], nil
	}
	return "", fmt.Errorf("invalid anchor %d", anchor)
}

// BetweenOr is Between with a fallback instead of an error.
func BetweenOr(s, start, end string, anchor Anchor, fallback string) string {
	out, err := Between(s, start, end, anchor)
	if err != nil {
		return fallback
	}
	return out
}

// Remove strips every occurrence of the given substrings from s.
func Remove(s string, remove ...string) string {
	for _, r := range remove {
		s = strings.ReplaceAll(s, r, "")
	}
	return s
}

var longDateLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
}

// ReformatDate turns a written-out date ("May 2, 2018") into ISO form
// ("2018-05-02"). Anything unparseable, including dates missing a day
// or a month, yields "".
func ReformatDate(s string) string {
	s = CleanSpaces(s)
	for _, layout := range longDateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return t.Format("2006-01-02")
	}
	return ""
}

// InningsPitched converts the site's thirds notation for partial
// innings ("6.1" means six and one third) into a true decimal count.
// Values without a fractional part pass through unchanged.
func InningsPitched(s string) (float64, error) {
	whole, frac, found := strings.Cut(s, ".")
	n, err := strconv.Atoi(whole)
	if err != nil {
		return 0, fmt.Errorf("invalid innings count %q: %w", s, err)
	}
	if !found {
		return float64(n), nil
	}
	switch frac {
	case "0":
		return float64(n), nil
	case "1":
		return float64(n) + 1.0/3.0, nil
	case "2":
		return float64(n) + 2.0/3.0, nil
	}
	return 0, fmt.Errorf("invalid innings fraction %q", s)
}

// IsUpper reports whether s contains at least one letter and no
// lowercase letters. Position abbreviations ("C", "1B", "PH-LF") pass,
// surname fragments do not.
func IsUpper(s string) bool {
	letters := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			letters = true
		}
	}
	return letters
}

// TrailingInt splits "Julio Rodriguez 2" into ("Julio Rodriguez", 2).
// Strings without a trailing count return (s, 1).
func TrailingInt(s string) (string, int) {
	i := strings.LastIndex(s, " ")
	if i < 0 {
		return s, 1
	}
	n, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return s, 1
	}
	return s[:i], n
}
