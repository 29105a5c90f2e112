package eval

import (
	"regexp"
	"strings"
)

// orAndRe splits multi-root answers such as "x = -2 or x = -3".
var orAndRe = regexp.MustCompile(`(?i)\b(?:or|and)\b`)

// Equivalent reports whether two expressions denote the same answer. The
// check is rule-based and deliberately incomplete: normalized string match
// first, then equation-value extraction with set comparison for multi-value
// answers, then pairwise containment as a last resort. Empty input on either
// side is never equivalent.
func Equivalent(student, correct string) bool {
	if strings.TrimSpace(student) == "" || strings.TrimSpace(correct) == "" {
		return false
	}
	if Normalize(student) == Normalize(correct) {
		return true
	}

	sv := ExtractValues(student)
	cv := ExtractValues(correct)

	// Same number of extracted values: compare as sets, order-independent.
	if len(sv) > 0 && len(sv) == len(cv) && valueSetsEqual(sv, cv) {
		return true
	}

	// Counts differ (one box filled out of several valid roots, say): accept
	// the student's answer if it matches any value on the correct side. A
	// single extracted value covers students writing "x=-3" rather than "-3".
	candidates := []string{Normalize(student)}
	if len(sv) == 1 {
		candidates = append(candidates, Normalize(sv[0]))
	}
	for _, v := range cv {
		nv := Normalize(v)
		for _, c := range candidates {
			if c == nv {
				return true
			}
		}
	}
	return false
}

// ExtractValues pulls the answer values out of an equation-form string:
// segments split on "or"/"and", then for each segment everything after the
// last "=" up to the next comma, or the whole segment when there is no "=".
// "x = -2 or x = -3" extracts ["-2", "-3"]; "x=-2,-3" extracts ["-2", "-3"].
func ExtractValues(s string) []string {
	var out []string
	for _, seg := range orAndRe.Split(s, -1) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if i := strings.LastIndex(seg, "="); i >= 0 {
			rest := seg[i+1:]
			if j := strings.Index(rest, ","); j >= 0 {
				head := strings.TrimSpace(rest[:j])
				if head != "" {
					out = append(out, head)
				}
				// trailing comma-separated values are roots in their own right
				for _, v := range strings.Split(rest[j+1:], ",") {
					if v = strings.TrimSpace(v); v != "" {
						out = append(out, v)
					}
				}
			} else if rest = strings.TrimSpace(rest); rest != "" {
				out = append(out, rest)
			}
		} else {
			out = append(out, seg)
		}
	}
	return out
}

// valueSetsEqual compares two equally sized value lists as sets of
// normalized expressions, membership checked in both directions.
func valueSetsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, v := range a {
		seen[Normalize(v)]++
	}
	for _, v := range b {
		seen[Normalize(v)]--
	}
	for _, n := range seen {
		if n != 0 {
			return false
		}
	}
	return true
}
