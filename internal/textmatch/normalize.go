// Package textmatch holds the soft string matching used across the engine:
// whitespace-insensitive normalization, either-direction substring checks,
// and the curated Korean alias tables for equipment and movement skills.
package textmatch

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// wildcardTokens are sportAllow entries that match every sport.
var wildcardTokens = map[string]bool{
	"전체":  true,
	"all": true,
}

// Normalize lowercases s and removes all whitespace.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Equal reports whether a and b are equal after normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Contains reports whether needle occurs in haystack after normalizing both.
// An empty needle never matches.
func Contains(haystack, needle string) bool {
	n := Normalize(needle)
	if n == "" {
		return false
	}
	return strings.Contains(Normalize(haystack), n)
}

// SoftContains reports whether either string contains the other after
// normalization.
func SoftContains(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

// AnySoftContains reports whether needle soft-matches any entry of list.
func AnySoftContains(list []string, needle string) bool {
	for _, item := range list {
		if SoftContains(item, needle) {
			return true
		}
	}
	return false
}

// ContainsEqual reports whether list holds an entry equal to s after
// normalization.
func ContainsEqual(list []string, s string) bool {
	for _, item := range list {
		if Equal(item, s) {
			return true
		}
	}
	return false
}

// SportAllowed reports whether a modifier's sportAllow list admits the sport.
// Entries match by normalized equality against either the sport id or name,
// or by a wildcard token.
func SportAllowed(allow []string, sportID, sportName string) bool {
	for _, a := range allow {
		na := Normalize(a)
		if wildcardTokens[na] {
			return true
		}
		if na != "" && (na == Normalize(sportID) || na == Normalize(sportName)) {
			return true
		}
	}
	return false
}

// Tokens splits a phrase on whitespace and slashes and keeps tokens of at
// least minRunes characters.
func Tokens(phrase string, minRunes int) []string {
	fields := strings.FieldsFunc(phrase, func(r rune) bool {
		return unicode.IsSpace(r) || r == '/' || r == ','
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minRunes {
			out = append(out, f)
		}
	}
	return out
}

// Unique returns the non-empty entries of lists in first-seen order,
// dropping exact duplicates.
func Unique(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, s := range list {
			s = strings.TrimSpace(s)
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
