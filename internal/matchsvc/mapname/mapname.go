// Package mapname resolves the loose map identifiers the clients send:
// ids carrying a generated disambiguation suffix, and human-typed map
// names that have to be matched against a configured code table.
package mapname

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Clients append "-<timestamp>-<token>" when the same map is played twice
// in one match.
var suffixRe = regexp.MustCompile(`-\d{4,}-[A-Za-z0-9]+$`)

// Canonical strips a trailing disambiguation suffix from a stored map id.
// Ids without the suffix pass through unchanged.
func Canonical(mapID string) string {
	return suffixRe.ReplaceAllString(mapID, "")
}

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold lowercases, strips diacritics and drops everything that is not a
// letter or digit, so "Château Guillard" and "chateauguillard" collide.
func fold(s string) string {
	flat, _, err := transform.String(deaccent, s)
	if err != nil {
		flat = s
	}
	var b strings.Builder
	for _, r := range strings.ToLower(flat) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FindCode looks a map name up in a name->code table, tolerating case,
// diacritics and partial names on either side. Keys are tried in sorted
// order so repeated calls pick the same entry.
func FindCode(codes map[string]string, mapName string) (string, bool) {
	want := fold(mapName)
	if want == "" {
		return "", false
	}
	keys := make([]string, 0, len(codes))
	for k := range codes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		have := fold(k)
		if have == "" {
			continue
		}
		if have == want || strings.Contains(have, want) || strings.Contains(want, have) {
			return codes[k], true
		}
	}
	return "", false
}
