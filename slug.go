package tabx

import (
	"strconv"
	"strings"
)

// MakeSlug turns arbitrary text into a lowercase, identifier-safe string.
// Runs of non-alphanumeric characters collapse to a single underscore and
// leading/trailing underscores are trimmed.
//
//	MakeSlug("Board Length (mm)")  // "board_length_mm"
func MakeSlug(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte('_')
			pending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MakeSlugs converts a header row into unique field names.
//
// Trailing nulls are stripped first; leading and interior nulls keep their
// position and become the placeholder "_". Duplicates are disambiguated
// left to right with a numeric suffix starting at 2, scoped per base slug:
//
//	MakeSlugs([]Value{Text("Header"), Null(), Text("header"), Null(), Text("HEADER")})
//	// ["header", "_", "header2", "_2", "header3"]
//
// A sequence that is already unique comes back unchanged.
func MakeSlugs(header []Value) []string {
	header = rstripRow(header)

	seen := make(map[string]bool, len(header))
	counts := make(map[string]int, len(header))
	slugs := make([]string, 0, len(header))
	for _, value := range header {
		slug := MakeSlug(value.String())
		if slug == "" {
			slug = "_"
		}

		// Force unique. The counter is per base slug, but candidates must
		// also dodge slugs already issued verbatim (eg. a literal "header2"
		// in the input).
		candidate := slug
		for seen[candidate] {
			n := counts[slug]
			if n == 0 {
				n = 1
			}
			n++
			counts[slug] = n
			candidate = slug + strconv.Itoa(n)
		}
		seen[candidate] = true
		slugs = append(slugs, candidate)
	}
	return slugs
}
