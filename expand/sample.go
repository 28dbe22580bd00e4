package expand

import (
	"sort"
	"strings"
)

// Canonicalizer derives a canonical sample name from one raw token of the
// collapsed name column.  Implementations must be deterministic: the same
// token always maps to the same name.  Returning "" marks the token as
// unusable; it is then treated like an empty token.
type Canonicalizer func(token string) string

// TruncateAtDelimiter returns the conventional canonicalizer: the token is
// cut at the first occurrence of delim, and a trailing MACS2 "_peak_<n>"
// suffix is removed if present.  "mysample_R1.mLb.clN_peak_3" and
// "mysample_R1_peak_7" both map to "mysample_R1".  Peak files named outside
// this convention need their own Canonicalizer.
func TruncateAtDelimiter(delim string) Canonicalizer {
	return func(token string) string {
		if idx := strings.Index(token, delim); idx >= 0 {
			token = token[:idx]
		}
		if idx := strings.Index(token, "_peak_"); idx >= 0 {
			token = token[:idx]
		}
		return token
	}
}

// decodeSamples splits one collapsed name field on commas and
// canonicalizes each token.  Empty tokens are reported through onEmpty and
// excluded; the rest of the field is still decoded.  The result is a set:
// a sample contributing several merged peaks to the interval is present
// once, not counted.
func decodeSamples(field string, canon Canonicalizer, onEmpty func(tokenIdx int)) map[string]bool {
	set := map[string]bool{}
	for i, token := range strings.Split(field, ",") {
		name := token
		if name != "" {
			name = canon(token)
		}
		if name == "" {
			if onEmpty != nil {
				onEmpty(i)
			}
			continue
		}
		set[name] = true
	}
	return set
}

// sortedNames flattens a sample set into ascending order.
func sortedNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
