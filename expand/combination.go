package expand

import (
	"sort"
	"strings"
)

// Combination is one distinct set of co-occurring samples and the number
// of surviving intervals sharing exactly that set.
type Combination struct {
	// Key is the ascending "&"-joined sample list, e.g. "WT_R1&WT_R2".
	Key string
	// Members are the samples in Key, ascending.
	Members []string
	Count   int
}

// Contains reports whether sample is a member of the combination.
func (c *Combination) Contains(sample string) bool {
	i := sort.SearchStrings(c.Members, sample)
	return i < len(c.Members) && c.Members[i] == sample
}

// SummarizeCombinations groups records by their exact sample set and
// orders the groups by descending count.  Equal counts order by key
// ascending so that reruns agree byte for byte.  Every record lands in
// exactly one combination: keys are formed from the sorted, deduplicated
// sample set, so two records with the same samples cannot produce
// different keys.
func SummarizeCombinations(records []IntervalRecord) []Combination {
	counts := map[string]int{}
	for i := range records {
		counts[records[i].Combination]++
	}
	combs := make([]Combination, 0, len(counts))
	for key, n := range counts {
		combs = append(combs, Combination{
			Key:     key,
			Members: strings.Split(key, "&"),
			Count:   n,
		})
	}
	sort.Slice(combs, func(i, j int) bool {
		if combs[i].Count != combs[j].Count {
			return combs[i].Count > combs[j].Count
		}
		return combs[i].Key < combs[j].Key
	})
	return combs
}
