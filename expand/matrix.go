package expand

import (
	"strings"

	"github.com/grailbio/base/log"
)

// IntervalRecord is one surviving merged interval and the samples present
// in it.
type IntervalRecord struct {
	MergedInterval
	// ID is the 1-based ordinal over surviving records, rendered as
	// "Interval_<ID>" in the output.
	ID int
	// Present holds the canonical samples decoded from the interval's
	// sample column.
	Present map[string]bool
	// Combination is the ascending "&"-joined form of Present; records with
	// identical sample sets share it.
	Combination string
}

// ReplicateCount returns the number of distinct samples present.
func (r *IntervalRecord) ReplicateCount() int { return len(r.Present) }

// BuildMatrix decodes every interval's sample column, fixes the global
// sample set, and materializes one record per interval that passes the
// replicate filter.
//
// The global set is collected over all loaded intervals in a pass of its
// own before any record is built, so the output column order depends only
// on the names observed, never on which rows survive the filter.  Records
// preserve input row order.
func BuildMatrix(intervals []MergedInterval, opts *Opts) (samples []string, records []IntervalRecord) {
	canon := opts.Canonicalize
	if canon == nil {
		canon = TruncateAtDelimiter(opts.Delimiter)
	}

	sets := make([]map[string]bool, len(intervals))
	all := map[string]bool{}
	for i := range intervals {
		iv := &intervals[i]
		sets[i] = decodeSamples(iv.SampleColumn(opts.SampleField), canon, func(tokenIdx int) {
			log.Error.Printf("%v (token skipped)", &EmptySampleTokenError{Line: iv.Line, Token: tokenIdx})
		})
		for name := range sets[i] {
			all[name] = true
		}
	}
	samples = sortedNames(all)

	for i := range intervals {
		// An interval whose tokens were all empty has no usable samples;
		// drop it regardless of the threshold.
		if len(sets[i]) == 0 || len(sets[i]) < opts.MinReplicates {
			continue
		}
		records = append(records, IntervalRecord{
			MergedInterval: intervals[i],
			ID:             len(records) + 1,
			Present:        sets[i],
			Combination:    strings.Join(sortedNames(sets[i]), "&"),
		})
	}
	return samples, records
}
