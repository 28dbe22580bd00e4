package expand

// firstCollapsedField is the input column index of the first collapsed
// column; mergeBed always emits chrom/start/end before the collapsed lists.
const firstCollapsedField = 3

// Opts contains the tunable parameters of the merged-peak expansion.
type Opts struct {
	// MinReplicates is the minimum number of distinct canonical samples a
	// merged interval must contain to be kept (inclusive).
	MinReplicates int
	// SampleField is the 0-based input column holding the collapsed
	// sample-name list.  The default of 3 matches
	//   sort -k1,1 -k2,2n *.Peak | mergeBed -c 4 -o collapse
	SampleField int
	// Delimiter cuts raw sample tokens when deriving the canonical sample
	// name: everything from its first occurrence onward is dropped.
	Delimiter string
	// Canonicalize overrides the Delimiter-based token-to-sample-name rule.
	// When nil, TruncateAtDelimiter(Delimiter) is used.
	Canonicalize Canonicalizer
	// Parallelism bounds the number of bgzf compressor workers for the
	// tsv-bgz output format; 0 = runtime.NumCPU().
	Parallelism int
}

var DefaultOpts = Opts{
	MinReplicates: 1,
	SampleField:   3,
	Delimiter:     ".",
}
