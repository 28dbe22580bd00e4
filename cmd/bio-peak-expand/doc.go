/*
Given merged peak intervals produced by sorting per-sample MACS2 peak
calls and collapsing them with mergeBed, bio-peak-expand reports which
samples contributed to each merged interval.

Two files are written.  outpath is a TSV with one row per merged interval
that passed the -min-replicates filter: coordinates, an "Interval_<n>" id,
the number of merged peaks, the number of distinct samples, the remaining
collapsed columns unchanged, and one TRUE/FALSE column per sample.
outpath + ".intersect.txt" counts how often each distinct combination of
samples occurs, one row per combination with 1/0 indicator columns, sorted
by descending frequency; this file is directly consumable by UpSetR.

Sample names are derived from the collapsed name column by truncating each
token at the first '.' (see -delimiter) and stripping any trailing MACS2
"_peak_<n>" suffix.

Sample usage:

	sort -k1,1 -k2,2n *.broadPeak \
	    | mergeBed -c 2,3,4,5,6,7,8,9 -o collapse > merged_peaks.txt
	bio-peak-expand --min-replicates 2 merged_peaks.txt consensus_peaks.txt
*/
package main
