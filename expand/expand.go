// Package expand reconstructs per-sample peak membership from merged
// genomic intervals.
//
// The input is the output of collapsing sorted per-sample peak calls with
// "mergeBed -o collapse": one row per merged interval whose columns past
// chrom/start/end are comma-joined lists with one element per original
// peak.  The pipeline decodes the sample-name list of each interval back
// into the set of contributing samples, drops intervals observed in fewer
// than MinReplicates samples, and writes two tables: a presence/absence
// matrix with one boolean column per sample, and a frequency summary of
// the distinct sample combinations for set-intersection plots.
package expand

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
)

// Expand runs the whole pipeline: load mergedPath into memory, decode
// sample sets, build the presence matrix and write it to outPath, then
// write the combination summary to outPath + ".intersect.txt".  format is
// FormatTSV or FormatTSVBgz.
//
// Malformed rows and empty sample tokens are logged and skipped.  An
// unreadable input or an empty surviving record set is fatal; in the
// latter case ErrNoSurvivingRecords is returned before any output file is
// created.
func Expand(ctx context.Context, mergedPath, outPath, format string, opts *Opts) error {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.SampleField < firstCollapsedField {
		return errors.Errorf("sample field index %d precedes the first collapsed column (%d)",
			opts.SampleField, firstCollapsedField)
	}
	if opts.Delimiter == "" && opts.Canonicalize == nil {
		return errors.New("empty sample-name delimiter")
	}
	if format != FormatTSV && format != FormatTSVBgz {
		return errors.Errorf("unsupported output format %q", format)
	}
	parallelism := opts.Parallelism
	if parallelism == 0 {
		parallelism = runtime.NumCPU()
	}

	intervals, nSkipped, err := LoadMergedIntervals(ctx, mergedPath, opts.SampleField)
	if err != nil {
		return err
	}
	samples, records := BuildMatrix(intervals, opts)
	if len(records) == 0 {
		return ErrNoSurvivingRecords
	}
	combs := SummarizeCombinations(records)

	// OUTFILE often points into a not-yet-created results directory when
	// run from a pipeline.
	if dir := filepath.Dir(outPath); dir != "." && !strings.Contains(outPath, "://") {
		if err = os.MkdirAll(dir, 0777); err != nil {
			return errors.Wrap(err, dir)
		}
	}
	if err = writeMatrix(ctx, outPath, format, opts.SampleField, samples, records, parallelism); err != nil {
		return err
	}
	if err = writeIntersect(ctx, outPath+".intersect.txt", format, samples, combs, parallelism); err != nil {
		return err
	}
	log.Printf("expand: %d rows read, %d skipped, %d intervals written, %d samples, %d combinations",
		len(intervals)+nSkipped, nSkipped, len(records), len(samples), len(combs))
	return nil
}
