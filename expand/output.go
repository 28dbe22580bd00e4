package expand

import (
	"context"
	"strconv"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/hts/bgzf"
)

const (
	// FormatTSV writes plain tab-separated text.
	FormatTSV = "tsv"
	// FormatTSVBgz writes bgzip-compressed TSV and appends ".gz" to the
	// output names.
	FormatTSVBgz = "tsv-bgz"
)

// tsvFile bundles a tsv.Writer with the file (and optional bgzf layer)
// underneath it, so callers flush and close the whole stack in one defer.
type tsvFile struct {
	dst  file.File
	bgzw *bgzf.Writer
	w    *tsv.Writer
}

func createTSV(ctx context.Context, path, format string, parallelism int) (*tsvFile, error) {
	if format == FormatTSVBgz {
		path += ".gz"
	}
	dst, err := file.Create(ctx, path)
	if err != nil {
		return nil, err
	}
	f := &tsvFile{dst: dst}
	if format == FormatTSVBgz {
		f.bgzw = bgzf.NewWriter(dst.Writer(ctx), parallelism)
		f.w = tsv.NewWriter(f.bgzw)
	} else {
		f.w = tsv.NewWriter(dst.Writer(ctx))
	}
	return f, nil
}

func (f *tsvFile) close(ctx context.Context, err *error) {
	if e := f.w.Flush(); e != nil && *err == nil {
		*err = e
	}
	if f.bgzw != nil {
		if e := f.bgzw.Close(); e != nil && *err == nil {
			*err = e
		}
	}
	file.CloseAndReport(ctx, f.dst, err)
}

func writeBool(w *tsv.Writer, b bool) {
	if b {
		w.WriteString("TRUE")
	} else {
		w.WriteString("FALSE")
	}
}

// writeMatrix writes the primary output: one row per surviving interval
// with its coordinates, interval id, peak and sample counts, the retained
// collapsed columns (still comma-joined, for traceability back to the
// original peaks), and one TRUE/FALSE column per global sample.
//
// Auxiliary column headers are named field<k> with k the 1-based input
// column number; the sample column itself is omitted since it is fully
// replaced by the boolean columns.
func writeMatrix(ctx context.Context, path, format string, sampleField int, samples []string, records []IntervalRecord, parallelism int) (err error) {
	var out *tsvFile
	if out, err = createTSV(ctx, path, format, parallelism); err != nil {
		return
	}
	defer out.close(ctx, &err)

	w := out.w
	w.WriteString("chrom")
	w.WriteString("start")
	w.WriteString("end")
	w.WriteString("interval_id")
	w.WriteString("num_peaks")
	w.WriteString("num_samples")
	// The first record fixes the auxiliary column layout; mergeBed output
	// is rectangular so later rows only diverge on malformed input.
	var auxCols []int
	for k := range records[0].Collapsed {
		if k+firstCollapsedField == sampleField {
			continue
		}
		auxCols = append(auxCols, k)
		w.WriteString("field" + strconv.Itoa(k+firstCollapsedField+1))
	}
	for _, s := range samples {
		w.WriteString(s + ".bool")
	}
	if err = w.EndLine(); err != nil {
		return
	}

	for i := range records {
		r := &records[i]
		w.WriteString(r.Chrom)
		w.WriteUint32(uint32(r.Start))
		w.WriteUint32(uint32(r.End))
		w.WriteString("Interval_" + strconv.Itoa(r.ID))
		w.WriteUint32(uint32(r.NumPeaks))
		w.WriteUint32(uint32(r.ReplicateCount()))
		for _, k := range auxCols {
			if k < len(r.Collapsed) {
				w.WriteString(r.Collapsed[k])
			} else {
				w.WriteString("NA")
			}
		}
		for _, s := range samples {
			writeBool(w, r.Present[s])
		}
		if err = w.EndLine(); err != nil {
			return
		}
	}
	return
}

// writeIntersect writes the combination summary: one row per distinct
// sample combination with 1/0 indicator columns and the occurrence count,
// ordered by SummarizeCombinations.  The 1/0 rendering keeps the file
// loadable as an UpSetR expression table.
func writeIntersect(ctx context.Context, path, format string, samples []string, combs []Combination, parallelism int) (err error) {
	var out *tsvFile
	if out, err = createTSV(ctx, path, format, parallelism); err != nil {
		return
	}
	defer out.close(ctx, &err)

	w := out.w
	for _, s := range samples {
		w.WriteString(s)
	}
	w.WriteString("count")
	if err = w.EndLine(); err != nil {
		return
	}
	for i := range combs {
		c := &combs[i]
		for _, s := range samples {
			if c.Contains(s) {
				w.WriteByte('1')
			} else {
				w.WriteByte('0')
			}
		}
		w.WriteUint32(uint32(c.Count))
		if err = w.EndLine(); err != nil {
			return
		}
	}
	return
}
