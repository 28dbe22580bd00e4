package expand

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strconv"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// MergedInterval is one row of mergeBed collapse output: the union
// coordinates plus one comma-joined list per original peak column.
type MergedInterval struct {
	Chrom string
	Start int
	End   int
	// Collapsed holds the collapsed columns in input order; Collapsed[0] is
	// input column 3.  Every element splits into NumPeaks parts.
	Collapsed []string
	// NumPeaks is the number of original peaks merged into this interval.
	NumPeaks int
	// Line is the 1-based input line number, kept for diagnostics.
	Line int
}

// SampleColumn returns the collapsed column holding sample-name tokens.
// field is the 0-based input column index and must have been validated
// against the row width by the loader.
func (iv *MergedInterval) SampleColumn(field int) string {
	return iv.Collapsed[field-firstCollapsedField]
}

func skipRow(merr *MalformedRowError) {
	log.Error.Printf("%v (row skipped)", merr)
}

// scanMergedIntervals parses merged-interval rows.  Rows with too few
// columns, unparseable or inverted coordinates, or collapsed columns that
// disagree on element count are logged and skipped; nSkipped reports how
// many.  The column count is unbounded (mergeBed collapses however many
// columns it was asked to), so each row is validated against sampleField
// individually.
func scanMergedIntervals(scanner *bufio.Scanner, sampleField int) (intervals []MergedInterval, nSkipped int, err error) {
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		curLine := scanner.Bytes()
		if len(curLine) == 0 {
			continue
		}
		fields := bytes.Split(curLine, []byte{'\t'})
		if len(fields) <= firstCollapsedField || len(fields) <= sampleField {
			skipRow(&MalformedRowError{Line: lineIdx, Reason: "fewer columns than expected"})
			nSkipped++
			continue
		}
		start, aerr := strconv.Atoi(gunsafe.BytesToString(fields[1]))
		if aerr != nil || start < 0 {
			skipRow(&MalformedRowError{Line: lineIdx, Reason: "invalid start coordinate " + string(fields[1])})
			nSkipped++
			continue
		}
		end, aerr := strconv.Atoi(gunsafe.BytesToString(fields[2]))
		if aerr != nil || end < start {
			skipRow(&MalformedRowError{Line: lineIdx, Reason: "invalid coordinate pair"})
			nSkipped++
			continue
		}
		// The sample column defines the decollapsed element count; every
		// other collapsed column must agree or the merge was malformed.
		nPeaks := bytes.Count(fields[sampleField], []byte{','}) + 1
		collapsed := make([]string, 0, len(fields)-firstCollapsedField)
		ok := true
		for _, f := range fields[firstCollapsedField:] {
			if bytes.Count(f, []byte{','})+1 != nPeaks {
				ok = false
				break
			}
			// fields alias the scanner's buffer, which the next Scan call
			// overwrites; copy before keeping.
			collapsed = append(collapsed, string(f))
		}
		if !ok {
			skipRow(&MalformedRowError{Line: lineIdx, Reason: "collapse-list length mismatch"})
			nSkipped++
			continue
		}
		intervals = append(intervals, MergedInterval{
			Chrom:     string(fields[0]),
			Start:     start,
			End:       end,
			Collapsed: collapsed,
			NumPeaks:  nPeaks,
			Line:      lineIdx,
		})
	}
	err = scanner.Err()
	return
}

// LoadMergedIntervals reads a merged-interval file into memory,
// transparently decompressing gzipped input.
func LoadMergedIntervals(ctx context.Context, path string, sampleField int) (intervals []MergedInterval, nSkipped int, err error) {
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return nil, 0, errors.Wrap(err, path)
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(in.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return nil, 0, errors.Wrap(err, path)
		}
	}
	scanner := bufio.NewScanner(reader)
	// Collapsed columns get long when many peaks merge; Scanner does not
	// resize past its 64KiB default on its own.
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)
	if intervals, nSkipped, err = scanMergedIntervals(scanner, sampleField); err != nil {
		return nil, 0, errors.Wrap(err, path)
	}
	return
}
