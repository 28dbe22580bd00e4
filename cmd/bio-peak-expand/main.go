package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/allthingsgenome/chipseq-tutorials/expand"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
)

var (
	minReplicates = flag.Int("min-replicates", expand.DefaultOpts.MinReplicates, "Minimum number of distinct samples a merged interval must contain to be kept")
	sampleField   = flag.Int("sample-field", expand.DefaultOpts.SampleField, "0-based input column holding the collapsed sample-name list; 3 matches 'mergeBed -c 4 -o collapse'")
	delimiter     = flag.String("delimiter", expand.DefaultOpts.Delimiter, "Sample tokens are truncated at the first occurrence of this string to derive the sample name")
	format        = flag.String("format", "tsv", "Output format; 'tsv' and 'tsv-bgz' supported")
	parallelism   = flag.Int("parallelism", expand.DefaultOpts.Parallelism, "Maximum number of simultaneous bgzf compression workers; 0 = runtime.NumCPU()")
)

func peakExpandUsage() {
	fmt.Printf("Usage: %s [OPTIONS] mergedpath outpath\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = peakExpandUsage
	shutdown := grail.Init()
	defer shutdown()

	allArgs := flag.Args()
	nPositionalArgs := flag.NArg()
	positionalArgs := allArgs[len(allArgs)-nPositionalArgs:]
	if nPositionalArgs != 2 {
		if nPositionalArgs < 2 {
			log.Fatalf("Missing positional arguments (mergedpath and outpath required); please check flag syntax: '%s'", strings.Join(positionalArgs, " "))
		} else {
			log.Fatalf("Too many positional arguments (only mergedpath and outpath expected); please check flag syntax: '%s'", strings.Join(positionalArgs, " "))
		}
	}
	ctx := vcontext.Background()
	opts := expand.Opts{
		MinReplicates: *minReplicates,
		SampleField:   *sampleField,
		Delimiter:     *delimiter,
		Parallelism:   *parallelism,
	}
	if err := expand.Expand(ctx, positionalArgs[0], positionalArgs[1], *format, &opts); err != nil {
		log.Fatalf("%v", err)
	}
	log.Debug.Printf("exiting")
}
