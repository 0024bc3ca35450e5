package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pcj/mobyprogress"

	"github.com/pcj/pathext/pkg/index"
)

var outputFile string

func main() {
	log.SetPrefix("archiveindexer: ")
	log.SetFlags(0) // don't print timestamps

	fs := flag.NewFlagSet("archiveindexer", flag.ContinueOnError)
	fs.StringVar(&outputFile, "output_file", "", "the output file to write")

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if outputFile == "" {
		log.Fatal("-output_file is required")
	}
	if len(fs.Args()) == 0 {
		log.Fatal("positional args should be a non-empty list of archive files to index: args=", os.Args)
	}
	if err := run(fs.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(filenames []string) error {
	output := mobyprogress.NewProgressOutput(mobyprogress.NewOut(os.Stderr))

	specs := make([]*index.ArchiveSpec, 0, len(filenames))
	for i, filename := range filenames {
		writeScanProgress(output, i, len(filenames), false)
		spec, err := index.ScanArchive(filename, nil)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", filename, err)
		}
		specs = append(specs, spec)
	}
	writeScanProgress(output, len(filenames), len(filenames), true)

	merged, err := index.MergeArchiveSpecs(log.Printf, specs)
	if err != nil {
		return err
	}
	return index.WriteJSONFile(outputFile, merged)
}

func writeScanProgress(output mobyprogress.Output, current, total int, lastUpdate bool) {
	output.WriteProgress(mobyprogress.Progress{
		ID:         "scan",
		Action:     "scanning archives",
		Current:    int64(current),
		Total:      int64(total),
		Units:      "archives",
		LastUpdate: lastUpdate,
	})
}
