package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"github.com/pcj/pathext/pkg/collections"
	"github.com/pcj/pathext/pkg/pathext"
	"github.com/pcj/pathext/pkg/resolver"
)

type config struct {
	base    collections.StringSlice
	extra   collections.StringSlice
	timeout time.Duration
	debug   bool
}

func main() {
	log.SetPrefix("pathresolve: ")
	log.SetFlags(0) // don't print timestamps

	conf := config{}
	fs := flag.NewFlagSet("pathresolve", flag.ContinueOnError)
	fs.Var(&conf.base, "base", "base archive or index file (repeatable)")
	fs.Var(&conf.extra, "extra", "additional archive or index file, glob patterns allowed (repeatable)")
	fs.DurationVar(&conf.timeout, "open_timeout", 30*time.Second, "per-source open timeout")
	fs.BoolVar(&conf.debug, "debug", false, "dump the search path after install")

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if len(conf.base) == 0 {
		log.Fatal("-base is required")
	}
	if len(fs.Args()) == 0 {
		log.Fatal("positional args should be a non-empty list of symbols to resolve: args=", os.Args)
	}
	if err := run(&conf, fs.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(conf *config, symbols []string) error {
	r := pathext.NewResolver(
		pathext.WithLogger(zerolog.New(os.Stderr)),
		pathext.WithOpenTimeout(conf.timeout),
	)
	if err := r.Install(conf.base...); err != nil {
		return err
	}
	extras, err := pathext.ExpandDescriptors(conf.extra)
	if err != nil {
		return err
	}
	if err := r.Install(extras...); err != nil {
		return err
	}

	for _, suppressed := range r.Suppressed() {
		log.Println("warning:", suppressed)
	}
	if conf.debug {
		spew.Dump(r.Sources())
	}

	var missing int
	for _, name := range symbols {
		symbol, err := r.Resolve(name)
		if err != nil {
			if errors.Is(err, resolver.ErrSymbolNotFound) {
				fmt.Printf("%s: not found\n", name)
				missing++
				continue
			}
			return err
		}
		fmt.Printf("%s -> %s (%v)\n", name, symbol.Source, symbol.Type)
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d symbols not found", missing, len(symbols))
	}
	return nil
}
