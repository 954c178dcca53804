// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/regframe/batch"
	"github.com/ezrec/regframe/frame"
	"github.com/ezrec/regframe/translate"
)

// inspect prints the registers of a binary frame file.
func inspect(filename string) (err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return
	}

	fr := &frame.Frame{}
	err = fr.UnmarshalBinary(data)
	if err != nil {
		return
	}

	for _, reg := range fr.Registers {
		_, err = translate.Fprintf(os.Stdout, "%-8v 0x%08x %d\n", reg.Name, reg.Value, reg.Value)
		if err != nil {
			return
		}
	}

	return
}

func main() {
	var config string
	var examine string
	var quiet bool

	cfg := batch.DefaultConfig()

	flag.StringVar(&config, "c", "", "Starlark batch configuration file")
	flag.StringVar(&examine, "x", "", "Print the registers of a binary frame file, do not convert")
	flag.BoolVar(&quiet, "q", false, "Quiet mode, do not report each register")

	// Overrides, applied after the configuration file.
	var overrides batch.Config
	flag.StringVar(&overrides.Dir, "d", cfg.Dir, "Base directory of the working contexts")
	flag.StringVar(&overrides.Prefix, "p", cfg.Prefix, "Working context directory prefix")
	flag.IntVar(&overrides.Start, "s", cfg.Start, "First working context index")
	flag.IntVar(&overrides.Count, "n", cfg.Count, "Number of working contexts")
	flag.StringVar(&overrides.Input, "i", cfg.Input, "Register dump filename")
	flag.StringVar(&overrides.Output, "o", cfg.Output, "Binary frame filename")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(examine) != 0 {
		err := inspect(examine)
		if err != nil {
			log.Fatalf("%v: %v", examine, err)
		}
		return
	}

	if len(config) != 0 {
		err := cfg.Load(config, nil)
		if err != nil {
			log.Fatalf("%v: %v", config, err)
		}
	}

	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "d":
			cfg.Dir = overrides.Dir
		case "p":
			cfg.Prefix = overrides.Prefix
		case "s":
			cfg.Start = overrides.Start
		case "n":
			cfg.Count = overrides.Count
		case "i":
			cfg.Input = overrides.Input
		case "o":
			cfg.Output = overrides.Output
		case "q":
			cfg.Verbose = !quiet
		}
	})

	_, err := batch.Run(cfg)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
