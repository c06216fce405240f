package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/embtools/rccctl/plan"
	"github.com/embtools/rccctl/rcc"
)

var (
	planFile = flag.String("plan", "", "YAML clock plan to apply to the live RCC block")
	dump     = flag.Bool("dump", false, "Print decoded clock registers and exit")
	monPort  = flag.String("monitor", "", "Serial port to read register dump lines from (e.g. /dev/ttyACM0)")
	monBaud  = flag.Int("baud", 115200, "Baud rate for -monitor")
)

func main() {
	flag.Parse()

	if *monPort != "" {
		if err := monitor(*monPort, *monBaud); err != nil {
			log.Fatalf("Monitor failed: %v", err)
		}
		return
	}

	if *planFile == "" && !*dump {
		flag.Usage()
		os.Exit(2)
	}

	rc, err := rcc.New()
	if err != nil {
		log.Fatalf("Couldn't open RCC block: %v", err)
	}
	defer rc.Close()

	if *planFile != "" {
		p, err := plan.LoadFile(*planFile)
		if err != nil {
			log.Fatalf("Couldn't load plan: %v", err)
		}
		if err := p.Apply(rc); err != nil {
			log.Fatalf("Couldn't apply %s: %v", *planFile, err)
		}
		log.Printf("Applied %s", *planFile)
	}

	if *dump {
		fmt.Print(rc.Dump())
	}
}
