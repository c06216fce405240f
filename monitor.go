package main

import (
	"bufio"
	"fmt"
	"log"
	"strconv"
	"strings"

	"go.bug.st/serial"

	"github.com/embtools/rccctl/rcc"
)

// monitor attaches to a board's debug UART and decodes register dump lines
// of the form "NAME=HEX" as firmware prints them. Anything else passes
// through unchanged.
func monitor(port string, baud int) error {
	p, err := serial.Open(port, &serial.Mode{BaudRate: baud})
	if err != nil {
		return fmt.Errorf("couldn't open %s: %v", port, err)
	}
	defer p.Close()
	log.Printf("Monitoring %s at %d baud", port, baud)

	sc := bufio.NewScanner(p)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		name, val, ok := parseRegLine(line)
		if !ok {
			fmt.Println(line)
			continue
		}
		if d := decodeReg(name, val); d != "" {
			fmt.Printf("%-8s %08X  %s\n", name, val, d)
		} else {
			fmt.Printf("%-8s %08X\n", name, val)
		}
	}
	return sc.Err()
}

func parseRegLine(line string) (string, uint32, bool) {
	name, hexval, ok := strings.Cut(line, "=")
	if !ok {
		return "", 0, false
	}
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsRune(name, ' ') {
		return "", 0, false
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(hexval), "0x"), 16, 32)
	if err != nil {
		return "", 0, false
	}
	return name, uint32(v), true
}

func decodeReg(name string, v uint32) string {
	switch name {
	case "CR":
		return rcc.DecodeCR(v)
	case "PLLCFGR":
		return rcc.DecodePLLCFGR(v)
	case "CFGR":
		return rcc.DecodeCFGR(v)
	}
	return ""
}
