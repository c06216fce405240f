package main

import (
	"strings"
	"testing"

	"github.com/embtools/rccctl/rcc"
)

func TestParseRegLine(t *testing.T) {
	tests := []struct {
		line string
		name string
		val  uint32
		ok   bool
	}{
		{"CR=03033F83", "CR", 0x03033F83, true},
		{"PLLCFGR=0x24403004", "PLLCFGR", 0x24403004, true},
		{" CFGR = 0000000A ", "CFGR", 0xA, true},
		{"booting rev 1.4", "", 0, false},
		{"CR=xyzzy", "", 0, false},
		{"=1234", "", 0, false},
	}
	for _, test := range tests {
		name, val, ok := parseRegLine(test.line)
		if ok != test.ok {
			t.Errorf("%q: got ok=%v, want %v", test.line, ok, test.ok)
			continue
		}
		if !ok {
			continue
		}
		if name != test.name || val != test.val {
			t.Errorf("%q: got (%s, %08X), want (%s, %08X)", test.line, name, val, test.name, test.val)
		}
	}
}

func TestDecodeReg(t *testing.T) {
	if got := decodeReg("CR", rcc.RCC_CR_HSION|rcc.RCC_CR_HSIRDY); !strings.Contains(got, "HSIRDY") {
		t.Errorf("CR decode missing HSIRDY: %q", got)
	}
	if got := decodeReg("CSR", 0x12345678); got != "" {
		t.Errorf("Unexpected decode for CSR: %q", got)
	}
}
