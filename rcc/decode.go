package rcc

import (
	"fmt"
	"strings"
)

// Human-readable decoding of the three configuration registers. Used by the
// CLI dump and the serial monitor.

var crFlags = []struct {
	mask uint32
	name string
}{
	{RCC_CR_HSION, "HSION"},
	{RCC_CR_HSIRDY, "HSIRDY"},
	{RCC_CR_HSEON, "HSEON"},
	{RCC_CR_HSERDY, "HSERDY"},
	{RCC_CR_HSEBYP, "HSEBYP"},
	{RCC_CR_CSSON, "CSSON"},
	{RCC_CR_PLLON, "PLLON"},
	{RCC_CR_PLLRDY, "PLLRDY"},
}

var sysClkNames = [4]string{"HSI", "HSE", "PLL", "?"}

// pllpDividers is the inverse of the PLLP encoding.
var pllpDividers = [4]uint32{2, 4, 6, 8}

func DecodeCR(v uint32) string {
	var out []string
	for _, f := range crFlags {
		if v&f.mask != 0 {
			out = append(out, f.name)
		}
	}
	if len(out) == 0 {
		return "0"
	}
	return strings.Join(out, "|")
}

func DecodePLLCFGR(v uint32) string {
	src := "HSI"
	if v&RCC_PLLCFGR_PLLSRC != 0 {
		src = "HSE"
	}
	return fmt.Sprintf("PLLM=%d|PLLN=%d|PLLP=/%d|PLLSRC=%s",
		(v&RCC_PLLCFGR_PLLM_Msk)>>RCC_PLLCFGR_PLLM_Pos,
		(v&RCC_PLLCFGR_PLLN_Msk)>>RCC_PLLCFGR_PLLN_Pos,
		pllpDividers[(v&RCC_PLLCFGR_PLLP_Msk)>>RCC_PLLCFGR_PLLP_Pos],
		src)
}

func DecodeCFGR(v uint32) string {
	return fmt.Sprintf("SW=%s|SWS=%s",
		sysClkNames[v&RCC_CFGR_SW_Msk],
		sysClkNames[(v&RCC_CFGR_SWS_Msk)>>RCC_CFGR_SWS_Pos])
}

// Dump returns the decoded contents of CR, PLLCFGR and CFGR.
func (rc *RCC) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CR      %08X  %s\n", rc.regs.CR, DecodeCR(rc.regs.CR))
	fmt.Fprintf(&b, "PLLCFGR %08X  %s\n", rc.regs.PLLCFGR, DecodePLLCFGR(rc.regs.PLLCFGR))
	fmt.Fprintf(&b, "CFGR    %08X  %s\n", rc.regs.CFGR, DecodeCFGR(rc.regs.CFGR))
	return b.String()
}
