package rcc

import (
	"errors"
	"fmt"
)

const (
	PLLMultMin = 50
	PLLMultMax = 432
	PLLDivMin  = 2
	PLLDivMax  = 63
)

var ErrBadPLLConfig = errors.New("invalid PLL configuration")

// pllpCodes maps the divider parameter onto the 2-bit PLLP field.
var pllpCodes = map[uint8]uint32{2: 0, 4: 1, 6: 2, 8: 3}

// ConfigurePLL programs the main PLL: the block is stopped, the source and
// the PLLM/PLLN/PLLP fields are written, then the PLL is restarted and the
// call blocks until the lock flag reads 1. src must be ClkHSI or ClkHSE and
// the chosen oscillator must already be ready or the final wait never
// completes.
//
// div programs both the input divider (PLLM, range [2,63]) and, through the
// {2,4,6,8} lookup, the output divider (PLLP). A div that passes the PLLM
// range check but isn't a valid PLLP selector is rejected only after PLLM
// and PLLN have been written, so a failed call is not guaranteed to leave
// PLLCFGR untouched.
func (rc *RCC) ConfigurePLL(mult uint32, div uint8, src Clk) error {
	// Stop the PLL before rewriting its configuration fields.
	rc.regs.CR &= ^uint32(RCC_CR_PLLON)
	if err := rc.wait(func() bool {
		return rc.regs.CR&RCC_CR_PLLRDY == 0
	}); err != nil {
		return fmt.Errorf("couldn't stop PLL: %w", err)
	}

	switch src {
	case ClkHSI:
		rc.regs.PLLCFGR &= ^uint32(RCC_PLLCFGR_PLLSRC)
	case ClkHSE:
		rc.regs.PLLCFGR |= RCC_PLLCFGR_PLLSRC
	default:
		return fmt.Errorf("PLL source %d: %w", src, ErrInvalidClock)
	}

	if mult < PLLMultMin || mult > PLLMultMax {
		return fmt.Errorf("multiplier %d outside [%d,%d]: %w", mult, PLLMultMin, PLLMultMax, ErrBadPLLConfig)
	}
	if div < PLLDivMin || div > PLLDivMax {
		return fmt.Errorf("divider %d outside [%d,%d]: %w", div, PLLDivMin, PLLDivMax, ErrBadPLLConfig)
	}

	rc.regs.PLLCFGR &= ^RCC_PLLCFGR_PLLM_Msk
	rc.regs.PLLCFGR &= ^RCC_PLLCFGR_PLLN_Msk
	rc.regs.PLLCFGR |= uint32(div) << RCC_PLLCFGR_PLLM_Pos
	rc.regs.PLLCFGR |= mult << RCC_PLLCFGR_PLLN_Pos

	code, ok := pllpCodes[div]
	if !ok {
		// PLLM and PLLN are already written at this point.
		return fmt.Errorf("divider %d is not an output divider (want 2, 4, 6 or 8): %w", div, ErrBadPLLConfig)
	}
	rc.regs.PLLCFGR = (rc.regs.PLLCFGR &^ RCC_PLLCFGR_PLLP_Msk) | code<<RCC_PLLCFGR_PLLP_Pos

	rc.regs.CR |= RCC_CR_PLLON
	if err := rc.wait(func() bool {
		return rc.regs.CR&RCC_CR_PLLRDY != 0
	}); err != nil {
		return fmt.Errorf("PLL never locked: %w", err)
	}
	return nil
}
