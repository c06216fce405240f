package rcc

import (
	"errors"
	"fmt"
)

// Clk identifies a clock source by its enable bit position in CR. The
// matching ready flag sits one bit above the enable bit.
type Clk uint8

const (
	ClkHSI Clk = 0
	ClkHSE Clk = 16
	ClkPLL Clk = 24
)

// Status is the requested state of a clock source.
type Status uint8

const (
	Off Status = iota
	On
)

// HSEMode selects whether the external oscillator pin is driven by an
// external clock signal (bypass) or used as a crystal oscillator.
type HSEMode uint8

const (
	HSENotBypassed HSEMode = iota
	HSEBypassed
)

var (
	ErrInvalidClock = errors.New("invalid clock source")
	ErrInvalidMode  = errors.New("invalid HSE mode")
)

// SetClockStatus enables or disables the given clock source and then spins
// until its ready flag reads 1. The wait condition does not branch on
// status: a disable request also spins until the ready bit reads 1, so
// against hardware that clears the flag on disable this call will not
// return. Callers that need to confirm a disable should inject a bounded
// Waiter and treat ErrWaitTimeout accordingly.
func (rc *RCC) SetClockStatus(clk Clk, status Status) error {
	if clk > ClkPLL {
		return fmt.Errorf("clock bit %d: %w", clk, ErrInvalidClock)
	}

	if status == On {
		rc.regs.CR |= 1 << clk
	} else {
		rc.regs.CR &= ^(uint32(1) << clk)
	}

	if err := rc.wait(func() bool {
		return (rc.regs.CR>>(clk+1))&1 == 1
	}); err != nil {
		return fmt.Errorf("clock bit %d never came ready: %w", clk, err)
	}
	return nil
}

// SetHSEMode drives the HSE bypass bit. Values other than HSEBypassed and
// HSENotBypassed are rejected without touching the hardware.
func (rc *RCC) SetHSEMode(mode HSEMode) error {
	switch mode {
	case HSEBypassed:
		rc.regs.CR |= RCC_CR_HSEBYP
	case HSENotBypassed:
		rc.regs.CR &= ^uint32(RCC_CR_HSEBYP)
	default:
		return fmt.Errorf("HSE mode %d: %w", mode, ErrInvalidMode)
	}
	return nil
}
