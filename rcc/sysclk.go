package rcc

import "fmt"

// SysClk is a value of the 2-bit system clock select field.
type SysClk uint8

const (
	SysHSI SysClk = iota
	SysHSE
	SysPLLP
)

// SetSysClock switches the core clock to the given source and spins until
// the status field mirrors the selection. The target source must already be
// ready; switching to an un-clocked source never completes.
func (rc *RCC) SetSysClock(src SysClk) error {
	if src > SysPLLP {
		return fmt.Errorf("system clock source %d: %w", src, ErrInvalidClock)
	}

	rc.regs.CFGR &= ^RCC_CFGR_SW_Msk
	rc.regs.CFGR |= uint32(src)

	if err := rc.wait(func() bool {
		return (rc.regs.CFGR>>RCC_CFGR_SWS_Pos)&0x3 == uint32(src)
	}); err != nil {
		return fmt.Errorf("system clock didn't switch to %d: %w", src, err)
	}
	return nil
}
