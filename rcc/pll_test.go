package rcc

import (
	"errors"
	"testing"
)

func pllFields(v uint32) (m, n, p uint32) {
	return (v & RCC_PLLCFGR_PLLM_Msk) >> RCC_PLLCFGR_PLLM_Pos,
		(v & RCC_PLLCFGR_PLLN_Msk) >> RCC_PLLCFGR_PLLN_Pos,
		(v & RCC_PLLCFGR_PLLP_Msk) >> RCC_PLLCFGR_PLLP_Pos
}

func TestConfigurePLL(t *testing.T) {
	rc, r := newSim()
	// Running PLL off HSE, as a caller that already brought HSE up would
	// leave it.
	r.CR = RCC_CR_HSEON | RCC_CR_HSERDY | RCC_CR_PLLON | RCC_CR_PLLRDY

	if err := rc.ConfigurePLL(192, 4, ClkHSE); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	m, n, p := pllFields(r.PLLCFGR)
	if m != 4 {
		t.Errorf("Wrong PLLM, got: %d, want: 4", m)
	}
	if n != 192 {
		t.Errorf("Wrong PLLN, got: %d, want: 192", n)
	}
	if p != 1 {
		t.Errorf("Wrong PLLP code, got: %d, want: 1", p)
	}
	if r.PLLCFGR&RCC_PLLCFGR_PLLSRC == 0 {
		t.Errorf("PLLSRC not set for HSE: %08X", r.PLLCFGR)
	}
	if r.CR&RCC_CR_PLLON == 0 || r.CR&RCC_CR_PLLRDY == 0 {
		t.Errorf("PLL not re-enabled and locked: %08X", r.CR)
	}
}

func TestConfigurePLLBadMultiplier(t *testing.T) {
	rc, r := newSim()
	err := rc.ConfigurePLL(433, 4, ClkHSE)
	if !errors.Is(err, ErrBadPLLConfig) {
		t.Errorf("Wrong error, got: %v, want: %v", err, ErrBadPLLConfig)
	}
	m, n, p := pllFields(r.PLLCFGR)
	if m != 0 || n != 0 || p != 0 {
		t.Errorf("PLL fields written by rejected call: M=%d N=%d P=%d", m, n, p)
	}
	// The source select is written before the range checks run.
	if r.PLLCFGR&RCC_PLLCFGR_PLLSRC == 0 {
		t.Errorf("PLLSRC not set: %08X", r.PLLCFGR)
	}
	if r.CR&RCC_CR_PLLON != 0 {
		t.Errorf("PLL re-enabled after rejected call: %08X", r.CR)
	}
}

func TestConfigurePLLBadDivider(t *testing.T) {
	rc, r := newSim()
	err := rc.ConfigurePLL(200, 64, ClkHSI)
	if !errors.Is(err, ErrBadPLLConfig) {
		t.Errorf("Wrong error, got: %v, want: %v", err, ErrBadPLLConfig)
	}
	m, n, p := pllFields(r.PLLCFGR)
	if m != 0 || n != 0 || p != 0 {
		t.Errorf("PLL fields written by rejected call: M=%d N=%d P=%d", m, n, p)
	}
}

// A divider of 3 passes the PLLM range check but has no output-divider
// encoding. By then PLLM and PLLN are already written: the failed call is
// not a no-op, and this test asserts the exact state it leaves behind.
func TestConfigurePLLBadOutputDivider(t *testing.T) {
	rc, r := newSim()
	err := rc.ConfigurePLL(200, 3, ClkHSI)
	if !errors.Is(err, ErrBadPLLConfig) {
		t.Errorf("Wrong error, got: %v, want: %v", err, ErrBadPLLConfig)
	}
	m, n, p := pllFields(r.PLLCFGR)
	if m != 3 {
		t.Errorf("Wrong PLLM, got: %d, want: 3", m)
	}
	if n != 200 {
		t.Errorf("Wrong PLLN, got: %d, want: 200", n)
	}
	if p != 0 {
		t.Errorf("PLLP written by rejected call: %d", p)
	}
	if r.CR&RCC_CR_PLLON != 0 {
		t.Errorf("PLL re-enabled after rejected call: %08X", r.CR)
	}
}

func TestConfigurePLLBadSource(t *testing.T) {
	rc, r := newSim()
	err := rc.ConfigurePLL(192, 4, ClkPLL)
	if !errors.Is(err, ErrInvalidClock) {
		t.Errorf("Wrong error, got: %v, want: %v", err, ErrInvalidClock)
	}
	if r.PLLCFGR != 0 {
		t.Errorf("PLLCFGR written by rejected call: %08X", r.PLLCFGR)
	}
}

// ConfigurePLL stops the PLL before rewriting it, and the stop itself is
// confirmed against the lock flag.
func TestConfigurePLLStopsRunningPLL(t *testing.T) {
	r := &Regs{CR: RCC_CR_PLLON | RCC_CR_PLLRDY}
	stopped := false
	rc := NewWithRegs(r, func(ready func() bool) error {
		simStep(r)
		if !stopped {
			stopped = true
			if r.CR&RCC_CR_PLLON != 0 {
				t.Errorf("first wait ran with PLLON still set: %08X", r.CR)
			}
		}
		if !ready() {
			t.Errorf("simulated hardware didn't satisfy wait: %08X", r.CR)
		}
		return nil
	})
	if err := rc.ConfigurePLL(336, 8, ClkHSI); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !stopped {
		t.Errorf("no stop wait observed")
	}
}
