package rcc

// Register layout and bit definitions for the STM32F446 reset and clock
// control (RCC) block. Offsets and fields are from RM0390; reserved words
// are kept as padding so the struct can be laid directly over the hardware
// block.

const (
	RCC_BASE = uintptr(0x40023800)

	RCC_CR_HSION  = 1 << 0
	RCC_CR_HSIRDY = 1 << 1
	RCC_CR_HSEON  = 1 << 16
	RCC_CR_HSERDY = 1 << 17
	RCC_CR_HSEBYP = 1 << 18
	RCC_CR_CSSON  = 1 << 19
	RCC_CR_PLLON  = 1 << 24
	RCC_CR_PLLRDY = 1 << 25

	RCC_PLLCFGR_PLLM_Pos = 0
	RCC_PLLCFGR_PLLM_Msk = uint32(0x3F) << RCC_PLLCFGR_PLLM_Pos
	RCC_PLLCFGR_PLLN_Pos = 6
	RCC_PLLCFGR_PLLN_Msk = uint32(0x1FF) << RCC_PLLCFGR_PLLN_Pos
	RCC_PLLCFGR_PLLP_Pos = 16
	RCC_PLLCFGR_PLLP_Msk = uint32(0x3) << RCC_PLLCFGR_PLLP_Pos
	RCC_PLLCFGR_PLLSRC   = 1 << 22

	RCC_CFGR_SW_Msk  = uint32(0x3)
	RCC_CFGR_SWS_Pos = 2
	RCC_CFGR_SWS_Msk = uint32(0x3) << RCC_CFGR_SWS_Pos
)

// Regs is the RCC register block. Exactly one instance exists in hardware,
// at RCC_BASE; tests and simulators may allocate their own and hand it to
// NewWithRegs. The resvd fields are reserved words and must never be
// written.
type Regs struct {
	CR         uint32 // Clock Control
	PLLCFGR    uint32 // PLL Configuration
	CFGR       uint32 // Clock Configuration
	CIR        uint32 // Clock Interrupt
	AHB1RSTR   uint32 // AHB1 Peripheral Reset
	AHB2RSTR   uint32 // AHB2 Peripheral Reset
	AHB3RSTR   uint32 // AHB3 Peripheral Reset
	resvd0x1C  uint32
	APB1RSTR   uint32 // APB1 Peripheral Reset
	APB2RSTR   uint32 // APB2 Peripheral Reset
	resvd0x28  [2]uint32
	AHB1ENR    uint32 // AHB1 Peripheral Clock Enable
	AHB2ENR    uint32 // AHB2 Peripheral Clock Enable
	AHB3ENR    uint32 // AHB3 Peripheral Clock Enable
	resvd0x3C  uint32
	APB1ENR    uint32 // APB1 Peripheral Clock Enable
	APB2ENR    uint32 // APB2 Peripheral Clock Enable
	resvd0x48  [2]uint32
	AHB1LPENR  uint32 // AHB1 Clock Enable in Low Power Mode
	AHB2LPENR  uint32 // AHB2 Clock Enable in Low Power Mode
	AHB3LPENR  uint32 // AHB3 Clock Enable in Low Power Mode
	resvd0x5C  uint32
	APB1LPENR  uint32 // APB1 Clock Enable in Low Power Mode
	APB2LPENR  uint32 // APB2 Clock Enable in Low Power Mode
	resvd0x68  [2]uint32
	BDCR       uint32 // Backup Domain Control
	CSR        uint32 // Clock Control and Status
	resvd0x78  [2]uint32
	SSCGR      uint32 // Spread Spectrum Clock Generation
	PLLI2SCFGR uint32 // PLLI2S Configuration
	PLLSAICFGR uint32 // PLLSAI Configuration
	DCKCFGR    uint32 // Dedicated Clock Configuration
	CKGATENR   uint32 // Clocks Gated Enable
	DCKCFGR2   uint32 // Dedicated Clock Configuration 2
}
