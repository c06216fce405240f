package rcc

import (
	"errors"
	"fmt"
)

// Bus names one of the five peripheral clock domains, each owning one
// 32-bit enable register.
type Bus uint8

const (
	AHB1 Bus = iota
	AHB2
	AHB3
	APB1
	APB2
)

// Peripheral is a bit position within a bus domain's enable register.
type Peripheral uint8

// maxPeripheralBit is the highest addressable bit in an enable register.
const maxPeripheralBit Peripheral = 31

var ErrBadPeripheral = errors.New("invalid peripheral")

// AHB1 peripherals.
const (
	GPIOAEN Peripheral = iota
	GPIOBEN
	GPIOCEN
	GPIODEN
	GPIOEEN
	GPIOFEN
	GPIOGEN
	GPIOHEN
)

const (
	CRCEN       Peripheral = 12
	BKPSRAMEN   Peripheral = 18
	DMA1EN      Peripheral = 21
	DMA2EN      Peripheral = 22
	OTGHSEN     Peripheral = 29
	OTGHSULPIEN Peripheral = 30
)

// AHB2 peripherals.
const (
	DCMIEN  Peripheral = 0
	OTGFSEN Peripheral = 7
)

// AHB3 peripherals.
const (
	FMCEN  Peripheral = 0
	QSPIEN Peripheral = 1
)

// APB1 peripherals.
const (
	TIM2EN    Peripheral = 0
	TIM3EN    Peripheral = 1
	TIM4EN    Peripheral = 2
	TIM5EN    Peripheral = 3
	TIM6EN    Peripheral = 4
	TIM7EN    Peripheral = 5
	TIM12EN   Peripheral = 6
	TIM13EN   Peripheral = 7
	TIM14EN   Peripheral = 8
	WWDGEN    Peripheral = 11
	SPI2EN    Peripheral = 14
	SPI3EN    Peripheral = 15
	SPDIFRXEN Peripheral = 16
	USART2EN  Peripheral = 17
	USART3EN  Peripheral = 18
	UART4EN   Peripheral = 19
	UART5EN   Peripheral = 20
	I2C1EN    Peripheral = 21
	I2C2EN    Peripheral = 22
	I2C3EN    Peripheral = 23
	FMPI2C1EN Peripheral = 24
	CAN1EN    Peripheral = 25
	CAN2EN    Peripheral = 26
	CECEN     Peripheral = 27
	PWREN     Peripheral = 28
	DACEN     Peripheral = 29
)

// APB2 peripherals.
const (
	TIM1EN   Peripheral = 0
	TIM8EN   Peripheral = 1
	USART1EN Peripheral = 4
	USART6EN Peripheral = 5
	ADC1EN   Peripheral = 8
	ADC2EN   Peripheral = 9
	ADC3EN   Peripheral = 10
	SDIOEN   Peripheral = 11
	SPI1EN   Peripheral = 12
	SPI4EN   Peripheral = 13
	SYSCFGEN Peripheral = 14
	TIM9EN   Peripheral = 16
	TIM10EN  Peripheral = 17
	TIM11EN  Peripheral = 18
	SAI1EN   Peripheral = 22
	SAI2EN   Peripheral = 23
)

func (rc *RCC) enr(bus Bus) (*uint32, error) {
	switch bus {
	case AHB1:
		return &rc.regs.AHB1ENR, nil
	case AHB2:
		return &rc.regs.AHB2ENR, nil
	case AHB3:
		return &rc.regs.AHB3ENR, nil
	case APB1:
		return &rc.regs.APB1ENR, nil
	case APB2:
		return &rc.regs.APB2ENR, nil
	}
	return nil, fmt.Errorf("bus %d: %w", bus, ErrBadPeripheral)
}

// EnableClock gates on the bus clock for one peripheral. There is no
// readiness flag to confirm; the write takes effect immediately.
func (rc *RCC) EnableClock(bus Bus, p Peripheral) error {
	if p > maxPeripheralBit {
		return fmt.Errorf("peripheral bit %d: %w", p, ErrBadPeripheral)
	}
	r, err := rc.enr(bus)
	if err != nil {
		return err
	}
	*r |= 1 << p
	return nil
}

// DisableClock gates off the bus clock for one peripheral.
func (rc *RCC) DisableClock(bus Bus, p Peripheral) error {
	if p > maxPeripheralBit {
		return fmt.Errorf("peripheral bit %d: %w", p, ErrBadPeripheral)
	}
	r, err := rc.enr(bus)
	if err != nil {
		return err
	}
	*r &= ^(uint32(1) << p)
	return nil
}
