// Package plan loads declarative clock bring-up descriptions and applies
// them through the rcc API in dependency order: oscillators first, then the
// PLL, then the system clock switch, then peripheral gates.
package plan

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/embtools/rccctl/rcc"
)

type Plan struct {
	HSE         *HSEConfig          `yaml:"hse"`
	Oscillators []string            `yaml:"oscillators"`
	PLL         *PLLConfig          `yaml:"pll"`
	SysClock    string              `yaml:"sysclock"`
	Enable      map[string][]string `yaml:"enable"`
}

type HSEConfig struct {
	Mode string `yaml:"mode"` // crystal or bypass
}

type PLLConfig struct {
	Mult   uint32 `yaml:"mult"`
	Div    uint8  `yaml:"div"`
	Source string `yaml:"source"` // hsi or hse
}

var clkNames = map[string]rcc.Clk{
	"hsi": rcc.ClkHSI,
	"hse": rcc.ClkHSE,
	"pll": rcc.ClkPLL,
}

var hseModes = map[string]rcc.HSEMode{
	"crystal": rcc.HSENotBypassed,
	"bypass":  rcc.HSEBypassed,
}

var sysClocks = map[string]rcc.SysClk{
	"hsi": rcc.SysHSI,
	"hse": rcc.SysHSE,
	"pll": rcc.SysPLLP,
}

var busNames = map[string]rcc.Bus{
	"ahb1": rcc.AHB1,
	"ahb2": rcc.AHB2,
	"ahb3": rcc.AHB3,
	"apb1": rcc.APB1,
	"apb2": rcc.APB2,
}

var periphNames = map[rcc.Bus]map[string]rcc.Peripheral{
	rcc.AHB1: {
		"gpioa": rcc.GPIOAEN, "gpiob": rcc.GPIOBEN, "gpioc": rcc.GPIOCEN,
		"gpiod": rcc.GPIODEN, "gpioe": rcc.GPIOEEN, "gpiof": rcc.GPIOFEN,
		"gpiog": rcc.GPIOGEN, "gpioh": rcc.GPIOHEN,
		"crc": rcc.CRCEN, "bkpsram": rcc.BKPSRAMEN,
		"dma1": rcc.DMA1EN, "dma2": rcc.DMA2EN,
		"otghs": rcc.OTGHSEN, "otghsulpi": rcc.OTGHSULPIEN,
	},
	rcc.AHB2: {
		"dcmi": rcc.DCMIEN, "otgfs": rcc.OTGFSEN,
	},
	rcc.AHB3: {
		"fmc": rcc.FMCEN, "qspi": rcc.QSPIEN,
	},
	rcc.APB1: {
		"tim2": rcc.TIM2EN, "tim3": rcc.TIM3EN, "tim4": rcc.TIM4EN,
		"tim5": rcc.TIM5EN, "tim6": rcc.TIM6EN, "tim7": rcc.TIM7EN,
		"tim12": rcc.TIM12EN, "tim13": rcc.TIM13EN, "tim14": rcc.TIM14EN,
		"wwdg": rcc.WWDGEN, "spi2": rcc.SPI2EN, "spi3": rcc.SPI3EN,
		"spdifrx": rcc.SPDIFRXEN, "usart2": rcc.USART2EN, "usart3": rcc.USART3EN,
		"uart4": rcc.UART4EN, "uart5": rcc.UART5EN,
		"i2c1": rcc.I2C1EN, "i2c2": rcc.I2C2EN, "i2c3": rcc.I2C3EN,
		"fmpi2c1": rcc.FMPI2C1EN, "can1": rcc.CAN1EN, "can2": rcc.CAN2EN,
		"cec": rcc.CECEN, "pwr": rcc.PWREN, "dac": rcc.DACEN,
	},
	rcc.APB2: {
		"tim1": rcc.TIM1EN, "tim8": rcc.TIM8EN,
		"usart1": rcc.USART1EN, "usart6": rcc.USART6EN,
		"adc1": rcc.ADC1EN, "adc2": rcc.ADC2EN, "adc3": rcc.ADC3EN,
		"sdio": rcc.SDIOEN, "spi1": rcc.SPI1EN, "spi4": rcc.SPI4EN,
		"syscfg": rcc.SYSCFGEN,
		"tim9":   rcc.TIM9EN, "tim10": rcc.TIM10EN, "tim11": rcc.TIM11EN,
		"sai1": rcc.SAI1EN, "sai2": rcc.SAI2EN,
	},
}

// pllSources are the oscillators that may feed the PLL.
var pllSources = []string{"hsi", "hse"}

func Load(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("couldn't parse plan: %v", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func LoadFile(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read %s: %v", path, err)
	}
	p, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return p, nil
}

func (p *Plan) validate() error {
	if p.HSE != nil {
		if _, ok := hseModes[strings.ToLower(p.HSE.Mode)]; !ok {
			return fmt.Errorf("unknown HSE mode %q (want crystal or bypass)", p.HSE.Mode)
		}
	}
	for _, osc := range p.Oscillators {
		if _, ok := clkNames[strings.ToLower(osc)]; !ok {
			return fmt.Errorf("unknown oscillator %q", osc)
		}
	}
	if p.PLL != nil {
		if !slices.Contains(pllSources, strings.ToLower(p.PLL.Source)) {
			return fmt.Errorf("PLL source %q must be one of %v", p.PLL.Source, pllSources)
		}
	}
	if p.SysClock != "" {
		if _, ok := sysClocks[strings.ToLower(p.SysClock)]; !ok {
			return fmt.Errorf("unknown system clock source %q", p.SysClock)
		}
	}
	for bus, periphs := range p.Enable {
		b, ok := busNames[strings.ToLower(bus)]
		if !ok {
			return fmt.Errorf("unknown bus %q", bus)
		}
		for _, name := range periphs {
			if _, ok := periphNames[b][strings.ToLower(name)]; !ok {
				return fmt.Errorf("unknown peripheral %q on bus %s", name, bus)
			}
		}
	}
	return nil
}

// Apply drives the plan against one RCC handle, stopping at the first
// error. Order matters: the PLL needs its source oscillator ready, and the
// system clock switch only completes once its target is running.
func (p *Plan) Apply(rc *rcc.RCC) error {
	if p.HSE != nil {
		if err := rc.SetHSEMode(hseModes[strings.ToLower(p.HSE.Mode)]); err != nil {
			return fmt.Errorf("couldn't set HSE mode: %v", err)
		}
	}
	for _, osc := range p.Oscillators {
		if err := rc.SetClockStatus(clkNames[strings.ToLower(osc)], rcc.On); err != nil {
			return fmt.Errorf("couldn't enable %s: %v", osc, err)
		}
	}
	if p.PLL != nil {
		src := clkNames[strings.ToLower(p.PLL.Source)]
		if err := rc.ConfigurePLL(p.PLL.Mult, p.PLL.Div, src); err != nil {
			return fmt.Errorf("couldn't configure PLL: %v", err)
		}
	}
	if p.SysClock != "" {
		if err := rc.SetSysClock(sysClocks[strings.ToLower(p.SysClock)]); err != nil {
			return fmt.Errorf("couldn't switch system clock: %v", err)
		}
	}
	for bus, periphs := range p.Enable {
		b := busNames[strings.ToLower(bus)]
		for _, name := range periphs {
			if err := rc.EnableClock(b, periphNames[b][strings.ToLower(name)]); err != nil {
				return fmt.Errorf("couldn't enable %s/%s: %v", bus, name, err)
			}
		}
	}
	return nil
}
