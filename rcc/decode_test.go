package rcc

import "testing"

func TestDecodeCR(t *testing.T) {
	tests := []struct {
		v    uint32
		want string
	}{
		{0, "0"},
		{RCC_CR_HSION | RCC_CR_HSIRDY, "HSION|HSIRDY"},
		{RCC_CR_HSEON | RCC_CR_HSEBYP | RCC_CR_PLLON | RCC_CR_PLLRDY, "HSEON|HSEBYP|PLLON|PLLRDY"},
	}
	for _, test := range tests {
		if got := DecodeCR(test.v); got != test.want {
			t.Errorf("DecodeCR(%08X) got: %q, want: %q", test.v, got, test.want)
		}
	}
}

func TestDecodePLLCFGR(t *testing.T) {
	v := uint32(4)<<RCC_PLLCFGR_PLLM_Pos |
		uint32(192)<<RCC_PLLCFGR_PLLN_Pos |
		uint32(1)<<RCC_PLLCFGR_PLLP_Pos |
		RCC_PLLCFGR_PLLSRC
	want := "PLLM=4|PLLN=192|PLLP=/4|PLLSRC=HSE"
	if got := DecodePLLCFGR(v); got != want {
		t.Errorf("DecodePLLCFGR(%08X) got: %q, want: %q", v, got, want)
	}
}

func TestDecodeCFGR(t *testing.T) {
	v := uint32(SysPLLP) | uint32(SysPLLP)<<RCC_CFGR_SWS_Pos
	want := "SW=PLL|SWS=PLL"
	if got := DecodeCFGR(v); got != want {
		t.Errorf("DecodeCFGR(%08X) got: %q, want: %q", v, got, want)
	}
}
