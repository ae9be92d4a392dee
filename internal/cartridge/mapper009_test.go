package cartridge

import "testing"

// Test Mapper 9 (MMC2) specific behavior: switchable 8KB PRG bank, fixed
// last-three banks, and the dual CHR latches.

func newMMC2Cartridge(prgBanks16k int) (*Cartridge, *Mapper009) {
	cart := &Cartridge{
		prgROM:   make([]uint8, prgBanks16k*0x4000),
		chrROM:   make([]uint8, 8*0x1000), // 32KB CHR, plenty of latch banks
		mapperID: 9,
	}
	for i := range cart.prgROM {
		cart.prgROM[i] = uint8(i / 0x2000)
	}
	for i := range cart.chrROM {
		cart.chrROM[i] = uint8(i / 0x1000)
	}
	m := NewMapper009(cart)
	cart.mapper = m
	return cart, m
}

func TestMapper009_PRGBankSwitch_Low8K(t *testing.T) {
	_, m := newMMC2Cartridge(4)
	m.WritePRG(0xa000, 0x03)

	got := m.ReadPRG(0x8000)
	expected := m.cart.prgROM[3*0x2000]
	if got != expected {
		t.Errorf("expected bank 3 at 0x8000, got 0x%02x want 0x%02x", got, expected)
	}
}

func TestMapper009_HighRegionFixedToLastThreeBanks(t *testing.T) {
	_, m := newMMC2Cartridge(4)
	numBanks8k := m.numBanksPRG8k
	got := m.ReadPRG(0xa000)
	expected := m.cart.prgROM[(numBanks8k-3)*0x2000]
	if got != expected {
		t.Errorf("expected fixed bank at 0xA000, got 0x%02x want 0x%02x", got, expected)
	}
}

func TestMapper009_CHRLatchLo_SwitchesOnTileFetch(t *testing.T) {
	_, m := newMMC2Cartridge(2)
	m.WritePRG(0xb000, 0x01) // FD bank = 1
	m.WritePRG(0xc000, 0x02) // FE bank = 2

	// Reading tile $FD sets latch to FD (false).
	m.ReadCHR(0x0fd0)
	value := m.ReadCHR(0x0000)
	if value != m.cart.chrROM[1*0x1000] {
		t.Errorf("expected FD bank selected, got 0x%02x want 0x%02x", value, m.cart.chrROM[0x1000])
	}

	// Reading tile $FE flips the latch to FE (true).
	m.ReadCHR(0x0fe0)
	value = m.ReadCHR(0x0000)
	if value != m.cart.chrROM[2*0x1000] {
		t.Errorf("expected FE bank selected, got 0x%02x want 0x%02x", value, m.cart.chrROM[2*0x1000])
	}
}

func TestMapper009_MirroringRegister(t *testing.T) {
	_, m := newMMC2Cartridge(2)
	m.WritePRG(0xf000, 0x01)
	if mode, ok := m.Mirror(); !ok || mode != MirrorHorizontal {
		t.Errorf("expected horizontal mirroring, got %v ok=%v", mode, ok)
	}
	m.WritePRG(0xf000, 0x00)
	if mode, _ := m.Mirror(); mode != MirrorVertical {
		t.Errorf("expected vertical mirroring, got %v", mode)
	}
}

func TestMapper009_PRGRAM_Roundtrip(t *testing.T) {
	cart, m := newMMC2Cartridge(2)
	m.WritePRG(0x6000, 0x44)
	if v := m.ReadPRG(0x6000); v != 0x44 {
		t.Errorf("expected PRG RAM roundtrip 0x44, got 0x%02x", v)
	}
	if cart.sram[0] != 0x44 {
		t.Errorf("expected shared sram updated, got 0x%02x", cart.sram[0])
	}
}

func TestMapper009_Reset(t *testing.T) {
	_, m := newMMC2Cartridge(4)
	m.WritePRG(0xa000, 0x05)
	m.WritePRG(0xf000, 0x01)
	m.Reset()
	if m.prgBankSelect8k != 0 {
		t.Errorf("expected reset to select PRG bank 0, got %d", m.prgBankSelect8k)
	}
	if mode, _ := m.Mirror(); mode != MirrorVertical {
		t.Errorf("expected reset to restore vertical mirroring, got %v", mode)
	}
}
