package cartridge

import "testing"

// Test Mapper 7 (AxROM) specific behavior: 32KB bank switching and
// one-screen mirroring selection.

func newAxROMCartridge(prg32kBanks int) (*Cartridge, *Mapper007) {
	cart := &Cartridge{
		prgROM:    make([]uint8, prg32kBanks*0x8000),
		chrROM:    make([]uint8, 0x2000),
		mapperID:  7,
		hasCHRRAM: true,
	}
	for i := range cart.prgROM {
		cart.prgROM[i] = uint8(i / 0x8000)
	}
	m := NewMapper007(cart)
	cart.mapper = m
	return cart, m
}

func TestMapper007_PowerOnState(t *testing.T) {
	_, m := newAxROMCartridge(4)
	if m.prgBankSelect32 != 0 {
		t.Errorf("expected bank 0 at power-on, got %d", m.prgBankSelect32)
	}
	if mode, _ := m.Mirror(); mode != MirrorSingleScreen0 {
		t.Errorf("expected single-screen-0 at power-on, got %v", mode)
	}
}

func TestMapper007_PRGBankSwitch(t *testing.T) {
	_, m := newAxROMCartridge(4)
	m.WritePRG(0x8000, 0x02)

	value := m.ReadPRG(0x8000)
	expected := m.cart.prgROM[2*0x8000]
	if value != expected {
		t.Errorf("expected bank 2 byte 0x%02x, got 0x%02x", expected, value)
	}
}

func TestMapper007_MirroringSelect(t *testing.T) {
	_, m := newAxROMCartridge(2)
	m.WritePRG(0x8000, 0x10)
	if mode, _ := m.Mirror(); mode != MirrorSingleScreen1 {
		t.Errorf("expected single-screen-1, got %v", mode)
	}
	m.WritePRG(0x8000, 0x00)
	if mode, _ := m.Mirror(); mode != MirrorSingleScreen0 {
		t.Errorf("expected single-screen-0, got %v", mode)
	}
}

func TestMapper007_CHRIsWritableRAM(t *testing.T) {
	_, m := newAxROMCartridge(2)
	m.WriteCHR(0x0100, 0x22)
	if v := m.ReadCHR(0x0100); v != 0x22 {
		t.Errorf("expected CHR RAM roundtrip 0x22, got 0x%02x", v)
	}
}

func TestMapper007_Reset(t *testing.T) {
	_, m := newAxROMCartridge(4)
	m.WritePRG(0x8000, 0x13)
	m.Reset()
	if m.prgBankSelect32 != 0 {
		t.Errorf("expected reset to select bank 0, got %d", m.prgBankSelect32)
	}
	if mode, _ := m.Mirror(); mode != MirrorSingleScreen0 {
		t.Errorf("expected reset to select single-screen-0, got %v", mode)
	}
}
