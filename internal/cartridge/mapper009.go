package cartridge

// Mapper009 implements MMC2 (mapper 9), as used by Punch-Out!!.
//
// PRG ROM exposes an 8 KiB switchable bank at 0x8000-0x9FFF; the remaining
// 24 KiB is fixed to the cartridge's last three banks. CHR ROM is read
// through two independent 4 KiB latches: reading tile $FD or $FE from the
// corresponding pattern table flips that half's latch, selecting between
// two preloaded 4 KiB banks. This lets the PPU swap character data
// mid-frame as the renderer crosses between tile sets.
type Mapper009 struct {
	cart *Cartridge

	numBanksPRG8k int

	prgBankSelect8k     int
	chrBankSelect4kLoFD int
	chrBankSelect4kLoFE int
	chrBankSelect4kHiFD int
	chrBankSelect4kHiFE int
	latchLo             bool
	latchHi             bool

	mirrorMode MirrorMode
}

// NewMapper009 creates a new MMC2 mapper
func NewMapper009(cart *Cartridge) *Mapper009 {
	return &Mapper009{
		cart:          cart,
		numBanksPRG8k: (len(cart.prgROM) / 0x4000) * 2,
		mirrorMode:    MirrorVertical,
	}
}

// ReadPRG resolves a CPU read against PRG RAM, the switchable 8 KiB bank,
// or the fixed-to-last-three-banks region.
func (m *Mapper009) ReadPRG(address uint16) uint8 {
	switch {
	case address >= 0x6000 && address <= 0x7fff:
		return m.cart.sram[address&0x1fff]
	case address >= 0x8000 && address <= 0x9fff:
		offset := m.prgBankSelect8k*0x2000 + int(address&0x1fff)
		if offset < len(m.cart.prgROM) {
			return m.cart.prgROM[offset]
		}
	case address >= 0xa000:
		if m.numBanksPRG8k >= 3 {
			offset := (m.numBanksPRG8k-3)*0x2000 + int(address-0xa000)
			if offset < len(m.cart.prgROM) {
				return m.cart.prgROM[offset]
			}
		}
	}
	return 0
}

// WritePRG dispatches writes to the PRG bank select, the four CHR latch
// bank registers, or the mirroring register according to address range.
func (m *Mapper009) WritePRG(address uint16, data uint8) {
	switch {
	case address >= 0x6000 && address <= 0x7fff:
		m.cart.sram[address&0x1fff] = data
	case address >= 0xa000 && address <= 0xafff:
		m.prgBankSelect8k = int(data & 0x0f)
	case address >= 0xb000 && address <= 0xbfff:
		m.chrBankSelect4kLoFD = int(data & 0x1f)
	case address >= 0xc000 && address <= 0xcfff:
		m.chrBankSelect4kLoFE = int(data & 0x1f)
	case address >= 0xd000 && address <= 0xdfff:
		m.chrBankSelect4kHiFD = int(data & 0x1f)
	case address >= 0xe000 && address <= 0xefff:
		m.chrBankSelect4kHiFE = int(data & 0x1f)
	case address >= 0xf000:
		if data&0x01 != 0 {
			m.mirrorMode = MirrorHorizontal
		} else {
			m.mirrorMode = MirrorVertical
		}
	}
}

// ReadCHR resolves a PPU pattern-table read against the currently latched
// 4 KiB CHR bank, flipping the corresponding latch when address $FD0-$FDF
// or $FE0-$FEF is touched.
func (m *Mapper009) ReadCHR(address uint16) uint8 {
	switch {
	case address >= 0x0fd0 && address <= 0x0fdf:
		m.latchLo = false
	case address >= 0x0fe0 && address <= 0x0fef:
		m.latchLo = true
	case address >= 0x1fd0 && address <= 0x1fdf:
		m.latchHi = false
	case address >= 0x1fe0 && address <= 0x1fef:
		m.latchHi = true
	}

	var offset int
	switch {
	case address <= 0x0fff:
		if m.latchLo {
			offset = m.chrBankSelect4kLoFE*0x1000 + int(address&0x0fff)
		} else {
			offset = m.chrBankSelect4kLoFD*0x1000 + int(address&0x0fff)
		}
	case address <= 0x1fff:
		if m.latchHi {
			offset = m.chrBankSelect4kHiFE*0x1000 + int(address&0x0fff)
		} else {
			offset = m.chrBankSelect4kHiFD*0x1000 + int(address&0x0fff)
		}
	default:
		return 0
	}
	if offset < len(m.cart.chrROM) {
		return m.cart.chrROM[offset]
	}
	return 0
}

// WriteCHR is a no-op: MMC2's CHR is always ROM.
func (m *Mapper009) WriteCHR(address uint16, value uint8) {}

// Mirror returns the mirroring selected by the mirroring register.
func (m *Mapper009) Mirror() (MirrorMode, bool) {
	return m.mirrorMode, true
}

// Reset reselects PRG bank 0, clears both CHR latches, and resets
// mirroring to vertical.
func (m *Mapper009) Reset() {
	m.prgBankSelect8k = 0
	m.chrBankSelect4kLoFD = 0
	m.chrBankSelect4kLoFE = 0
	m.chrBankSelect4kHiFD = 0
	m.chrBankSelect4kHiFE = 0
	m.latchLo = false
	m.latchHi = false
	m.mirrorMode = MirrorVertical
}

// IRQState always reports false: MMC2 has no IRQ line.
func (m *Mapper009) IRQState() bool { return false }

// IRQClear is a no-op.
func (m *Mapper009) IRQClear() {}

// OnScanlineEnd is a no-op.
func (m *Mapper009) OnScanlineEnd() {}

// LoadRAM restores the cartridge's shared PRG RAM.
func (m *Mapper009) LoadRAM(ram []uint8) {
	if len(ram) == len(m.cart.sram) {
		copy(m.cart.sram[:], ram)
	}
}

// SaveRAM always returns the PRG RAM image.
func (m *Mapper009) SaveRAM() []uint8 {
	out := make([]uint8, len(m.cart.sram))
	copy(out, m.cart.sram[:])
	return out
}
