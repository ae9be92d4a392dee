package cartridge

// MapperState is a gob-serializable snapshot of the active mapper's
// bank-switch and IRQ registers. Only the fields the concrete mapper type
// actually uses are populated; the rest stay at their zero value, which is
// harmless since LoadState only reads the fields its own type switch case
// assigns back.
type MapperState struct {
	MirrorMode MirrorMode

	// Mapper001 (MMC1)
	ControlReg        uint8
	LoadReg           uint8
	PRGBankSelect16Lo int
	PRGBankSelect16Hi int
	PRGBankSelect32   int
	CHRBankSelect4Lo  int
	CHRBankSelect4Hi  int
	CHRBankSelect8    int

	// Mapper002 (UxROM)
	PRGBankSelectLo int
	PRGBankSelectHi int

	// Mapper003 (CNROM)
	CHRBankSelect int

	// Mapper004 (MMC3)
	BankReg       [8]uint8
	PRGBankOffset [4]int
	CHRBankOffset [8]int
	TargetRegIdx  int
	PRGBankMode   bool
	CHRInversion  bool
	IRQActive     bool
	IRQEnable     bool
	IRQCounter    int
	IRQReload     int

	// Mapper007 (AxROM) reuses PRGBankSelect32 above.

	// Mapper009 (MMC2)
	PRGBankSelect8k     int
	CHRBankSelect4kLoFD int
	CHRBankSelect4kLoFE int
	CHRBankSelect4kHiFD int
	CHRBankSelect4kHiFE int
	LatchLo             bool
	LatchHi             bool
}

// State is a gob-serializable snapshot of a cartridge's full mutable state:
// mapper registers, battery-backed PRG RAM, and CHR RAM (for boards that use
// CHR RAM instead of CHR ROM). PRG/CHR ROM content itself isn't part of the
// snapshot since it never changes after load.
type State struct {
	Mapper MapperState
	PRGRAM []uint8
	CHRRAM []uint8
}

// SaveState captures the cartridge's mutable state for persistence.
func (c *Cartridge) SaveState() State {
	state := State{PRGRAM: c.mapper.SaveRAM()}
	if c.hasCHRRAM {
		state.CHRRAM = append([]uint8(nil), c.chrROM...)
	}

	switch m := c.mapper.(type) {
	case *Mapper001:
		state.Mapper = MapperState{
			MirrorMode:        m.mirrorMode,
			ControlReg:        m.controlReg,
			LoadReg:           m.loadReg,
			PRGBankSelect16Lo: m.prgBankSelect16Lo,
			PRGBankSelect16Hi: m.prgBankSelect16Hi,
			PRGBankSelect32:   m.prgBankSelect32,
			CHRBankSelect4Lo:  m.chrBankSelect4Lo,
			CHRBankSelect4Hi:  m.chrBankSelect4Hi,
			CHRBankSelect8:    m.chrBankSelect8,
		}
	case *Mapper002:
		state.Mapper = MapperState{
			PRGBankSelectLo: m.prgBankSelectLo,
			PRGBankSelectHi: m.prgBankSelectHi,
		}
	case *Mapper003:
		state.Mapper = MapperState{CHRBankSelect: m.chrBankSelect}
	case *Mapper004:
		state.Mapper = MapperState{
			MirrorMode:    m.mirrorMode,
			BankReg:       m.bankReg,
			PRGBankOffset: m.prgBankOffset,
			CHRBankOffset: m.chrBankOffset,
			TargetRegIdx:  m.targetRegIdx,
			PRGBankMode:   m.prgBankMode,
			CHRInversion:  m.chrInversion,
			IRQActive:     m.irqActive,
			IRQEnable:     m.irqEnable,
			IRQCounter:    m.irqCounter,
			IRQReload:     m.irqReload,
		}
	case *Mapper007:
		state.Mapper = MapperState{
			MirrorMode:      m.mirrorMode,
			PRGBankSelect32: m.prgBankSelect32,
		}
	case *Mapper009:
		state.Mapper = MapperState{
			MirrorMode:          m.mirrorMode,
			PRGBankSelect8k:     m.prgBankSelect8k,
			CHRBankSelect4kLoFD: m.chrBankSelect4kLoFD,
			CHRBankSelect4kLoFE: m.chrBankSelect4kLoFE,
			CHRBankSelect4kHiFD: m.chrBankSelect4kHiFD,
			CHRBankSelect4kHiFE: m.chrBankSelect4kHiFE,
			LatchLo:             m.latchLo,
			LatchHi:             m.latchHi,
		}
	case *Mapper000:
		// NROM has no mutable bank-switch state.
	}

	return state
}

// LoadState restores a previously captured cartridge state onto the mapper
// the cartridge already has loaded. The cartridge must have been built from
// the same ROM (same mapper ID, same ROM sizes) as the one that produced
// the state.
func (c *Cartridge) LoadState(state State) {
	if state.PRGRAM != nil {
		c.mapper.LoadRAM(state.PRGRAM)
	}
	if state.CHRRAM != nil && c.hasCHRRAM {
		copy(c.chrROM, state.CHRRAM)
	}

	switch m := c.mapper.(type) {
	case *Mapper001:
		m.mirrorMode = state.Mapper.MirrorMode
		m.controlReg = state.Mapper.ControlReg
		m.loadReg = state.Mapper.LoadReg
		m.prgBankSelect16Lo = state.Mapper.PRGBankSelect16Lo
		m.prgBankSelect16Hi = state.Mapper.PRGBankSelect16Hi
		m.prgBankSelect32 = state.Mapper.PRGBankSelect32
		m.chrBankSelect4Lo = state.Mapper.CHRBankSelect4Lo
		m.chrBankSelect4Hi = state.Mapper.CHRBankSelect4Hi
		m.chrBankSelect8 = state.Mapper.CHRBankSelect8
	case *Mapper002:
		m.prgBankSelectLo = state.Mapper.PRGBankSelectLo
		m.prgBankSelectHi = state.Mapper.PRGBankSelectHi
	case *Mapper003:
		m.chrBankSelect = state.Mapper.CHRBankSelect
	case *Mapper004:
		m.mirrorMode = state.Mapper.MirrorMode
		m.bankReg = state.Mapper.BankReg
		m.prgBankOffset = state.Mapper.PRGBankOffset
		m.chrBankOffset = state.Mapper.CHRBankOffset
		m.targetRegIdx = state.Mapper.TargetRegIdx
		m.prgBankMode = state.Mapper.PRGBankMode
		m.chrInversion = state.Mapper.CHRInversion
		m.irqActive = state.Mapper.IRQActive
		m.irqEnable = state.Mapper.IRQEnable
		m.irqCounter = state.Mapper.IRQCounter
		m.irqReload = state.Mapper.IRQReload
	case *Mapper007:
		m.mirrorMode = state.Mapper.MirrorMode
		m.prgBankSelect32 = state.Mapper.PRGBankSelect32
	case *Mapper009:
		m.mirrorMode = state.Mapper.MirrorMode
		m.prgBankSelect8k = state.Mapper.PRGBankSelect8k
		m.chrBankSelect4kLoFD = state.Mapper.CHRBankSelect4kLoFD
		m.chrBankSelect4kLoFE = state.Mapper.CHRBankSelect4kLoFE
		m.chrBankSelect4kHiFD = state.Mapper.CHRBankSelect4kHiFD
		m.chrBankSelect4kHiFE = state.Mapper.CHRBankSelect4kHiFE
		m.latchLo = state.Mapper.LatchLo
		m.latchHi = state.Mapper.LatchHi
	case *Mapper000:
		// NROM has no mutable bank-switch state.
	}
}
