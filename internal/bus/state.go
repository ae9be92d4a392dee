package bus

import (
	"nescore/internal/apu"
	"nescore/internal/cartridge"
	"nescore/internal/cpu"
	"nescore/internal/input"
	"nescore/internal/memory"
	"nescore/internal/ppu"
)

// State is a gob-serializable snapshot of the entire bus: every component's
// own state plus the timing/DMA/IRQ bookkeeping the bus itself owns. A
// cartridge is captured only when one implementing mapper persistence
// (*cartridge.Cartridge) is loaded; mock/test cartridges leave CartLoaded
// false and Cart zero.
type State struct {
	CPU    cpu.State
	PPU    ppu.State
	APU    apu.State
	Memory memory.State
	Input  input.State

	CartLoaded bool
	Cart       cartridge.State

	TotalCycles      uint64
	CPUCycles        uint64
	PPUCycles        uint64
	FrameCount       uint64
	DMASuspendCycles uint64
	DMAInProgress    bool
	NMIPending       bool
	ClockCounter     uint64
	LastScanline     int
	OddFrame         bool
}

// Snapshot captures the full emulator state: every component plus the bus's
// own clock and DMA/IRQ bookkeeping.
func (b *Bus) Snapshot() State {
	s := State{
		CPU:    b.CPU.Snapshot(),
		PPU:    b.PPU.Snapshot(),
		APU:    b.APU.Snapshot(),
		Memory: b.Memory.Snapshot(),
		Input:  b.Input.Snapshot(),

		TotalCycles:      b.totalCycles,
		CPUCycles:        b.cpuCycles,
		PPUCycles:        b.ppuCycles,
		FrameCount:       b.frameCount,
		DMASuspendCycles: b.dmaSuspendCycles,
		DMAInProgress:    b.dmaInProgress,
		NMIPending:       b.nmiPending,
		ClockCounter:     b.clockCounter,
		LastScanline:     b.lastScanline,
		OddFrame:         b.oddFrame,
	}
	if b.cart != nil {
		s.CartLoaded = true
		s.Cart = b.cart.SaveState()
	}
	return s
}

// Restore puts every component, and the bus's own clock/DMA/IRQ bookkeeping,
// back into the state a previous Snapshot captured. The bus must already
// have the same cartridge loaded (same mapper, same ROM) that produced the
// snapshot; Restore only rewrites mutable registers, never ROM identity.
func (b *Bus) Restore(s State) {
	b.CPU.Restore(s.CPU)
	b.PPU.Restore(s.PPU)
	b.APU.Restore(s.APU)
	b.Memory.Restore(s.Memory)
	b.Input.Restore(s.Input)

	b.totalCycles = s.TotalCycles
	b.cpuCycles = s.CPUCycles
	b.ppuCycles = s.PPUCycles
	b.frameCount = s.FrameCount
	b.dmaSuspendCycles = s.DMASuspendCycles
	b.dmaInProgress = s.DMAInProgress
	b.nmiPending = s.NMIPending
	b.clockCounter = s.ClockCounter
	b.lastScanline = s.LastScanline
	b.oddFrame = s.OddFrame

	if s.CartLoaded && b.cart != nil {
		b.cart.LoadState(s.Cart)
	}

	b.PPU.SetFrameCount(s.FrameCount)
}
