package memory

// State is a gob-serializable snapshot of CPU-visible system RAM and the
// open-bus latch. The PPU/APU/input/cartridge interfaces are reattached by
// the caller rather than captured here.
type State struct {
	RAM          [0x800]uint8
	OpenBusValue uint8
}

// Snapshot captures internal RAM and the open-bus value.
func (m *Memory) Snapshot() State {
	return State{RAM: m.ram, OpenBusValue: m.openBusValue}
}

// Restore puts internal RAM and the open-bus value back as a previous
// Snapshot captured them.
func (m *Memory) Restore(s State) {
	m.ram = s.RAM
	m.openBusValue = s.OpenBusValue
}

// PPUMemoryState is a gob-serializable snapshot of the PPU's own address
// space: nametable RAM and palette RAM. CHR ROM/RAM lives on the cartridge
// and is captured through cartridge.State instead.
type PPUMemoryState struct {
	VRAM       [0x1000]uint8
	PaletteRAM [32]uint8
	Mirroring  MirrorMode
}

// Snapshot captures nametable and palette RAM.
func (pm *PPUMemory) Snapshot() PPUMemoryState {
	return PPUMemoryState{VRAM: pm.vram, PaletteRAM: pm.paletteRAM, Mirroring: pm.mirroring}
}

// Restore puts nametable and palette RAM back as a previous Snapshot
// captured them.
func (pm *PPUMemory) Restore(s PPUMemoryState) {
	pm.vram = s.VRAM
	pm.paletteRAM = s.PaletteRAM
	pm.mirroring = s.Mirroring
}
