package ppu

import "nescore/internal/memory"

// State is a gob-serializable snapshot of the PPU's registers, internal
// scroll/address latches, sprite evaluation state, and pixel output.
// Callbacks and the memory interface are reattached by the caller rather
// than captured here.
type State struct {
	PPUCtrl   uint8
	PPUMask   uint8
	PPUStatus uint8
	OAMAddr   uint8
	OAMData   uint8
	PPUScroll uint8
	PPUAddr   uint8
	PPUData   uint8

	V, T uint16
	X    uint8
	W    bool

	Scanline    int
	Cycle       int
	FrameCount  uint64
	OddFrame    bool
	SuppressVBL bool
	ReadBuffer  uint8

	OAM              [256]uint8
	SecondaryOAM     [32]uint8
	SpriteCount      uint8
	Sprite0Hit       bool
	SpriteOverflow   bool
	LastEvalScanline int
	SpriteIndexes    [8]uint8
	Sprite0OnScanline bool

	BackgroundEnabled bool
	SpritesEnabled    bool
	RenderingEnabled  bool

	CycleCount uint64

	FrameBuffer [256 * 240]uint32

	Memory memory.PPUMemoryState
}

// Snapshot captures the full PPU state, including its own nametable/palette
// memory.
func (p *PPU) Snapshot() State {
	return State{
		PPUCtrl: p.ppuCtrl, PPUMask: p.ppuMask, PPUStatus: p.ppuStatus,
		OAMAddr: p.oamAddr, OAMData: p.oamData, PPUScroll: p.ppuScroll,
		PPUAddr: p.ppuAddr, PPUData: p.ppuData,

		V: p.v, T: p.t, X: p.x, W: p.w,

		Scanline: p.scanline, Cycle: p.cycle, FrameCount: p.frameCount,
		OddFrame: p.oddFrame, SuppressVBL: p.suppressVBL, ReadBuffer: p.readBuffer,

		OAM: p.oam, SecondaryOAM: p.secondaryOAM, SpriteCount: p.spriteCount,
		Sprite0Hit: p.sprite0Hit, SpriteOverflow: p.spriteOverflow,
		LastEvalScanline: p.lastEvalScanline, SpriteIndexes: p.spriteIndexes,
		Sprite0OnScanline: p.sprite0OnScanline,

		BackgroundEnabled: p.backgroundEnabled, SpritesEnabled: p.spritesEnabled,
		RenderingEnabled: p.renderingEnabled,

		CycleCount: p.cycleCount,

		FrameBuffer: p.frameBuffer,

		Memory: p.memory.Snapshot(),
	}
}

// Restore puts the PPU back into the state a previous Snapshot captured.
func (p *PPU) Restore(s State) {
	p.ppuCtrl, p.ppuMask, p.ppuStatus = s.PPUCtrl, s.PPUMask, s.PPUStatus
	p.oamAddr, p.oamData, p.ppuScroll = s.OAMAddr, s.OAMData, s.PPUScroll
	p.ppuAddr, p.ppuData = s.PPUAddr, s.PPUData

	p.v, p.t, p.x, p.w = s.V, s.T, s.X, s.W

	p.scanline, p.cycle, p.frameCount = s.Scanline, s.Cycle, s.FrameCount
	p.oddFrame, p.suppressVBL, p.readBuffer = s.OddFrame, s.SuppressVBL, s.ReadBuffer

	p.oam, p.secondaryOAM, p.spriteCount = s.OAM, s.SecondaryOAM, s.SpriteCount
	p.sprite0Hit, p.spriteOverflow = s.Sprite0Hit, s.SpriteOverflow
	p.lastEvalScanline, p.spriteIndexes = s.LastEvalScanline, s.SpriteIndexes
	p.sprite0OnScanline = s.Sprite0OnScanline

	p.backgroundEnabled, p.spritesEnabled = s.BackgroundEnabled, s.SpritesEnabled
	p.renderingEnabled = s.RenderingEnabled

	p.cycleCount = s.CycleCount

	p.frameBuffer = s.FrameBuffer

	p.memory.Restore(s.Memory)
}
