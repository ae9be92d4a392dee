package apu

// PulseChannelState is a gob-serializable snapshot of a pulse channel.
type PulseChannelState struct {
	DutyCycle       uint8
	EnvelopeLoop    bool
	EnvelopeDisable bool
	Volume          uint8

	SweepEnable  bool
	SweepPeriod  uint8
	SweepNegate  bool
	SweepShift   uint8
	SweepReload  bool
	SweepCounter uint8

	Timer        uint16
	TimerCounter uint16

	LengthCounter uint8
	LengthHalt    bool

	EnvelopeStart   bool
	EnvelopeCounter uint8
	EnvelopeDivider uint8

	DutyIndex    uint8
	Output       uint8
	SequencerPos uint8
}

func (c *PulseChannel) snapshot() PulseChannelState {
	return PulseChannelState{
		DutyCycle: c.dutyCycle, EnvelopeLoop: c.envelopeLoop, EnvelopeDisable: c.envelopeDisable,
		Volume: c.volume,
		SweepEnable: c.sweepEnable, SweepPeriod: c.sweepPeriod, SweepNegate: c.sweepNegate,
		SweepShift: c.sweepShift, SweepReload: c.sweepReload, SweepCounter: c.sweepCounter,
		Timer: c.timer, TimerCounter: c.timerCounter,
		LengthCounter: c.lengthCounter, LengthHalt: c.lengthHalt,
		EnvelopeStart: c.envelopeStart, EnvelopeCounter: c.envelopeCounter, EnvelopeDivider: c.envelopeDivider,
		DutyIndex: c.dutyIndex, Output: c.output, SequencerPos: c.sequencerPos,
	}
}

func (c *PulseChannel) restore(s PulseChannelState) {
	c.dutyCycle, c.envelopeLoop, c.envelopeDisable = s.DutyCycle, s.EnvelopeLoop, s.EnvelopeDisable
	c.volume = s.Volume
	c.sweepEnable, c.sweepPeriod, c.sweepNegate = s.SweepEnable, s.SweepPeriod, s.SweepNegate
	c.sweepShift, c.sweepReload, c.sweepCounter = s.SweepShift, s.SweepReload, s.SweepCounter
	c.timer, c.timerCounter = s.Timer, s.TimerCounter
	c.lengthCounter, c.lengthHalt = s.LengthCounter, s.LengthHalt
	c.envelopeStart, c.envelopeCounter, c.envelopeDivider = s.EnvelopeStart, s.EnvelopeCounter, s.EnvelopeDivider
	c.dutyIndex, c.output, c.sequencerPos = s.DutyIndex, s.Output, s.SequencerPos
}

// TriangleChannelState is a gob-serializable snapshot of the triangle channel.
type TriangleChannelState struct {
	LengthCounterHalt bool
	LinearCounterLoad uint8

	Timer        uint16
	TimerCounter uint16

	LengthCounter uint8

	LinearCounter       uint8
	LinearCounterReload bool

	SequencerPos uint8
	Output       uint8
}

func (c *TriangleChannel) snapshot() TriangleChannelState {
	return TriangleChannelState{
		LengthCounterHalt: c.lengthCounterHalt, LinearCounterLoad: c.linearCounterLoad,
		Timer: c.timer, TimerCounter: c.timerCounter,
		LengthCounter: c.lengthCounter,
		LinearCounter: c.linearCounter, LinearCounterReload: c.linearCounterReload,
		SequencerPos: c.sequencerPos, Output: c.output,
	}
}

func (c *TriangleChannel) restore(s TriangleChannelState) {
	c.lengthCounterHalt, c.linearCounterLoad = s.LengthCounterHalt, s.LinearCounterLoad
	c.timer, c.timerCounter = s.Timer, s.TimerCounter
	c.lengthCounter = s.LengthCounter
	c.linearCounter, c.linearCounterReload = s.LinearCounter, s.LinearCounterReload
	c.sequencerPos, c.output = s.SequencerPos, s.Output
}

// NoiseChannelState is a gob-serializable snapshot of the noise channel.
type NoiseChannelState struct {
	EnvelopeLoop    bool
	EnvelopeDisable bool
	Volume          uint8

	Mode         bool
	PeriodIndex  uint8
	TimerCounter uint16

	LengthCounter uint8
	LengthHalt    bool

	EnvelopeStart   bool
	EnvelopeCounter uint8
	EnvelopeDivider uint8

	ShiftRegister uint16
	Output        uint8
}

func (c *NoiseChannel) snapshot() NoiseChannelState {
	return NoiseChannelState{
		EnvelopeLoop: c.envelopeLoop, EnvelopeDisable: c.envelopeDisable, Volume: c.volume,
		Mode: c.mode, PeriodIndex: c.periodIndex, TimerCounter: c.timerCounter,
		LengthCounter: c.lengthCounter, LengthHalt: c.lengthHalt,
		EnvelopeStart: c.envelopeStart, EnvelopeCounter: c.envelopeCounter, EnvelopeDivider: c.envelopeDivider,
		ShiftRegister: c.shiftRegister, Output: c.output,
	}
}

func (c *NoiseChannel) restore(s NoiseChannelState) {
	c.envelopeLoop, c.envelopeDisable, c.volume = s.EnvelopeLoop, s.EnvelopeDisable, s.Volume
	c.mode, c.periodIndex, c.timerCounter = s.Mode, s.PeriodIndex, s.TimerCounter
	c.lengthCounter, c.lengthHalt = s.LengthCounter, s.LengthHalt
	c.envelopeStart, c.envelopeCounter, c.envelopeDivider = s.EnvelopeStart, s.EnvelopeCounter, s.EnvelopeDivider
	c.shiftRegister, c.output = s.ShiftRegister, s.Output
}

// State is a gob-serializable snapshot of the whole APU: all four channels,
// the frame counter sequencer, and the sample-rate-conversion accumulator.
type State struct {
	Pulse1   PulseChannelState
	Pulse2   PulseChannelState
	Triangle TriangleChannelState
	Noise    NoiseChannelState

	FrameCounter     uint16
	FrameMode        bool
	FrameIRQEnable   bool
	FrameCounterStep uint8
	FrameIRQFlag     bool

	ChannelEnable [4]bool

	SampleRate       int
	CPUFrequency     float64
	CycleAccumulator float64

	Cycles uint64
}

// Snapshot captures the full APU state. The pending sample buffer is not
// part of the snapshot: it is transient output already handed off to the
// audio backend, not state the emulated hardware itself holds.
func (apu *APU) Snapshot() State {
	return State{
		Pulse1: apu.pulse1.snapshot(), Pulse2: apu.pulse2.snapshot(),
		Triangle: apu.triangle.snapshot(), Noise: apu.noise.snapshot(),

		FrameCounter: apu.frameCounter, FrameMode: apu.frameMode,
		FrameIRQEnable: apu.frameIRQEnable, FrameCounterStep: apu.frameCounterStep,
		FrameIRQFlag: apu.frameIRQFlag,

		ChannelEnable: apu.channelEnable,

		SampleRate: apu.sampleRate, CPUFrequency: apu.cpuFrequency,
		CycleAccumulator: apu.cycleAccumulator,

		Cycles: apu.cycles,
	}
}

// Restore puts the APU back into the state a previous Snapshot captured.
func (apu *APU) Restore(s State) {
	apu.pulse1.restore(s.Pulse1)
	apu.pulse2.restore(s.Pulse2)
	apu.triangle.restore(s.Triangle)
	apu.noise.restore(s.Noise)

	apu.frameCounter, apu.frameMode = s.FrameCounter, s.FrameMode
	apu.frameIRQEnable, apu.frameCounterStep = s.FrameIRQEnable, s.FrameCounterStep
	apu.frameIRQFlag = s.FrameIRQFlag

	apu.channelEnable = s.ChannelEnable

	apu.sampleRate, apu.cpuFrequency = s.SampleRate, s.CPUFrequency
	apu.cycleAccumulator = s.CycleAccumulator

	apu.cycles = s.Cycles
}
