package cpu

// State is a gob-serializable snapshot of everything a CPU needs to resume
// execution exactly where it left off, short of the memory it reads through.
type State struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16

	C, Z, I, D, B, V, N bool

	Cycles        uint64
	PendingCycles uint64

	NMIPending     bool
	IRQPending     bool
	NMIPrevious    bool
	InterruptDelay bool
}

// Snapshot captures the CPU's register file and in-flight interrupt/cycle
// bookkeeping. The instruction table and memory interface are not part of
// the state; they're rebuilt/re-attached by the caller that owns the CPU.
func (cpu *CPU) Snapshot() State {
	return State{
		A: cpu.A, X: cpu.X, Y: cpu.Y, SP: cpu.SP, PC: cpu.PC,
		C: cpu.C, Z: cpu.Z, I: cpu.I, D: cpu.D, B: cpu.B, V: cpu.V, N: cpu.N,
		Cycles:         cpu.cycles,
		PendingCycles:  cpu.pendingCycles,
		NMIPending:     cpu.nmiPending,
		IRQPending:     cpu.irqPending,
		NMIPrevious:    cpu.nmiPrevious,
		InterruptDelay: cpu.interruptDelay,
	}
}

// Restore puts the CPU back into the register/interrupt/cycle state a
// previous Snapshot captured.
func (cpu *CPU) Restore(s State) {
	cpu.A, cpu.X, cpu.Y, cpu.SP, cpu.PC = s.A, s.X, s.Y, s.SP, s.PC
	cpu.C, cpu.Z, cpu.I, cpu.D, cpu.B, cpu.V, cpu.N = s.C, s.Z, s.I, s.D, s.B, s.V, s.N
	cpu.cycles = s.Cycles
	cpu.pendingCycles = s.PendingCycles
	cpu.nmiPending = s.NMIPending
	cpu.irqPending = s.IRQPending
	cpu.nmiPrevious = s.NMIPrevious
	cpu.interruptDelay = s.InterruptDelay
}
