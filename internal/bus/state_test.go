package bus

import (
	"nescore/internal/cartridge"
	"testing"
)

func TestBusSnapshotRestoreRoundTrip(t *testing.T) {
	b := New()

	cart, err := cartridge.NewTestROMBuilder().
		WithPRGSize(2).
		WithMapper(0).
		WithResetVector(0x8000).
		WithInstructions([]uint8{0xA9, 0x37, 0xEA}). // LDA #$37; NOP
		BuildCartridge()
	if err != nil {
		t.Fatalf("failed to build test cartridge: %v", err)
	}
	b.LoadCartridge(cart)
	b.Reset()

	// Run a handful of instructions so CPU/PPU/APU/bus state diverges from
	// their freshly-reset zero values.
	for i := 0; i < 5; i++ {
		b.Step()
	}

	snap := b.Snapshot()

	other := New()
	cart2, err := cartridge.NewTestROMBuilder().
		WithPRGSize(2).
		WithMapper(0).
		WithResetVector(0x8000).
		WithInstructions([]uint8{0xA9, 0x37, 0xEA}).
		BuildCartridge()
	if err != nil {
		t.Fatalf("failed to build second test cartridge: %v", err)
	}
	other.LoadCartridge(cart2)
	other.Reset()
	// Diverge the fresh bus first, so restore is a real overwrite, not a
	// no-op that happens to match because both buses started reset.
	other.Step()

	other.Restore(snap)

	gotCPU, wantCPU := other.GetCPUState(), b.GetCPUState()
	if gotCPU.PC != wantCPU.PC || gotCPU.A != wantCPU.A || gotCPU.Cycles != wantCPU.Cycles {
		t.Fatalf("CPU state mismatch after restore: got %+v want %+v", gotCPU, wantCPU)
	}

	if other.GetFrameCount() != b.GetFrameCount() {
		t.Fatalf("frame count mismatch after restore: got %d want %d", other.GetFrameCount(), b.GetFrameCount())
	}
	if other.GetCycleCount() != b.GetCycleCount() {
		t.Fatalf("cycle count mismatch after restore: got %d want %d", other.GetCycleCount(), b.GetCycleCount())
	}

	// Executing further from the restored state should proceed exactly like
	// continuing the original bus would have.
	other.Step()
	b.Step()
	if other.GetCPUState().PC != b.GetCPUState().PC {
		t.Fatalf("post-restore execution diverged: got PC %#x want %#x", other.GetCPUState().PC, b.GetCPUState().PC)
	}
}

func TestBusSnapshotWithoutConcreteCartridge(t *testing.T) {
	b := New()
	cart := cartridge.NewMockCartridge()
	cart.LoadPRG(make([]uint8, 0x8000))
	b.LoadCartridge(cart)
	b.Reset()

	snap := b.Snapshot()
	if snap.CartLoaded {
		t.Fatalf("expected CartLoaded false for a mock cartridge")
	}

	// Restoring must not panic even though there's no cartridge state to
	// apply.
	b.Restore(snap)
}
