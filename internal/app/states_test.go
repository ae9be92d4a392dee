package app

import (
	"path/filepath"
	"testing"

	"nescore/internal/bus"
	"nescore/internal/cartridge"
)

func newTestBus(t *testing.T) *bus.Bus {
	t.Helper()
	cart, err := cartridge.NewTestROMBuilder().
		WithPRGSize(2).
		WithMapper(0).
		WithResetVector(0x8000).
		WithInstructions([]uint8{0xA9, 0x37, 0xEA}). // LDA #$37; NOP
		BuildCartridge()
	if err != nil {
		t.Fatalf("failed to build test cartridge: %v", err)
	}
	b := bus.New()
	b.LoadCartridge(cart)
	b.Reset()
	return b
}

func TestStateManagerSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	sm := NewStateManager(dir)

	b := newTestBus(t)
	for i := 0; i < 5; i++ {
		b.Step()
	}
	romPath := "test.nes"
	wantCPU := b.GetCPUState()
	wantFrames := b.GetFrameCount()

	if err := sm.SaveState(b, 0, romPath); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	if !sm.HasSaveState(0, romPath) {
		t.Fatalf("expected slot 0 to report a saved state")
	}

	fresh := newTestBus(t)
	fresh.Step() // diverge from the saved snapshot before restoring

	if err := sm.LoadState(fresh, 0, romPath); err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}

	gotCPU := fresh.GetCPUState()
	if gotCPU.PC != wantCPU.PC || gotCPU.A != wantCPU.A || gotCPU.Cycles != wantCPU.Cycles {
		t.Fatalf("CPU state not restored: got %+v want %+v", gotCPU, wantCPU)
	}
	if fresh.GetFrameCount() != wantFrames {
		t.Fatalf("frame count not restored: got %d want %d", fresh.GetFrameCount(), wantFrames)
	}
}

func TestStateManagerRejectsWrongROM(t *testing.T) {
	dir := t.TempDir()
	sm := NewStateManager(dir)

	b := newTestBus(t)
	if err := sm.SaveState(b, 0, "game-a.nes"); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	if err := sm.LoadState(b, 0, "game-b.nes"); err == nil {
		t.Fatalf("expected LoadState to reject a save state from a different ROM")
	}
}

func TestStateManagerFileIsFlateCompressedGob(t *testing.T) {
	dir := t.TempDir()
	sm := NewStateManager(dir)

	b := newTestBus(t)
	romPath := "test.nes"
	if err := sm.SaveState(b, 3, romPath); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	slots := sm.GetSlotInfo(romPath)
	if !slots[3].Used {
		t.Fatalf("expected slot 3 to be marked used")
	}
	if filepath.Ext(slots[3].FilePath) != ".save" {
		t.Fatalf("unexpected save file extension: %s", slots[3].FilePath)
	}

	loaded, err := sm.loadFromFile(slots[3].FilePath)
	if err != nil {
		t.Fatalf("loadFromFile failed on a file saveToFile just wrote: %v", err)
	}
	if loaded.Bus.CPU.PC != b.GetCPUState().PC {
		t.Fatalf("decoded state PC mismatch: got %#x want %#x", loaded.Bus.CPU.PC, b.GetCPUState().PC)
	}
}
