package input

// ControllerState is a gob-serializable snapshot of a single controller's
// shift register and strobe latch.
type ControllerState struct {
	Buttons        uint8
	ShiftRegister  uint8
	Strobe         bool
	ButtonSnapshot uint8
	BitPosition    uint8
}

func (c *Controller) snapshot() ControllerState {
	return ControllerState{
		Buttons: c.buttons, ShiftRegister: c.shiftRegister, Strobe: c.strobe,
		ButtonSnapshot: c.buttonSnapshot, BitPosition: c.bitPosition,
	}
}

func (c *Controller) restore(s ControllerState) {
	c.buttons, c.shiftRegister, c.strobe = s.Buttons, s.ShiftRegister, s.Strobe
	c.buttonSnapshot, c.bitPosition = s.ButtonSnapshot, s.BitPosition
}

// State is a gob-serializable snapshot of both controllers. Held-down keys
// at the moment of a save are deliberately captured too: resuming mid-strobe
// with stale shift-register contents would desync whatever the game was in
// the middle of reading from $4016/$4017.
type State struct {
	Controller1 ControllerState
	Controller2 ControllerState
}

// Snapshot captures both controllers' state.
func (is *InputState) Snapshot() State {
	return State{Controller1: is.Controller1.snapshot(), Controller2: is.Controller2.snapshot()}
}

// Restore puts both controllers back into the state a previous Snapshot
// captured.
func (is *InputState) Restore(s State) {
	is.Controller1.restore(s.Controller1)
	is.Controller2.restore(s.Controller2)
}
