package game

// Action is a decoded player control. Raw keys never reach the simulation.
type Action int

const (
	LeftUp Action = iota
	LeftDown
	RightUp
	RightDown

	numActions
)

var actionNames = [numActions]string{"LeftUp", "LeftDown", "RightUp", "RightDown"}

func (a Action) String() string {
	if a < 0 || a >= numActions {
		return "Action(?)"
	}
	return actionNames[a]
}

// Input is the pressed state of every action for one tick.
type Input [numActions]bool

func (in *Input) Set(a Action, pressed bool) {
	if a < 0 || a >= numActions {
		return
	}
	in[a] = pressed
}

func (in Input) Pressed(a Action) bool {
	if a < 0 || a >= numActions {
		return false
	}
	return in[a]
}

func (in Input) up(side Side) bool {
	if side == Left {
		return in[LeftUp]
	}
	return in[RightUp]
}

func (in Input) down(side Side) bool {
	if side == Left {
		return in[LeftDown]
	}
	return in[RightDown]
}
