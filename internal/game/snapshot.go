package game

// Snapshot is a read-only copy of everything the renderer needs. It is also
// what gets gob-encoded for spectators, so fields stay exported and flat.
type Snapshot struct {
	Tick          int
	Width, Height float64

	BallX, BallY, BallRadius float64

	LeftX, LeftY   float64
	RightX, RightY float64
	PaddleWidth    float64
	PaddleHeight   float64

	LeftScore  int
	RightScore int
	Winner     string
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Tick:         s.Tick,
		Width:        s.Width,
		Height:       s.Height,
		BallX:        s.Ball.X,
		BallY:        s.Ball.Y,
		BallRadius:   s.Ball.Radius,
		LeftX:        s.Left.X,
		LeftY:        s.Left.Y,
		RightX:       s.Right.X,
		RightY:       s.Right.Y,
		PaddleWidth:  s.Left.Width,
		PaddleHeight: s.Left.Height,
		LeftScore:    s.Left.Score,
		RightScore:   s.Right.Score,
		Winner:       s.Winner,
	}
}
