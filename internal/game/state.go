// Package game holds the Pong simulation: the ball, the two paddles and the
// per-tick Step that moves them.
package game

import "github.com/wvoliveira/pingpong/configs"

// Side identifies one of the two players.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

const (
	LeftWins  = "Left Player Wins!"
	RightWins = "Right Player Wins!"
)

type Ball struct {
	X, Y   float64
	Radius float64
	Speed  float64
	VX, VY float64
}

type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Score         int
}

// CenterY is the vertical midpoint of the paddle.
func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// State is owned by a single driver; nothing else may mutate it.
type State struct {
	Tick   int
	Width  float64
	Height float64
	Ball   Ball
	Left   Paddle
	Right  Paddle
	Winner string
}

// New returns the opening position: ball at the center moving down-right,
// paddles vertically centered on both edges.
func New() *State {
	w, h := float64(configs.ScreenWidth), float64(configs.ScreenHeight)
	paddleY := h/2 - configs.PaddleHeight/2

	return &State{
		Width:  w,
		Height: h,
		Ball: Ball{
			X:      w / 2,
			Y:      h / 2,
			Radius: configs.BallRadius,
			Speed:  configs.BallSpeed,
			VX:     configs.BallSpeed,
			VY:     configs.BallSpeed,
		},
		Left: Paddle{
			X:      0,
			Y:      paddleY,
			Width:  configs.PaddleWidth,
			Height: configs.PaddleHeight,
			Speed:  configs.PaddleSpeed,
		},
		Right: Paddle{
			X:      w - configs.PaddleWidth,
			Y:      paddleY,
			Width:  configs.PaddleWidth,
			Height: configs.PaddleHeight,
			Speed:  configs.PaddleSpeed,
		},
	}
}

func (s *State) paddle(side Side) *Paddle {
	if side == Left {
		return &s.Left
	}
	return &s.Right
}
