package game

import (
	"math"

	"github.com/wvoliveira/pingpong/configs"
)

// MaxBounceAngle is reached when the ball hits the very end of a paddle.
const MaxBounceAngle = math.Pi / 4

// Events reports what happened during one Step.
type Events struct {
	WallBounce bool
	PaddleHit  bool
	HitSide    Side
	Scored     bool
	ScoredBy   Side
	// Winner is non-empty only on the tick a score reaches the win score.
	Winner string
}

// Step advances the simulation by one tick. The match never stops on its own:
// after a winner is declared points keep being played and the label stays.
func Step(s *State, in Input) (Snapshot, Events) {
	var ev Events
	s.Tick++

	movePaddle(s, Left, in)
	movePaddle(s, Right, in)

	b := &s.Ball
	b.X += b.VX
	b.Y += b.VY

	// Teto/Chão. Sem correção de posição.
	if b.Y+b.Radius > s.Height || b.Y-b.Radius < 0 {
		b.VY = -b.VY
		ev.WallBounce = true
	}

	side := Right
	if b.X < s.Width/2 {
		side = Left
	}
	if p := s.paddle(side); Collides(b, p) {
		bounce(b, p, side)
		ev.PaddleHit = true
		ev.HitSide = side
	}

	if b.X-b.Radius < 0 {
		score(s, Right, &ev)
	} else if b.X+b.Radius > s.Width {
		score(s, Left, &ev)
	}

	return s.Snapshot(), ev
}

// movePaddle only steps when the paddle is not already at the edge, and the
// last step before an edge is shortened so it lands exactly on it.
func movePaddle(s *State, side Side, in Input) {
	p := s.paddle(side)
	bottom := s.Height - p.Height
	if in.up(side) && p.Y > 0 {
		p.Y -= math.Min(p.Speed, p.Y)
	}
	if in.down(side) && p.Y < bottom {
		p.Y += math.Min(p.Speed, bottom-p.Y)
	}
}

// Collides reports whether the ball's bounding box overlaps the paddle.
func Collides(b *Ball, p *Paddle) bool {
	return b.X+b.Radius > p.X &&
		b.X-b.Radius < p.X+p.Width &&
		b.Y+b.Radius > p.Y &&
		b.Y-b.Radius < p.Y+p.Height
}

// bounce sends the ball back away from the paddle, steeper the further from
// the paddle center it connected, and speeds it up.
func bounce(b *Ball, p *Paddle, side Side) {
	collide := (b.Y - p.CenterY()) / (p.Height / 2)
	angle := MaxBounceAngle * collide

	dir := 1.0
	if side == Right {
		dir = -1
	}
	b.VX = dir * b.Speed * math.Cos(angle)
	b.VY = b.Speed * math.Sin(angle)
	b.Speed += configs.BallSpeedIncrement
}

func score(s *State, by Side, ev *Events) {
	p := s.paddle(by)
	p.Score++
	ev.Scored = true
	ev.ScoredBy = by

	if p.Score == configs.WinScore {
		if by == Left {
			s.Winner = LeftWins
		} else {
			s.Winner = RightWins
		}
		ev.Winner = s.Winner
	}

	resetBall(s)
}

func resetBall(s *State) {
	b := &s.Ball
	b.X = s.Width / 2
	b.Y = s.Height / 2
	b.Speed = configs.BallSpeed
	b.VX = -b.VX
	if b.VY < 0 {
		b.VY = configs.BallSpeed
	} else {
		b.VY = -configs.BallSpeed
	}
}
