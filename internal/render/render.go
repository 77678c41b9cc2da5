// Package render projects a game.Snapshot onto an ebiten image.
package render

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/wvoliveira/pingpong/internal/game"
)

const (
	dashLength = 5
	dashGap    = 15
	scoreTop   = 16
	helpBottom = 8
)

var (
	Background = color.Black
	Foreground = color.White
	Banner     = color.RGBA{0xff, 0xd7, 0x00, 0xff}
)

var HelpLines = []string{
	"Left Player: W (up) / S (down)",
	"Right Player: Arrow Up (up) / Arrow Down (down)",
}

type Renderer struct {
	face     text.Face
	ShowHelp bool
}

func New() *Renderer {
	return &Renderer{
		face:     text.NewGoXFace(basicfont.Face7x13),
		ShowHelp: true,
	}
}

// Draw paints one frame. It reads nothing but the snapshot.
func (r *Renderer) Draw(screen *ebiten.Image, s game.Snapshot) {
	screen.Fill(Background)

	cx := float32(s.Width / 2)
	for _, d := range Dashes(float32(s.Height), dashLength, dashGap) {
		vector.StrokeLine(screen, cx, d[0], cx, d[1], 1, Foreground, false)
	}

	pw, ph := float32(s.PaddleWidth), float32(s.PaddleHeight)
	vector.FillRect(screen, float32(s.LeftX), float32(s.LeftY), pw, ph, Foreground, false)
	vector.FillRect(screen, float32(s.RightX), float32(s.RightY), pw, ph, Foreground, false)

	vector.FillCircle(screen, float32(s.BallX), float32(s.BallY), float32(s.BallRadius), Foreground, true)

	r.drawScores(screen, s)

	if s.Winner != "" {
		r.drawCentered(screen, s.Winner, s.Width/2, s.Height/2-40, Banner)
	}

	if r.ShowHelp {
		_, lh := text.Measure("X", r.face, 0)
		y := s.Height - helpBottom - lh*float64(len(HelpLines))
		for i, line := range HelpLines {
			r.drawCentered(screen, line, s.Width/2, y+lh*float64(i), Foreground)
		}
	}
}

func (r *Renderer) drawScores(screen *ebiten.Image, s game.Snapshot) {
	r.drawCentered(screen, strconv.Itoa(s.LeftScore), s.Width/4, scoreTop, Foreground)
	r.drawCentered(screen, strconv.Itoa(s.RightScore), s.Width*3/4, scoreTop, Foreground)
}

func (r *Renderer) drawCentered(screen *ebiten.Image, msg string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	text.Draw(screen, msg, r.face, op)
}

// Dashes splits a vertical line of the given length into [start, end]
// segments: dash long, separated by gap. The last dash is cut at length.
func Dashes(length, dash, gap float32) [][2]float32 {
	if length <= 0 || dash <= 0 {
		return nil
	}
	var out [][2]float32
	for y := float32(0); y < length; y += dash + gap {
		end := y + dash
		if end > length {
			end = length
		}
		out = append(out, [2]float32{y, end})
	}
	return out
}
