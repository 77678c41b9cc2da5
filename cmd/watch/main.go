package main

import (
	"flag"
	"log/slog"
	"os"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wvoliveira/pingpong/configs"
	"github.com/wvoliveira/pingpong/internal/game"
	"github.com/wvoliveira/pingpong/internal/render"
	"github.com/wvoliveira/pingpong/internal/spectate"
)

// Viewer only renders what the game publishes; it sends nothing back.
type Viewer struct {
	mu       sync.Mutex
	snap     game.Snapshot
	renderer *render.Renderer
}

func (v *Viewer) set(s game.Snapshot) {
	v.mu.Lock()
	v.snap = s
	v.mu.Unlock()
}

func (v *Viewer) Update() error {
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	v.mu.Lock()
	s := v.snap
	v.mu.Unlock()
	v.renderer.Draw(screen, s)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return configs.ScreenWidth, configs.ScreenHeight
}

func main() {
	envFile := flag.String("env", ".env", "optional .env file")
	serverURL := flag.String("server", "", "spectator feed url (default from PONG_SERVER_URL)")
	flag.Parse()

	cfg, err := configs.Load(*envFile)
	if err != nil {
		slog.Error("error to load config", "error", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}

	ws, _, err := websocket.DefaultDialer.Dial(cfg.ServerURL, nil)
	if err != nil {
		slog.Error("error to connect", "url", cfg.ServerURL, "error", err)
		os.Exit(1)
	}
	defer ws.Close()

	renderer := render.New()
	renderer.ShowHelp = false
	v := &Viewer{snap: game.New().Snapshot(), renderer: renderer}

	// Goroutine para receber atualizações do jogo
	go func() {
		for {
			msgType, msgData, err := ws.ReadMessage()
			if err != nil {
				slog.Info("disconnected from game", "error", err)
				return
			}
			if msgType != websocket.BinaryMessage {
				continue
			}
			snap, err := spectate.Decode(msgData)
			if err != nil {
				slog.Error("bad snapshot", "error", err)
				continue
			}
			v.set(snap)
		}
	}()

	ebiten.SetWindowSize(int(configs.ScreenWidth*cfg.WindowScale), int(configs.ScreenHeight*cfg.WindowScale))
	ebiten.SetWindowTitle("Ping Pong (spectator)")

	if err := ebiten.RunGame(v); err != nil {
		slog.Error("error to run game", "error", err)
	}
}
