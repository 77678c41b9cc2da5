package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	"github.com/wvoliveira/pingpong/configs"
	"github.com/wvoliveira/pingpong/internal/game"
	"github.com/wvoliveira/pingpong/internal/input"
	"github.com/wvoliveira/pingpong/internal/render"
	"github.com/wvoliveira/pingpong/internal/spectate"
)

type Game struct {
	state    *game.State
	snap     game.Snapshot
	keys     *input.Tracker
	renderer *render.Renderer
	hub      *spectate.Hub
}

func (g *Game) Update() error {
	if !ebiten.IsFocused() {
		g.keys.Reset()
	}
	g.keys.Poll()

	snap, ev := game.Step(g.state, g.keys.Input())
	g.snap = snap

	if ev.PaddleHit {
		slog.Debug("paddle hit", "side", ev.HitSide, "speed", g.state.Ball.Speed)
	}
	if ev.WallBounce {
		slog.Debug("wall bounce", "y", g.state.Ball.Y)
	}
	if ev.Scored {
		slog.Info("point", "by", ev.ScoredBy, "left", snap.LeftScore, "right", snap.RightScore)
	}
	if ev.Winner != "" {
		slog.Info("match decided", "winner", ev.Winner)
	}

	if g.hub != nil {
		g.hub.Publish(snap)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.snap)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return configs.ScreenWidth, configs.ScreenHeight
}

func main() {
	envFile := flag.String("env", ".env", "optional .env file")
	spectateAddr := flag.String("spectate", "", "serve spectators on this address (e.g. :8080)")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	cfg, err := configs.Load(*envFile)
	if err != nil {
		slog.Error("error to load config", "error", err)
		os.Exit(1)
	}
	if *spectateAddr != "" {
		cfg.SpectateAddr = *spectateAddr
	}
	if *debug {
		cfg.Debug = true
	}
	if cfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	state := game.New()
	g := &Game{
		state:    state,
		snap:     state.Snapshot(),
		keys:     input.NewTracker(input.DefaultKeyMap()),
		renderer: render.New(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	eg, ctx := errgroup.WithContext(ctx)

	if cfg.SpectateAddr != "" {
		g.hub = spectate.NewHub(slog.Default())

		mux := http.NewServeMux()
		mux.Handle("/ws", g.hub)
		srv := &http.Server{Addr: cfg.SpectateAddr, Handler: mux}

		eg.Go(func() error { return g.hub.Run(ctx) })
		eg.Go(func() error {
			slog.Info("spectators at ws://" + cfg.SpectateAddr + "/ws")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("spectator server stopped", "error", err)
				return err
			}
			return nil
		})
		eg.Go(func() error {
			<-ctx.Done()
			shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
			defer done()
			return srv.Shutdown(shutdownCtx)
		})
	}

	ebiten.SetWindowSize(int(configs.ScreenWidth*cfg.WindowScale), int(configs.ScreenHeight*cfg.WindowScale))
	ebiten.SetWindowTitle("Ping Pong")
	ebiten.SetTPS(cfg.TPS)

	runErr := ebiten.RunGame(g)
	cancel()
	// Erros do servidor já foram logados.
	_ = eg.Wait()
	if runErr != nil {
		slog.Error("error to run game", "error", runErr)
		os.Exit(1)
	}
}
