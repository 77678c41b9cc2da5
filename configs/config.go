package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Regras do jogo. Fixas, não podem ser alteradas por ambiente.
const (
	ScreenWidth  = 800
	ScreenHeight = 400

	PaddleWidth  = 10
	PaddleHeight = 100
	PaddleSpeed  = 8

	BallRadius         = 10
	BallSpeed          = 5
	BallSpeedIncrement = 0.5

	WinScore = 5
)

type Config struct {
	// Endereço onde o jogo local publica snapshots para espectadores.
	// Vazio desliga o servidor.
	SpectateAddr string
	// URL usada pelo cliente espectador.
	ServerURL string

	TPS         int
	WindowScale float64
	Debug       bool
}

func New() Config {
	return Config{
		SpectateAddr: "",
		ServerURL:    "ws://localhost:8080/ws",
		TPS:          60,
		WindowScale:  1,
	}
}

// Load lê um arquivo .env opcional e aplica as variáveis PONG_* sobre New().
func Load(path string) (Config, error) {
	cfg := New()

	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if v, ok := os.LookupEnv("PONG_SPECTATE_ADDR"); ok {
		cfg.SpectateAddr = v
	}
	if v, ok := os.LookupEnv("PONG_SERVER_URL"); ok && v != "" {
		cfg.ServerURL = v
	}
	if v, ok := os.LookupEnv("PONG_TPS"); ok && v != "" {
		tps, err := strconv.Atoi(v)
		if err != nil || tps <= 0 {
			return cfg, fmt.Errorf("invalid PONG_TPS %q", v)
		}
		cfg.TPS = tps
	}
	if v, ok := os.LookupEnv("PONG_WINDOW_SCALE"); ok && v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || scale <= 0 {
			return cfg, fmt.Errorf("invalid PONG_WINDOW_SCALE %q", v)
		}
		cfg.WindowScale = scale
	}
	if v, ok := os.LookupEnv("PONG_DEBUG"); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid PONG_DEBUG %q: %w", v, err)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}
