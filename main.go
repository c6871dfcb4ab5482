package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"mazecrawl/pkg/engine/input"
	"mazecrawl/pkg/engine/logging"
	"mazecrawl/pkg/engine/random"
	"mazecrawl/pkg/game/config"
	"mazecrawl/pkg/game/devtools"
	"mazecrawl/pkg/game/dungeon"
	"mazecrawl/pkg/game/gameplay"
	"mazecrawl/pkg/game/i18n"
	"mazecrawl/pkg/game/renderer"
	"mazecrawl/pkg/game/renderer/screen"
	"mazecrawl/pkg/game/renderer/tui"
	"mazecrawl/pkg/game/state"
)

func main() {
	cfg, err := config.Load(os.Args[1:], ".env")
	if err != nil {
		log.Fatalf("Cannot load configuration: %v", err)
	}

	if err := i18n.Load(cfg.Language); err != nil {
		log.Fatalf("Cannot load translations: %v", err)
	}

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Cannot open log file: %v", err)
	}
	defer closeLog()
	logger = logger.With("session", uuid.NewString())

	rng := random.New(cfg.Seed)

	d, g, err := gameplay.NewGame(cfg, rng, logger)
	if err != nil {
		log.Fatalf("Cannot build game: %v", err)
	}

	if cfg.DumpFile != "" {
		path, err := devtools.DumpMapToFile(cfg.DumpFile, d, cfg.Seed)
		if err != nil {
			log.Fatalf("Cannot dump map: %v", err)
		}
		fmt.Println(path)
		return
	}

	r, err := newRenderer(cfg.Frontend)
	if err != nil {
		log.Fatalf("Cannot open display: %v", err)
	}
	if err := r.Init(); err != nil {
		log.Fatalf("Cannot open display: %v", err)
	}

	g = gameplay.BeginTurn(g, d)
	for {
		r.Clear()
		r.RenderFrame(renderer.NewView(g, d))
		if g.Over() {
			break
		}

		intent, err := r.GetInput()
		if err != nil {
			logger.Error("input failed", "err", err)
			g.Outcome = state.Quit
			break
		}
		if intent.Action == input.ActionScreenshot {
			g = screenshot(g, d, logger)
			continue
		}
		g = gameplay.Advance(g, d, intent)
	}
	r.Close()

	fmt.Printf(i18n.T("FINAL_SCORE")+"\n", g.Score)
}

// screenshot saves the current view as HTML in the working directory
func screenshot(g state.Game, d *dungeon.Dungeon, logger *slog.Logger) state.Game {
	name, err := devtools.SaveScreenshotHTML(".", renderer.NewView(g, d))
	if err != nil {
		logger.Error("screenshot failed", "err", err)
		return g
	}
	logger.Info("screenshot saved", "file", name)
	return g.WithMessage(fmt.Sprintf(i18n.T("SCREENSHOT_SAVED"), name))
}

// newRenderer picks the front-end named in the configuration
func newRenderer(frontend string) (renderer.Renderer, error) {
	switch frontend {
	case config.FrontendTUI:
		return tui.New(), nil
	case config.FrontendScreen:
		return screen.New()
	}
	return nil, errors.New("unknown frontend " + frontend)
}
