package main

import (
	"errors"
	"log"

	"github.com/automoto/tiledmapgame/assets"
	"github.com/automoto/tiledmapgame/config"
	"github.com/automoto/tiledmapgame/fonts"
	"github.com/automoto/tiledmapgame/input"
	"github.com/automoto/tiledmapgame/input/keyboard"
	"github.com/automoto/tiledmapgame/logger"
	"github.com/automoto/tiledmapgame/render/ebitenrender"
	"github.com/automoto/tiledmapgame/scenes"
	"github.com/automoto/tiledmapgame/settings"
	"github.com/automoto/tiledmapgame/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

const configFile = "tiledmapgame.yaml"

type Game struct {
	scene   *scenes.PlayScene
	surface *ebitenrender.Surface
	input   *input.State
	pause   *ui.PauseUI
	store   *settings.Store
	log     *zap.Logger

	started       bool
	focused       bool
	width, height int
}

func NewGame(log *zap.Logger, store *settings.Store) (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}
	pause, err := ui.NewPauseUI()
	if err != nil {
		return nil, err
	}

	images := ebitenrender.NewImages(assets.FS())
	state := &input.State{}

	return &Game{
		scene:   scenes.NewPlayScene(assets.FS(), images, state, log),
		surface: ebitenrender.NewSurface(images, fonts.HUD.Get()),
		input:   state,
		pause:   pause,
		store:   store,
		log:     log,
		focused: true,
	}, nil
}

func (g *Game) Update() error {
	if !g.started {
		if err := g.scene.Show(); err != nil {
			return err
		}
		g.started = true
	}

	if ebiten.IsWindowBeingClosed() {
		g.shutdown()
		return ebiten.Termination
	}

	if focused := ebiten.IsFocused(); focused != g.focused {
		g.focused = focused
		if focused {
			g.scene.Resume()
		} else {
			g.scene.Pause()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.scene.ShowHUD = !g.scene.ShowHUD
		g.saveSettings()
	}

	if g.scene.Paused() {
		g.pause.Update()
		return nil
	}

	keyboard.Poll(g.input)
	g.scene.Update(1 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Begin(screen)
	g.scene.Draw(g.surface)

	if g.scene.Paused() {
		g.pause.Draw(screen)
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	if width != g.width || height != g.height {
		g.width, g.height = width, height
		g.scene.Resize(width, height)
	}
	return width, height
}

func (g *Game) shutdown() {
	g.scene.Hide()
	g.scene.Dispose()
	g.saveSettings()
	g.log.Info("shutting down")
}

func (g *Game) saveSettings() {
	if g.store == nil {
		return
	}
	w, h := ebiten.WindowSize()
	err := g.store.Save(settings.Settings{
		WindowWidth:  w,
		WindowHeight: h,
		ShowHUD:      g.scene.ShowHUD,
	})
	if err != nil {
		g.log.Warn("could not save settings", zap.Error(err))
	}
}

func main() {
	if err := config.LoadFile(configFile); err != nil {
		log.Fatalf("Failed to load %s: %v", configFile, err)
	}

	zl, err := logger.New(config.Debug.Verbose)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	width, height := config.C.Width, config.C.Height
	store, err := settings.Open("tiledmapgame")
	if err != nil {
		zl.Warn("settings unavailable", zap.Error(err))
		store = nil
	} else if saved, ok, err := store.Load(); err != nil {
		zl.Warn("could not load settings", zap.Error(err))
	} else if ok {
		if saved.WindowWidth > 0 && saved.WindowHeight > 0 {
			width, height = saved.WindowWidth, saved.WindowHeight
		}
		config.Debug.ShowHUD = saved.ShowHUD
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)

	game, err := NewGame(zl, store)
	if err != nil {
		zl.Fatal("failed to create game", zap.Error(err))
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		zl.Fatal("game stopped", zap.Error(err))
	}
}
