package scenes

import (
	"fmt"
	"image/color"
	"io/fs"

	"github.com/automoto/tiledmapgame/atlas"
	"github.com/automoto/tiledmapgame/components"
	cfg "github.com/automoto/tiledmapgame/config"
	"github.com/automoto/tiledmapgame/input"
	"github.com/automoto/tiledmapgame/render"
	"github.com/automoto/tiledmapgame/render/tilerender"
	"github.com/automoto/tiledmapgame/systems"
	"github.com/automoto/tiledmapgame/systems/factory"
	"github.com/automoto/tiledmapgame/tilemap"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// PlayScene is the single playable screen: a tile map, its debug objects and
// a player walking on the collision layer.
type PlayScene struct {
	// ShowHUD toggles the debug text overlay.
	ShowHUD bool

	assets fs.FS
	images render.Images
	input  input.Source
	log    *zap.Logger

	world    donburi.World
	ecs      *ecs.ECS
	tileMap  *tilemap.Map
	renderer *tilerender.Renderer
	shapes   *render.ShapeRenderer
	atlas    *atlas.Atlas
	level    *components.LevelData
	camera   *donburi.Entry

	fade      *gween.Tween
	fadeAlpha float32

	width, height int
	shown         bool
	paused        bool
}

var _ Screen = (*PlayScene)(nil)

// NewPlayScene creates a scene that loads its files from assets and its
// sheet images through images. Nothing is loaded until Show.
func NewPlayScene(assets fs.FS, images render.Images, src input.Source, log *zap.Logger) *PlayScene {
	if log == nil {
		log = zap.NewNop()
	}
	return &PlayScene{
		ShowHUD: cfg.Debug.ShowHUD,
		assets:  assets,
		images:  images,
		input:   src,
		log:     log,
		width:   cfg.C.Width,
		height:  cfg.C.Height,
	}
}

func (ps *PlayScene) Show() error {
	if ps.shown {
		return nil
	}
	if err := ps.load(); err != nil {
		ps.release()
		return fmt.Errorf("show play scene: %w", err)
	}
	ps.shown = true
	ps.paused = false
	return nil
}

func (ps *PlayScene) load() error {
	m, err := tilemap.Load(ps.assets, cfg.Scene.MapPath)
	if err != nil {
		return err
	}
	ps.tileMap = m

	if ps.renderer, err = tilerender.New(m, ps.images); err != nil {
		return err
	}
	ps.shapes = render.NewShapeRenderer(cfg.Debug.ShapeColor, cfg.Debug.LineWidth)

	ps.world = donburi.NewWorld()
	ps.ecs = ecs.NewECS(ps.world)
	ps.configure()
	ps.camera = factory.CreateCamera(ps.world)
	systems.ResizeCamera(ps.world, ps.width, ps.height)

	levelEntry, err := factory.CreateLevel(ps.world, m)
	if err != nil {
		return err
	}
	ps.level = components.Level.Get(levelEntry)

	if ps.atlas, err = atlas.Load(ps.assets, cfg.Scene.AtlasPath, ps.images); err != nil {
		return err
	}
	clips, err := factory.PlayerClips(ps.atlas.FindRegions)
	if err != nil {
		return err
	}

	collision, err := m.TileLayerAt(cfg.Scene.CollisionLayer)
	if err != nil {
		return err
	}
	space := components.Space.Get(factory.CreateSpace(ps.world, m, collision, cfg.Player.BlockedKey))
	if _, err := factory.CreatePlayer(ps.world, space, clips, collision, ps.input); err != nil {
		return err
	}

	bound, err := tilemap.BindAnimation(m, tilemap.AnimationBinding{
		Tileset:  cfg.Scene.AnimationTileset,
		Layer:    cfg.Scene.AnimationLayer,
		Key:      cfg.Scene.AnimationKey,
		Value:    cfg.Scene.AnimationGroup,
		Interval: cfg.Scene.AnimationInterval,
	})
	if err != nil {
		return err
	}

	ps.checkObjects()

	ps.fade = gween.New(1, 0, float32(cfg.Scene.FadeDuration), ease.Linear)
	ps.fadeAlpha = 1

	ps.log.Info("play scene shown",
		zap.String("map", cfg.Scene.MapPath),
		zap.Int("width", m.Width),
		zap.Int("height", m.Height),
		zap.Int("tiles", m.Tiles.Len()),
		zap.Int("animationFrames", bound.Frames),
		zap.Int("animatedCells", bound.Cells),
	)
	return nil
}

// configure registers the update systems and renderers in the order they
// run. Renderers on LayerWorld draw background, player, foreground and then
// the objects layer.
func (ps *PlayScene) configure() {
	ps.ecs.AddSystem(systems.UpdateTiles)
	ps.ecs.AddSystem(systems.UpdatePlayers)

	ps.ecs.AddRenderer(systems.LayerWorld, systems.DrawBackground)
	ps.ecs.AddRenderer(systems.LayerWorld, systems.DrawPlayers)
	ps.ecs.AddRenderer(systems.LayerWorld, systems.DrawForeground)
	ps.ecs.AddRenderer(systems.LayerWorld, systems.DrawObjectLayer)
	ps.ecs.AddRenderer(systems.LayerDebug, systems.DrawDebug)
}

// checkObjects warns once about image objects whose tile cannot be found.
// They are skipped when drawing.
func (ps *PlayScene) checkObjects() {
	for _, o := range ps.level.Objects.Objects {
		r, ok := o.Shape.(tilemap.Rectangle)
		if !ok || r.GID == 0 {
			continue
		}
		if _, ok := ps.tileMap.Tiles.ByGID(r.GID); !ok {
			ps.log.Warn("image object references unknown tile",
				zap.Uint32("object", o.ID),
				zap.String("name", o.Name),
				zap.Uint32("gid", r.GID),
			)
		}
	}
}

func (ps *PlayScene) Hide() {
	ps.Dispose()
}

func (ps *PlayScene) Pause() {
	ps.paused = true
}

// Resume unfreezes Update. Input edges that fired while paused are lost, so
// the player's movement is brought in line with the keys held now.
func (ps *PlayScene) Resume() {
	if ps.paused && ps.shown {
		systems.SyncPlayerInput(ps.world)
	}
	ps.paused = false
}

func (ps *PlayScene) Paused() bool {
	return ps.paused
}

func (ps *PlayScene) Update(delta float64) {
	if !ps.shown || ps.paused {
		return
	}

	ps.level.Delta = delta
	ps.ecs.Update()

	if ps.fade != nil {
		alpha, done := ps.fade.Update(float32(delta))
		ps.fadeAlpha = alpha
		if done {
			ps.fade = nil
			ps.fadeAlpha = 0
		}
	}
}

// Draw renders one frame: background, player, foreground, then the debug
// objects. With the HUD on, collision boxes are outlined and the HUD text
// and the entry fade go on top in screen space.
func (ps *PlayScene) Draw(s render.Surface) {
	if !ps.shown {
		return
	}

	s.Clear(cfg.Scene.ClearColor)

	systems.UpdateCamera(ps.world)
	view := components.Camera.Get(ps.camera).View()
	s.SetView(view)

	frame := systems.Frame{Surface: s, View: view, Tiles: ps.renderer, Shapes: ps.shapes}
	ps.ecs.DrawLayer(systems.LayerWorld, frame)
	if ps.ShowHUD {
		ps.ecs.DrawLayer(systems.LayerDebug, frame)
	}
	if ps.fadeAlpha > 0 {
		c := cfg.Debug.FadeColor
		s.Overlay(color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(ps.fadeAlpha * 255)})
	}
}

func (ps *PlayScene) Resize(width, height int) {
	ps.width, ps.height = width, height
	if ps.world != nil {
		systems.ResizeCamera(ps.world, width, height)
	}
}

// Dispose releases the map, the tile renderer, the shape renderer and the
// player atlas in that order.
func (ps *PlayScene) Dispose() {
	if !ps.shown {
		return
	}
	ps.shown = false
	ps.release()
	ps.log.Info("play scene disposed")
}

func (ps *PlayScene) release() {
	if ps.tileMap != nil {
		ps.tileMap.Dispose()
		ps.tileMap = nil
	}
	if ps.renderer != nil {
		ps.renderer.Dispose()
		ps.renderer = nil
	}
	if ps.shapes != nil {
		ps.shapes.Dispose()
		ps.shapes = nil
	}
	if ps.atlas != nil {
		ps.atlas.Dispose()
		ps.atlas = nil
	}
	ps.world = nil
	ps.ecs = nil
	ps.level = nil
	ps.camera = nil
	ps.fade = nil
	ps.fadeAlpha = 0
}

// World exposes the entity world while the scene is shown.
func (ps *PlayScene) World() donburi.World {
	return ps.world
}
