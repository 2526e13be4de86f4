package config

import "image/color"

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// SceneConfig contains the fixed asset paths and layer names of the play scene.
// Paths are resolved against the asset root handed to the scene by the host.
type SceneConfig struct {
	MapPath   string
	AtlasPath string

	BackgroundLayer string
	ForegroundLayer string
	ObjectsLayer    string
	CollisionLayer  int // index into the map's tile layers

	// Tile animation binding
	AnimationTileset  string
	AnimationLayer    string
	AnimationKey      string
	AnimationGroup    string
	AnimationInterval float64 // seconds per frame

	// Camera viewport is the window size divided by this on both axes
	ViewportDivisor float64

	ClearColor color.RGBA

	// Entry fade (seconds)
	FadeDuration float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels per second)
	Speed   float64 `yaml:"speed"`
	Gravity float64 `yaml:"gravity"`

	// Jump velocity is Speed divided by this
	JumpDivisor float64 `yaml:"jumpDivisor"`

	// Start cell counted from the top-left of the collision layer
	StartCellX int `yaml:"startCellX"`
	StartCellY int `yaml:"startCellY"`

	// Tile property marking solid cells on the collision layer
	BlockedKey string `yaml:"blockedKey"`

	// Atlas region names and frame durations (seconds)
	StillRegion    string  `yaml:"stillRegion"`
	LeftRegion     string  `yaml:"leftRegion"`
	RightRegion    string  `yaml:"rightRegion"`
	StillInterval  float64 `yaml:"stillInterval"`
	MoveInterval   float64 `yaml:"moveInterval"`
	CollisionInset float64 `yaml:"collisionInset"` // shrinks the collision box on each side
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	ShowHUD   bool    `yaml:"showHUD"`
	Verbose   bool    `yaml:"verbose"` // development logger with debug level
	LineWidth float64 `yaml:"lineWidth"`

	ShapeColor color.RGBA `yaml:"-"`
	HUDColor   color.RGBA `yaml:"-"`
	FadeColor  color.RGBA `yaml:"-"`
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	FontSize     float64
}

// Global configuration instances
var C *Config
var Scene SceneConfig
var Player PlayerConfig
var Debug DebugConfig
var Pause PauseConfig

// Shared RGBA color constants
var (
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Tiled Map Game",
	}

	Scene = SceneConfig{
		MapPath:   "maps/map.tmx",
		AtlasPath: "img/player/player.json",

		BackgroundLayer: "background",
		ForegroundLayer: "foreground",
		ObjectsLayer:    "objects",
		CollisionLayer:  0,

		AnimationTileset:  "tiles",
		AnimationLayer:    "background",
		AnimationKey:      "animation",
		AnimationGroup:    "flower",
		AnimationInterval: 1.0 / 3.0,

		ViewportDivisor: 2.5,

		ClearColor: Black,

		FadeDuration: 0.6,
	}

	Player = PlayerConfig{
		Speed:       60 * 2,
		Gravity:     60 * 1.8,
		JumpDivisor: 1.8,

		StartCellX: 11,
		StartCellY: 14,

		BlockedKey: "blocked",

		StillRegion:    "still",
		LeftRegion:     "left",
		RightRegion:    "right",
		StillInterval:  1.0 / 2.0,
		MoveInterval:   1.0 / 6.0,
		CollisionInset: 0,
	}

	Debug = DebugConfig{
		ShowHUD:   false,
		Verbose:   false,
		LineWidth: 3,

		ShapeColor: Cyan,
		HUDColor:   Yellow,
		FadeColor:  Black,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		FontSize:     24,
	}
}
