package config

import (
	"image/color"

	"github.com/automoto/platformer/shared/collision"
	"github.com/automoto/platformer/shared/movement"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // fixed simulation ticks per second

	// World scale: pixels per movement unit, and the resolv cell size.
	PixelsPerUnit float64
	CellSize      int
}

// PlayerConfig contains the player body dimensions and draw color
type PlayerConfig struct {
	CollisionWidth  int
	CollisionHeight int
	Color           color.RGBA
	FacingColor     color.RGBA
}

// Profile is a named movement tuning preset cycled at runtime.
type Profile struct {
	Name   string
	Params movement.Params
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed (units/s) to update look-ahead
	Zoom                    float64
}

// FloatingPlatformConfig controls the gween sequence of floating platforms
type FloatingPlatformConfig struct {
	LegSeconds float64 // time for one leg of the round trip
}

// HUDConfig contains text overlay configuration
type HUDConfig struct {
	FontSize      float64
	SmallFontSize float64
	Margin        int
	LineHeight    int
	TextColor     color.RGBA
	HintColor     color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowOverlay bool   // Start with collision overlay enabled
	LevelPath   string // Optional TMX file to load instead of the built-in level
	Profile     string // Starting profile name
}

// Level colors
type PaletteConfig struct {
	Background color.RGBA
	Solid      color.RGBA
	Ramp       color.RGBA
	Platform   color.RGBA
	Floating   color.RGBA
	DeadZone   color.RGBA
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Movement movement.Params
var Profiles []Profile
var Collision collision.Config
var Camera CameraConfig
var Floating FloatingPlatformConfig
var HUD HUDConfig
var Debug DebugConfig
var Palette PaletteConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Magenta    = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:         640,
		Height:        360,
		TPS:           60,
		PixelsPerUnit: 16,
		CellSize:      16,
	}

	Player = PlayerConfig{
		CollisionWidth:  12,
		CollisionHeight: 24,
		Color:           LightBlue,
		FacingColor:     White,
	}

	Movement = movement.DefaultParams()

	// Presets differ only in feel; every one must pass Params.Validate.
	floaty := Movement
	floaty.MaxJumpHeight = 5
	floaty.TimeToJumpApex = 0.6
	floaty.AccelerationTimeAir = 0.35
	floaty.MaxAirJumps = 2

	snappy := Movement
	snappy.WalkSpeed = 8
	snappy.SprintSpeed = 13
	snappy.AccelerationTimeGround = 0.04
	snappy.AccelerationTimeAir = 0.1
	snappy.TimeToJumpApex = 0.3
	snappy.WallStickTime = 0.15

	grounded := Movement
	grounded.MaxAirJumps = 0
	grounded.WallSlideSpeedMax = 6
	grounded.WallJump.X = 8

	Profiles = []Profile{
		{Name: "default", Params: Movement},
		{Name: "floaty", Params: floaty},
		{Name: "snappy", Params: snappy},
		{Name: "grounded", Params: grounded},
	}

	Collision = collision.DefaultConfig()
	Collision.PixelsPerUnit = C.PixelsPerUnit

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      60.0, // ~10% of 640px screen width
		LookAheadSmoothing:      0.05, // Slower than follow for smooth feel
		LookAheadSpeedThreshold: 0.5,
		Zoom:                    1.0,
	}

	Floating = FloatingPlatformConfig{
		LegSeconds: 2,
	}

	HUD = HUDConfig{
		FontSize:      12,
		SmallFontSize: 10,
		Margin:        8,
		LineHeight:    14,
		TextColor:     White,
		HintColor:     color.RGBA{R: 180, G: 180, B: 180, A: 255},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowOverlay: false,
		Profile:     "default",
	}

	Palette = PaletteConfig{
		Background: color.RGBA{R: 20, G: 22, B: 34, A: 255},
		Solid:      color.RGBA{R: 90, G: 96, B: 120, A: 255},
		Ramp:       color.RGBA{R: 120, G: 128, B: 150, A: 255},
		Platform:   color.RGBA{R: 180, G: 140, B: 80, A: 255},
		Floating:   Orange,
		DeadZone:   color.RGBA{R: 160, G: 30, B: 30, A: 160},
	}
}

// ProfileIndex returns the index of the named profile, or 0.
func ProfileIndex(name string) int {
	for i, p := range Profiles {
		if p.Name == name {
			return i
		}
	}
	return 0
}
