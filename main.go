package main

import (
	"flag"
	"image"
	"log"
	"strings"

	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/scenes"
	"github.com/automoto/platformer/shared/movement"
	"github.com/automoto/platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(levelPath string) (*Game, error) {
	if err := fonts.LoadDefaults(config.HUD.FontSize, config.HUD.SmallFontSize); err != nil {
		return nil, err
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewPlatformerScene(levelPath),
	}, nil
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// overrides collects repeated -set name=value flags.
type overrides []string

func (o *overrides) String() string     { return strings.Join(*o, ",") }
func (o *overrides) Set(v string) error { *o = append(*o, v); return nil }

func main() {
	var sets overrides
	levelPath := flag.String("level", "", "TMX level to load instead of the built-in course")
	profile := flag.String("profile", "", "starting movement profile ("+profileNames()+")")
	debug := flag.Bool("debug", false, "start with the collision overlay enabled")
	flag.Var(&sets, "set", "override a movement tunable, name=value (repeatable): "+strings.Join(movement.ParamNames(), ", "))
	flag.Parse()

	// Initialize persistence and load saved settings before flags take priority.
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	config.Debug.LevelPath = *levelPath
	config.Debug.ShowOverlay = config.Debug.ShowOverlay || *debug
	if *profile != "" {
		if config.Profiles[config.ProfileIndex(*profile)].Name != *profile {
			log.Printf("Warning: unknown profile %q, using %s", *profile, config.Profiles[0].Name)
		}
		config.Debug.Profile = *profile
	}

	if len(sets) > 0 {
		for i := range config.Profiles {
			params, err := movement.ApplyOverrides(config.Profiles[i].Params, sets)
			if err != nil {
				log.Fatalf("Invalid -set: %v", err)
			}
			config.Profiles[i].Params = params
		}
	}

	game, err := NewGame(config.Debug.LevelPath)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("platformer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func profileNames() string {
	names := make([]string, len(config.Profiles))
	for i, p := range config.Profiles {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}
