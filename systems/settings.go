package systems

import (
	"log"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, seeded
// from config on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:        cfg.Debug.ShowOverlay,
			Fullscreen:   ebiten.IsFullscreen(),
			ProfileIndex: cfg.ProfileIndex(cfg.Debug.Profile),
			ShowHelp:     true,
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the debug, fullscreen and profile hotkeys. Any
// change is persisted immediately.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)
	changed := false

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}

	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}

	if GetAction(input, cfg.ActionNextProfile).JustPressed {
		settings.ProfileIndex = (settings.ProfileIndex + 1) % len(cfg.Profiles)
		applyProfile(e, settings.ProfileIndex)
		settings.ShowHelp = false
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}

// applyProfile swaps every player's tunables to the indexed profile.
func applyProfile(e *ecs.ECS, index int) {
	profile := cfg.Profiles[index]
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		m := components.Movement.Get(entry)
		if err := m.Core.SetParams(profile.Params); err != nil {
			log.Printf("Warning: Could not apply profile %s: %v", profile.Name, err)
		}
	})
}
