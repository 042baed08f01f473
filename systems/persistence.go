package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk. Movement state
// is never saved; only display options and the chosen tuning profile.
type SavedSettings struct {
	Fullscreen bool   `json:"fullscreen"`
	Debug      bool   `json:"debug"`
	Profile    string `json:"profile"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "platformer",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the settings held by the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Fullscreen: s.Fullscreen,
		Debug:      s.Debug,
		Profile:    cfg.Profiles[s.ProfileIndex].Name,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies settings before any scene exists. The
// debug flag and profile are copied into config so the scene starts with them.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)
	cfg.Debug.ShowOverlay = cfg.Debug.ShowOverlay || saved.Debug
	if saved.Profile != "" {
		cfg.Debug.Profile = saved.Profile
	}
}
