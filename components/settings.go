package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData holds display and debug settings that persist between runs.
type SettingsData struct {
	Debug        bool
	Fullscreen   bool
	ProfileIndex int
	ShowHelp     bool
}

var Settings = donburi.NewComponentType[SettingsData]()
