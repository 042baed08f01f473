package systems

import (
	"fmt"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const helpText = "arrows/WASD move  space jump  shift sprint  tab profile  R respawn  F1 debug"

// DrawHUD renders the active profile, movement state and the control hints.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	face := fonts.Regular.Get()
	x := cfg.HUD.Margin
	y := cfg.HUD.Margin + cfg.HUD.LineHeight

	text.Draw(screen, fmt.Sprintf("profile: %s", cfg.Profiles[settings.ProfileIndex].Name), face, x, y, cfg.HUD.TextColor)

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		m := components.Movement.Get(playerEntry)
		s := m.Core.Status()
		y += cfg.HUD.LineHeight
		text.Draw(screen, fmt.Sprintf("%s  air jumps %d/%d", s.State, s.RemainingAirJumps, m.Core.Params().MaxAirJumps),
			face, x, y, cfg.HUD.TextColor)
	}

	if settings.ShowHelp {
		small := fonts.Small.Get()
		text.Draw(screen, helpText, small, x, cfg.C.Height-cfg.HUD.Margin, cfg.HUD.HintColor)
	}
}
