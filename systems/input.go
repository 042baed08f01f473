package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateMovementInput in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	input.Stick = getAnalogStick(gamepadIDs)
	if input.Stick.X != 0 || input.Stick.Y != 0 {
		gamepadUsed = true
	}

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getAnalogStick returns the strongest left stick deflection past the
// deadzone across all gamepads, y pointing down.
func getAnalogStick(gamepads []ebiten.GamepadID) math.Vec2 {
	deadzone := cfg.Input.AnalogDeadzone

	var stick math.Vec2
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if (horizontal < -deadzone || horizontal > deadzone) && absf(horizontal) > absf(stick.X) {
			stick.X = horizontal
		}
		if (vertical < -deadzone || vertical > deadzone) && absf(vertical) > absf(stick.Y) {
			stick.Y = vertical
		}
	}
	return stick
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// DirectionalInput merges digital actions and the analog stick into a y-up
// direction with each axis in [-1, 1].
func DirectionalInput(input *components.InputData) math.Vec2 {
	var dir math.Vec2
	if input.Current[cfg.ActionMoveLeft] {
		dir.X--
	}
	if input.Current[cfg.ActionMoveRight] {
		dir.X++
	}
	if input.Current[cfg.ActionMoveUp] {
		dir.Y++
	}
	if input.Current[cfg.ActionMoveDown] {
		dir.Y--
	}

	if dir.X == 0 {
		dir.X = input.Stick.X
	}
	if dir.Y == 0 {
		dir.Y = -input.Stick.Y
	}
	return dir
}
