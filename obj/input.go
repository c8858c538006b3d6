package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the keys the driver cares about for one tick.
type Input struct {
	// Up thrusts, Down brakes.
	Up   bool
	Down bool
	// Left/Right turn the ship.
	Left  bool
	Right bool
	// Quit is true while Escape is held.
	Quit bool
	// PausePressed is true on the frame the pause key was pressed.
	PausePressed bool
}

// PollInput reads the keyboard and the first gamepad.
func PollInput() Input {
	in := Input{
		Up:           ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:         ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:         ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:        ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Quit:         ebiten.IsKeyPressed(ebiten.KeyEscape),
		PausePressed: inpututil.IsKeyJustPressed(ebiten.KeyP),
	}

	ids := ebiten.GamepadIDs()
	if len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			in.Left = true
		} else if leftX > 0.3 {
			in.Right = true
		}
		in.Up = in.Up || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		in.Down = in.Down || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightRight)
		in.PausePressed = in.PausePressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}
	return in
}
