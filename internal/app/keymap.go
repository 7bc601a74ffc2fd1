package app

import (
	"strings"

	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/internal/render"
	"github.com/SeamusWaldron/cubeview/internal/spatial"
)

// NudgeAngle is the view rotation per arrow key press, in radians.
const NudgeAngle = 0.05

// KeyCommand maps a key name, as reported by bubbletea, to a command.
// Lower-case face letters turn clockwise, upper-case counter-clockwise.
func KeyCommand(key string) (Command, bool) {
	if len(key) == 1 {
		if m, err := cube.ParseMove(key); err == nil {
			m.Inverse = key != strings.ToLower(key)
			return MoveCmd{Move: m, Origin: OriginKeyboard}, true
		}
	}

	switch key {
	case "p":
		return ResetCmd{Origin: OriginKeyboard}, true
	case "0":
		return ResetViewCmd{}, true
	case "2":
		return SetModeCmd{Mode: render.ModeNet}, true
	case "3":
		return SetModeCmd{Mode: render.ModeSolid}, true
	case "tab":
		return ToggleCmd{Toggle: ToggleMode}, true
	case "a":
		return ToggleCmd{Toggle: ToggleAutoRotate}, true
	case "e":
		return ToggleCmd{Toggle: ToggleEdges}, true
	case "m":
		return ToggleCmd{Toggle: ToggleDebug}, true
	case " ", "space":
		return ToggleCmd{Toggle: TogglePause}, true
	case "up":
		return RotateCmd{Axis: spatial.AxisX, Angle: NudgeAngle}, true
	case "down":
		return RotateCmd{Axis: spatial.AxisX, Angle: -NudgeAngle}, true
	case "left":
		return RotateCmd{Axis: spatial.AxisY, Angle: NudgeAngle}, true
	case "right":
		return RotateCmd{Axis: spatial.AxisY, Angle: -NudgeAngle}, true
	case "z":
		return RotateCmd{Axis: spatial.AxisZ, Angle: NudgeAngle}, true
	case "Z":
		return RotateCmd{Axis: spatial.AxisZ, Angle: -NudgeAngle}, true
	case "esc", "q", "ctrl+c":
		return QuitCmd{}, true
	}
	return nil, false
}

// HelpText lists the key bindings for the status bar.
const HelpText = "l r u d f b: turn  shift: inverse  p: reset  2/3: net/solid  a: auto  e: edges  space: pause  m: debug  arrows: view  q: quit"
